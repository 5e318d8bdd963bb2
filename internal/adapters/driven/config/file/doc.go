// Package file provides the TOML-backed configuration store.
// Settings live in config.toml inside the svcdir config directory.
package file
