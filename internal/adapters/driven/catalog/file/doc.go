// Package file provides catalog sources backed by JSON or YAML files,
// plus the sample catalog embedded in the binary.
package file
