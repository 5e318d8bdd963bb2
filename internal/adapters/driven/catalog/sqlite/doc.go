// Package sqlite reads a service catalog from a SQLite database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The database is opened read-only and queried once per load; the
// directory never writes to it.
//
// # Schema
//
// Records live in a single services table (see schema.sql). Rows are returned
// in rowid order, which is the catalog order used for first-occurrence
// category and city lists. Nullable text columns read as empty strings.
package sqlite
