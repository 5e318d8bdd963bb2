package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogNotReady indicates the catalog has not finished loading.
	ErrCatalogNotReady = errors.New("catalog not ready")

	// ErrInvalidSortMode indicates an unrecognised sort mode.
	ErrInvalidSortMode = errors.New("invalid sort mode")

	// ErrDuplicateID indicates two records in a catalog share an identifier.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrUnsupportedFormat indicates a catalog file format that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrNoContact indicates a record has no phone number or email address
	// for the requested contact action.
	ErrNoContact = errors.New("no contact details")
)
