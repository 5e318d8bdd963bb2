// Package tui provides an interactive terminal user interface for svcdir.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog loads the records and lists categories and cities.
	Catalog driving.CatalogService

	// Directory holds filter criteria, favourites and inspection.
	Directory driving.DirectoryService

	// Contact hands phone numbers and email addresses to the OS.
	Contact driving.ContactService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	directory driving.DirectoryService,
	contact driving.ContactService,
) *Ports {
	return &Ports{
		Catalog:   catalog,
		Directory: directory,
		Contact:   contact,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Directory == nil {
		return ErrMissingDirectoryService
	}
	if p.Contact == nil {
		return ErrMissingContactService
	}
	return nil
}
