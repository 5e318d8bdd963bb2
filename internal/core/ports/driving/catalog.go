package driving

import (
	"context"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// CatalogService holds the immutable source list of records.
type CatalogService interface {
	// Load reads the catalog once. It waits out the configured load delay
	// before the catalog becomes ready. Later calls return the loaded list.
	Load(ctx context.Context) ([]domain.ServiceRecord, error)

	// Ready reports whether Load has completed successfully.
	Ready() bool

	// Records returns the loaded records in source order.
	Records() []domain.ServiceRecord

	// Categories returns "all" followed by the distinct categories
	// in first-occurrence order.
	Categories() []string

	// Cities returns "all" followed by the distinct cities
	// in first-occurrence order.
	Cities() []string

	// Get returns the record with the given id.
	Get(id domain.RecordID) (*domain.ServiceRecord, error)
}
