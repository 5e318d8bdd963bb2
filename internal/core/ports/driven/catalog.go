package driven

import (
	"context"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// CatalogSource supplies the records of a catalog.
// Records are assumed valid; sources reject only what they cannot decode.
type CatalogSource interface {
	// Records returns every record in source order.
	Records(ctx context.Context) ([]domain.ServiceRecord, error)

	// Name describes the source for logs and status lines.
	Name() string
}
