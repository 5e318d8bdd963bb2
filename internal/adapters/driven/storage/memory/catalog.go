package memory

import (
	"context"
	"slices"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
)

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

// CatalogSource serves a fixed list of records held in memory.
type CatalogSource struct {
	records []domain.ServiceRecord
	err     error
	calls   int
}

// NewCatalogSource creates a source over a copy of records.
func NewCatalogSource(records ...domain.ServiceRecord) *CatalogSource {
	return &CatalogSource{records: slices.Clone(records)}
}

// FailWith makes every subsequent Records call return err.
func (s *CatalogSource) FailWith(err error) *CatalogSource {
	s.err = err
	return s
}

// Records returns a copy of the records.
func (s *CatalogSource) Records(ctx context.Context) ([]domain.ServiceRecord, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return slices.Clone(s.records), nil
}

// Name describes the source.
func (s *CatalogSource) Name() string {
	return "memory"
}

// Calls returns how many times Records has been called.
func (s *CatalogSource) Calls() int {
	return s.calls
}
