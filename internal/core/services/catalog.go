package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
	"github.com/custodia-labs/svcdir/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// CatalogService loads records once from a CatalogSource and serves them
// read-only afterwards.
type CatalogService struct {
	source driven.CatalogSource
	delay  time.Duration
	sleep  SleepFunc

	records    []domain.ServiceRecord
	byID       map[domain.RecordID]int
	categories []string
	cities     []string
	ready      bool
}

// NewCatalogService creates a catalog service. delay is the simulated load
// latency; zero or negative disables it.
func NewCatalogService(source driven.CatalogSource, delay time.Duration) *CatalogService {
	return &CatalogService{
		source: source,
		delay:  delay,
		sleep:  sleepContext,
	}
}

// SetSleepFunc replaces the function used to wait out the load delay.
func (s *CatalogService) SetSleepFunc(fn SleepFunc) {
	if fn != nil {
		s.sleep = fn
	}
}

// Delay returns the configured load delay.
func (s *CatalogService) Delay() time.Duration {
	return s.delay
}

// Load reads the catalog once. Later calls return the loaded records
// without waiting again.
func (s *CatalogService) Load(ctx context.Context) ([]domain.ServiceRecord, error) {
	if s.ready {
		return s.records, nil
	}
	if s.source == nil {
		return nil, fmt.Errorf("load catalog: %w: no catalog source", domain.ErrInvalidInput)
	}

	logger.Section("Catalog Load")
	logger.Debug("Source: %s, delay: %s", s.source.Name(), s.delay)

	if s.delay > 0 {
		if err := s.sleep(ctx, s.delay); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	start := time.Now()
	records, err := s.source.Records(ctx)
	if err != nil {
		logger.Warn("Catalog source failed: %v", err)
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}

	// Copy so the caller's slice can never alias the frozen list.
	s.records = append(make([]domain.ServiceRecord, 0, len(records)), records...)
	s.byID = make(map[domain.RecordID]int, len(s.records))
	for i := range s.records {
		s.byID[s.records[i].ID] = i
	}
	s.categories = distinct(s.records, func(r *domain.ServiceRecord) string { return r.Category })
	s.cities = distinct(s.records, func(r *domain.ServiceRecord) string { return r.City })
	s.ready = true

	logger.Since("Catalog read", start)
	logger.Info("Catalog ready: %d records, %d categories, %d cities",
		len(s.records), len(s.categories)-1, len(s.cities)-1)

	return s.records, nil
}

// Ready reports whether the catalog has loaded.
func (s *CatalogService) Ready() bool {
	return s.ready
}

// Records returns the loaded records in source order.
func (s *CatalogService) Records() []domain.ServiceRecord {
	return s.records
}

// Categories returns "all" followed by the distinct categories.
// Before load it returns only "all".
func (s *CatalogService) Categories() []string {
	if !s.ready {
		return []string{domain.AllFilter}
	}
	return append([]string(nil), s.categories...)
}

// Cities returns "all" followed by the distinct cities.
// Before load it returns only "all".
func (s *CatalogService) Cities() []string {
	if !s.ready {
		return []string{domain.AllFilter}
	}
	return append([]string(nil), s.cities...)
}

// Get returns the record with the given id.
func (s *CatalogService) Get(id domain.RecordID) (*domain.ServiceRecord, error) {
	if !s.ready {
		return nil, domain.ErrCatalogNotReady
	}
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	r := s.records[i]
	return &r, nil
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
