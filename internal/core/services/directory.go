package services

import (
	"fmt"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
	"github.com/custodia-labs/svcdir/internal/logger"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService is one browsing session over a loaded catalog.
// It is driven from a single event loop and is not safe for concurrent use.
type DirectoryService struct {
	catalog   driving.CatalogService
	engine    *Engine
	criteria  domain.FilterCriteria
	selection *SelectionTracker
	results   []domain.ServiceRecord
}

// NewDirectoryService creates a session over catalog. A nil engine uses
// English name ordering.
func NewDirectoryService(catalog driving.CatalogService, engine *Engine) *DirectoryService {
	if engine == nil {
		engine = defaultEngine
	}
	s := &DirectoryService{
		catalog:   catalog,
		engine:    engine,
		criteria:  domain.DefaultCriteria(),
		selection: NewSelectionTracker(),
	}
	s.recompute()
	return s
}

// SetInitialSort sets the sort mode the session starts with.
// ResetFilters still returns to the default sort.
func (s *DirectoryService) SetInitialSort(mode domain.SortMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortMode, mode)
	}
	s.criteria.Sort = mode
	s.recompute()
	return nil
}

// Refresh recomputes the derived list, e.g. after the catalog has loaded.
func (s *DirectoryService) Refresh() {
	s.recompute()
}

// Criteria returns the criteria currently in effect.
func (s *DirectoryService) Criteria() domain.FilterCriteria {
	return s.criteria
}

// SetCriteria replaces all criteria at once.
func (s *DirectoryService) SetCriteria(c domain.FilterCriteria) error {
	if !c.Sort.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortMode, c.Sort)
	}
	s.criteria = c
	s.recompute()
	return nil
}

// SetSearchTerm sets the free-text search verbatim.
func (s *DirectoryService) SetSearchTerm(term string) {
	s.criteria.SearchTerm = term
	s.recompute()
}

// SetCategory sets the category filter.
func (s *DirectoryService) SetCategory(category string) {
	s.criteria.Category = category
	s.recompute()
}

// SetCity sets the city filter.
func (s *DirectoryService) SetCity(city string) {
	s.criteria.City = city
	s.recompute()
}

// SetSort sets the sort mode.
func (s *DirectoryService) SetSort(mode domain.SortMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSortMode, mode)
	}
	s.criteria.Sort = mode
	s.recompute()
	return nil
}

// ResetFilters restores every criterion to its default.
func (s *DirectoryService) ResetFilters() {
	s.criteria = domain.DefaultCriteria()
	s.recompute()
}

// ClearFilter restores one criterion to its default.
func (s *DirectoryService) ClearFilter(kind domain.FilterKind) {
	s.criteria = s.criteria.Without(kind)
	s.recompute()
}

// Results returns the derived list.
func (s *DirectoryService) Results() []domain.ServiceRecord {
	return s.results
}

// Summary returns shown and total counts.
func (s *DirectoryService) Summary() domain.Summary {
	return domain.Summary{
		Shown: len(s.results),
		Total: len(s.source()),
	}
}

// ToggleFavorite flips membership of id.
func (s *DirectoryService) ToggleFavorite(id domain.RecordID) bool {
	fav := s.selection.ToggleFavorite(id)
	logger.Debug("Favorite %s: %t (count=%d)", id, fav, s.selection.FavoriteCount())
	return fav
}

// IsFavorite reports whether id is a favourite.
func (s *DirectoryService) IsFavorite(id domain.RecordID) bool {
	return s.selection.IsFavorite(id)
}

// FavoriteCount returns the number of favourites.
func (s *DirectoryService) FavoriteCount() int {
	return s.selection.FavoriteCount()
}

// Favorites returns favourite ids in the order they were added.
func (s *DirectoryService) Favorites() []domain.RecordID {
	return s.selection.Favorites()
}

// Inspect opens the record with the given id for detail view.
func (s *DirectoryService) Inspect(id domain.RecordID) error {
	if _, err := s.catalog.Get(id); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	s.selection.Inspect(id)
	return nil
}

// CloseInspection clears the inspected record.
func (s *DirectoryService) CloseInspection() {
	s.selection.CloseInspection()
}

// Inspected returns the inspected record, if any.
func (s *DirectoryService) Inspected() (*domain.ServiceRecord, bool) {
	id, ok := s.selection.Inspected()
	if !ok {
		return nil, false
	}
	r, err := s.catalog.Get(id)
	if err != nil {
		return nil, false
	}
	return r, true
}

// source returns the catalog records, or nil before load.
func (s *DirectoryService) source() []domain.ServiceRecord {
	if s.catalog == nil || !s.catalog.Ready() {
		return nil
	}
	return s.catalog.Records()
}

// recompute re-derives the displayed list from the current inputs.
func (s *DirectoryService) recompute() {
	s.results = s.engine.Derive(s.source(), s.criteria)
	logger.Debug("Derive: search=%q category=%q city=%q sort=%s -> %d",
		s.criteria.SearchTerm, s.criteria.Category, s.criteria.City, s.criteria.Sort, len(s.results))
}
