package driving

import "github.com/custodia-labs/svcdir/internal/core/domain"

// DirectoryService is a browsing session over a loaded catalog.
// Every mutation recomputes the derived list before returning.
type DirectoryService interface {
	// Refresh recomputes the derived list, e.g. once the catalog has loaded.
	Refresh()

	// Criteria returns the criteria currently in effect.
	Criteria() domain.FilterCriteria

	// SetSearchTerm sets the free-text search. The term is used verbatim.
	SetSearchTerm(term string)

	// SetCategory sets the category filter; "all" disables it.
	SetCategory(category string)

	// SetCity sets the city filter; "all" disables it.
	SetCity(city string)

	// SetSort sets the sort mode.
	SetSort(mode domain.SortMode) error

	// ResetFilters restores every criterion to its default.
	// Favourites and inspection are untouched.
	ResetFilters()

	// ClearFilter restores a single criterion to its default.
	ClearFilter(kind domain.FilterKind)

	// Results returns the derived list.
	Results() []domain.ServiceRecord

	// Summary returns shown and total counts.
	Summary() domain.Summary

	// ToggleFavorite flips membership of id and reports the new state.
	ToggleFavorite(id domain.RecordID) bool

	// IsFavorite reports whether id is a favourite.
	IsFavorite(id domain.RecordID) bool

	// FavoriteCount returns the number of favourites.
	FavoriteCount() int

	// Favorites returns favourite ids in the order they were added.
	Favorites() []domain.RecordID

	// Inspect opens a record for detail view, replacing any prior one.
	Inspect(id domain.RecordID) error

	// CloseInspection clears the inspected record.
	CloseInspection()

	// Inspected returns the inspected record, if any.
	Inspected() (*domain.ServiceRecord, bool)
}
