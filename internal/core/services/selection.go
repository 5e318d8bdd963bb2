package services

import (
	"slices"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// SelectionTracker holds favourite ids and the inspected id.
// The two are independent: neither operation reads or changes the other.
type SelectionTracker struct {
	favorites []domain.RecordID
	inspected domain.RecordID
	open      bool
}

// NewSelectionTracker creates an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{}
}

// ToggleFavorite flips membership of id and returns the new membership.
func (t *SelectionTracker) ToggleFavorite(id domain.RecordID) bool {
	if i := slices.Index(t.favorites, id); i >= 0 {
		t.favorites = slices.Delete(t.favorites, i, i+1)
		return false
	}
	t.favorites = append(t.favorites, id)
	return true
}

// IsFavorite reports whether id is a favourite.
func (t *SelectionTracker) IsFavorite(id domain.RecordID) bool {
	return slices.Contains(t.favorites, id)
}

// FavoriteCount returns the number of favourites.
func (t *SelectionTracker) FavoriteCount() int {
	return len(t.favorites)
}

// Favorites returns favourite ids in the order they were added.
func (t *SelectionTracker) Favorites() []domain.RecordID {
	return slices.Clone(t.favorites)
}

// Inspect sets the inspected id, replacing any previous one.
func (t *SelectionTracker) Inspect(id domain.RecordID) {
	t.inspected = id
	t.open = true
}

// CloseInspection clears the inspected id.
func (t *SelectionTracker) CloseInspection() {
	t.inspected = ""
	t.open = false
}

// Inspected returns the inspected id and whether one is set.
func (t *SelectionTracker) Inspected() (domain.RecordID, bool) {
	return t.inspected, t.open
}
