// Package chips renders the active filter chips of the directory view.
package chips

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// Bar shows each non-default criterion as a numbered chip.
type Bar struct {
	styles  *styles.Styles
	filters []domain.ActiveFilter
}

// NewBar creates a chip bar.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{styles: s}
}

// SetFilters replaces the displayed filters.
func (b *Bar) SetFilters(filters []domain.ActiveFilter) {
	b.filters = filters
}

// Filters returns the displayed filters.
func (b *Bar) Filters() []domain.ActiveFilter {
	return b.filters
}

// At returns the filter shown with the 1-based number n.
func (b *Bar) At(n int) (domain.ActiveFilter, bool) {
	if n < 1 || n > len(b.filters) {
		return domain.ActiveFilter{}, false
	}
	return b.filters[n-1], true
}

// View renders the chips, or nothing when no filter is active.
func (b *Bar) View() string {
	if len(b.filters) == 0 {
		return ""
	}

	parts := make([]string, 0, len(b.filters)+2)
	parts = append(parts, b.styles.Muted.Render("Active filters:"))
	for i, f := range b.filters {
		parts = append(parts, b.styles.Chip.Render(fmt.Sprintf("%d %s: %s ×", i+1, f.Kind, f.Label)))
	}
	parts = append(parts, b.styles.Help.Render("[x] clear all"))
	return strings.Join(parts, " ")
}
