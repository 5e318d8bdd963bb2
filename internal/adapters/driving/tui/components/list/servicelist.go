// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// FavoriteFunc reports whether a record is a favourite.
type FavoriteFunc func(id domain.RecordID) bool

// ServiceList displays service records in a navigable list.
type ServiceList struct {
	records    []domain.ServiceRecord
	selected   int
	isFavorite FavoriteFunc
	styles     *styles.Styles
	width      int
	height     int
}

// NewServiceList creates a new service list component.
func NewServiceList(s *styles.Styles, isFavorite FavoriteFunc) *ServiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if isFavorite == nil {
		isFavorite = func(domain.RecordID) bool { return false }
	}

	return &ServiceList{
		selected:   0,
		isFavorite: isFavorite,
		styles:     s,
		width:      80,
		height:     10,
	}
}

// Init initialises the service list.
func (r *ServiceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ServiceList) Update(msg tea.Msg) (*ServiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.selected = 0
		case "end", "G":
			r.selected = max(len(r.records)-1, 0)
		}
	}
	return r, nil
}

// View renders the service list.
func (r *ServiceList) View() string {
	if len(r.records) == 0 {
		return r.styles.Muted.Render("No services match your filters. Press x to clear them.")
	}

	// Each record takes two lines
	visibleCount := max(r.height/2, 1)

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.records))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRecord(i, &r.records[i]))
	}
	return strings.Join(lines, "\n")
}

// renderRecord formats a single record as a title line and a detail line.
func (r *ServiceList) renderRecord(index int, rec *domain.ServiceRecord) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	heart := "  "
	if r.isFavorite(rec.ID) {
		heart = r.styles.Favorite.Render("♥") + " "
	}

	name := truncate(rec.Name, max(r.width-40, 10))
	rating := fmt.Sprintf("★ %.1f (%d)", rec.Rating, rec.Reviews)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator+name) + " " + heart + r.styles.Warning.Render(rating)
	} else {
		titleLine = r.styles.Normal.Render(indicator+name) + " " + heart + r.styles.Muted.Render(rating)
	}

	detail := "    " + r.styles.CategoryBadge(rec.Category) + " " + r.styles.Muted.Render(rec.City)
	if hours := rec.HoursSummary(); hours != "" {
		detail += r.styles.Muted.Render(" · " + hours)
	}
	if rec.Tagline != "" {
		detail += r.styles.Muted.Render(" · " + truncate(rec.Tagline, max(r.width-50, 10)))
	}

	return titleLine + "\n" + detail
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetRecords replaces the displayed records. The selection stays on the
// same record when it is still present, otherwise it is clamped.
func (r *ServiceList) SetRecords(records []domain.ServiceRecord) {
	var current domain.RecordID
	if rec := r.SelectedRecord(); rec != nil {
		current = rec.ID
	}

	r.records = records
	for i := range records {
		if records[i].ID == current {
			r.selected = i
			return
		}
	}
	r.selected = min(r.selected, max(len(records)-1, 0))
}

// Records returns the current records.
func (r *ServiceList) Records() []domain.ServiceRecord {
	return r.records
}

// Selected returns the index of the selected record.
func (r *ServiceList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ServiceList) SetSelected(index int) {
	if index >= 0 && index < len(r.records) {
		r.selected = index
	}
}

// SelectedRecord returns the currently selected record, or nil if none.
func (r *ServiceList) SelectedRecord() *domain.ServiceRecord {
	if len(r.records) == 0 || r.selected < 0 || r.selected >= len(r.records) {
		return nil
	}
	return &r.records[r.selected]
}

// MoveUp moves selection up.
func (r *ServiceList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ServiceList) MoveDown() {
	if r.selected < len(r.records)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ServiceList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of records.
func (r *ServiceList) Count() int {
	return len(r.records)
}

// IsEmpty returns whether the list is empty.
func (r *ServiceList) IsEmpty() bool {
	return len(r.records) == 0
}
