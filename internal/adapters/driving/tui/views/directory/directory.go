// Package directory provides the main provider list view for the TUI.
package directory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/components/chips"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
)

// View is the filterable provider list with search input, filter chips
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ServiceList
	chips     *chips.Bar
	statusbar *status.Bar

	catalog   driving.CatalogService
	directory driving.DirectoryService

	width      int
	height     int
	focusInput bool // true = typing a search, false = navigating the list
}

// NewView creates a new directory view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	directory driving.DirectoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		chips:     chips.NewBar(s),
		statusbar: status.NewBar(s, km),
		catalog:   catalog,
		directory: directory,
		width:     80,
		height:    24,
	}
	v.list = list.NewServiceList(s, v.isFavorite)
	return v
}

func (v *View) isFavorite(id domain.RecordID) bool {
	return v.directory != nil && v.directory.IsFavorite(id)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Sync pulls the derived list, criteria and favourites from the session.
func (v *View) Sync() {
	if v.directory == nil {
		return
	}

	criteria := v.directory.Criteria()
	if !v.focusInput && v.input.Value() != criteria.SearchTerm {
		v.input.SetValue(criteria.SearchTerm)
	}

	v.list.SetRecords(v.directory.Results())
	v.chips.SetFilters(criteria.Active())
	v.statusbar.SetSummary(v.directory.Summary())
	v.statusbar.SetFavorites(v.directory.FavoriteCount())
	if v.focusInput {
		v.statusbar.SetState(status.StateSearching)
	} else {
		v.statusbar.SetState(status.StateReady)
	}
}

// Update handles messages for the directory view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		v.statusbar.SetMessage("")
		if v.focusInput {
			return v.handleInputKey(msg)
		}
		return v.handleListKey(msg)

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd, _ = v.input.Update(msg)
	}
	return v, cmd
}

// handleInputKey filters as the user types.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "down", "up":
		v.focusInput = false
		v.input.Blur()
		v.Sync()
		return v, nil
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed {
		v.directory.SetSearchTerm(v.input.Value())
		v.Sync()
	}
	return v, cmd
}

// handleListKey handles navigation and filter shortcuts.
//
//nolint:gocyclo // one case per shortcut
func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Help):
		return v, changeView(messages.ViewHelp)

	case keymap.Matches(keyStr, v.keymap.Search):
		v.focusInput = true
		v.statusbar.SetState(status.StateSearching)
		return v, v.input.Focus()

	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.inspectSelected()

	case keymap.Matches(keyStr, v.keymap.Favorite):
		v.toggleSelected()

	case keymap.Matches(keyStr, v.keymap.Category):
		v.directory.SetCategory(next(v.catalog.Categories(), v.directory.Criteria().Category))

	case keymap.Matches(keyStr, v.keymap.City):
		v.directory.SetCity(next(v.catalog.Cities(), v.directory.Criteria().City))

	case keymap.Matches(keyStr, v.keymap.Sort):
		v.cycleSort()

	case keymap.Matches(keyStr, v.keymap.ClearAll):
		v.directory.ResetFilters()

	case keymap.Matches(keyStr, v.keymap.ClearChip):
		n, _ := strconv.Atoi(keyStr)
		if f, ok := v.chips.At(n); ok {
			v.directory.ClearFilter(f.Kind)
		}

	default:
		v.list, _ = v.list.Update(msg)
		return v, nil
	}

	v.Sync()
	return v, nil
}

func (v *View) inspectSelected() tea.Cmd {
	rec := v.list.SelectedRecord()
	if rec == nil {
		return nil
	}
	if err := v.directory.Inspect(rec.ID); err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	return changeView(messages.ViewDetails)
}

func (v *View) toggleSelected() {
	rec := v.list.SelectedRecord()
	if rec == nil {
		return
	}
	if v.directory.ToggleFavorite(rec.ID) {
		v.statusbar.SetMessage(fmt.Sprintf("Added %s to favourites", rec.Name))
	} else {
		v.statusbar.SetMessage(fmt.Sprintf("Removed %s from favourites", rec.Name))
	}
}

func (v *View) cycleSort() {
	modes := domain.SortModes()
	i := slices.Index(modes, v.directory.Criteria().Sort)
	// Every entry of SortModes is valid.
	_ = v.directory.SetSort(modes[(i+1)%len(modes)])
}

// next returns the value after current, wrapping around. Unknown values
// restart at the first entry.
func next(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// View renders the directory view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	b.WriteString(v.renderFacets())
	b.WriteString("\n")
	if chipLine := v.chips.View(); chipLine != "" {
		b.WriteString(chipLine)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.list.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())

	return b.String()
}

func (v *View) renderHeader() string {
	header := v.styles.Title.Render("Service Directory")
	if v.directory != nil {
		if n := v.directory.FavoriteCount(); n > 0 {
			header += "  " + v.styles.Favorite.Render(fmt.Sprintf("♥ %d favourites", n))
		}
	}
	return header
}

// renderFacets shows the current category, city and sort selection.
func (v *View) renderFacets() string {
	if v.directory == nil {
		return ""
	}
	c := v.directory.Criteria()
	return v.styles.Muted.Render(fmt.Sprintf("[c] Category: %s   [t] City: %s   [s] Sort: %s",
		c.Category, c.City, c.Sort.Label()))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	// Header, input box, facets, chips, spacing and status bar
	v.list.SetDimensions(width, max(height-12, 2))
}

// FocusInput reports whether the search input has focus.
func (v *View) FocusInput() bool {
	return v.focusInput
}

// Selected returns the selected record, or nil.
func (v *View) Selected() *domain.ServiceRecord {
	return v.list.SelectedRecord()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}
