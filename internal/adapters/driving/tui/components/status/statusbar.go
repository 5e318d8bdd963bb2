// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
)

// Bar displays the result summary, favourites count and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	summary   domain.Summary
	favorites int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(s.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the summary or the current message.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading services...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady, StateSearching:
	}

	left := s.styles.Normal.Render(s.summary.String()) + " " + s.styles.Badge.Render(s.summary.Badge())
	if s.favorites > 0 {
		left += " " + s.styles.Favorite.Render(fmt.Sprintf("♥ %d", s.favorites))
	}
	if s.message != "" {
		left += "  " + s.styles.Success.Render(s.message)
	}
	return left
}

// renderRight renders keybinding hints for the current state.
func (s *Bar) renderRight() string {
	var bindings []key.Binding

	switch s.state {
	case StateReady:
		bindings = s.keymap.DirectoryHelp()
	case StateSearching:
		bindings = []key.Binding{s.keymap.Back}
	case StateLoading, StateError:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message shown after the summary.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetSummary sets the shown/total counts.
func (s *Bar) SetSummary(summary domain.Summary) {
	s.summary = summary
}

// Summary returns the current summary.
func (s *Bar) Summary() domain.Summary {
	return s.summary
}

// SetFavorites sets the favourites count.
func (s *Bar) SetFavorites(n int) {
	s.favorites = n
}

// Favorites returns the favourites count.
func (s *Bar) Favorites() int {
	return s.favorites
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
