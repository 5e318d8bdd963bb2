// Package loading provides the view shown while the catalog loads.
package loading

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
)

// View shows a spinner until the catalog has loaded, or the load error.
type View struct {
	styles  *styles.Styles
	spinner spinner.Model
	err     error
	width   int
	height  int
}

// NewView creates a new loading view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:  s,
		spinner: sp,
		width:   80,
		height:  24,
	}
}

// Init starts the spinner.
func (v *View) Init() tea.Cmd {
	return v.spinner.Tick
}

// Update advances the spinner and handles quit keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return v, func() tea.Msg { return messages.Quit{} }
		}
		return v, nil

	case messages.CatalogLoaded:
		v.err = msg.Err
		return v, nil

	case spinner.TickMsg:
		if v.err != nil {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the spinner or the load error.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Service Directory"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Could not load services: %s", v.err)))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[q] quit"))
	} else {
		b.WriteString(v.spinner.View())
		b.WriteString(" ")
		b.WriteString(v.styles.Muted.Render("Loading services..."))
	}

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}
