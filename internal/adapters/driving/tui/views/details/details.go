// Package details provides the provider detail overlay for the TUI.
package details

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
)

// View is the detail overlay for the inspected provider.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	directory driving.DirectoryService
	contact   driving.ContactService
	ctx       context.Context

	record *domain.ServiceRecord
	notice string
	err    error
	width  int
	height int
}

// NewView creates a new details view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	directory driving.DirectoryService,
	contact driving.ContactService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		directory: directory,
		contact:   contact,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context passed to contact hand-offs.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Refresh loads the inspected record from the session.
func (v *View) Refresh() {
	v.notice = ""
	v.err = nil
	v.record = nil
	if v.directory == nil {
		return
	}
	if rec, ok := v.directory.Inspected(); ok {
		v.record = rec
	}
}

// Update handles messages for the details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ContactStarted:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		if msg.Action == messages.ContactCall {
			v.notice = "Calling " + msg.Target
		} else {
			v.notice = "Opening email to " + msg.Target
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back), keyStr == "q":
		if v.directory != nil {
			v.directory.CloseInspection()
		}
		v.record = nil
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewDirectory} }

	case v.record == nil:
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Favorite):
		fav := v.directory.ToggleFavorite(v.record.ID)
		id := v.record.ID
		return v, func() tea.Msg { return messages.FavoriteToggled{ID: id, Favorite: fav} }

	case keymap.Matches(keyStr, v.keymap.Call):
		return v, v.handOff(messages.ContactCall, v.record.Phone)

	case keymap.Matches(keyStr, v.keymap.Email):
		return v, v.handOff(messages.ContactEmail, v.record.Email)
	}

	return v, nil
}

// handOff runs a contact action as a command so the UI never blocks on
// the OS handler.
func (v *View) handOff(action messages.ContactAction, target string) tea.Cmd {
	if v.contact == nil {
		return nil
	}
	ctx := v.ctx
	contact := v.contact
	return func() tea.Msg {
		var err error
		if action == messages.ContactCall {
			err = contact.Call(ctx, target)
		} else {
			err = contact.Email(ctx, target)
		}
		return messages.ContactStarted{Action: action, Target: target, Err: err}
	}
}

// View renders the overlay centred in the terminal.
func (v *View) View() string {
	var b strings.Builder

	if v.record == nil {
		b.WriteString(v.styles.Muted.Render("No provider selected"))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[esc] back"))
		return v.place(b.String())
	}

	r := v.record
	title := v.styles.Title.Render(r.Name)
	if v.directory != nil && v.directory.IsFavorite(r.ID) {
		title += " " + v.styles.Favorite.Render("♥")
	}
	b.WriteString(title)
	b.WriteString("\n")
	if r.Tagline != "" {
		b.WriteString(v.styles.Muted.Render(r.Tagline))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.CategoryBadge(r.Category))
	b.WriteString(" ")
	b.WriteString(v.styles.Warning.Render(fmt.Sprintf("%s %.1f", stars(r.Rating), r.Rating)))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(" (%d reviews)", r.Reviews)))
	b.WriteString("\n\n")

	for _, line := range v.fields() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if r.Description != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Width(v.contentWidth()).Render(r.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(errorText(v.err)))
		b.WriteString("\n")
	case v.notice != "":
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	b.WriteString(v.renderHelp())

	return v.place(b.String())
}

func (v *View) fields() []string {
	r := v.record
	return []string{
		v.formatField("City", r.City),
		v.formatField("Hours", r.HoursOrDefault()),
		v.formatField("Established", r.Established.String()),
		v.formatField("Phone", r.Phone),
		v.formatField("Email", r.Email),
	}
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return v.styles.Subtitle.Render(fmt.Sprintf("%-12s", label+":")) + " " + v.styles.Normal.Render(value)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	bindings := v.keymap.DetailsHelp()
	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return v.styles.Help.Render(strings.Join(hints, "  "))
}

func (v *View) contentWidth() int {
	return max(min(v.width-12, 64), 20)
}

func (v *View) place(content string) string {
	box := v.styles.Overlay.Width(v.contentWidth() + 4).Render(content)
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, box)
}

func errorText(err error) string {
	if errors.Is(err, domain.ErrNoContact) {
		return "No contact details for this action"
	}
	return fmt.Sprintf("Error: %s", err)
}

// stars renders a five-star rating, rounding to the nearest whole star.
func stars(rating float64) string {
	n := min(max(int(rating+0.5), 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Record returns the displayed record, or nil.
func (v *View) Record() *domain.ServiceRecord {
	return v.record
}

// Notice returns the last contact notice.
func (v *View) Notice() string {
	return v.notice
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
