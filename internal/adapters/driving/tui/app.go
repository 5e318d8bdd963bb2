package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/views/details"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/views/directory"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/views/loading"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// loadingView is shown until the catalog is ready.
	loadingView *loading.View

	// directoryView is the filterable provider list.
	directoryView *directory.View

	// detailsView is the overlay for the inspected provider.
	detailsView *details.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		loadingView:   loading.NewView(s),
		directoryView: directory.NewView(s, km, ports.Catalog, ports.Directory),
		detailsView:   details.NewView(s, km, ports.Directory, ports.Contact),
		currentView:   messages.ViewLoading,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.detailsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It starts the spinner and the catalog load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("svcdir - Service Directory"),
		a.loadingView.Init(),
		a.loadCatalog(),
	)
}

// loadCatalog runs the simulated catalog fetch off the update loop.
func (a *App) loadCatalog() tea.Cmd {
	ctx := a.ctx
	catalog := a.ports.Catalog
	return func() tea.Msg {
		records, err := catalog.Load(ctx)
		return messages.CatalogLoaded{Count: len(records), Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewLoading:
			a.loadingView, cmd = a.loadingView.Update(msg)
		case messages.ViewDirectory:
			a.directoryView, cmd = a.directoryView.Update(msg)
		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
		case messages.ViewHelp:
			k := msg.String()
			if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) || keymap.Matches(k, a.keymap.Quit) {
				return a.switchTo(messages.ViewDirectory), nil
			}
		}
		return a, cmd

	case messages.CatalogLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.loadingView, cmd = a.loadingView.Update(msg)
			return a, cmd
		}
		a.ports.Directory.Refresh()
		return a.switchTo(messages.ViewDirectory), nil

	case messages.ViewChanged:
		return a.switchTo(msg.View), nil

	case messages.ContactStarted:
		a.detailsView, cmd = a.detailsView.Update(msg)
		return a, cmd

	case messages.FavoriteToggled:
		a.directoryView.Sync()
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewDirectory:
			a.directoryView, cmd = a.directoryView.Update(msg)
		case messages.ViewDetails:
			a.detailsView, cmd = a.detailsView.Update(msg)
		case messages.ViewLoading, messages.ViewHelp:
			// Shown when the user returns to the list
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Spinner ticks and cursor blinks
	switch a.currentView {
	case messages.ViewLoading:
		a.loadingView, cmd = a.loadingView.Update(msg)
	case messages.ViewDirectory:
		a.directoryView, cmd = a.directoryView.Update(msg)
	case messages.ViewDetails, messages.ViewHelp:
	}

	return a, cmd
}

// switchTo activates a view, refreshing it from the session first.
func (a *App) switchTo(view messages.ViewType) *App {
	switch view {
	case messages.ViewDirectory:
		a.directoryView.Sync()
	case messages.ViewDetails:
		a.detailsView.Refresh()
	case messages.ViewLoading, messages.ViewHelp:
	}
	a.currentView = view
	return a
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLoading:
		return a.loadingView.View()
	case messages.ViewDirectory:
		return a.directoryView.View()
	case messages.ViewDetails:
		return a.detailsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.loadingView.View()
	}
}

// viewHelp renders every key binding grouped by purpose.
func (a *App) viewHelp() string {
	titles := []string{"Navigation", "Filters", "Provider", "General"}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for i, group := range a.keymap.FullHelp() {
		if i < len(titles) {
			b.WriteString(a.styles.Subtitle.Render(titles[i] + ":"))
			b.WriteString("\n")
		}
		for _, kb := range group {
			h := kb.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] back to list"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions and resizes every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.loadingView.SetDimensions(width, height)
	a.directoryView.SetDimensions(width, height)
	a.detailsView.SetDimensions(width, height)
}
