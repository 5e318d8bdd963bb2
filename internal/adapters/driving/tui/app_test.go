package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/svcdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

func newTestApp(t *testing.T) (*App, *Ports, *MockContactService) {
	t.Helper()
	ports, contact := newTestPorts(memory.NewCatalogSource(testRecords()...))
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app, ports, contact
}

// loadedApp runs the catalog load and delivers its result.
func loadedApp(t *testing.T) (*App, *Ports, *MockContactService) {
	t.Helper()
	app, ports, contact := newTestApp(t)
	app.Update(app.loadCatalog()())
	require.Equal(t, messages.ViewDirectory, app.CurrentView())
	return app, ports, contact
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send delivers a key and then any message its command produces.
func send(app *App, k string) {
	_, cmd := app.Update(keyMsg(k))
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		app.Update(msg)
	}
}

func TestNewApp_Success(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Equal(t, messages.ViewLoading, app.CurrentView())
	assert.NotNil(t, app.Init())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	require.ErrorIs(t, err, ErrMissingCatalogService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _, _ := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
}

func TestApp_View_NotReady(t *testing.T) {
	ports, _ := newTestPorts(memory.NewCatalogSource())
	app, err := NewApp(ports)
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Loading services...")
}

func TestApp_CatalogLoaded(t *testing.T) {
	app, ports, _ := loadedApp(t)

	assert.True(t, ports.Catalog.Ready())
	assert.Len(t, ports.Directory.Results(), 2)
	assert.Contains(t, app.View(), "2 services found")
}

func TestApp_CatalogLoadFailed(t *testing.T) {
	source := memory.NewCatalogSource().FailWith(errors.New("disk on fire"))
	ports, _ := newTestPorts(source)
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)

	app.Update(app.loadCatalog()())

	assert.Equal(t, messages.ViewLoading, app.CurrentView())
	require.Error(t, app.Err())
	assert.Contains(t, app.View(), "disk on fire")
}

func TestApp_CatalogLoadCancelled(t *testing.T) {
	app, _, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app.WithContext(ctx)

	msg := app.loadCatalog()()

	loaded, ok := msg.(messages.CatalogLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, context.Canceled)
}

func TestApp_InspectAndClose(t *testing.T) {
	app, ports, _ := loadedApp(t)

	send(app, "enter")

	assert.Equal(t, messages.ViewDetails, app.CurrentView())
	rec, ok := ports.Directory.Inspected()
	require.True(t, ok)
	assert.Equal(t, domain.RecordID("1"), rec.ID)
	assert.Contains(t, app.View(), "Sparkle Clean")

	send(app, "esc")

	assert.Equal(t, messages.ViewDirectory, app.CurrentView())
	_, ok = ports.Directory.Inspected()
	assert.False(t, ok)
}

func TestApp_FavoriteFromDetailsShowsInList(t *testing.T) {
	app, ports, _ := loadedApp(t)
	send(app, "enter")

	send(app, "f")

	assert.True(t, ports.Directory.IsFavorite("1"))
	send(app, "esc")
	assert.Contains(t, app.View(), "♥ 1 favourites")
}

func TestApp_ContactFromDetails(t *testing.T) {
	app, _, contact := loadedApp(t)
	send(app, "enter")

	send(app, "p")

	assert.Equal(t, []string{"555-0101"}, contact.Calls)
	assert.Contains(t, app.View(), "Calling 555-0101")
}

func TestApp_Help(t *testing.T) {
	app, _, _ := loadedApp(t)

	send(app, "?")
	require.Equal(t, messages.ViewHelp, app.CurrentView())
	out := app.View()
	assert.Contains(t, out, "Filters:")
	assert.Contains(t, out, "favourite")

	send(app, "esc")
	assert.Equal(t, messages.ViewDirectory, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _ := loadedApp(t)

	app.Update(messages.ErrorOccurred{Err: assert.AnError})

	assert.ErrorIs(t, app.Err(), assert.AnError)
	assert.Contains(t, app.View(), assert.AnError.Error())
}

func TestApp_Quit(t *testing.T) {
	app, _, _ := loadedApp(t)

	_, cmd := app.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = app.Update(messages.Quit{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitKeyFromList(t *testing.T) {
	app, _, _ := loadedApp(t)

	_, cmd := app.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}
