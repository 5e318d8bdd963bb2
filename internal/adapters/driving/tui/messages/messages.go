// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// CatalogLoaded is sent once the catalog has finished loading.
type CatalogLoaded struct {
	Count int
	Err   error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLoading is shown while the catalog loads.
	ViewLoading ViewType = iota
	// ViewDirectory is the filterable list of providers.
	ViewDirectory
	// ViewDetails is the detail overlay for the inspected provider.
	ViewDetails
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewDirectory:
		return "directory"
	case ViewDetails:
		return "details"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ContactAction names a contact hand-off.
type ContactAction string

const (
	ContactCall  ContactAction = "call"
	ContactEmail ContactAction = "email"
)

// ContactStarted reports the outcome of a contact hand-off.
type ContactStarted struct {
	Action ContactAction
	Target string
	Err    error
}

// FavoriteToggled is sent after a favourite is added or removed.
type FavoriteToggled struct {
	ID       domain.RecordID
	Favorite bool
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
