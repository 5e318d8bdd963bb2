// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back leaves search input, closes details or help.
	Back key.Binding

	// Search focuses the search input.
	Search key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens the selected provider's details.
	Select key.Binding

	// Favorite toggles the selected provider as a favourite.
	Favorite key.Binding

	// Category cycles the category filter.
	Category key.Binding

	// City cycles the city filter.
	City key.Binding

	// Sort cycles the sort mode.
	Sort key.Binding

	// ClearAll resets every filter.
	ClearAll key.Binding

	// ClearChip clears a single active filter by position.
	ClearChip key.Binding

	// Call phones the inspected provider.
	Call key.Binding

	// Email emails the inspected provider.
	Email key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favourite"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		City: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "city"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear all"),
		),
		ClearChip: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "clear filter"),
		),
		Call: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "call"),
		),
		Email: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "email"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// DirectoryHelp returns keybindings for the directory list.
func (k *KeyMap) DirectoryHelp() []key.Binding {
	return []key.Binding{k.Search, k.Select, k.Favorite, k.Sort, k.Help}
}

// DetailsHelp returns keybindings for the details overlay.
func (k *KeyMap) DetailsHelp() []key.Binding {
	return []key.Binding{k.Call, k.Email, k.Favorite, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Search},
		{k.Category, k.City, k.Sort, k.ClearAll, k.ClearChip},
		{k.Favorite, k.Call, k.Email},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
