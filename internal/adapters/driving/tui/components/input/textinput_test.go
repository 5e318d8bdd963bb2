package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/svcdir/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.False(t, input.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	assert.NotNil(t, NewSearchInput(nil).Init())
}

func TestSearchInput_Update_ReportsChange(t *testing.T) {
	input := NewSearchInput(nil)
	input.Focus()

	updated, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.Equal(t, input, updated)
	assert.True(t, changed)
	assert.Equal(t, "a", input.Value())
}

func TestSearchInput_Update_BlurredIgnoresKeys(t *testing.T) {
	input := NewSearchInput(nil)

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	assert.False(t, changed)
	assert.Empty(t, input.Value())
}

func TestSearchInput_KeepsWhitespace(t *testing.T) {
	input := NewSearchInput(nil)
	input.Focus()

	input.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, " ", input.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Focus()
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestSearchInput_SetValueAndReset(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("clean")
	assert.Equal(t, "clean", input.Value())

	input.Reset()
	assert.Empty(t, input.Value())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 86, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	assert.Contains(t, input.View(), "Search:")
}
