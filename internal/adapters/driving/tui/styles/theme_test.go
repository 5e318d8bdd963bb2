package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#667EEA"), theme.Primary)
	assert.Len(t, theme.Categories, 6)
}

func TestTheme_CategoryColor(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		category string
		want     lipgloss.Color
	}{
		{"Cleaning", lipgloss.Color("#4CAF50")},
		{"Technology", lipgloss.Color("#2196F3")},
		{"Home Services", lipgloss.Color("#FF9800")},
		{"Professional Services", lipgloss.Color("#9C27B0")},
		{"Health & Wellness", lipgloss.Color("#F44336")},
		{"Pet Services", lipgloss.Color("#FF5722")},
		{"Plumbing", theme.Primary},
		{"cleaning", theme.Primary},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, theme.CategoryColor(tt.category))
		})
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestStyles_CategoryBadge(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.CategoryBadge("Cleaning"), "Cleaning")
}
