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
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.New))
	assert.NotEmpty(t, string(theme.Updated))
	assert.NotEmpty(t, string(theme.Removed))
	assert.NotEmpty(t, string(theme.Ignored))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_ChangeColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.New, theme.Updated, theme.Removed, theme.Ignored} {
		assert.False(t, seen[c], "duplicate colour: %s", c)
		seen[c] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
	require.NotNil(t, styles.Plan)
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	require.NotNil(t, styles.Theme())
	assert.Equal(t, DefaultTheme().Primary, styles.Theme().Primary)
}

func TestStyles_RenderKeepsText(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Title.Render("Review"), "Review")
	assert.Contains(t, styles.Plan.New.Render("[+] sfv"), "[+] sfv")
}
