// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/render"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// New marks documents and values to be created.
	New lipgloss.Color

	// Updated marks documents and values to be changed.
	Updated lipgloss.Color

	// Removed marks values to be dropped.
	Removed lipgloss.Color

	// Ignored marks proposals that cannot be applied.
	Ignored lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		New:        render.ColorNew,
		Updated:    render.ColorUpdated,
		Removed:    render.ColorRemoved,
		Ignored:    render.ColorIgnored,
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the highlighted plan.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Detail style for the expanded change list.
	Detail lipgloss.Style

	// Plan styles for plan headers and change lines.
	Plan *render.Styles
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Removed),

		Detail: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Plan: &render.Styles{
			New:     lipgloss.NewStyle().Foreground(theme.New),
			Updated: lipgloss.NewStyle().Foreground(theme.Updated),
			Removed: lipgloss.NewStyle().Foreground(theme.Removed),
			Ignored: lipgloss.NewStyle().Foreground(theme.Ignored),
			Warning: lipgloss.NewStyle().Foreground(render.ColorWarning),
			Bold:    lipgloss.NewStyle().Bold(true),
		},
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
