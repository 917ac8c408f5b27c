package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette colours shared with the review TUI.
var (
	ColorNew     = lipgloss.Color("#A6E3A1") // Green
	ColorUpdated = lipgloss.Color("#89B4FA") // Blue
	ColorRemoved = lipgloss.Color("#F38BA8") // Red
	ColorIgnored = lipgloss.Color("#6C7086") // Gray
	ColorWarning = lipgloss.Color("#F9E2AF") // Yellow
)

// Styles holds the styles used to print plans.
type Styles struct {
	New     lipgloss.Style
	Updated lipgloss.Style
	Removed lipgloss.Style
	Ignored lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
}

// ColorStyles returns styles that colour output for the given writer.
func ColorStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		New:     r.NewStyle().Foreground(ColorNew),
		Updated: r.NewStyle().Foreground(ColorUpdated),
		Removed: r.NewStyle().Foreground(ColorRemoved),
		Ignored: r.NewStyle().Foreground(ColorIgnored),
		Warning: r.NewStyle().Foreground(ColorWarning),
		Bold:    r.NewStyle().Bold(true),
	}
}

// PlainStyles returns styles that leave text unchanged.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		New:     plain,
		Updated: plain,
		Removed: plain,
		Ignored: plain,
		Warning: plain,
		Bold:    plain,
	}
}

// StylesFor picks coloured styles when w is a terminal.
func StylesFor(w io.Writer) *Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ColorStyles(w)
	}
	return PlainStyles()
}
