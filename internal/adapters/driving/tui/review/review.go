// Package review provides the plan review view for the TUI.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcashie/fb-web-import/internal/adapters/driving/render"
	"github.com/rcashie/fb-web-import/internal/adapters/driving/tui/keymap"
	"github.com/rcashie/fb-web-import/internal/adapters/driving/tui/styles"
	"github.com/rcashie/fb-web-import/internal/core/domain"
)

// chrome is the number of lines used by the title, counts and footer.
const chrome = 6

// Model lists actionable plans and lets the operator approve them.
type Model struct {
	styles   *styles.Styles
	keys     *keymap.KeyMap
	help     help.Model
	all      []domain.Plan
	items    []domain.Plan
	expanded map[int]bool
	selected int
	apply    bool
	width    int
	height   int
	ready    bool
}

// New creates a review model for plans.
// Only New and Updated plans are listed.
func New(plans []domain.Plan, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var items []domain.Plan
	for i := range plans {
		if plans[i].IsActionable() {
			items = append(items, plans[i])
		}
	}

	keys := keymap.DefaultKeyMap()
	if len(items) == 0 {
		keys.DisableApply()
	}

	return &Model{
		styles:   s,
		keys:     keys,
		help:     help.New(),
		all:      plans,
		items:    items,
		expanded: make(map[int]bool),
		width:    80,
		height:   24,
	}
}

// Init initialises the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.items)-1 {
				m.selected++
			}
		case key.Matches(msg, m.keys.Toggle):
			if len(m.items) > 0 {
				m.expanded[m.selected] = !m.expanded[m.selected]
			}
		case key.Matches(msg, m.keys.Apply):
			m.apply = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the plan list.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Review plans"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(m.counts()))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(m.styles.Muted.Render("Nothing to apply."))
		b.WriteString("\n")
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		cursor := "  "
		header := render.PlanLines(m.items[i], m.styles.Plan)[0]
		if i == m.selected {
			cursor = m.styles.Selected.Render("> ")
		}
		b.WriteString(cursor + header)
		b.WriteString("\n")

		if m.expanded[i] {
			b.WriteString(m.details(m.items[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ApplyRequested reports whether the operator chose to apply.
func (m *Model) ApplyRequested() bool {
	return m.apply
}

// Plans returns every plan the model was created with.
func (m *Model) Plans() []domain.Plan {
	return m.all
}

// Selected returns the currently selected index.
func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) counts() string {
	counts := domain.CountByType(m.all)
	return fmt.Sprintf("%d new, %d updated, %d ignored, %d unchanged",
		counts[domain.ChangeNew], counts[domain.ChangeUpdated],
		counts[domain.ChangeIgnoredNew], counts[domain.ChangeNone])
}

func (m *Model) details(plan domain.Plan) string {
	if len(plan.Changes) == 0 {
		return m.styles.Detail.Render(m.styles.Muted.Render(plan.Reason))
	}
	lines := make([]string, 0, len(plan.Changes))
	for i := range plan.Changes {
		lines = append(lines, render.ChangeLine(plan.Changes[i], m.styles.Plan))
	}
	return m.styles.Detail.Render(strings.Join(lines, "\n"))
}

// window returns the range of items that fit on screen, keeping the
// selection visible.
func (m *Model) window() (int, int) {
	visible := len(m.items)
	if m.ready {
		visible = max(m.height-chrome, 1)
	}
	if visible >= len(m.items) {
		return 0, len(m.items)
	}
	start := max(m.selected-visible/2, 0)
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
		start = end - visible
	}
	return start, end
}
