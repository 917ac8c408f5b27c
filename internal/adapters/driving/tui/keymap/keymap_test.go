package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ help.KeyMap = (*KeyMap)(nil)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"toggle", km.Toggle, []string{"enter"}},
		{"apply", km.Apply, []string{"a"}},
		{"help", km.Help, []string{"?"}},
		{"quit", km.Quit, []string{"q", "esc", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Toggle))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, km.Apply))
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 5)
	require.Len(t, km.FullHelp(), 2)
	assert.Len(t, km.FullHelp()[0], 3)
}

func TestKeyMap_DisableApply(t *testing.T) {
	km := DefaultKeyMap()
	km.DisableApply()

	assert.False(t, km.Apply.Enabled())
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, km.Apply))
}
