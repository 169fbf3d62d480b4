package tui

import (
	"testing"

	"github.com/bernd/ariabox/event"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want event.Key
	}{
		{"arrow", tea.KeyMsg{Type: tea.KeyDown}, event.Key{Name: event.KeyArrowDown}},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftUp}, event.Key{Name: event.KeyArrowUp, Mods: event.Shift}},
		{"ctrl shift end", tea.KeyMsg{Type: tea.KeyCtrlShiftEnd}, event.Key{Name: event.KeyEnd, Mods: event.Ctrl | event.Shift}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, event.Key{Name: event.KeyEnter}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, event.Key{Name: event.KeySpace}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, event.Key{Name: event.KeyTab, Mods: event.Shift}},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, event.Key{Name: "a", Mods: event.Ctrl}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, event.Key{Name: "b"}},
		{"upper rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'B'}}, event.Key{Name: "B", Mods: event.Shift}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, event.Key{Name: "x", Mods: event.Alt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyEvent(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyEvent_Unknown(t *testing.T) {
	_, ok := KeyEvent(tea.KeyMsg{Type: tea.KeyF5})
	assert.False(t, ok)

	_, ok = KeyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("paste")})
	assert.False(t, ok)
}
