package config

import (
	"strings"
	"testing"

	"github.com/bernd/ariabox/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeKindTestSetup(preChecked []string) (*kindScreen, *tui.Window) {
	s := newKindScreen(preChecked)
	w := tui.NewWindow(&tui.HeaderInfo{Source: "widgets.yaml", Widget: "init"}, s)
	w.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return s, w
}

func TestKindScreen_InitialState(t *testing.T) {
	s, _ := makeKindTestSetup([]string{KindTabs, KindRadio})
	assert.Equal(t, []string{KindRadio, KindTabs}, s.Selected())
	assert.Equal(t, 1, s.box.ActiveIndex())
	assert.Equal(t, 1, s.Pos)
}

func TestKindScreen_Toggle(t *testing.T) {
	s, w := makeKindTestSetup(nil)
	assert.Equal(t, 0, s.box.ActiveIndex())

	w.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{KindListbox}, s.Selected())

	w.Update(tea.KeyMsg{Type: tea.KeyDown})
	w.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, s.Pos)
	w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{KindListbox, KindToolbar}, s.Selected())
}

func TestKindScreen_Typeahead(t *testing.T) {
	s, w := makeKindTestSetup(nil)
	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	assert.Equal(t, KindToolbar, s.box.ActiveItem().Value)
}

func TestKindScreen_Confirm(t *testing.T) {
	s, w := makeKindTestSetup([]string{KindMenu})
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.True(t, s.done)
	assert.Equal(t, []string{KindMenu}, s.selected)
}

func TestKindScreen_Quit(t *testing.T) {
	s, w := makeKindTestSetup(Kinds)
	w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, s.done)
	assert.Nil(t, s.selected)
}

func TestKindScreen_MouseToggles(t *testing.T) {
	s, w := makeKindTestSetup(nil)
	y := w.ContentTop() + noteLines + 3
	w.Update(tea.MouseMsg{X: 4, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []string{Kinds[3]}, s.Selected())
	assert.Equal(t, 3, s.box.ActiveIndex())

	w.Update(tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, []string{Kinds[3]}, s.Selected())
}

func TestKindScreen_View(t *testing.T) {
	lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)

	s, w := makeKindTestSetup([]string{KindListbox})
	view := s.View(w)
	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), noteLines+len(Kinds)-1)
	assert.Contains(t, lines[0], "Space to toggle")
	assert.True(t, strings.HasPrefix(lines[noteLines], "▸ [x] listbox"))
	assert.True(t, strings.HasPrefix(lines[noteLines+1], "  [ ] radio"))
	assert.Equal(t, "1 selected", s.FooterStatus(w))
}
