package config

import (
	"fmt"
	"strings"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/listbox"
	"github.com/bernd/ariabox/signal"
	"github.com/bernd/ariabox/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var kindDescriptions = map[string]string{
	KindListbox: "single or multi-select list of options",
	KindRadio:   "exclusive choice, selection follows focus",
	KindToolbar: "buttons and a radio group on one tab stop",
	KindMenuBar: "horizontal bar of menus with submenus",
	KindMenu:    "menu button opening a popup menu",
	KindTabs:    "tablist switching between panels",
}

// noteLines is the instruction note plus the blank line below it.
const noteLines = 2

// kindElement is the row a kind is drawn on.
type kindElement struct {
	kind string
}

func (*kindElement) Focus() {}

// kindScreen implements tui.Screen as a multi-select listbox of widget
// kinds for the starter widgets file.
type kindScreen struct {
	*tui.Viewport
	box      *listbox.Listbox[string]
	pointer  *tui.PointerTracker
	offsetY  int
	selected []string
	done     bool
}

func newKindScreen(preChecked []string) *kindScreen {
	items := make([]*list.Item[string], len(Kinds))
	for i, k := range Kinds {
		items[i] = &list.Item[string]{ID: k, Element: &kindElement{kind: k}, Value: k, SearchTerm: k}
	}
	in := list.NewInputs(items...)
	in.Multi = signal.Const(true)
	in.Value = signal.New(append([]string(nil), preChecked...))

	vp, _ := tui.NewViewport(1, 3)
	s := &kindScreen{
		Viewport: vp,
		box:      listbox.New(listbox.Inputs[string]{Inputs: in}),
	}
	s.box.SetDefaultState()
	s.pointer = tui.NewPointerTracker(s.hit, tui.DefaultMotionRate, 1)
	s.follow()
	return s
}

func (s *kindScreen) follow() {
	s.Follow(s.box.ActiveIndex(), len(s.box.Items()))
}

func (s *kindScreen) hit(x, y int) any {
	row := y - s.offsetY + s.Offset
	items := s.box.Items()
	if y < s.offsetY || row >= len(items) {
		return nil
	}
	return items[row].Element
}

// Selected returns the chosen kinds in display order.
func (s *kindScreen) Selected() []string {
	var out []string
	for _, it := range s.box.SelectedItems() {
		out = append(out, it.Value)
	}
	return out
}

func (s *kindScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.selected = s.Selected()
			s.done = true
			return s, tea.Quit
		case "esc", "ctrl+c":
			return s, tea.Quit
		}
		if e, ok := tui.KeyEvent(msg); ok && s.box.OnKeydown(e) {
			s.follow()
		}

	case tea.MouseMsg:
		for _, e := range s.pointer.Translate(msg, w.Now()) {
			if e.Kind == event.Down {
				s.box.OnPointerdown(e)
			}
		}
		s.follow()

	case tea.WindowSizeMsg:
		s.offsetY = w.ContentTop() + noteLines
		s.VpHeight = max(w.VpHeight()-noteLines, 1)
		s.follow()
	}

	return s, nil
}

func (s *kindScreen) View(w *tui.Window) string {
	note := lipgloss.NewStyle().Foreground(tui.ColorField).
		Render("Pick the widgets for the starter file. Space to toggle, Tab to write.")

	var content []string
	items := s.box.Items()
	start, end := s.Range()
	for i := start; i < end; i++ {
		content = append(content, s.renderLine(items[i]))
	}
	for len(content) < s.VpHeight {
		content = append(content, "")
	}

	return note + "\n\n" + strings.Join(content, "\n")
}

func (s *kindScreen) renderLine(it *list.Item[string]) string {
	base, marker := tui.LineStyle(it == s.box.ActiveItem())
	sp := base.Render(" ")

	checkbox := base.Foreground(tui.ColorField).Render("[ ]")
	if s.box.IsSelected(it) {
		checkbox = base.Foreground(tui.ColorCyan).Render("[x]")
	}
	name := base.Foreground(tui.ColorCyan).Render(fmt.Sprintf("%-10s", it.Value))
	desc := base.Foreground(tui.ColorField).Render(kindDescriptions[it.Value])
	return marker + checkbox + sp + name + sp + desc
}

func (s *kindScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	keys := []tui.FooterKey{
		{Key: "space", Desc: "toggle"},
		{Key: "tab", Desc: "write"},
	}
	return append(keys, s.Viewport.FooterKeys()...)
}

func (s *kindScreen) FooterStatus(w *tui.Window) string {
	return lipgloss.NewStyle().Foreground(tui.ColorField).
		Render(fmt.Sprintf("%d selected", len(s.box.Value())))
}

// runKindSelectorTUI runs the full-screen kind selector and returns the
// chosen kinds.
func runKindSelectorTUI(path string, preChecked []string) ([]string, error) {
	s := newKindScreen(preChecked)
	header := &tui.HeaderInfo{Source: path, Widget: "init"}
	w := tui.NewWindow(header, s)
	p := tea.NewProgram(w, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("kind selector: %w", err)
	}
	if !s.done {
		return nil, fmt.Errorf("no widgets selected")
	}
	return s.selected, nil
}

// RunInit asks which kinds to include and writes the starter file.
func RunInit(path string) ([]string, error) {
	kinds, err := runKindSelectorTUI(path, Kinds)
	if err != nil {
		return nil, err
	}
	return kinds, WriteStarter(path, kinds)
}
