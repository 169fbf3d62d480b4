package cmd

import (
	"fmt"
	"strings"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/tabs"
	"github.com/bernd/ariabox/tui"
	"github.com/bernd/ariabox/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// tabBarLines is the tab bar plus the blank line below it.
const tabBarLines = 2

type tabElement struct {
	name string
}

func (*tabElement) Focus() {}

// demoScreen shows one widget at a time under a tab bar. The tab bar is
// itself a tablist, switched with tab and shift+tab or the mouse.
type demoScreen struct {
	source  string
	tablist *tabs.Tablist
	screens []*widgetScreen
}

func newDemoScreen(source string, widgets []widget.Widget, minBuffer, maxBuffer int) (*demoScreen, error) {
	d := &demoScreen{source: source}
	items := make([]*list.Item[string], len(widgets))
	for i, w := range widgets {
		items[i] = &list.Item[string]{
			ID:         w.Name(),
			Element:    &tabElement{name: w.Name()},
			Value:      w.Name(),
			SearchTerm: w.Label(),
		}
		s, err := newWidgetScreen(w, minBuffer, maxBuffer)
		if err != nil {
			return nil, err
		}
		d.screens = append(d.screens, s)
	}
	d.tablist = tabs.New(tabs.NewInputs(items...))
	d.tablist.SetDefaultState()
	return d, nil
}

func (d *demoScreen) activeIndex() int {
	return max(d.tablist.IndexOf(d.tablist.SelectedTab()), 0)
}

func (d *demoScreen) active() *widgetScreen { return d.screens[d.activeIndex()] }

func (d *demoScreen) header() *tui.HeaderInfo {
	return &tui.HeaderInfo{Source: d.source, Widget: d.active().widget.Name()}
}

// switched refreshes the window after the active widget changed.
func (d *demoScreen) switched(w *tui.Window) {
	w.SetHeader(d.header())
	w.SetAdvisories(d.active().widget.Validate())
	tui.Debug("showing %s", d.active().widget.Name())
}

func (d *demoScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return d, tea.Quit
		case "tab":
			d.tablist.Next(list.NavOptions{SelectOne: true})
			d.switched(w)
			return d, nil
		case "shift+tab":
			d.tablist.Prev(list.NavOptions{SelectOne: true})
			d.switched(w)
			return d, nil
		}

	case tea.MouseMsg:
		if msg.Y == w.ContentTop() {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				if el := d.tabAt(msg.X); el != nil && d.tablist.OnPointerdown(event.Pointer{Kind: event.Down, Target: el}) {
					d.switched(w)
				}
			}
			return d, nil
		}

	case tea.WindowSizeMsg:
		for _, s := range d.screens {
			s.Update(msg, w)
		}
		w.SetAdvisories(d.active().widget.Validate())
		return d, nil
	}

	_, cmd := d.active().Update(msg, w)
	return d, cmd
}

// tabAt returns the tab drawn at column x of the tab bar.
func (d *demoScreen) tabAt(x int) *tabElement {
	col := 0
	for _, it := range d.tablist.Items() {
		width := ansi.StringWidth(it.Value) + 2
		if x >= col && x < col+width {
			return it.Element.(*tabElement)
		}
		col += width + 2
	}
	return nil
}

func (d *demoScreen) View(w *tui.Window) string {
	return d.renderTabBar() + "\n\n" + d.active().View(w)
}

func (d *demoScreen) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().Foreground(tui.ColorCyan).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(tui.ColorField)

	selected := d.tablist.SelectedTab()
	var parts []string
	for _, it := range d.tablist.Items() {
		if it == selected {
			parts = append(parts, activeStyle.Render("["+it.Value+"]"))
		} else {
			parts = append(parts, inactiveStyle.Render(" "+it.Value+" "))
		}
	}
	return strings.Join(parts, "  ")
}

func (d *demoScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	keys := d.active().FooterKeys(w)
	if len(d.screens) > 1 {
		keys = append(keys, tui.FooterKey{Key: "tab", Desc: "next widget"})
	}
	return keys
}

func (d *demoScreen) FooterStatus(w *tui.Window) string {
	return d.active().FooterStatus(w)
}

// widgetScreen draws one widget as rows and feeds it translated input.
type widgetScreen struct {
	*tui.Viewport
	widget  widget.Widget
	pointer *tui.PointerTracker
	rowsTop int
}

func newWidgetScreen(w widget.Widget, minBuffer, maxBuffer int) (*widgetScreen, error) {
	vp, err := tui.NewViewport(minBuffer, maxBuffer)
	if err != nil {
		return nil, err
	}
	s := &widgetScreen{Viewport: vp, widget: w}
	s.pointer = tui.NewPointerTracker(s.hit, tui.DefaultMotionRate, 1)
	s.follow()
	return s, nil
}

func (s *widgetScreen) hit(x, y int) any {
	rows := s.widget.Rows()
	i := y - s.rowsTop + s.Offset
	if y < s.rowsTop || i >= len(rows) || rows[i].Element == nil {
		return nil
	}
	return rows[i].Element
}

// follow keeps the focused row, or failing that the active one, in view.
func (s *widgetScreen) follow() {
	rows := s.widget.Rows()
	pos := -1
	for i, r := range rows {
		if r.Focused {
			pos = i
			break
		}
		if r.Active && !r.Header && pos < 0 {
			pos = i
		}
	}
	s.Follow(pos, len(rows))
}

func (s *widgetScreen) panelLines() int {
	if _, ok := s.widget.(widget.Paneled); ok {
		return 2
	}
	return 0
}

func (s *widgetScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	changed := false
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if e, ok := tui.KeyEvent(msg); ok {
			changed = s.widget.OnKey(e)
			tui.Debug("key %s handled=%t", e, changed)
		}

	case tea.MouseMsg:
		for _, e := range s.pointer.Translate(msg, w.Now()) {
			if s.widget.OnPointer(e) {
				changed = true
			}
		}

	case tui.TickMsg:
		changed = s.widget.Tick(msg.Now)

	case tea.WindowSizeMsg:
		s.rowsTop = w.ContentTop() + tabBarLines
		s.VpHeight = max(w.VpHeight()-tabBarLines-s.panelLines(), 1)
		changed = true
	}

	if changed {
		s.follow()
		w.SetAdvisories(s.widget.Validate())
	}
	return s, nil
}

func (s *widgetScreen) View(w *tui.Window) string {
	rows := s.widget.Rows()
	var lines []string
	start, end := s.Range()
	for i := start; i < min(end, len(rows)); i++ {
		lines = append(lines, s.renderRow(rows[i]))
	}
	for len(lines) < s.VpHeight {
		lines = append(lines, "")
	}
	if p, ok := s.widget.(widget.Paneled); ok {
		panel := lipgloss.NewStyle().Foreground(tui.ColorOrange).Render("panel: " + p.Panel())
		lines = append(lines, "", panel)
	}
	return strings.Join(lines, "\n")
}

// glyph marks selection the way the widget kind shows it.
func (s *widgetScreen) glyph(r widget.Row) string {
	kind := s.widget.Kind()
	switch {
	case r.Header:
		return "──"
	case kind == config.KindRadio, kind == config.KindToolbar && r.Depth > 0:
		if r.Selected {
			return "(•)"
		}
		return "( )"
	case kind == config.KindListbox:
		if r.Selected {
			return "[x]"
		}
		return "[ ]"
	case kind == config.KindTabs:
		if r.Selected {
			return "▌"
		}
		return " "
	}
	return ""
}

func (s *widgetScreen) renderRow(r widget.Row) string {
	base, marker := tui.LineStyle(r.Active && !r.Header)
	sp := base.Render(" ")

	label := base.Foreground(tui.ColorField)
	switch {
	case r.Disabled:
		label = base.Faint(true)
	case r.Focused:
		label = base.Foreground(tui.ColorCyan).Bold(true)
	}

	line := marker + base.Render(strings.Repeat("  ", r.Depth))
	if g := s.glyph(r); g != "" {
		line += base.Foreground(tui.ColorCyan).Render(g) + sp
	}
	line += label.Render(r.Label)
	if r.HasPopup {
		arrow := "▸"
		if r.Expanded {
			arrow = "▾"
		}
		line += sp + base.Foreground(tui.ColorField).Render(arrow)
	}
	return line
}

func (s *widgetScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	move := tui.FooterKey{Key: "↑/↓", Desc: "move"}
	if s.widget.Horizontal() {
		move = tui.FooterKey{Key: "←/→", Desc: "move"}
	}
	return []tui.FooterKey{move, {Key: "space/enter", Desc: "select"}}
}

func (s *widgetScreen) FooterStatus(w *tui.Window) string {
	style := lipgloss.NewStyle().Foreground(tui.ColorField)
	if _, ok := s.widget.Deadline(); ok {
		return style.Render("hover pending")
	}
	if v := s.widget.Value(); len(v) > 0 {
		return style.Render(fmt.Sprintf("value: %s", strings.Join(v, ", ")))
	}
	return ""
}
