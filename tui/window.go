package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Hover debounce needs a tick well below the default hover delay.
const tickInterval = 50 * time.Millisecond

// TickMsg is sent on every tick interval with the time it fired. Screens
// receive it after Window advances the frame counter and expires the flash.
type TickMsg struct {
	Now time.Time
}

// Window is the top-level tea.Model. It owns the shared frame (header,
// footer, sizing, tick, flash and advisories) and delegates content to the
// active Screen.
type Window struct {
	header     *HeaderInfo
	screen     Screen
	width      int
	height     int
	vpHeight   int
	tickFrame  int
	flash      string
	flashExp   time.Time
	advisories []string
	err        error
	now        func() time.Time
}

func NewWindow(header *HeaderInfo, screen Screen) *Window {
	return &Window{
		header: header,
		screen: screen,
		now:    time.Now,
	}
}

func (w *Window) Width() int           { return w.width }
func (w *Window) Height() int          { return w.height }
func (w *Window) VpHeight() int        { return w.vpHeight }
func (w *Window) TickFrame() int       { return w.tickFrame }
func (w *Window) Flash() string        { return w.flash }
func (w *Window) Err() error           { return w.err }
func (w *Window) Advisories() []string { return w.advisories }
func (w *Window) Screen() Screen       { return w.screen }

// Now is the window clock. Screens use it to time pointer events.
func (w *Window) Now() time.Time { return w.now() }

// SetClock replaces the window clock.
func (w *Window) SetClock(now func() time.Time) { w.now = now }

// IntervalElapsed returns true if the given interval has elapsed since the last tick.
func (w *Window) IntervalElapsed(interval time.Duration) bool {
	n := int(interval / tickInterval)
	if n <= 1 {
		return true
	}
	return w.tickFrame%n == 0
}

func (w *Window) SetFlash(msg string) {
	w.flash = msg
	w.flashExp = w.now().Add(2 * time.Second)
}
func (w *Window) SetHeader(info *HeaderInfo) { w.header = info }
func (w *Window) SetError(err error)         { w.err = err }
func (w *Window) ClearError()                { w.err = nil }

// SetAdvisories replaces the accessibility advisories shown in the footer.
func (w *Window) SetAdvisories(msgs []string) { w.advisories = msgs }

func (w *Window) headerHeight() int {
	h := RenderHeader(w.header, w.width, w.height)
	return strings.Count(h, "\n") + 1
}

// ContentTop is the terminal row where screen content starts.
func (w *Window) ContentTop() int { return w.headerHeight() }

func doTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Now: t}
	})
}

func (w *Window) Init() tea.Cmd {
	return tea.Batch(doTick(), tea.WindowSize())
}

func (w *Window) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		headerH := w.headerHeight()
		w.vpHeight = max(w.height-headerH-2, 1) // 1 separator after header + 1 footer line

	case TickMsg:
		w.tickFrame++
		if w.flash != "" && msg.Now.After(w.flashExp) {
			w.flash = ""
		}
		cmds = append(cmds, doTick())
	}

	newScreen, cmd := w.screen.Update(msg, w)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if newScreen != w.screen {
		w.screen = newScreen
		// The new screen sizes its viewport from the current dimensions.
		sizeMsg := tea.WindowSizeMsg{Width: w.width, Height: w.height}
		next, cmd2 := w.screen.Update(sizeMsg, w)
		if cmd2 != nil {
			cmds = append(cmds, cmd2)
		}
		w.screen = next
	}

	return w, tea.Batch(cmds...)
}

func (w *Window) View() string {
	if w.width == 0 {
		return "Starting..."
	}

	header := RenderHeader(w.header, w.width, w.height)
	content := w.screen.View(w)
	footer := w.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (w *Window) windowStatus() string {
	switch {
	case w.err != nil:
		return lipgloss.NewStyle().Foreground(ColorError).Render(fmt.Sprintf("error: %v", w.err))
	case w.flash != "" && w.now().Before(w.flashExp):
		return lipgloss.NewStyle().Foreground(ColorOrange).Render(w.flash)
	case len(w.advisories) == 1:
		return lipgloss.NewStyle().Foreground(ColorPurple).Render("1 advisory")
	case len(w.advisories) > 1:
		return lipgloss.NewStyle().Foreground(ColorPurple).Render(fmt.Sprintf("%d advisories", len(w.advisories)))
	}
	return ""
}

func (w *Window) renderFooter() string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	descStyle := lipgloss.NewStyle().Foreground(ColorField)

	screenStatus := w.screen.FooterStatus(w)
	windowStatus := w.windowStatus()

	var left string
	if screenStatus != "" && windowStatus != "" {
		left = screenStatus + " " + windowStatus
	} else {
		left = screenStatus + windowStatus
	}

	var keys []string
	for _, fk := range w.screen.FooterKeys(w) {
		keys = append(keys, keyStyle.Render(fk.Key)+" "+descStyle.Render(fk.Desc))
	}
	keys = append(keys, keyStyle.Render("ctrl+c")+" "+descStyle.Render("quit"))

	right := strings.Join(keys, "  ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	gap := max(w.width-leftWidth-rightWidth, 2)

	return left + strings.Repeat(" ", gap) + right
}
