package tui

import (
	"unicode"

	"github.com/bernd/ariabox/event"
	tea "github.com/charmbracelet/bubbletea"
)

type keySpec struct {
	name string
	mods event.Modifier
}

var keyTable = map[tea.KeyType]keySpec{
	tea.KeyUp:       {event.KeyArrowUp, event.None},
	tea.KeyDown:     {event.KeyArrowDown, event.None},
	tea.KeyLeft:     {event.KeyArrowLeft, event.None},
	tea.KeyRight:    {event.KeyArrowRight, event.None},
	tea.KeyHome:     {event.KeyHome, event.None},
	tea.KeyEnd:      {event.KeyEnd, event.None},
	tea.KeyPgUp:     {event.KeyPageUp, event.None},
	tea.KeyPgDown:   {event.KeyPageDown, event.None},
	tea.KeyEnter:    {event.KeyEnter, event.None},
	tea.KeyEsc:      {event.KeyEscape, event.None},
	tea.KeyTab:      {event.KeyTab, event.None},
	tea.KeyShiftTab: {event.KeyTab, event.Shift},
	tea.KeySpace:    {event.KeySpace, event.None},

	tea.KeyShiftUp:    {event.KeyArrowUp, event.Shift},
	tea.KeyShiftDown:  {event.KeyArrowDown, event.Shift},
	tea.KeyShiftLeft:  {event.KeyArrowLeft, event.Shift},
	tea.KeyShiftRight: {event.KeyArrowRight, event.Shift},
	tea.KeyShiftHome:  {event.KeyHome, event.Shift},
	tea.KeyShiftEnd:   {event.KeyEnd, event.Shift},

	tea.KeyCtrlUp:    {event.KeyArrowUp, event.Ctrl},
	tea.KeyCtrlDown:  {event.KeyArrowDown, event.Ctrl},
	tea.KeyCtrlLeft:  {event.KeyArrowLeft, event.Ctrl},
	tea.KeyCtrlRight: {event.KeyArrowRight, event.Ctrl},
	tea.KeyCtrlHome:  {event.KeyHome, event.Ctrl},
	tea.KeyCtrlEnd:   {event.KeyEnd, event.Ctrl},

	tea.KeyCtrlShiftUp:    {event.KeyArrowUp, event.Ctrl | event.Shift},
	tea.KeyCtrlShiftDown:  {event.KeyArrowDown, event.Ctrl | event.Shift},
	tea.KeyCtrlShiftLeft:  {event.KeyArrowLeft, event.Ctrl | event.Shift},
	tea.KeyCtrlShiftRight: {event.KeyArrowRight, event.Ctrl | event.Shift},
	tea.KeyCtrlShiftHome:  {event.KeyHome, event.Ctrl | event.Shift},
	tea.KeyCtrlShiftEnd:   {event.KeyEnd, event.Ctrl | event.Shift},

	// Terminals send ctrl+space as NUL.
	tea.KeyCtrlAt: {event.KeySpace, event.Ctrl},
	tea.KeyCtrlA:  {"a", event.Ctrl},
}

// KeyEvent translates a terminal key press into an engine key event. It
// reports false for keys the engine has no name for.
func KeyEvent(msg tea.KeyMsg) (event.Key, bool) {
	var k event.Key
	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return k, false
		}
		r := msg.Runes[0]
		k.Name = string(r)
		if unicode.IsUpper(r) {
			k.Mods |= event.Shift
		}
	} else {
		spec, ok := keyTable[msg.Type]
		if !ok {
			return k, false
		}
		k.Name, k.Mods = spec.name, spec.mods
	}
	if msg.Alt {
		k.Mods |= event.Alt
	}
	return k, true
}
