package menu

import (
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
)

// Trigger is a button that opens a menu.
type Trigger struct {
	Label   string
	Element list.Element

	tree *Tree
	menu MenuID
}

func (tr *Trigger) Menu() MenuID { return tr.menu }

// Expanded reports whether the trigger's menu is open.
func (tr *Trigger) Expanded() bool {
	m := tr.tree.Menu(tr.menu)
	return m != nil && m.open
}

// Open shows the menu, entering it on the first or last item as opts say.
func (tr *Trigger) Open(opts OpenOptions) {
	m := tr.tree.Menu(tr.menu)
	if m == nil {
		return
	}
	m.open = true
	tr.tree.enter(m, opts)
}

func (tr *Trigger) Close() {
	tr.tree.Close(tr.tree.Menu(tr.menu), CloseOptions{Refocus: true})
}

func (tr *Trigger) Toggle() {
	if tr.Expanded() {
		tr.Close()
		return
	}
	tr.Open(OpenOptions{First: true})
}

func (tr *Trigger) focus() {
	if tr.Element != nil {
		tr.Element.Focus()
	}
	tr.tree.focusMenu = NoMenu
	tr.tree.focusTrigger = tr
}

func (tr *Trigger) Keydown() *event.KeyboardManager {
	first := func(event.Key) { tr.Open(OpenOptions{First: true}) }
	return event.NewKeyboard().
		On(event.KeyEnter, first).
		On(event.KeySpace, first).
		On(event.KeyArrowDown, first).
		On(event.KeyArrowUp, func(event.Key) { tr.Open(OpenOptions{Last: true}) }).
		On(event.KeyEscape, func(event.Key) { tr.Close() })
}

func (tr *Trigger) OnKeydown(e event.Key) bool {
	return tr.Keydown().Handle(e)
}
