package menu

import (
	"time"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
)

// pending is a hover action waiting out the hover delay. A newer hover
// replaces it, so crossing an item on the way to a submenu does nothing.
type pending struct {
	at   time.Time
	menu MenuID
	run  func()
}

func (t *Tree) schedule(menu MenuID, run func()) {
	if t.opts.HoverDelay <= 0 {
		t.pending = nil
		run()
		return
	}
	t.pending = &pending{at: t.now().Add(t.opts.HoverDelay), menu: menu, run: run}
}

// Deadline returns when the pending hover action is due.
func (t *Tree) Deadline() (time.Time, bool) {
	if t.pending == nil {
		return time.Time{}, false
	}
	return t.pending.at, true
}

// Tick commits the pending hover action once its deadline has passed and
// reports whether it ran.
func (t *Tree) Tick(now time.Time) bool {
	p := t.pending
	if p == nil || now.Before(p.at) {
		return false
	}
	t.pending = nil
	p.run()
	return true
}

// Pointer builds the pointer dispatch table for the whole tree.
func (t *Tree) Pointer() *event.PointerManager {
	return event.NewPointer().
		OnMatch("pointerdown", func(e event.Pointer) bool { return e.Kind == event.Down }, t.press).
		OnKind(event.Over, t.over).
		OnKind(event.Out, t.out)
}

// OnPointer commits an overdue hover action, then handles e.
func (t *Tree) OnPointer(e event.Pointer) bool {
	t.Tick(t.now())
	return t.Pointer().Handle(e)
}

// OnKeydown routes e to whatever holds focus.
func (t *Tree) OnKeydown(e event.Key) bool {
	t.Tick(t.now())
	m, tr := t.Focused()
	switch {
	case tr != nil:
		return tr.OnKeydown(e)
	case m != nil:
		return m.OnKeydown(e)
	}
	return false
}

func (t *Tree) triggerFor(target any) *Trigger {
	for _, tr := range t.triggers {
		if tr.Element != nil && any(tr.Element) == target {
			return tr
		}
	}
	return nil
}

func (t *Tree) press(e event.Pointer) {
	if tr := t.triggerFor(e.Target); tr != nil {
		tr.Toggle()
		return
	}
	m, it := t.ItemFor(e.Target)
	if it == nil || it.Disabled {
		return
	}
	t.pending = nil
	m.Goto(&it.Item, list.NavOptions{})
	t.setFocus(m)

	sub := t.Menu(it.Submenu)
	switch {
	case sub != nil && sub.open && m.kind == KindMenuBar:
		t.Close(sub, CloseOptions{})
	case sub != nil:
		t.Open(it, OpenOptions{First: m.kind != KindMenuBar})
	default:
		t.activate(m, it)
		if m.kind != KindMenuBar {
			t.CloseAll(m)
		}
	}
}

func (t *Tree) over(e event.Pointer) {
	m := t.menuFor(e.Target)
	if m == nil {
		return
	}
	t.hover = m.ID
	it := m.itemFor(m.ItemFor(e.Target))
	if it == nil {
		if t.pending != nil && t.keepsOpen(m, t.Menu(t.pending.menu)) {
			t.pending = nil
		}
		return
	}
	if m.kind == KindMenuBar {
		t.overBar(m, it)
		return
	}

	m.Goto(&it.Item, list.NavOptions{})
	t.setFocus(m)
	sub := t.Menu(it.Submenu)
	child := m.openChild()
	switch {
	case sub != nil && sub.open:
		t.pending = nil
	case sub != nil && !it.Disabled:
		t.schedule(sub.ID, func() { t.Open(it, OpenOptions{}) })
	case child != nil:
		t.schedule(child.ID, func() { t.Close(child, CloseOptions{}) })
	default:
		t.pending = nil
	}
}

// overBar switches menubar submenus without delay, and only while one of
// them is already open.
func (t *Tree) overBar(bar *Menu, it *Item) {
	child := bar.openChild()
	if child == nil || child.parent == it {
		return
	}
	bar.Goto(&it.Item, list.NavOptions{})
	t.setFocus(bar)
	t.Close(child, CloseOptions{})
	if it.Submenu != NoMenu {
		t.Open(it, OpenOptions{})
	}
}

func (t *Tree) out(e event.Pointer) {
	m := t.menuFor(e.Target)
	if m == nil {
		return
	}
	to := t.menuFor(e.Related)
	t.hover = NoMenu
	if to != nil {
		t.hover = to.ID
	}
	if m.isRoot() || m.kind == KindMenuBar {
		return
	}
	if to != nil && t.isWithin(to, m) {
		return
	}
	// The parent menu's own hover handling decides what happens next.
	if _, owner, _ := t.Parent(m); owner != nil && to == owner {
		return
	}
	t.schedule(m.ID, func() {
		if t.keepsOpen(t.Menu(t.hover), m) {
			return
		}
		t.Close(m, CloseOptions{})
	})
}

// keepsOpen reports whether a pointer resting on hovered holds the open
// menu m open: hovered is m, one of its submenus, or the menu owning m.
func (t *Tree) keepsOpen(hovered, m *Menu) bool {
	if hovered == nil || m == nil {
		return false
	}
	if t.isWithin(hovered, m) {
		return true
	}
	_, owner, _ := t.Parent(m)
	return m.open && owner == hovered
}

// isWithin reports whether m is anc or one of its submenus.
func (t *Tree) isWithin(m, anc *Menu) bool {
	if m == nil || anc == nil {
		return false
	}
	cur := m
	for range t.menus {
		if cur == anc {
			return true
		}
		_, owner, _ := t.Parent(cur)
		if owner == nil {
			return false
		}
		cur = owner
	}
	return false
}

// Hovered returns the menu under the pointer, or nil.
func (t *Tree) Hovered() *Menu { return t.Menu(t.hover) }
