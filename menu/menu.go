package menu

import (
	"regexp"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

var typeaheadKey = regexp.MustCompile(`^.$`)

var (
	plainOrShift = []event.Modifier{event.None, event.Shift}
	anyMods      = []event.Modifier{event.Any}
)

// Menu is a menu or menubar record in a Tree.
type Menu struct {
	*list.List[string]

	ID    MenuID
	Label string

	tree    *Tree
	kind    Kind
	element list.Element
	items   []*Item
	parent  *Item
	trigger *Trigger
	open    bool
}

func newMenu(t *Tree, id MenuID, kind Kind, label string, el list.Element, items []*Item) *Menu {
	m := &Menu{ID: id, Label: label, tree: t, kind: kind, element: el, items: items, open: true}
	litems := make([]*list.Item[string], len(items))
	for i, it := range items {
		it.menu = id
		litems[i] = &it.Item
	}
	in := list.NewInputs(litems...)
	in.Element = el
	in.Wrap = t.opts.Wrap
	in.TextDirection = t.opts.TextDirection
	in.TypeaheadDelay = signal.Const(t.opts.TypeaheadDelay)
	in.Now = t.opts.Now
	if kind == KindMenuBar {
		in.Orientation = signal.Const(list.Horizontal)
	}
	m.List = list.New(in)
	return m
}

func (m *Menu) Kind() Kind            { return m.kind }
func (m *Menu) MenuItems() []*Item    { return m.items }
func (m *Menu) Element() list.Element { return m.element }

// IsOpen reports whether the menu is shown. Root menus and menubars are
// always open.
func (m *Menu) IsOpen() bool { return m.open }

func (m *Menu) isRoot() bool { return m.parent == nil && m.trigger == nil }

func (m *Menu) itemFor(li *list.Item[string]) *Item {
	if li == nil {
		return nil
	}
	for _, it := range m.items {
		if &it.Item == li {
			return it
		}
	}
	return nil
}

// ActiveMenuItem returns the active item, or nil.
func (m *Menu) ActiveMenuItem() *Item { return m.itemFor(m.ActiveItem()) }

// Expanded reports whether the submenu of it is open.
func (m *Menu) Expanded(it *Item) bool {
	sub := m.tree.Menu(it.Submenu)
	return sub != nil && sub.open
}

func (m *Menu) openChild() *Menu {
	for _, it := range m.items {
		if sub := m.tree.Menu(it.Submenu); sub != nil && sub.open && sub.parent == it {
			return sub
		}
	}
	return nil
}

// rootBar returns the menubar at the top of m's parent chain, if any.
func (m *Menu) rootBar() *Menu {
	cur := m
	for range m.tree.menus {
		_, owner, _ := m.tree.Parent(cur)
		if owner == nil {
			return nil
		}
		if owner.kind == KindMenuBar {
			return owner
		}
		cur = owner
	}
	return nil
}

func (m *Menu) expandKey() string {
	if m.Inputs().TextDirection.Get() == list.RTL {
		return event.KeyArrowLeft
	}
	return event.KeyArrowRight
}

func (m *Menu) collapseKey() string {
	if m.Inputs().TextDirection.Get() == list.RTL {
		return event.KeyArrowRight
	}
	return event.KeyArrowLeft
}

// Keydown builds the dispatch table for the menu or menubar.
func (m *Menu) Keydown() *event.KeyboardManager {
	if m.kind == KindMenuBar {
		return m.menubarKeys()
	}
	k := event.NewKeyboard().
		On(event.KeyArrowUp, func(event.Key) { m.move(func() { m.Prev(list.NavOptions{}) }) }).
		On(event.KeyArrowDown, func(event.Key) { m.move(func() { m.Next(list.NavOptions{}) }) }).
		On(event.KeyHome, func(event.Key) { m.move(func() { m.First(list.NavOptions{}) }) }).
		On(event.KeyEnd, func(event.Key) { m.move(func() { m.Last(list.NavOptions{}) }) }).
		On(m.expandKey(), func(event.Key) { m.expand() }).
		On(m.collapseKey(), func(event.Key) { m.collapse() }).
		On(event.KeyEnter, func(event.Key) { m.Trigger() }).
		On(event.KeyEscape, func(event.Key) { m.tree.Close(m, CloseOptions{Refocus: true}) }).
		OnMods(anyMods, event.KeyTab, func(event.Key) { m.tree.CloseAll(m) })
	if !m.IsTyping() {
		k.On(event.KeySpace, func(event.Key) { m.Trigger() })
	}
	return k.OnPattern(plainOrShift, typeaheadKey, m.search)
}

func (m *Menu) menubarKeys() *event.KeyboardManager {
	k := event.NewKeyboard().
		On(m.PrevKey(), func(event.Key) { m.move(func() { m.Prev(list.NavOptions{}) }) }).
		On(m.NextKey(), func(event.Key) { m.move(func() { m.Next(list.NavOptions{}) }) }).
		On(event.KeyHome, func(event.Key) { m.move(func() { m.First(list.NavOptions{}) }) }).
		On(event.KeyEnd, func(event.Key) { m.move(func() { m.Last(list.NavOptions{}) }) }).
		On(event.KeyArrowDown, func(event.Key) { m.openActive(OpenOptions{First: true}) }).
		On(event.KeyArrowUp, func(event.Key) { m.openActive(OpenOptions{Last: true}) }).
		On(event.KeyEnter, func(event.Key) { m.Trigger() })
	if !m.IsTyping() {
		k.On(event.KeySpace, func(event.Key) { m.Trigger() })
	}
	return k.OnPattern(plainOrShift, typeaheadKey, m.search)
}

func (m *Menu) search(e event.Key) {
	m.move(func() { m.Search(e.Name, list.NavOptions{}) })
}

// OnKeydown handles a key while the menu has focus.
func (m *Menu) OnKeydown(e event.Key) bool {
	if m.Disabled() || !m.open {
		return false
	}
	return m.Keydown().Handle(e)
}

// move runs a navigation and carries submenu state along: the submenu of
// the item left behind closes, and in a menubar the newly active item's
// submenu opens in its place.
func (m *Menu) move(op func()) {
	t := m.tree
	prev := m.ActiveMenuItem()
	var open *Menu
	if prev != nil && m.Expanded(prev) {
		open = t.Menu(prev.Submenu)
	}
	op()
	t.setFocus(m)
	cur := m.ActiveMenuItem()
	if cur == prev || open == nil {
		return
	}
	t.Close(open, CloseOptions{})
	t.setFocus(m)
	if m.kind == KindMenuBar && cur != nil {
		t.Open(cur, OpenOptions{})
	}
}

func (m *Menu) openActive(opts OpenOptions) {
	if it := m.ActiveMenuItem(); it != nil {
		m.tree.Open(it, opts)
	}
}

// Trigger activates the active item: an item with a submenu opens it on
// its first item, a leaf item is reported to OnActivate and closes the
// menus it was chosen from.
func (m *Menu) Trigger() {
	it := m.ActiveMenuItem()
	if it == nil || it.Disabled {
		return
	}
	if it.Submenu != NoMenu {
		m.tree.Open(it, OpenOptions{First: true})
		return
	}
	m.tree.activate(m, it)
	if m.kind != KindMenuBar {
		m.tree.CloseAll(m)
	}
}

func (m *Menu) expand() {
	if it := m.ActiveMenuItem(); it != nil && it.Submenu != NoMenu && !it.Disabled {
		m.tree.Open(it, OpenOptions{First: true})
		return
	}
	if bar := m.rootBar(); bar != nil {
		bar.step(true)
	}
}

func (m *Menu) collapse() {
	_, owner, _ := m.tree.Parent(m)
	if owner == nil {
		return
	}
	if owner.kind == KindMenuBar {
		owner.step(false)
		return
	}
	m.tree.Close(m, CloseOptions{Refocus: true})
}

// step moves a menubar one item and opens the new item's submenu on its
// first item.
func (m *Menu) step(forward bool) {
	t := m.tree
	if child := m.openChild(); child != nil {
		t.Close(child, CloseOptions{})
	}
	if forward {
		m.Next(list.NavOptions{})
	} else {
		m.Prev(list.NavOptions{})
	}
	t.setFocus(m)
	if it := m.ActiveMenuItem(); it != nil && it.Submenu != NoMenu {
		t.Open(it, OpenOptions{First: true})
	}
}

// SetDefaultState makes the first focusable item active.
func (m *Menu) SetDefaultState() {
	m.SetDefaultActive()
}
