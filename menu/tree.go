// Package menu implements the menu, menubar and menu trigger patterns over
// an arena of menu records. Menus refer to each other by MenuID; a submenu
// knows the item that owns it, never the other way round by pointer.
package menu

import (
	"errors"
	"fmt"
	"time"

	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

// MenuID addresses a menu in its Tree. The zero value is no menu.
type MenuID int

const NoMenu MenuID = 0

var ErrUnknownMenu = errors.New("unknown menu")

// DefaultHoverDelay is how long the pointer must rest on an item before its
// submenu opens or a sibling's submenu closes.
const DefaultHoverDelay = 200 * time.Millisecond

type Kind uint8

const (
	KindMenu Kind = iota
	KindMenuBar
)

func (k Kind) String() string {
	if k == KindMenuBar {
		return "menubar"
	}
	return "menu"
}

// Item is a menu item. Submenu, when set, names the menu it opens.
type Item struct {
	list.Item[string]

	Submenu MenuID

	menu MenuID
}

// Menu returns the menu the item belongs to.
func (it *Item) Menu() MenuID { return it.menu }

type Options struct {
	TextDirection  signal.Signal[list.TextDirection]
	Wrap           signal.Signal[bool]
	TypeaheadDelay time.Duration
	HoverDelay     time.Duration

	// Now is the clock for typeahead and hover debouncing. Nil means
	// time.Now.
	Now func() time.Time

	// OnActivate runs when a leaf item is chosen.
	OnActivate func(m *Menu, it *Item)
}

// Tree owns every menu, menubar and trigger of one widget hierarchy.
type Tree struct {
	opts     Options
	menus    []*Menu
	triggers []*Trigger

	focusMenu    MenuID
	focusTrigger *Trigger

	hover   MenuID
	pending *pending
}

func NewTree(opts Options) *Tree {
	if opts.TextDirection == nil {
		opts.TextDirection = signal.Const(list.LTR)
	}
	if opts.Wrap == nil {
		opts.Wrap = signal.Const(true)
	}
	if opts.TypeaheadDelay == 0 {
		opts.TypeaheadDelay = list.DefaultTypeaheadDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Tree{opts: opts}
}

func (t *Tree) now() time.Time { return t.opts.Now() }

// AddMenu adds a vertical menu. Items that already name a submenu are
// linked to it.
func (t *Tree) AddMenu(label string, el list.Element, items ...*Item) *Menu {
	return t.add(KindMenu, label, el, items)
}

// AddMenuBar adds a horizontal menubar. Menubars are always open.
func (t *Tree) AddMenuBar(label string, el list.Element, items ...*Item) *Menu {
	return t.add(KindMenuBar, label, el, items)
}

func (t *Tree) add(kind Kind, label string, el list.Element, items []*Item) *Menu {
	m := newMenu(t, MenuID(len(t.menus)+1), kind, label, el, items)
	t.menus = append(t.menus, m)
	// Submenus added later link back to these items in their own add.
	for _, it := range items {
		if sub := t.Menu(it.Submenu); sub != nil {
			sub.parent = it
			sub.open = false
		}
	}
	for _, other := range t.menus {
		for _, it := range other.items {
			if it.Submenu == m.ID && m.parent == nil {
				m.parent = it
				m.open = false
			}
		}
	}
	return m
}

// AddTrigger adds a button that opens menu.
func (t *Tree) AddTrigger(label string, el list.Element, menu MenuID) (*Trigger, error) {
	m := t.Menu(menu)
	if m == nil {
		return nil, fmt.Errorf("trigger %q: %w %d", label, ErrUnknownMenu, menu)
	}
	tr := &Trigger{Label: label, Element: el, tree: t, menu: menu}
	m.trigger = tr
	m.open = false
	t.triggers = append(t.triggers, tr)
	if t.focusMenu == menu {
		t.focusMenu = NoMenu
	}
	return tr, nil
}

// Menu returns the menu with the given id, or nil.
func (t *Tree) Menu(id MenuID) *Menu {
	if id <= 0 || int(id) > len(t.menus) {
		return nil
	}
	return t.menus[id-1]
}

func (t *Tree) Menus() []*Menu       { return t.menus }
func (t *Tree) Triggers() []*Trigger { return t.triggers }

// SetSubmenu points item at sub and moves sub's parent back-reference to
// item. The submenu item previously pointed at loses its parent.
func (t *Tree) SetSubmenu(item *Item, sub MenuID) error {
	if old := t.Menu(item.Submenu); old != nil && old.parent == item {
		old.parent = nil
	}
	item.Submenu = sub
	if sub == NoMenu {
		return nil
	}
	m := t.Menu(sub)
	if m == nil {
		return fmt.Errorf("item %q: %w %d", item.ID, ErrUnknownMenu, sub)
	}
	m.parent = item
	m.open = false
	return nil
}

// Parent returns what owns m: the item and the menu holding it, or the
// trigger. All results are nil for a root menu.
func (t *Tree) Parent(m *Menu) (*Item, *Menu, *Trigger) {
	if m.parent != nil {
		return m.parent, t.Menu(m.parent.menu), nil
	}
	return nil, nil, m.trigger
}

// Focused returns the menu holding keyboard focus or, when a trigger has
// it, the trigger. Until something is focused, the first root menu is, or
// failing that the first trigger.
func (t *Tree) Focused() (*Menu, *Trigger) {
	if t.focusMenu == NoMenu && t.focusTrigger == nil {
		for _, m := range t.menus {
			if m.isRoot() {
				return m, nil
			}
		}
		if len(t.triggers) > 0 {
			return nil, t.triggers[0]
		}
	}
	return t.Menu(t.focusMenu), t.focusTrigger
}

func (t *Tree) setFocus(m *Menu) {
	t.focusMenu = m.ID
	t.focusTrigger = nil
}

// SetFocus hands keyboard focus to m and makes its active item default.
func (t *Tree) SetFocus(m *Menu) {
	t.setFocus(m)
	if m.ActiveItem() == nil {
		m.SetDefaultState()
	}
}

// OpenOptions picks which item of the opened menu becomes active. With
// neither set the menu opens without taking focus.
type OpenOptions struct {
	First bool
	Last  bool
}

type CloseOptions struct {
	// Refocus moves focus back to the item or trigger owning the menu.
	Refocus bool
}

// Open shows item's submenu. Sibling submenus of the same menu close, since
// only one submenu per level is open.
func (t *Tree) Open(item *Item, opts OpenOptions) bool {
	sub := t.Menu(item.Submenu)
	owner := t.Menu(item.menu)
	if sub == nil || owner == nil || item.Disabled {
		return false
	}
	for _, sib := range owner.items {
		if sib != item {
			if m := t.Menu(sib.Submenu); m != nil && m.open {
				t.Close(m, CloseOptions{})
			}
		}
	}
	owner.Goto(&item.Item, list.NavOptions{NoFocus: opts.First || opts.Last})
	sub.open = true
	t.enter(sub, opts)
	return true
}

func (t *Tree) enter(m *Menu, opts OpenOptions) {
	switch {
	case opts.First:
		m.Unfocus()
		m.First(list.NavOptions{})
		t.setFocus(m)
	case opts.Last:
		m.Unfocus()
		m.Last(list.NavOptions{})
		t.setFocus(m)
	}
}

// Close hides m and every submenu open below it. Root menus never close.
func (t *Tree) Close(m *Menu, opts CloseOptions) {
	if m == nil || m.isRoot() {
		return
	}
	for _, it := range m.items {
		if sub := t.Menu(it.Submenu); sub != nil && sub.open {
			t.Close(sub, CloseOptions{})
		}
	}
	wasFocused := t.focusMenu == m.ID
	m.open = false
	m.Unfocus()
	if t.pending != nil && t.pending.menu == m.ID {
		t.pending = nil
	}

	item, owner, tr := t.Parent(m)
	switch {
	case opts.Refocus && owner != nil:
		owner.Focus.Focus(&item.Item, list.FocusOptions{})
		t.setFocus(owner)
	case opts.Refocus && tr != nil:
		tr.focus()
	case wasFocused && owner != nil:
		t.focusMenu = owner.ID
	case wasFocused && tr != nil:
		t.focusMenu = NoMenu
		t.focusTrigger = tr
	}
}

// CloseAll closes the whole chain of open menus m belongs to, up to the
// nearest menubar, trigger or root menu, and refocuses that owner.
func (t *Tree) CloseAll(m *Menu) {
	top := m
	for range t.menus {
		_, owner, _ := t.Parent(top)
		if owner == nil || owner.isRoot() {
			break
		}
		top = owner
	}
	t.Close(top, CloseOptions{Refocus: true})
}

func (t *Tree) activate(m *Menu, it *Item) {
	if t.opts.OnActivate != nil {
		t.opts.OnActivate(m, it)
	}
}

// ItemFor finds the item of an open menu that owns target.
func (t *Tree) ItemFor(target any) (*Menu, *Item) {
	for _, m := range t.menus {
		if !m.open {
			continue
		}
		if it := m.itemFor(m.ItemFor(target)); it != nil {
			return m, it
		}
	}
	return nil, nil
}

// menuFor finds the open menu that owns target, as an item or as the
// container element.
func (t *Tree) menuFor(target any) *Menu {
	if target == nil {
		return nil
	}
	if m, _ := t.ItemFor(target); m != nil {
		return m
	}
	for _, m := range t.menus {
		if m.open && m.element != nil && any(m.element) == target {
			return m
		}
	}
	return nil
}

// Validate reports structural problems: items naming unknown submenus,
// submenus claimed by more than one item, and submenu cycles.
func (t *Tree) Validate() []string {
	var problems []string
	for _, m := range t.menus {
		for _, it := range m.items {
			if it.Submenu == NoMenu {
				continue
			}
			sub := t.Menu(it.Submenu)
			switch {
			case sub == nil:
				problems = append(problems, fmt.Sprintf("Menu item %q opens unknown submenu %d.", it.ID, it.Submenu))
			case sub.kind == KindMenuBar:
				problems = append(problems, fmt.Sprintf("Menu item %q opens menubar %q, which cannot be a submenu.", it.ID, sub.Label))
			case sub.parent != it:
				problems = append(problems, fmt.Sprintf("Submenu %q is opened by more than one item; %q is ignored.", sub.Label, it.ID))
			}
		}
	}

	// Submenu edges form a forest; a walk up the parent chain that
	// revisits a menu is a cycle.
	for _, m := range t.menus {
		seen := map[MenuID]bool{m.ID: true}
		cur := m
		for cur.parent != nil {
			owner := t.Menu(cur.parent.menu)
			if owner == nil {
				break
			}
			if seen[owner.ID] {
				if owner.ID == m.ID {
					problems = append(problems, fmt.Sprintf("Menu %q is its own ancestor.", m.Label))
				}
				break
			}
			seen[owner.ID] = true
			cur = owner
		}
	}
	return problems
}
