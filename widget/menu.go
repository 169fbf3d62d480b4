package widget

import (
	"time"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/menu"
	"github.com/bernd/ariabox/signal"
)

// menuWidget hosts a menubar, or a menu button whose trigger opens a
// vertical menu.
type menuWidget struct {
	base
	tree      *menu.Tree
	root      *menu.Menu
	trigger   *menu.Trigger
	activated []string
}

func newMenu(b base, opts Options) (*menuWidget, error) {
	w := &menuWidget{base: b}
	w.tree = menu.NewTree(menu.Options{
		TextDirection:  signal.Const(b.settings.direction),
		Wrap:           signal.Const(b.settings.wrap),
		TypeaheadDelay: b.settings.typeaheadDelay,
		HoverDelay:     b.settings.hoverDelay,
		Now:            opts.Now,
		OnActivate: func(_ *menu.Menu, it *menu.Item) {
			w.activated = append(w.activated, it.Value)
			opts.activate(b.def.Name, it.Value)
		},
	})

	el := &Element{ID: b.def.Name, Label: b.def.Label, focus: b.focus}
	items := w.menuItems(b.def.Items)
	if b.def.Kind == config.KindMenuBar {
		w.root = w.tree.AddMenuBar(b.def.Label, el, items...)
		w.tree.SetFocus(w.root)
		return w, nil
	}

	m := w.tree.AddMenu(b.def.Label, el, items...)
	btn := &Element{ID: b.def.Name + "-button", Label: b.def.Label, focus: b.focus}
	tr, err := w.tree.AddTrigger(b.def.Label, btn, m.ID)
	if err != nil {
		return nil, err
	}
	w.trigger = tr
	return w, nil
}

// menuItems builds submenus depth first so every item can name its
// submenu when its own menu is added.
func (w *menuWidget) menuItems(defs []config.ItemDef) []*menu.Item {
	items := make([]*menu.Item, len(defs))
	for i, d := range defs {
		it := &menu.Item{Item: *w.item(d)}
		if len(d.Items) > 0 {
			sub := w.tree.AddMenu(d.Label, &Element{ID: d.ID + "-menu", Label: d.Label, focus: w.focus}, w.menuItems(d.Items)...)
			it.Submenu = sub.ID
		}
		items[i] = it
	}
	return items
}

func (w *menuWidget) Tree() *menu.Tree { return w.tree }

func (w *menuWidget) OnKey(e event.Key) bool         { return w.tree.OnKeydown(e) }
func (w *menuWidget) OnPointer(e event.Pointer) bool { return w.tree.OnPointer(e) }
func (w *menuWidget) Tick(now time.Time) bool        { return w.tree.Tick(now) }
func (w *menuWidget) Deadline() (time.Time, bool)    { return w.tree.Deadline() }
func (w *menuWidget) Validate() []string             { return w.tree.Validate() }
func (w *menuWidget) Value() []string                { return w.activated }

func (w *menuWidget) Bindings() []string {
	m, tr := w.tree.Focused()
	switch {
	case tr != nil:
		return tr.Keydown().Bindings()
	case m != nil:
		return m.Keydown().Bindings()
	}
	return nil
}

// Rows flattens the open part of the tree: the trigger or menubar items at
// depth 0, each open submenu below the item that owns it.
func (w *menuWidget) Rows() []Row {
	focusMenu, focusTrigger := w.tree.Focused()
	var rows []Row
	var walk func(m *menu.Menu, depth int)
	walk = func(m *menu.Menu, depth int) {
		active := m.ActiveMenuItem()
		for _, it := range m.MenuItems() {
			el, _ := it.Element.(*Element)
			row := Row{
				Element:  el,
				Label:    it.Value,
				Depth:    depth,
				Active:   it == active,
				Focused:  it == active && m == focusMenu,
				Disabled: it.Disabled,
				HasPopup: it.Submenu != menu.NoMenu,
				Expanded: m.Expanded(it),
			}
			if el != nil {
				row.Label = el.Label
			}
			rows = append(rows, row)
			if sub := w.tree.Menu(it.Submenu); sub != nil && sub.IsOpen() {
				walk(sub, depth+1)
			}
		}
	}

	if w.trigger != nil {
		el, _ := w.trigger.Element.(*Element)
		rows = append(rows, Row{
			Element:  el,
			Label:    w.trigger.Label,
			Active:   true,
			Focused:  w.trigger == focusTrigger,
			HasPopup: true,
			Expanded: w.trigger.Expanded(),
		})
		if m := w.tree.Menu(w.trigger.Menu()); m != nil && m.IsOpen() {
			walk(m, 1)
		}
		return rows
	}
	walk(w.root, 0)
	return rows
}
