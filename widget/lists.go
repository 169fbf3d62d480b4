package widget

import (
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/listbox"
	"github.com/bernd/ariabox/radio"
	"github.com/bernd/ariabox/signal"
	"github.com/bernd/ariabox/tabs"
)

type listboxWidget struct {
	base
	box *listbox.Listbox[string]
}

func newListbox(b base, opts Options) *listboxWidget {
	items, selected := b.items(b.def.Items)
	box := listbox.New(listbox.Inputs[string]{
		Inputs:   b.inputs(items, selected, opts.Now),
		Readonly: signal.Const(b.def.Readonly),
	})
	box.SetDefaultState()
	return &listboxWidget{base: b, box: box}
}

func (w *listboxWidget) OnKey(e event.Key) bool { return w.box.OnKeydown(e) }
func (w *listboxWidget) OnPointer(e event.Pointer) bool {
	return onDown(e, w.box.OnPointerdown)
}
func (w *listboxWidget) Bindings() []string { return w.box.Keydown().Bindings() }
func (w *listboxWidget) Validate() []string { return w.box.Validate() }
func (w *listboxWidget) Rows() []Row        { return w.listRows(w.box.List, 0) }
func (w *listboxWidget) Value() []string    { return w.box.Value() }

type radioWidget struct {
	base
	group *radio.Group[string]
}

func newRadio(b base, opts Options) *radioWidget {
	items, selected := b.items(b.def.Items)
	g := radio.New(radio.Inputs[string]{
		Inputs:   b.inputs(items, selected, opts.Now),
		Readonly: signal.Const(b.def.Readonly),
	})
	g.SetDefaultState()
	return &radioWidget{base: b, group: g}
}

func (w *radioWidget) OnKey(e event.Key) bool { return w.group.OnKeydown(e) }
func (w *radioWidget) OnPointer(e event.Pointer) bool {
	return onDown(e, w.group.OnPointerdown)
}
func (w *radioWidget) Bindings() []string { return w.group.Keydown().Bindings() }
func (w *radioWidget) Validate() []string { return w.group.Validate() }
func (w *radioWidget) Rows() []Row        { return w.listRows(w.group.List, 0) }
func (w *radioWidget) Value() []string    { return w.group.Value() }

type tabsWidget struct {
	base
	tabs *tabs.Tablist
}

func newTabs(b base, opts Options) *tabsWidget {
	items, selected := b.items(b.def.Items)
	t := tabs.New(b.inputs(items, selected, opts.Now))
	t.SetDefaultState()
	return &tabsWidget{base: b, tabs: t}
}

func (w *tabsWidget) OnKey(e event.Key) bool { return w.tabs.OnKeydown(e) }
func (w *tabsWidget) OnPointer(e event.Pointer) bool {
	return onDown(e, w.tabs.OnPointerdown)
}
func (w *tabsWidget) Bindings() []string { return w.tabs.Keydown().Bindings() }
func (w *tabsWidget) Validate() []string { return w.tabs.Validate() }
func (w *tabsWidget) Rows() []Row        { return w.listRows(w.tabs.List, 0) }
func (w *tabsWidget) Value() []string    { return w.tabs.Value() }

// Panel returns the label of the tab whose panel is shown, or "".
func (w *tabsWidget) Panel() string {
	tab := w.tabs.SelectedTab()
	if tab == nil || w.tabs.PanelHidden(tab) {
		return ""
	}
	if el, ok := tab.Element.(*Element); ok {
		return el.Label
	}
	return tab.Value
}

// Paneled is implemented by widgets that show one panel at a time.
type Paneled interface {
	Panel() string
}
