package widget

import (
	"fmt"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/radio"
	"github.com/bernd/ariabox/signal"
	"github.com/bernd/ariabox/toolbar"
)

type toolbarWidget struct {
	base
	bar    *toolbar.Toolbar
	groups map[*toolbar.Widget]*radio.Group[string]
}

func newToolbar(b base, opts Options) (*toolbarWidget, error) {
	w := &toolbarWidget{base: b, groups: make(map[*toolbar.Widget]*radio.Group[string])}

	var widgets []*toolbar.Widget
	for _, d := range b.def.Items {
		tw := &toolbar.Widget{Item: *b.item(d)}
		switch d.Kind {
		case config.KindRadio:
			items, selected := b.items(d.Items)
			in := b.inputs(items, selected, opts.Now)
			// The toolbar decides what happens past either end.
			in.Wrap = signal.Const(false)
			in.SelectionMode = signal.Const(list.Follow)
			g := radio.New(radio.Inputs[string]{Inputs: in, InToolbar: signal.Const(true)})
			tw.Group = g.Controls()
			w.groups[tw] = g
		case "", config.KindButton:
			value := d.Value
			tw.OnTrigger = func() { opts.activate(b.def.Name, value) }
		default:
			return nil, fmt.Errorf("widget %q: item %q: %w %q", b.def.Name, d.Label, config.ErrUnknownKind, d.Kind)
		}
		widgets = append(widgets, tw)
	}

	in := b.inputs(nil, nil, opts.Now)
	in.Multi = signal.Const(false)
	w.bar = toolbar.New(toolbar.Inputs{Inputs: in, Widgets: signal.Const(widgets)})
	w.bar.SetDefaultState()
	return w, nil
}

func (w *toolbarWidget) OnKey(e event.Key) bool { return w.bar.OnKeydown(e) }
func (w *toolbarWidget) OnPointer(e event.Pointer) bool {
	return onDown(e, w.bar.OnPointerdown)
}
func (w *toolbarWidget) Bindings() []string { return w.bar.Keydown().Bindings() }

func (w *toolbarWidget) Validate() []string {
	out := w.bar.Validate()
	for _, tw := range w.bar.Widgets() {
		if g := w.groups[tw]; g != nil {
			out = append(out, g.Validate()...)
		}
	}
	return out
}

// Rows lists plain widgets at depth 0 and each radio group as a header
// followed by its options.
func (w *toolbarWidget) Rows() []Row {
	active := w.bar.ActiveWidget()
	var rows []Row
	for _, tw := range w.bar.Widgets() {
		el, _ := tw.Element.(*Element)
		row := Row{
			Element:  el,
			Label:    tw.Value,
			Active:   tw == active,
			Focused:  tw == active && w.focused(tw.Element),
			Disabled: tw.Disabled,
		}
		if el != nil {
			row.Label = el.Label
		}
		g := w.groups[tw]
		if g == nil {
			rows = append(rows, row)
			continue
		}
		row.Header = true
		rows = append(rows, row)
		for _, r := range w.listRows(g.List, 1) {
			r.Active = r.Active && tw == active
			rows = append(rows, r)
		}
	}
	return rows
}

// Value lists the selection of every radio group as label=value.
func (w *toolbarWidget) Value() []string {
	var out []string
	for _, tw := range w.bar.Widgets() {
		g := w.groups[tw]
		if g == nil {
			continue
		}
		label := tw.Value
		if el, ok := tw.Element.(*Element); ok {
			label = el.Label
		}
		for _, v := range g.Value() {
			out = append(out, label+"="+v)
		}
	}
	return out
}
