// Package widget builds interactive engine widgets from configuration
// definitions and exposes them to hosts through one uniform interface.
package widget

import (
	"fmt"
	"time"

	"github.com/bernd/ariabox/config"
	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

// Element is the host element of one rendered row. Focus records it as the
// widget's focused element.
type Element struct {
	ID    string
	Label string

	focus *focusTracker
}

func (e *Element) Focus() {
	if e.focus != nil {
		e.focus.el = e
	}
}

type focusTracker struct {
	el *Element
}

// Row is one line of a widget as a host draws it.
type Row struct {
	Element  *Element
	Label    string
	Depth    int
	Active   bool // active item of its container
	Focused  bool // holds keyboard focus
	Selected bool
	Disabled bool
	HasPopup bool
	Expanded bool
	Header   bool // a group label rather than an item
}

// Widget is a built widget ready for input.
type Widget interface {
	Name() string
	Kind() string
	Label() string
	Horizontal() bool

	OnKey(e event.Key) bool
	OnPointer(e event.Pointer) bool

	// Bindings lists the keys the focused part of the widget reacts to, in
	// dispatch order.
	Bindings() []string
	Validate() []string
	Rows() []Row
	Value() []string

	// Tick commits a pending time-based action that is due at now.
	Tick(now time.Time) bool
	// Deadline is when the next pending action becomes due.
	Deadline() (time.Time, bool)
}

// Options are host hooks shared by every built widget.
type Options struct {
	// Now is the clock for typeahead and hover timing. Nil means time.Now.
	Now func() time.Time
	// OnActivate runs with the value of an activated button or menu item.
	OnActivate func(widget, value string)
}

func (o Options) activate(widget, value string) {
	if o.OnActivate != nil {
		o.OnActivate(widget, value)
	}
}

// Build turns a merged definition into a widget in its default state.
func Build(def config.WidgetDef, opts Options) (Widget, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s, err := parseSettings(def)
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", def.Name, err)
	}
	b := base{def: def, settings: s, focus: &focusTracker{}}

	switch def.Kind {
	case config.KindListbox:
		return newListbox(b, opts), nil
	case config.KindRadio:
		return newRadio(b, opts), nil
	case config.KindTabs:
		return newTabs(b, opts), nil
	case config.KindToolbar:
		return newToolbar(b, opts)
	case config.KindMenu, config.KindMenuBar:
		return newMenu(b, opts)
	}
	return nil, fmt.Errorf("widget %q: %w %q", def.Name, config.ErrUnknownKind, def.Kind)
}

// BuildAll builds every definition, stopping at the first error.
func BuildAll(defs []config.WidgetDef, opts Options) ([]Widget, error) {
	out := make([]Widget, 0, len(defs))
	for _, def := range defs {
		w, err := Build(def, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

type settings struct {
	orientation    list.Orientation
	direction      list.TextDirection
	focusMode      list.FocusMode
	selectionMode  list.SelectionMode
	wrap           bool
	skipDisabled   bool
	typeaheadDelay time.Duration
	hoverDelay     time.Duration
}

func parseSettings(def config.WidgetDef) (settings, error) {
	var (
		s   settings
		err error
	)
	if s.orientation, err = list.ParseOrientation(def.Orientation); err != nil {
		return s, err
	}
	if s.direction, err = list.ParseTextDirection(def.TextDirection); err != nil {
		return s, err
	}
	if s.focusMode, err = list.ParseFocusMode(def.FocusMode); err != nil {
		return s, err
	}
	if s.selectionMode, err = list.ParseSelectionMode(def.SelectionMode); err != nil {
		return s, err
	}
	s.wrap = deref(def.Wrap, true)
	s.skipDisabled = deref(def.SkipDisabled, true)
	s.typeaheadDelay = deref(def.TypeaheadDelay, list.DefaultTypeaheadDelay)
	s.hoverDelay = deref(def.HoverDelay, 0)
	return s, nil
}

func deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// base carries what every widget kind shares.
type base struct {
	def      config.WidgetDef
	settings settings
	focus    *focusTracker
}

func (b base) Name() string     { return b.def.Name }
func (b base) Kind() string     { return b.def.Kind }
func (b base) Label() string    { return b.def.Label }
func (b base) Horizontal() bool { return b.settings.orientation == list.Horizontal }

func (b base) Tick(time.Time) bool         { return false }
func (b base) Deadline() (time.Time, bool) { return time.Time{}, false }

func (b base) element(it config.ItemDef) *Element {
	return &Element{ID: it.ID, Label: it.Label, focus: b.focus}
}

func (b base) focused(el list.Element) bool {
	return el != nil && b.focus.el == el
}

// items turns item definitions into list items, returning the values of
// the ones marked selected.
func (b base) items(defs []config.ItemDef) ([]*list.Item[string], []string) {
	var selected []string
	items := make([]*list.Item[string], len(defs))
	for i, d := range defs {
		items[i] = b.item(d)
		if d.Selected {
			selected = append(selected, d.Value)
		}
	}
	return items, selected
}

func (b base) item(d config.ItemDef) *list.Item[string] {
	term := d.SearchTerm
	if term == "" {
		term = d.Label
	}
	return &list.Item[string]{
		ID:         d.ID,
		Element:    b.element(d),
		Value:      d.Value,
		SearchTerm: term,
		Disabled:   d.Disabled,
	}
}

// inputs builds list inputs over items from the widget's settings.
func (b base) inputs(items []*list.Item[string], selected []string, now func() time.Time) list.Inputs[string] {
	s := b.settings
	in := list.NewInputs(items...)
	in.Value = signal.New(selected)
	in.Disabled = signal.Const(b.def.Disabled)
	in.SkipDisabled = signal.Const(s.skipDisabled)
	in.Wrap = signal.Const(s.wrap)
	in.Multi = signal.Const(b.def.Multi)
	in.Orientation = signal.Const(s.orientation)
	in.TextDirection = signal.Const(s.direction)
	in.FocusMode = signal.Const(s.focusMode)
	in.SelectionMode = signal.Const(s.selectionMode)
	in.TypeaheadDelay = signal.Const(s.typeaheadDelay)
	in.Now = now
	return in
}

// listRows renders a flat list at depth.
func (b base) listRows(l *list.List[string], depth int) []Row {
	active := l.ActiveItem()
	var rows []Row
	for _, it := range l.Items() {
		el, _ := it.Element.(*Element)
		label := it.Value
		if el != nil {
			label = el.Label
		}
		rows = append(rows, Row{
			Element:  el,
			Label:    label,
			Depth:    depth,
			Active:   it == active,
			Focused:  it == active && b.focused(it.Element),
			Selected: l.IsSelected(it),
			Disabled: it.Disabled,
		})
	}
	return rows
}

// onDown passes only pointer presses to fn.
func onDown(e event.Pointer, fn func(event.Pointer) bool) bool {
	if e.Kind != event.Down {
		return false
	}
	return fn(e)
}
