// Package toolbar implements the toolbar pattern: a flat row of widgets,
// some of which are nested groups that take over navigation until they
// reach their own boundary.
package toolbar

import (
	"fmt"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

// Group is a widget that navigates internally, such as a radio group.
type Group interface {
	Disabled() bool
	IsOnFirstItem() bool
	IsOnLastItem() bool
	Next(wrap bool)
	Prev(wrap bool)
	First()
	Last()
	Unfocus()
	Trigger()
	Goto(e event.Pointer)
	SetDefaultState()
	Owns(target any) bool
}

// Widget is one toolbar entry. Item.Value is the widget's id.
type Widget struct {
	list.Item[string]

	// Group is set for widgets that navigate internally.
	Group Group
	// OnTrigger runs when a plain widget is activated.
	OnTrigger func()
}

type Inputs struct {
	list.Inputs[string]

	Widgets signal.Signal[[]*Widget]
}

type Toolbar struct {
	*list.List[string]

	widgets signal.Signal[[]*Widget]
}

// New builds a toolbar. The list items are derived from the widgets.
func New(in Inputs) *Toolbar {
	t := &Toolbar{widgets: in.Widgets}
	in.Items = signal.Func[[]*list.Item[string]](func() []*list.Item[string] {
		ws := t.widgets.Get()
		items := make([]*list.Item[string], len(ws))
		for i, w := range ws {
			items[i] = &w.Item
		}
		return items
	})
	if in.Value == nil {
		in.Value = signal.New[[]string](nil)
	}
	t.List = list.New(in.Inputs)
	return t
}

func (t *Toolbar) Widgets() []*Widget { return t.widgets.Get() }

func (t *Toolbar) widgetFor(item *list.Item[string]) *Widget {
	if item == nil {
		return nil
	}
	for _, w := range t.widgets.Get() {
		if &w.Item == item {
			return w
		}
	}
	return nil
}

// ActiveWidget returns the widget holding focus, or nil.
func (t *Toolbar) ActiveWidget() *Widget { return t.widgetFor(t.ActiveItem()) }

func (t *Toolbar) activeGroup() Group {
	if w := t.ActiveWidget(); w != nil {
		return w.Group
	}
	return nil
}

func (t *Toolbar) altPrevKey() string {
	if t.Inputs().Orientation.Get() == list.Horizontal {
		return event.KeyArrowUp
	}
	if t.Inputs().TextDirection.Get() == list.RTL {
		return event.KeyArrowRight
	}
	return event.KeyArrowLeft
}

func (t *Toolbar) altNextKey() string {
	if t.Inputs().Orientation.Get() == list.Horizontal {
		return event.KeyArrowDown
	}
	if t.Inputs().TextDirection.Get() == list.RTL {
		return event.KeyArrowLeft
	}
	return event.KeyArrowRight
}

func (t *Toolbar) Keydown() *event.KeyboardManager {
	return event.NewKeyboard().
		On(t.NextKey(), func(event.Key) { t.NextWidget() }).
		On(t.PrevKey(), func(event.Key) { t.PrevWidget() }).
		On(t.altNextKey(), func(event.Key) { t.groupNext() }).
		On(t.altPrevKey(), func(event.Key) { t.groupPrev() }).
		On(event.KeySpace, func(event.Key) { t.Trigger() }).
		On(event.KeyEnter, func(event.Key) { t.Trigger() }).
		On(event.KeyHome, func(event.Key) { t.FirstWidget() }).
		On(event.KeyEnd, func(event.Key) { t.LastWidget() })
}

func (t *Toolbar) Pointerdown() *event.PointerManager {
	return event.NewPointer().On(func(e event.Pointer) { t.GotoTarget(e) })
}

func (t *Toolbar) OnKeydown(e event.Key) bool {
	if t.Disabled() {
		return false
	}
	return t.Keydown().Handle(e)
}

func (t *Toolbar) OnPointerdown(e event.Pointer) bool {
	if t.Disabled() {
		return false
	}
	return t.Pointerdown().Handle(e)
}

// NextWidget moves forward. An active group gets to move internally until
// it sits on its last item; only then does the toolbar step past it.
func (t *Toolbar) NextWidget() {
	g := t.activeGroup()
	if g != nil && !g.Disabled() && !g.IsOnLastItem() {
		g.Next(false)
		return
	}
	if t.Navigation.PeekNext() == nil {
		// A wrapping group with no other widget to reach wraps within itself.
		if g != nil && !g.Disabled() && t.Inputs().Wrap.Get() {
			g.First()
		}
		return
	}
	if g != nil {
		g.Unfocus()
	}
	t.Next(list.NavOptions{})
	if g := t.activeGroup(); g != nil {
		g.First()
	}
}

// PrevWidget mirrors NextWidget, entering a group on its last item.
func (t *Toolbar) PrevWidget() {
	g := t.activeGroup()
	if g != nil && !g.Disabled() && !g.IsOnFirstItem() {
		g.Prev(false)
		return
	}
	if t.Navigation.PeekPrev() == nil {
		// A wrapping group with no other widget to reach wraps within itself.
		if g != nil && !g.Disabled() && t.Inputs().Wrap.Get() {
			g.Last()
		}
		return
	}
	if g != nil {
		g.Unfocus()
	}
	t.Prev(list.NavOptions{})
	if g := t.activeGroup(); g != nil {
		g.Last()
	}
}

// Cross-axis keys always wrap inside the group, whatever the toolbar's own
// wrap setting.
func (t *Toolbar) groupNext() {
	if g := t.activeGroup(); g != nil && !g.Disabled() {
		g.Next(true)
	}
}

func (t *Toolbar) groupPrev() {
	if g := t.activeGroup(); g != nil && !g.Disabled() {
		g.Prev(true)
	}
}

func (t *Toolbar) FirstWidget() {
	if g := t.activeGroup(); g != nil {
		g.Unfocus()
	}
	t.First(list.NavOptions{})
	if g := t.activeGroup(); g != nil {
		g.First()
	}
}

func (t *Toolbar) LastWidget() {
	if g := t.activeGroup(); g != nil {
		g.Unfocus()
	}
	t.Last(list.NavOptions{})
	if g := t.activeGroup(); g != nil {
		g.Last()
	}
}

// Trigger activates the active widget.
func (t *Toolbar) Trigger() {
	w := t.ActiveWidget()
	switch {
	case w == nil || w.Disabled:
	case w.Group != nil:
		w.Group.Trigger()
	case w.OnTrigger != nil:
		w.OnTrigger()
	}
}

func (t *Toolbar) widgetForTarget(target any) *Widget {
	if target == nil {
		return nil
	}
	for _, w := range t.widgets.Get() {
		if w.Group != nil && w.Group.Owns(target) {
			return w
		}
		if w.Element != nil && any(w.Element) == target {
			return w
		}
	}
	return nil
}

// GotoTarget focuses the widget under the pointer and forwards the press
// to it. Plain widgets are activated.
func (t *Toolbar) GotoTarget(e event.Pointer) bool {
	w := t.widgetForTarget(e.Target)
	if w == nil || !t.IsFocusable(&w.Item) {
		return false
	}
	if g := t.activeGroup(); g != nil && t.ActiveWidget() != w {
		g.Unfocus()
	}
	t.Goto(&w.Item, list.NavOptions{})
	switch {
	case w.Group != nil:
		w.Group.Goto(e)
	case w.OnTrigger != nil && !w.Disabled:
		w.OnTrigger()
	}
	return true
}

// SetDefaultState focuses the first focusable widget and lets a group
// pick its own default.
func (t *Toolbar) SetDefaultState() {
	for _, it := range t.Items() {
		if t.IsFocusable(it) {
			t.Inputs().ActiveItem.Set(it)
			if w := t.widgetFor(it); w.Group != nil {
				w.Group.SetDefaultState()
			}
			return
		}
	}
}

// Validate reports accessibility violations in the current state.
func (t *Toolbar) Validate() []string {
	var violations []string
	focusable := false
	for _, it := range t.Items() {
		if t.IsFocusable(it) {
			focusable = true
			break
		}
	}
	if len(t.Items()) > 0 && !focusable {
		violations = append(violations,
			"Accessibility Violation: Every toolbar widget is disabled and skipped, so the toolbar cannot receive keyboard focus.")
	}
	if w := t.ActiveWidget(); w != nil && !t.IsFocusable(&w.Item) {
		violations = append(violations, fmt.Sprintf(
			"Accessibility Violation: The active toolbar widget %q is disabled while disabled widgets are skipped.", w.ID))
	}
	return violations
}
