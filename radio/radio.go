// Package radio implements the radio group pattern. A group selects exactly
// the active button as the user navigates, unless it is readonly, and can be
// embedded in a toolbar as a widget group.
package radio

import (
	"fmt"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

type Inputs[V comparable] struct {
	list.Inputs[V]

	Readonly signal.Signal[bool]

	// InToolbar hands keyboard and pointer handling to the enclosing
	// toolbar, which drives the group through the widget group methods.
	InToolbar signal.Signal[bool]
}

type Group[V comparable] struct {
	*list.List[V]

	readonly  signal.Signal[bool]
	inToolbar signal.Signal[bool]
	forceWrap *bool
}

// New builds a radio group. Selection always follows focus and is single.
func New[V comparable](in Inputs[V]) *Group[V] {
	g := &Group[V]{readonly: in.Readonly, inToolbar: in.InToolbar}
	if g.readonly == nil {
		g.readonly = signal.Const(false)
	}
	if g.inToolbar == nil {
		g.inToolbar = signal.Const(false)
	}

	configured := in.Wrap
	in.Wrap = signal.Func[bool](func() bool {
		if g.forceWrap != nil {
			return *g.forceWrap
		}
		return configured.Get()
	})
	in.Multi = signal.Const(false)
	in.SelectionMode = signal.Const(list.Follow)

	g.List = list.New(in.Inputs)
	return g
}

func (g *Group[V]) Readonly() bool { return g.readonly.Get() }

// SelectedItem returns the checked button, or nil.
func (g *Group[V]) SelectedItem() *list.Item[V] {
	if items := g.SelectedItems(); len(items) > 0 {
		return items[0]
	}
	return nil
}

func (g *Group[V]) followOpts() list.NavOptions {
	return list.NavOptions{SelectOne: !g.Readonly()}
}

func (g *Group[V]) selectActive() {
	if !g.Readonly() {
		g.SelectOne()
	}
}

// Keydown builds the keyboard dispatch table for the current
// configuration.
func (g *Group[V]) Keydown() *event.KeyboardManager {
	opts := g.followOpts()
	return event.NewKeyboard().
		On(g.PrevKey(), func(event.Key) { g.Prev(opts) }).
		On(g.NextKey(), func(event.Key) { g.Next(opts) }).
		On(event.KeyHome, func(event.Key) { g.First(opts) }).
		On(event.KeyEnd, func(event.Key) { g.Last(opts) }).
		On(event.KeySpace, func(event.Key) { g.selectActive() }).
		On(event.KeyEnter, func(event.Key) { g.selectActive() })
}

func (g *Group[V]) Pointerdown() *event.PointerManager {
	return event.NewPointer().On(func(e event.Pointer) { g.GotoTarget(e.Target, g.followOpts()) })
}

func (g *Group[V]) handlesInput() bool {
	return !g.Disabled() && !g.inToolbar.Get()
}

func (g *Group[V]) OnKeydown(e event.Key) bool {
	if !g.handlesInput() {
		return false
	}
	return g.Keydown().Handle(e)
}

func (g *Group[V]) OnPointerdown(e event.Pointer) bool {
	if !g.handlesInput() {
		return false
	}
	return g.Pointerdown().Handle(e)
}

// SetDefaultState makes the checked focusable button active, falling back
// to the first focusable button.
func (g *Group[V]) SetDefaultState() {
	g.SetDefaultActive()
}

// Validate reports accessibility violations in the current state.
func (g *Group[V]) Validate() []string {
	var violations []string
	if it := g.SelectedItem(); it != nil && it.Disabled && g.Inputs().SkipDisabled.Get() {
		violations = append(violations, fmt.Sprintf(
			"Accessibility Violation: The selected radio button %q is disabled while disabled buttons are skipped, making the selection unreachable via keyboard.",
			it.ID))
	}
	return violations
}

// Controls is the view of a group that an enclosing toolbar drives.
type Controls[V comparable] struct {
	g *Group[V]
}

func (g *Group[V]) Controls() *Controls[V] { return &Controls[V]{g: g} }

func (c *Controls[V]) Disabled() bool { return c.g.Disabled() }

func (c *Controls[V]) IsOnFirstItem() bool {
	active := c.g.ActiveItem()
	return active != nil && c.g.firstFocusable() == active
}

func (c *Controls[V]) IsOnLastItem() bool {
	active := c.g.ActiveItem()
	return active != nil && c.g.lastFocusable() == active
}

// Next moves to the next button. Navigation inside a toolbar never
// selects; Trigger does.
func (c *Controls[V]) Next(wrap bool) {
	c.g.withWrap(wrap, func() { c.g.List.Next(list.NavOptions{}) })
}

func (c *Controls[V]) Prev(wrap bool) {
	c.g.withWrap(wrap, func() { c.g.List.Prev(list.NavOptions{}) })
}

func (c *Controls[V]) First()           { c.g.List.First(list.NavOptions{}) }
func (c *Controls[V]) Last()            { c.g.List.Last(list.NavOptions{}) }
func (c *Controls[V]) Unfocus()         { c.g.Unfocus() }
func (c *Controls[V]) Trigger()         { c.g.selectActive() }
func (c *Controls[V]) SetDefaultState() { c.g.SetDefaultState() }

func (c *Controls[V]) Goto(e event.Pointer) {
	c.g.GotoTarget(e.Target, c.g.followOpts())
}

// Owns reports whether target is one of the group's buttons.
func (c *Controls[V]) Owns(target any) bool {
	return c.g.ItemFor(target) != nil
}

func (g *Group[V]) firstFocusable() *list.Item[V] {
	for _, it := range g.Items() {
		if g.IsFocusable(it) {
			return it
		}
	}
	return nil
}

func (g *Group[V]) lastFocusable() *list.Item[V] {
	items := g.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if g.IsFocusable(items[i]) {
			return items[i]
		}
	}
	return nil
}

func (g *Group[V]) withWrap(wrap bool, fn func()) {
	g.forceWrap = &wrap
	defer func() { g.forceWrap = nil }()
	fn()
}
