// Package tabs implements the tablist pattern: one selected tab at a time,
// each tab owning the panel it shows.
package tabs

import (
	"fmt"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

// NewInputs returns list inputs with the tablist defaults: horizontal,
// selection following focus.
func NewInputs(tabs ...*list.Item[string]) list.Inputs[string] {
	in := list.NewInputs(tabs...)
	in.Orientation = signal.Const(list.Horizontal)
	in.SelectionMode = signal.Const(list.Follow)
	return in
}

type Tablist struct {
	*list.List[string]
}

func New(in list.Inputs[string]) *Tablist {
	in.Multi = signal.Const(false)
	return &Tablist{List: list.New(in)}
}

func (t *Tablist) followFocus() bool {
	return t.Inputs().SelectionMode.Get() == list.Follow
}

func (t *Tablist) Keydown() *event.KeyboardManager {
	move := list.NavOptions{SelectOne: t.followFocus()}
	return event.NewKeyboard().
		On(t.PrevKey(), func(event.Key) { t.Prev(move) }).
		On(t.NextKey(), func(event.Key) { t.Next(move) }).
		On(event.KeyHome, func(event.Key) { t.First(move) }).
		On(event.KeyEnd, func(event.Key) { t.Last(move) }).
		On(event.KeySpace, func(event.Key) { t.SelectOne() }).
		On(event.KeyEnter, func(event.Key) { t.SelectOne() })
}

func (t *Tablist) Pointerdown() *event.PointerManager {
	return event.NewPointer().On(func(e event.Pointer) {
		t.GotoTarget(e.Target, list.NavOptions{SelectOne: true})
	})
}

func (t *Tablist) OnKeydown(e event.Key) bool {
	if t.Disabled() {
		return false
	}
	return t.Keydown().Handle(e)
}

func (t *Tablist) OnPointerdown(e event.Pointer) bool {
	if t.Disabled() {
		return false
	}
	return t.Pointerdown().Handle(e)
}

// SelectedTab returns the selected tab, or nil.
func (t *Tablist) SelectedTab() *list.Item[string] {
	if sel := t.SelectedItems(); len(sel) > 0 {
		return sel[0]
	}
	return nil
}

// PanelHidden reports whether the panel owned by tab is hidden.
func (t *Tablist) PanelHidden(tab *list.Item[string]) bool {
	return !t.IsSelected(tab)
}

// PanelTabIndex is 0 for the visible panel, so Tab moves from the tablist
// into it, and -1 otherwise.
func (t *Tablist) PanelTabIndex(tab *list.Item[string]) int {
	if t.PanelHidden(tab) {
		return -1
	}
	return 0
}

// SetDefaultState makes the selected tab active, or the first focusable
// tab. A follow-mode tablist with nothing selected selects it.
func (t *Tablist) SetDefaultState() {
	t.SetDefaultActive()
	if t.followFocus() && t.SelectedTab() == nil && t.ActiveItem() != nil {
		t.SelectOne()
	}
}

func (t *Tablist) Validate() []string {
	var violations []string
	for _, tab := range t.SelectedItems() {
		if tab.Disabled && t.Inputs().SkipDisabled.Get() {
			violations = append(violations, fmt.Sprintf(
				"Accessibility Violation: The selected tab %q is disabled while disabled tabs are skipped, making its panel unreachable via keyboard.",
				tab.ID))
		}
	}
	if len(t.Value()) > 1 {
		violations = append(violations, "A tablist should not have more than one selected tab.")
	}
	return violations
}
