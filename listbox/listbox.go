// Package listbox implements the listbox widget pattern: a single- or
// multi-select list of options driven by keyboard and pointer.
package listbox

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
)

var typeaheadKey = regexp.MustCompile(`^.$`)

var (
	ctrlOrMeta      = []event.Modifier{event.Ctrl, event.Meta}
	ctrlOrMetaShift = []event.Modifier{event.Ctrl | event.Shift, event.Meta | event.Shift}
	shiftOnly       = []event.Modifier{event.Shift}
	plainOrShift    = []event.Modifier{event.None, event.Shift}
)

// Inputs configures a listbox.
type Inputs[V comparable] struct {
	list.Inputs[V]

	// Readonly listboxes navigate but never change their selection.
	Readonly signal.Signal[bool]
}

// Listbox is the listbox pattern.
type Listbox[V comparable] struct {
	*list.List[V]
	readonly signal.Signal[bool]
}

func New[V comparable](in Inputs[V]) *Listbox[V] {
	readonly := in.Readonly
	if readonly == nil {
		readonly = signal.Const(false)
	}
	return &Listbox[V]{List: list.New(in.Inputs), readonly: readonly}
}

func (b *Listbox[V]) Readonly() bool { return b.readonly.Get() }

func (b *Listbox[V]) followFocus() bool {
	return b.Inputs().SelectionMode.Get() == list.Follow
}

// Keydown builds the keyboard dispatch table for the current
// configuration.
func (b *Listbox[V]) Keydown() *event.KeyboardManager {
	m := event.NewKeyboard()
	prev, next := b.PrevKey(), b.NextKey()
	search := func(opts list.NavOptions) func(event.Key) {
		return func(e event.Key) { b.Search(e.Name, opts) }
	}

	if b.Readonly() {
		return m.
			On(prev, func(event.Key) { b.Prev(list.NavOptions{}) }).
			On(next, func(event.Key) { b.Next(list.NavOptions{}) }).
			On(event.KeyHome, func(event.Key) { b.First(list.NavOptions{}) }).
			On(event.KeyEnd, func(event.Key) { b.Last(list.NavOptions{}) }).
			OnPattern(plainOrShift, typeaheadKey, search(list.NavOptions{}))
	}

	move := list.NavOptions{SelectOne: b.followFocus()}
	m.On(prev, func(event.Key) { b.Prev(move) }).
		On(next, func(event.Key) { b.Next(move) }).
		On(event.KeyHome, func(event.Key) { b.First(move) }).
		On(event.KeyEnd, func(event.Key) { b.Last(move) })

	multi := b.Multi()
	typing := b.IsTyping()

	if multi {
		rangeInPlace := func(event.Key) {
			b.UpdateSelection(list.NavOptions{SelectRange: true, KeepAnchor: true})
		}
		m.OnMods([]event.Modifier{event.Any}, event.KeyShift, func(event.Key) { b.Anchor(b.ActiveIndex()) }).
			OnMods(shiftOnly, prev, func(event.Key) { b.Prev(list.NavOptions{SelectRange: true}) }).
			OnMods(shiftOnly, next, func(event.Key) { b.Next(list.NavOptions{SelectRange: true}) }).
			OnMods(ctrlOrMetaShift, event.KeyHome, func(event.Key) {
				b.First(list.NavOptions{SelectRange: true, KeepAnchor: true})
			}).
			OnMods(ctrlOrMetaShift, event.KeyEnd, func(event.Key) {
				b.Last(list.NavOptions{SelectRange: true, KeepAnchor: true})
			}).
			OnMods(shiftOnly, event.KeyEnter, rangeInPlace)
		if !typing {
			m.OnMods(shiftOnly, event.KeySpace, rangeInPlace)
		}
	}

	switch {
	case !b.followFocus() && multi:
		if !typing {
			m.On(event.KeySpace, func(event.Key) { b.Toggle(nil) })
		}
		m.On(event.KeyEnter, func(event.Key) { b.Toggle(nil) }).
			OnMods(ctrlOrMeta, "a", func(event.Key) { b.ToggleAll() })
	case !b.followFocus():
		if !typing {
			m.On(event.KeySpace, func(event.Key) { b.ToggleOne() })
		}
		m.On(event.KeyEnter, func(event.Key) { b.ToggleOne() })
	case multi:
		m.OnMods(ctrlOrMeta, prev, func(event.Key) { b.Prev(list.NavOptions{}) }).
			OnMods(ctrlOrMeta, next, func(event.Key) { b.Next(list.NavOptions{}) }).
			OnMods(ctrlOrMeta, event.KeySpace, func(event.Key) { b.Toggle(nil) }).
			OnMods(ctrlOrMeta, event.KeyEnter, func(event.Key) { b.Toggle(nil) }).
			OnMods(ctrlOrMeta, event.KeyHome, func(event.Key) { b.First(list.NavOptions{}) }).
			OnMods(ctrlOrMeta, event.KeyEnd, func(event.Key) { b.Last(list.NavOptions{}) }).
			OnMods(ctrlOrMeta, "a", func(event.Key) {
				b.ToggleAll()
				b.Select(nil)
			})
	}

	return m.OnPattern(plainOrShift, typeaheadKey, search(move))
}

// Pointerdown builds the pointer dispatch table for the current
// configuration.
func (b *Listbox[V]) Pointerdown() *event.PointerManager {
	m := event.NewPointer()
	gotoWith := func(opts list.NavOptions) func(event.Pointer) {
		return func(e event.Pointer) { b.GotoTarget(e.Target, opts) }
	}

	if b.Readonly() {
		return m.On(gotoWith(list.NavOptions{}))
	}
	if b.Multi() {
		m.OnMods(shiftOnly, gotoWith(list.NavOptions{SelectRange: true}))
	}
	switch {
	case b.followFocus() && b.Multi():
		return m.On(gotoWith(list.NavOptions{SelectOne: true})).
			OnMods([]event.Modifier{event.Ctrl}, gotoWith(list.NavOptions{Toggle: true}))
	case b.followFocus():
		return m.On(gotoWith(list.NavOptions{SelectOne: true}))
	default:
		return m.On(gotoWith(list.NavOptions{Toggle: true}))
	}
}

// OnKeydown dispatches e unless the listbox is disabled.
func (b *Listbox[V]) OnKeydown(e event.Key) bool {
	if b.Disabled() {
		return false
	}
	return b.Keydown().Handle(e)
}

// OnPointerdown dispatches e unless the listbox is disabled.
func (b *Listbox[V]) OnPointerdown(e event.Pointer) bool {
	if b.Disabled() {
		return false
	}
	return b.Pointerdown().Handle(e)
}

// SetDefaultState picks the initial active option.
func (b *Listbox[V]) SetDefaultState() {
	b.SetDefaultActive()
}

// Validate reports accessibility violations in the current state.
func (b *Listbox[V]) Validate() []string {
	var violations []string
	values := b.Value()
	if !b.Multi() && len(values) > 1 {
		names := make([]string, 0, len(values))
		for _, v := range values {
			names = append(names, fmt.Sprint(v))
		}
		violations = append(violations, fmt.Sprintf(
			"A single-select listbox should not have multiple selected options. Selected options: %s",
			strings.Join(names, ", ")))
	}
	if b.Inputs().SkipDisabled.Get() {
		for _, it := range b.SelectedItems() {
			if it.Disabled {
				violations = append(violations, fmt.Sprintf(
					"Selected option %q is disabled and unreachable while disabled options are skipped.", it.ID))
			}
		}
	}
	return violations
}
