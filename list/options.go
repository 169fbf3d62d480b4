package list

import (
	"fmt"
	"time"

	"github.com/bernd/ariabox/signal"
)

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

type TextDirection string

const (
	LTR TextDirection = "ltr"
	RTL TextDirection = "rtl"
)

// FocusMode selects how the active item is exposed to the host.
type FocusMode string

const (
	// Roving moves native focus onto the active item's element.
	Roving FocusMode = "roving"
	// ActiveDescendant keeps focus on the container and exposes the
	// active item's id instead.
	ActiveDescendant FocusMode = "activedescendant"
)

// SelectionMode decides whether selection follows navigation.
type SelectionMode string

const (
	Follow   SelectionMode = "follow"
	Explicit SelectionMode = "explicit"
)

// DefaultTypeaheadDelay is the idle window after which a typeahead buffer
// starts over.
const DefaultTypeaheadDelay = 500 * time.Millisecond

func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(s); o {
	case Vertical, Horizontal:
		return o, nil
	}
	return "", fmt.Errorf("invalid orientation %q", s)
}

func ParseTextDirection(s string) (TextDirection, error) {
	switch d := TextDirection(s); d {
	case LTR, RTL:
		return d, nil
	}
	return "", fmt.Errorf("invalid text direction %q", s)
}

func ParseFocusMode(s string) (FocusMode, error) {
	switch m := FocusMode(s); m {
	case Roving, ActiveDescendant:
		return m, nil
	}
	return "", fmt.Errorf("invalid focus mode %q", s)
}

func ParseSelectionMode(s string) (SelectionMode, error) {
	switch m := SelectionMode(s); m {
	case Follow, Explicit:
		return m, nil
	}
	return "", fmt.Errorf("invalid selection mode %q", s)
}

// Inputs is the configuration and state every list behavior reads.
// All fields except Element and Now must be set; NewInputs fills them with
// defaults.
type Inputs[V comparable] struct {
	// Element is the list container, focused under ActiveDescendant.
	Element Element

	Items      signal.Signal[[]*Item[V]]
	ActiveItem signal.WritableSignal[*Item[V]]
	Value      signal.WritableSignal[[]V]

	Disabled       signal.Signal[bool]
	SkipDisabled   signal.Signal[bool]
	Wrap           signal.Signal[bool]
	Multi          signal.Signal[bool]
	Orientation    signal.Signal[Orientation]
	TextDirection  signal.Signal[TextDirection]
	FocusMode      signal.Signal[FocusMode]
	SelectionMode  signal.Signal[SelectionMode]
	TypeaheadDelay signal.Signal[time.Duration]

	// Now is the clock used for the typeahead idle window. Nil means
	// time.Now.
	Now func() time.Time
}

// NewInputs returns inputs over a fixed item sequence with default
// settings: wrapping, skipping disabled items, roving focus, explicit
// single selection, vertical, left-to-right.
func NewInputs[V comparable](items ...*Item[V]) Inputs[V] {
	return Inputs[V]{
		Items:          signal.New(items),
		ActiveItem:     signal.New[*Item[V]](nil),
		Value:          signal.New[[]V](nil),
		Disabled:       signal.Const(false),
		SkipDisabled:   signal.Const(true),
		Wrap:           signal.Const(true),
		Multi:          signal.Const(false),
		Orientation:    signal.Const(Vertical),
		TextDirection:  signal.Const(LTR),
		FocusMode:      signal.Const(Roving),
		SelectionMode:  signal.Const(Explicit),
		TypeaheadDelay: signal.Const(DefaultTypeaheadDelay),
	}
}
