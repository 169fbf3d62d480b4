// Package list implements the behaviors shared by every composite widget:
// focus exposure, keyboard navigation, selection and typeahead, plus the
// List façade that composes them.
package list

// Element is the host's focusable UI element. Elements are compared by
// identity to map pointer targets back to items, so implementations must be
// comparable (pointer types in practice).
type Element interface {
	Focus()
}

// Item is the capability set a widget hands to the list behaviors. Each
// behavior reads only the fields it needs. An item's index is never stored;
// it is its position in the live item sequence at the time of reading.
type Item[V comparable] struct {
	ID         string
	Element    Element
	Value      V
	SearchTerm string
	Disabled   bool

	// Unselectable items can be navigated to but never enter the selection.
	Unselectable bool
}

// Selectable reports whether the item may be selected at all.
func (it *Item[V]) Selectable() bool {
	return !it.Unselectable
}

// IndexOf returns the position of item in items, or -1.
func IndexOf[V comparable](items []*Item[V], item *Item[V]) int {
	if item == nil {
		return -1
	}
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}
