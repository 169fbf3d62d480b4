package list

// Navigation moves the active item among focusable items. Every operation
// returns whether the active item changed.
type Navigation[V comparable] struct {
	in    Inputs[V]
	focus *Focus[V]
}

func NewNavigation[V comparable](in Inputs[V], focus *Focus[V]) *Navigation[V] {
	return &Navigation[V]{in: in, focus: focus}
}

// Goto focuses item if it is focusable.
func (n *Navigation[V]) Goto(item *Item[V], opts FocusOptions) bool {
	prev := n.focus.ActiveItem()
	if !n.focus.Focus(item, opts) {
		return false
	}
	return prev != item
}

func (n *Navigation[V]) Next(opts FocusOptions) bool {
	return n.advance(1, opts)
}

func (n *Navigation[V]) Prev(opts FocusOptions) bool {
	return n.advance(-1, opts)
}

// PeekNext returns the item Next would move to, or nil.
func (n *Navigation[V]) PeekNext() *Item[V] { return n.peek(1) }

// PeekPrev returns the item Prev would move to, or nil.
func (n *Navigation[V]) PeekPrev() *Item[V] { return n.peek(-1) }

func (n *Navigation[V]) First(opts FocusOptions) bool {
	items := n.in.Items.Get()
	if it := n.scan(items, 0, 1); it != nil {
		return n.Goto(it, opts)
	}
	return false
}

func (n *Navigation[V]) Last(opts FocusOptions) bool {
	items := n.in.Items.Get()
	if it := n.scan(items, len(items)-1, -1); it != nil {
		return n.Goto(it, opts)
	}
	return false
}

func (n *Navigation[V]) advance(delta int, opts FocusOptions) bool {
	if it := n.peek(delta); it != nil {
		return n.Goto(it, opts)
	}
	return false
}

// scan returns the first focusable item from index from, stepping by delta,
// without wrapping.
func (n *Navigation[V]) scan(items []*Item[V], from, delta int) *Item[V] {
	for i := from; i >= 0 && i < len(items); i += delta {
		if n.focus.IsFocusable(items[i]) {
			return items[i]
		}
	}
	return nil
}

// peek visits at most every other item once, so a wrapping list with no
// focusable candidate terminates.
func (n *Navigation[V]) peek(delta int) *Item[V] {
	items := n.in.Items.Get()
	count := len(items)
	if count == 0 {
		return nil
	}

	start := n.focus.ActiveIndex()
	if start < 0 {
		if delta > 0 {
			return n.scan(items, 0, 1)
		}
		return n.scan(items, count-1, -1)
	}

	wrap := n.in.Wrap.Get()
	i := start
	for range count - 1 {
		i += delta
		if i < 0 || i >= count {
			if !wrap {
				return nil
			}
			i = (i + count) % count
		}
		if n.focus.IsFocusable(items[i]) {
			return items[i]
		}
	}
	return nil
}
