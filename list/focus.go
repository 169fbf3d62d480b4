package list

// FocusOptions tunes a single focus change.
type FocusOptions struct {
	// NoFocus updates the active item without calling the element's focus
	// primitive.
	NoFocus bool
}

// Focus tracks the active item and derives tab indices and the active
// descendant for the configured focus mode.
type Focus[V comparable] struct {
	in         Inputs[V]
	prevActive *Item[V]
}

func NewFocus[V comparable](in Inputs[V]) *Focus[V] {
	return &Focus[V]{in: in}
}

func (f *Focus[V]) Items() []*Item[V]    { return f.in.Items.Get() }
func (f *Focus[V]) ActiveItem() *Item[V] { return f.in.ActiveItem.Get() }

// ActiveIndex is the active item's current position, or -1 when nothing is
// active or the active item left the sequence.
func (f *Focus[V]) ActiveIndex() int {
	return IndexOf(f.Items(), f.ActiveItem())
}

// PrevActiveIndex is the position of the item that was active before the
// last successful focus change.
func (f *Focus[V]) PrevActiveIndex() int {
	return IndexOf(f.Items(), f.prevActive)
}

// IsListDisabled reports whether the widget is disabled or has no enabled
// item.
func (f *Focus[V]) IsListDisabled() bool {
	if f.in.Disabled.Get() {
		return true
	}
	for _, it := range f.Items() {
		if !it.Disabled {
			return false
		}
	}
	return true
}

// IsFocusable reports whether navigation may land on item. Disabled items
// stay reachable when the widget does not skip them.
func (f *Focus[V]) IsFocusable(item *Item[V]) bool {
	if item == nil {
		return false
	}
	return !item.Disabled || !f.in.SkipDisabled.Get()
}

// TabIndex is the container's tab index. A disabled list stays a tab stop.
func (f *Focus[V]) TabIndex() int {
	if f.IsListDisabled() {
		return 0
	}
	if f.in.FocusMode.Get() == ActiveDescendant {
		return 0
	}
	return -1
}

// ItemTabIndex is 0 for the active item under roving focus and -1
// otherwise.
func (f *Focus[V]) ItemTabIndex(item *Item[V]) int {
	if f.IsListDisabled() || f.in.FocusMode.Get() == ActiveDescendant {
		return -1
	}
	if item != nil && item == f.ActiveItem() {
		return 0
	}
	return -1
}

// ActiveDescendant is the id the container exposes under ActiveDescendant
// focus, or "".
func (f *Focus[V]) ActiveDescendant() string {
	if f.IsListDisabled() || f.in.FocusMode.Get() == Roving {
		return ""
	}
	if it := f.ActiveItem(); it != nil {
		return it.ID
	}
	return ""
}

// Focus makes item active. It does nothing and returns false when the list
// is disabled or item is not focusable.
func (f *Focus[V]) Focus(item *Item[V], opts FocusOptions) bool {
	if f.IsListDisabled() || !f.IsFocusable(item) {
		return false
	}
	f.prevActive = f.ActiveItem()
	f.in.ActiveItem.Set(item)

	if opts.NoFocus {
		return true
	}
	if f.in.FocusMode.Get() == Roving {
		if item.Element != nil {
			item.Element.Focus()
		}
	} else if f.in.Element != nil {
		f.in.Element.Focus()
	}
	return true
}

// Unfocus clears the active item.
func (f *Focus[V]) Unfocus() {
	f.prevActive = f.ActiveItem()
	f.in.ActiveItem.Set(nil)
}
