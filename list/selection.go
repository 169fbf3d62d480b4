package list

import "slices"

// SelectOptions tunes a single selection change.
type SelectOptions struct {
	// NoAnchor keeps the current range start instead of re-anchoring at the
	// selected item.
	NoAnchor bool
}

// Selection maintains the selected values. Values keep insertion order.
// Whether selection follows navigation is decided by the callers; this
// type only provides the primitives.
type Selection[V comparable] struct {
	in    Inputs[V]
	focus *Focus[V]

	rangeStart int
	rangeEnd   int
}

func NewSelection[V comparable](in Inputs[V], focus *Focus[V]) *Selection[V] {
	return &Selection[V]{in: in, focus: focus}
}

// RangeStartIndex is the anchor range selections are measured from.
func (s *Selection[V]) RangeStartIndex() int { return s.rangeStart }

// SetRangeStartIndex moves the anchor without touching the selection.
func (s *Selection[V]) SetRangeStartIndex(i int) { s.rangeStart = i }

// BeginRangeSelection anchors a new range at index.
func (s *Selection[V]) BeginRangeSelection(index int) {
	s.rangeStart = index
	s.rangeEnd = index
}

// IsSelected reports whether item's value is selected.
func (s *Selection[V]) IsSelected(item *Item[V]) bool {
	return item != nil && slices.Contains(s.in.Value.Get(), item.Value)
}

// SelectedItems returns the items whose values are selected, in item order.
func (s *Selection[V]) SelectedItems() []*Item[V] {
	values := s.in.Value.Get()
	var out []*Item[V]
	for _, it := range s.focus.Items() {
		if slices.Contains(values, it.Value) {
			out = append(out, it)
		}
	}
	return out
}

func (s *Selection[V]) canChange(item *Item[V]) bool {
	return item != nil && !item.Disabled && item.Selectable()
}

func (s *Selection[V]) orActive(item *Item[V]) *Item[V] {
	if item == nil {
		return s.focus.ActiveItem()
	}
	return item
}

// Select adds item (or the active item when nil) to the selection. A
// single-select list replaces its value.
func (s *Selection[V]) Select(item *Item[V], opts SelectOptions) {
	item = s.orActive(item)
	if !s.canChange(item) || s.IsSelected(item) {
		return
	}
	if !opts.NoAnchor {
		s.BeginRangeSelection(IndexOf(s.focus.Items(), item))
	}
	if !s.in.Multi.Get() {
		s.in.Value.Set([]V{item.Value})
		return
	}
	values := slices.Clone(s.in.Value.Get())
	s.in.Value.Set(append(values, item.Value))
}

// Deselect removes item (or the active item when nil) from the selection.
func (s *Selection[V]) Deselect(item *Item[V]) {
	item = s.orActive(item)
	if !s.canChange(item) || !s.IsSelected(item) {
		return
	}
	s.removeValue(item.Value)
}

func (s *Selection[V]) removeValue(v V) {
	values := slices.DeleteFunc(slices.Clone(s.in.Value.Get()), func(cur V) bool { return cur == v })
	s.in.Value.Set(values)
}

// Toggle flips item's (or the active item's) membership.
func (s *Selection[V]) Toggle(item *Item[V]) {
	item = s.orActive(item)
	if item == nil {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
	} else {
		s.Select(item, SelectOptions{})
	}
}

// ToggleOne deselects the active item if selected, otherwise makes it the
// only selected item.
func (s *Selection[V]) ToggleOne() {
	item := s.focus.ActiveItem()
	if item == nil {
		return
	}
	if s.IsSelected(item) {
		s.Deselect(item)
	} else {
		s.SelectOne()
	}
}

// SelectOne makes the active item the only selected item. Disabled items
// already selected in a multi-select list stay selected.
func (s *Selection[V]) SelectOne() {
	item := s.focus.ActiveItem()
	if !s.canChange(item) {
		return
	}
	if !s.in.Multi.Get() {
		s.Select(item, SelectOptions{})
		return
	}
	s.DeselectAll()
	s.Select(item, SelectOptions{})
}

// SelectAll selects every selectable item of a multi-select list.
func (s *Selection[V]) SelectAll() {
	if !s.in.Multi.Get() {
		return
	}
	for _, it := range s.focus.Items() {
		s.Select(it, SelectOptions{NoAnchor: true})
	}
	s.BeginRangeSelection(s.focus.ActiveIndex())
}

// DeselectAll clears every value except those of disabled or unselectable
// items. Values with no matching item are dropped.
func (s *Selection[V]) DeselectAll() {
	items := s.focus.Items()
	for _, v := range slices.Clone(s.in.Value.Get()) {
		idx := slices.IndexFunc(items, func(it *Item[V]) bool { return it.Value == v })
		if idx < 0 {
			s.removeValue(v)
			continue
		}
		s.Deselect(items[idx])
	}
}

// ToggleAll deselects everything when every selectable item is selected
// and selects everything otherwise.
func (s *Selection[V]) ToggleAll() {
	for _, it := range s.focus.Items() {
		if s.canChange(it) && !s.IsSelected(it) {
			s.SelectAll()
			return
		}
	}
	s.DeselectAll()
}

// SelectRange selects the span between the range start and the active
// item and deselects what the previous span covered beyond it. Disabled
// and unselectable items inside the span are skipped.
func (s *Selection[V]) SelectRange(opts SelectOptions) {
	if !opts.NoAnchor && s.focus.PrevActiveIndex() == s.rangeStart {
		s.BeginRangeSelection(s.rangeStart)
	}

	inRange := s.itemsFrom(s.rangeStart)
	for _, it := range s.itemsFrom(s.rangeEnd) {
		if !slices.Contains(inRange, it) {
			s.Deselect(it)
		}
	}
	for _, it := range inRange {
		s.Select(it, SelectOptions{NoAnchor: true})
	}
	if len(inRange) > 0 {
		s.rangeEnd = IndexOf(s.focus.Items(), inRange[len(inRange)-1])
	}
}

// SelectFromAnchor selects from the last committed anchor to the active
// item, keeping the anchor.
func (s *Selection[V]) SelectFromAnchor() {
	s.SelectRange(SelectOptions{NoAnchor: true})
}

// SelectFromActive selects from the item that was active before the last
// navigation, restarting the range there when it began at that item.
func (s *Selection[V]) SelectFromActive() {
	s.SelectRange(SelectOptions{})
}

// itemsFrom returns the items between index and the active item, ordered
// from index toward the active item.
func (s *Selection[V]) itemsFrom(index int) []*Item[V] {
	items := s.focus.Items()
	active := s.focus.ActiveIndex()
	if index < 0 || active < 0 || index >= len(items) {
		return nil
	}
	lo, hi := min(index, active), max(index, active)
	span := slices.Clone(items[lo : hi+1])
	if active < index {
		slices.Reverse(span)
	}
	return span
}
