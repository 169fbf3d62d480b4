package list

import "github.com/bernd/ariabox/signal"

// NavOptions describes the selection update that accompanies a navigation.
type NavOptions struct {
	Toggle      bool
	Select      bool
	SelectOne   bool
	SelectRange bool

	// KeepAnchor leaves the anchor where it is after the update.
	KeepAnchor bool
	// NoFocus skips the element focus primitive.
	NoFocus bool
}

func (o NavOptions) focus() FocusOptions {
	return FocusOptions{NoFocus: o.NoFocus}
}

// List composes focus, navigation, selection and typeahead into the single
// API widget patterns talk to.
type List[V comparable] struct {
	Focus      *Focus[V]
	Navigation *Navigation[V]
	Selection  *Selection[V]
	Typeahead  *Typeahead[V]

	in     Inputs[V]
	wrap   bool
	anchor int
}

// New builds a list over in. The list's effective wrap is the configured
// wrap, switched off for the duration of a range selection.
func New[V comparable](in Inputs[V]) *List[V] {
	l := &List[V]{wrap: true}
	configured := in.Wrap
	in.Wrap = signal.Func[bool](func() bool { return configured.Get() && l.wrap })

	l.in = in
	l.Focus = NewFocus(in)
	l.Navigation = NewNavigation(in, l.Focus)
	l.Selection = NewSelection(in, l.Focus)
	l.Typeahead = NewTypeahead(in, l.Focus, l.Navigation)
	return l
}

// Inputs returns the inputs the behaviors read, with the effective wrap.
func (l *List[V]) Inputs() Inputs[V] { return l.in }

func (l *List[V]) Items() []*Item[V]        { return l.in.Items.Get() }
func (l *List[V]) Value() []V               { return l.in.Value.Get() }
func (l *List[V]) ActiveItem() *Item[V]     { return l.Focus.ActiveItem() }
func (l *List[V]) ActiveIndex() int         { return l.Focus.ActiveIndex() }
func (l *List[V]) TabIndex() int            { return l.Focus.TabIndex() }
func (l *List[V]) ActiveDescendant() string { return l.Focus.ActiveDescendant() }
func (l *List[V]) Disabled() bool           { return l.Focus.IsListDisabled() }
func (l *List[V]) IsTyping() bool           { return l.Typeahead.IsTyping() }
func (l *List[V]) Multi() bool              { return l.in.Multi.Get() }

func (l *List[V]) ItemTabIndex(item *Item[V]) int { return l.Focus.ItemTabIndex(item) }
func (l *List[V]) IsFocusable(item *Item[V]) bool { return l.Focus.IsFocusable(item) }
func (l *List[V]) IsSelected(item *Item[V]) bool  { return l.Selection.IsSelected(item) }
func (l *List[V]) SelectedItems() []*Item[V]      { return l.Selection.SelectedItems() }
func (l *List[V]) IndexOf(item *Item[V]) int      { return IndexOf(l.Items(), item) }

// ItemFor maps a host element back to the item that owns it.
func (l *List[V]) ItemFor(target any) *Item[V] {
	if target == nil {
		return nil
	}
	for _, it := range l.Items() {
		if it.Element != nil && any(it.Element) == target {
			return it
		}
	}
	return nil
}

func (l *List[V]) First(opts NavOptions) {
	l.navigate(opts, func() { l.Navigation.First(opts.focus()) })
}

func (l *List[V]) Last(opts NavOptions) {
	l.navigate(opts, func() { l.Navigation.Last(opts.focus()) })
}

func (l *List[V]) Next(opts NavOptions) {
	l.navigate(opts, func() { l.Navigation.Next(opts.focus()) })
}

func (l *List[V]) Prev(opts NavOptions) {
	l.navigate(opts, func() { l.Navigation.Prev(opts.focus()) })
}

func (l *List[V]) Goto(item *Item[V], opts NavOptions) {
	l.navigate(opts, func() { l.Navigation.Goto(item, opts.focus()) })
}

// Search feeds one typed character to typeahead.
func (l *List[V]) Search(char string, opts NavOptions) {
	l.navigate(opts, func() { l.Typeahead.Search(char, opts.focus()) })
}

// Unfocus clears the active item.
func (l *List[V]) Unfocus() { l.Focus.Unfocus() }

// Anchor sets the index range selections start from.
func (l *List[V]) Anchor(index int) { l.anchor = index }

// AnchorIndex returns the current anchor.
func (l *List[V]) AnchorIndex() int { return l.anchor }

func (l *List[V]) Select(item *Item[V])   { l.Selection.Select(item, SelectOptions{}) }
func (l *List[V]) Deselect(item *Item[V]) { l.Selection.Deselect(item) }
func (l *List[V]) Toggle(item *Item[V])   { l.Selection.Toggle(item) }
func (l *List[V]) ToggleOne()             { l.Selection.ToggleOne() }
func (l *List[V]) SelectOne()             { l.Selection.SelectOne() }
func (l *List[V]) SelectAll()             { l.Selection.SelectAll() }
func (l *List[V]) DeselectAll()           { l.Selection.DeselectAll() }
func (l *List[V]) ToggleAll()             { l.Selection.ToggleAll() }

// UpdateSelection applies the selection part of opts to the active item
// and re-seeds the anchor unless opts.KeepAnchor is set.
func (l *List[V]) UpdateSelection(opts NavOptions) {
	if opts.Toggle {
		l.Selection.Toggle(nil)
	}
	if opts.Select {
		l.Selection.Select(nil, SelectOptions{})
	}
	if opts.SelectOne {
		l.Selection.SelectOne()
	}
	if opts.SelectRange {
		l.Selection.SetRangeStartIndex(l.anchor)
		l.Selection.SelectRange(SelectOptions{NoAnchor: opts.KeepAnchor})
	}
	if !opts.KeepAnchor {
		l.anchor = l.Selection.RangeStartIndex()
	}
}

// navigate runs op and applies the selection update only when the active
// item actually moved. Wrap is off while a range selection is underway.
func (l *List[V]) navigate(opts NavOptions, op func()) {
	if opts.SelectRange {
		l.wrap = false
		l.Selection.SetRangeStartIndex(l.anchor)
	}
	defer func() { l.wrap = true }()

	before := l.Focus.ActiveItem()
	op()
	after := l.Focus.ActiveItem()
	if after != nil && after != before {
		l.UpdateSelection(opts)
	}
}

// SetDefaultActive makes the first selected focusable item active, falling
// back to the first focusable item.
func (l *List[V]) SetDefaultActive() {
	var first *Item[V]
	for _, it := range l.Items() {
		if !l.IsFocusable(it) {
			continue
		}
		if first == nil {
			first = it
		}
		if l.IsSelected(it) {
			l.in.ActiveItem.Set(it)
			return
		}
	}
	if first != nil {
		l.in.ActiveItem.Set(first)
	}
}

// PrevKey is the key that moves backward for the current orientation and
// text direction.
func (l *List[V]) PrevKey() string {
	if l.in.Orientation.Get() == Vertical {
		return "ArrowUp"
	}
	if l.in.TextDirection.Get() == RTL {
		return "ArrowRight"
	}
	return "ArrowLeft"
}

// NextKey is the key that moves forward for the current orientation and
// text direction.
func (l *List[V]) NextKey() string {
	if l.in.Orientation.Get() == Vertical {
		return "ArrowDown"
	}
	if l.in.TextDirection.Get() == RTL {
		return "ArrowLeft"
	}
	return "ArrowRight"
}

// GotoTarget moves to the item owning target. Pressing the already active
// item applies the selection update in place, since a press is a request
// to act on it rather than a navigation.
func (l *List[V]) GotoTarget(target any, opts NavOptions) bool {
	item := l.ItemFor(target)
	if item == nil {
		return false
	}
	if item == l.ActiveItem() {
		if l.IsFocusable(item) && !l.Disabled() {
			l.UpdateSelection(opts)
		}
		return true
	}
	l.Goto(item, opts)
	return true
}
