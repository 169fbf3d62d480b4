package list

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Typeahead jumps to the next item whose search term starts with the
// characters typed so far. The buffer starts over once the typeahead delay
// passes without a keystroke; there is no timer, the next keystroke notices
// the gap itself.
type Typeahead[V comparable] struct {
	in    Inputs[V]
	focus *Focus[V]
	nav   *Navigation[V]

	query string
	start int // active index when the current search began, -1 when idle
	last  time.Time
}

func NewTypeahead[V comparable](in Inputs[V], focus *Focus[V], nav *Navigation[V]) *Typeahead[V] {
	return &Typeahead[V]{in: in, focus: focus, nav: nav, start: -1}
}

func (t *Typeahead[V]) now() time.Time {
	if t.in.Now != nil {
		return t.in.Now()
	}
	return time.Now()
}

func (t *Typeahead[V]) expired(now time.Time) bool {
	return t.query != "" && now.Sub(t.last) > t.in.TypeaheadDelay.Get()
}

// IsTyping reports whether a search is in progress.
func (t *Typeahead[V]) IsTyping() bool {
	return t.query != "" && !t.expired(t.now())
}

// Query returns the current search buffer.
func (t *Typeahead[V]) Query() string {
	if t.expired(t.now()) {
		return ""
	}
	return t.query
}

// Reset drops the buffer.
func (t *Typeahead[V]) Reset() {
	t.query = ""
	t.start = -1
}

// Search appends char to the buffer and moves to the first matching item.
// It returns false when char was not consumed: anything but a single
// character, or a space while no search is in progress.
func (t *Typeahead[V]) Search(char string, opts FocusOptions) bool {
	if utf8.RuneCountInString(char) != 1 {
		return false
	}
	now := t.now()
	if t.expired(now) {
		t.Reset()
	}
	if t.query == "" && char == " " {
		return false
	}
	if t.start < 0 {
		t.start = t.focus.ActiveIndex()
	}
	t.query += strings.ToLower(char)
	t.last = now

	if item := t.match(); item != nil {
		t.nav.Goto(item, opts)
	}
	return true
}

// match scans from just after the search's start item, wrapping, and
// checks the start item last.
func (t *Typeahead[V]) match() *Item[V] {
	items := t.focus.Items()
	var order []*Item[V]
	if t.start < 0 || t.start >= len(items) {
		order = items
	} else {
		order = make([]*Item[V], 0, len(items))
		order = append(order, items[t.start+1:]...)
		order = append(order, items[:t.start]...)
		order = append(order, items[t.start])
	}
	for _, it := range order {
		if !t.focus.IsFocusable(it) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(it.SearchTerm), t.query) {
			return it
		}
	}
	return nil
}
