package list

import (
	"time"

	"github.com/bernd/ariabox/signal"
)

type fakeElement struct {
	name    string
	focused int
}

func (e *fakeElement) Focus() { e.focused++ }

func makeItems(names ...string) []*Item[string] {
	items := make([]*Item[string], 0, len(names))
	for _, n := range names {
		items = append(items, &Item[string]{
			ID:         "item-" + n,
			Element:    &fakeElement{name: n},
			Value:      n,
			SearchTerm: n,
		})
	}
	return items
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type listSetup struct {
	list   *List[string]
	items  []*Item[string]
	value  *signal.Cell[[]string]
	active *signal.Cell[*Item[string]]
	wrap   *signal.Cell[bool]
	skip   *signal.Cell[bool]
	multi  *signal.Cell[bool]
	mode   *signal.Cell[FocusMode]
	clock  *fakeClock
	host   *fakeElement
}

func newListSetup(names ...string) *listSetup {
	s := &listSetup{
		items:  makeItems(names...),
		value:  signal.New[[]string](nil),
		active: signal.New[*Item[string]](nil),
		wrap:   signal.New(true),
		skip:   signal.New(true),
		multi:  signal.New(false),
		mode:   signal.New(Roving),
		clock:  &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)},
		host:   &fakeElement{name: "host"},
	}
	in := NewInputs(s.items...)
	in.Element = s.host
	in.Value = s.value
	in.ActiveItem = s.active
	in.Wrap = s.wrap
	in.SkipDisabled = s.skip
	in.Multi = s.multi
	in.FocusMode = s.mode
	in.Now = s.clock.Now
	s.list = New(in)
	if len(s.items) > 0 {
		s.active.Set(s.items[0])
	}
	return s
}

func (s *listSetup) activeValue() string {
	if it := s.list.ActiveItem(); it != nil {
		return it.Value
	}
	return ""
}
