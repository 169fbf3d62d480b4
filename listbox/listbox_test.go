package listbox

import (
	"testing"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type option struct{ name string }

func (o *option) Focus() {}

type setup struct {
	box      *Listbox[string]
	items    []*list.Item[string]
	value    *signal.Cell[[]string]
	multi    *signal.Cell[bool]
	mode     *signal.Cell[list.SelectionMode]
	orient   *signal.Cell[list.Orientation]
	dir      *signal.Cell[list.TextDirection]
	readonly *signal.Cell[bool]
}

func newSetup(names ...string) *setup {
	s := &setup{
		value:    signal.New[[]string](nil),
		multi:    signal.New(false),
		mode:     signal.New(list.Explicit),
		orient:   signal.New(list.Vertical),
		dir:      signal.New(list.LTR),
		readonly: signal.New(false),
	}
	for _, n := range names {
		s.items = append(s.items, &list.Item[string]{
			ID: "opt-" + n, Element: &option{name: n}, Value: n, SearchTerm: n,
		})
	}
	in := list.NewInputs(s.items...)
	in.Value = s.value
	in.Multi = s.multi
	in.SelectionMode = s.mode
	in.Orientation = s.orient
	in.TextDirection = s.dir
	s.box = New(Inputs[string]{Inputs: in, Readonly: s.readonly})
	s.box.SetDefaultState()
	return s
}

func (s *setup) key(name string, mods ...event.Modifier) bool {
	var m event.Modifier
	for _, mod := range mods {
		m |= mod
	}
	return s.box.OnKeydown(event.Key{Name: name, Mods: m})
}

func (s *setup) click(i int, mods ...event.Modifier) bool {
	var m event.Modifier
	for _, mod := range mods {
		m |= mod
	}
	return s.box.OnPointerdown(event.Pointer{Kind: event.Down, Target: s.items[i].Element, Mods: m})
}

func (s *setup) active() string {
	if it := s.box.ActiveItem(); it != nil {
		return it.Value
	}
	return ""
}

func TestListbox_ExplicitSingle(t *testing.T) {
	s := newSetup("Apple", "Banana", "Cherry")

	s.key(event.KeyArrowDown)
	assert.Equal(t, "Banana", s.active())
	assert.Empty(t, s.value.Get(), "explicit mode does not follow")

	s.key(event.KeySpace)
	assert.Equal(t, []string{"Banana"}, s.value.Get())
	s.key(event.KeySpace)
	assert.Empty(t, s.value.Get())

	s.key(event.KeyEnd)
	s.key(event.KeyEnter)
	assert.Equal(t, []string{"Cherry"}, s.value.Get())
}

func TestListbox_FollowSingle(t *testing.T) {
	s := newSetup("Apple", "Banana", "Cherry")
	s.mode.Set(list.Follow)

	s.key(event.KeyArrowDown)
	assert.Equal(t, []string{"Banana"}, s.value.Get())
	s.key(event.KeyHome)
	assert.Equal(t, []string{"Apple"}, s.value.Get())
	s.key("c")
	assert.Equal(t, []string{"Cherry"}, s.value.Get())
}

func TestListbox_HorizontalRTL(t *testing.T) {
	s := newSetup("a", "b", "c")
	s.orient.Set(list.Horizontal)

	s.key(event.KeyArrowRight)
	assert.Equal(t, "b", s.active())

	s.dir.Set(list.RTL)
	s.key(event.KeyArrowRight)
	assert.Equal(t, "a", s.active())
	assert.False(t, s.key(event.KeyArrowDown))
}

func TestListbox_MultiExplicitKeyboardRange(t *testing.T) {
	s := newSetup("Apple", "Apricot", "Banana", "Blackberry", "Blueberry")
	s.multi.Set(true)

	s.key(event.KeyShift, event.Shift)
	s.key(event.KeyArrowDown, event.Shift)
	s.key(event.KeyArrowDown, event.Shift)
	assert.Equal(t, []string{"Apple", "Apricot", "Banana"}, s.value.Get())

	s.key(event.KeyArrowUp, event.Shift)
	assert.Equal(t, []string{"Apple", "Apricot"}, s.value.Get())

	s.key(event.KeyEnd, event.Ctrl, event.Shift)
	assert.Equal(t, []string{"Apple", "Apricot", "Banana", "Blackberry", "Blueberry"}, s.value.Get())
}

func TestListbox_MultiExplicitToggleAll(t *testing.T) {
	s := newSetup("a", "b", "c")
	s.multi.Set(true)

	s.key("a", event.Ctrl)
	assert.Equal(t, []string{"a", "b", "c"}, s.value.Get())
	s.key("A", event.Meta)
	assert.Empty(t, s.value.Get())
}

func TestListbox_MultiFollow(t *testing.T) {
	s := newSetup("a", "b", "c", "d")
	s.multi.Set(true)
	s.mode.Set(list.Follow)

	s.key(event.KeyArrowDown)
	assert.Equal(t, []string{"b"}, s.value.Get())

	s.key(event.KeyArrowDown, event.Ctrl)
	assert.Equal(t, "c", s.active())
	assert.Equal(t, []string{"b"}, s.value.Get(), "ctrl moves without selecting")

	s.key(event.KeySpace, event.Ctrl)
	assert.Equal(t, []string{"b", "c"}, s.value.Get())
}

func TestListbox_SpaceGoesToTypeaheadWhileTyping(t *testing.T) {
	s := newSetup("New York", "Newark", "Oslo")
	s.multi.Set(true)
	s.box.Inputs().ActiveItem.Set(s.items[2])

	s.key("n")
	s.key(event.KeySpace)
	assert.Empty(t, s.value.Get(), "space extends the search instead of toggling")
	assert.Equal(t, "n ", s.box.Typeahead.Query())
}

func TestListbox_Readonly(t *testing.T) {
	s := newSetup("a", "b", "c")
	s.mode.Set(list.Follow)
	s.readonly.Set(true)

	s.key(event.KeyArrowDown)
	s.key(event.KeySpace)
	s.key(event.KeyEnter)
	s.click(2)
	assert.Equal(t, "c", s.active())
	assert.Empty(t, s.value.Get())
}

func TestListbox_Pointer(t *testing.T) {
	t.Run("explicit single toggles", func(t *testing.T) {
		s := newSetup("a", "b", "c")
		s.click(1)
		assert.Equal(t, []string{"b"}, s.value.Get())
		s.click(1)
		assert.Empty(t, s.value.Get())
	})

	t.Run("multi shift click extends range", func(t *testing.T) {
		s := newSetup("a", "b", "c", "d")
		s.multi.Set(true)
		s.mode.Set(list.Follow)
		s.click(1)
		s.click(3, event.Shift)
		assert.Equal(t, []string{"b", "c", "d"}, s.value.Get())
	})

	t.Run("multi follow ctrl click toggles", func(t *testing.T) {
		s := newSetup("a", "b", "c")
		s.multi.Set(true)
		s.mode.Set(list.Follow)
		s.click(0)
		s.click(2, event.Ctrl)
		assert.Equal(t, []string{"a", "c"}, s.value.Get())
	})

	t.Run("foreign target ignored", func(t *testing.T) {
		s := newSetup("a")
		s.box.OnPointerdown(event.Pointer{Kind: event.Down, Target: &option{}})
		assert.Empty(t, s.value.Get())
	})
}

func TestListbox_DisabledIgnoresInput(t *testing.T) {
	s := newSetup("a", "b")
	for _, it := range s.items {
		it.Disabled = true
	}
	assert.False(t, s.key(event.KeyArrowDown))
	assert.False(t, s.click(1))
}

func TestListbox_Validate(t *testing.T) {
	s := newSetup("a", "b")
	assert.Empty(t, s.box.Validate())

	s.value.Set([]string{"a", "b"})
	violations := s.box.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "Selected options: a, b")

	s.value.Set([]string{"b"})
	s.items[1].Disabled = true
	violations = s.box.Validate()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], `"opt-b"`)
}

func TestListbox_KeydownRebuiltFromConfig(t *testing.T) {
	s := newSetup("a", "b")
	single := s.box.Keydown().Len()
	s.multi.Set(true)
	assert.Greater(t, s.box.Keydown().Len(), single)
}
