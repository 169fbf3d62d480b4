package toolbar

import (
	"testing"

	"github.com/bernd/ariabox/event"
	"github.com/bernd/ariabox/list"
	"github.com/bernd/ariabox/radio"
	"github.com/bernd/ariabox/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type element struct{ name string }

func (e *element) Focus() {}

type setup struct {
	bar       *Toolbar
	align     *radio.Group[string]
	alignOpts []*list.Item[string]
	alignVal  *signal.Cell[[]string]
	wrap      *signal.Cell[bool]
	boldHits  int
	moreHits  int
	widgets   []*Widget
}

func newSetup() *setup {
	s := &setup{
		alignVal: signal.New[[]string](nil),
		wrap:     signal.New(false),
	}
	for _, n := range []string{"left", "center", "right"} {
		s.alignOpts = append(s.alignOpts, &list.Item[string]{
			ID: "align-" + n, Element: &element{name: n}, Value: n, SearchTerm: n,
		})
	}
	rin := list.NewInputs(s.alignOpts...)
	rin.Value = s.alignVal
	rin.Wrap = signal.Const(false)
	rin.Orientation = signal.Const(list.Horizontal)
	s.align = radio.New(radio.Inputs[string]{Inputs: rin, InToolbar: signal.Const(true)})

	s.widgets = []*Widget{
		{Item: list.Item[string]{ID: "bold", Element: &element{name: "bold"}, Value: "bold"}, OnTrigger: func() { s.boldHits++ }},
		{Item: list.Item[string]{ID: "align", Element: &element{name: "align"}, Value: "align"}, Group: s.align.Controls()},
		{Item: list.Item[string]{ID: "more", Element: &element{name: "more"}, Value: "more"}, OnTrigger: func() { s.moreHits++ }},
	}
	in := list.NewInputs[string]()
	in.Wrap = s.wrap
	in.Orientation = signal.Const(list.Horizontal)
	s.bar = New(Inputs{Inputs: in, Widgets: signal.Const(s.widgets)})
	s.bar.SetDefaultState()
	return s
}

func (s *setup) key(name string) bool {
	return s.bar.OnKeydown(event.Key{Name: name})
}

func (s *setup) widget() string {
	if w := s.bar.ActiveWidget(); w != nil {
		return w.ID
	}
	return ""
}

func (s *setup) radio() string {
	if it := s.align.ActiveItem(); it != nil {
		return it.Value
	}
	return ""
}

func TestToolbar_DelegatesToGroup(t *testing.T) {
	s := newSetup()
	assert.Equal(t, "bold", s.widget())

	s.key(event.KeyArrowRight)
	assert.Equal(t, "align", s.widget())
	assert.Equal(t, "left", s.radio(), "entered from the start")

	s.key(event.KeyArrowRight)
	assert.Equal(t, "center", s.radio())
	s.key(event.KeyArrowRight)
	assert.Equal(t, "right", s.radio())
	assert.Equal(t, "align", s.widget())

	s.key(event.KeyArrowRight)
	assert.Equal(t, "more", s.widget())
	assert.Empty(t, s.radio(), "group lost focus")

	s.key(event.KeyArrowLeft)
	assert.Equal(t, "align", s.widget())
	assert.Equal(t, "right", s.radio(), "entered from the end")

	assert.Empty(t, s.alignVal.Get(), "toolbar navigation does not select")
}

func TestToolbar_BoundaryWithoutWrap(t *testing.T) {
	s := newSetup()
	s.key(event.KeyArrowLeft)
	assert.Equal(t, "bold", s.widget())

	s.key(event.KeyEnd)
	assert.Equal(t, "more", s.widget())
	s.key(event.KeyArrowRight)
	assert.Equal(t, "more", s.widget())

	s.wrap.Set(true)
	s.key(event.KeyArrowRight)
	assert.Equal(t, "bold", s.widget())
	s.key(event.KeyArrowLeft)
	assert.Equal(t, "more", s.widget())
	s.key(event.KeyArrowLeft)
	assert.Equal(t, "align", s.widget())
	assert.Equal(t, "right", s.radio())
}

func TestToolbar_LoneGroupWraps(t *testing.T) {
	s := newSetup()
	wrap := signal.New(false)
	in := list.NewInputs[string]()
	in.Wrap = wrap
	in.Orientation = signal.Const(list.Horizontal)
	bar := New(Inputs{Inputs: in, Widgets: signal.Const(s.widgets[1:2])})
	bar.SetDefaultState()
	key := func(name string) { bar.OnKeydown(event.Key{Name: name}) }

	bar.LastWidget()
	assert.Equal(t, "right", s.radio())
	key(event.KeyArrowRight)
	assert.Equal(t, "right", s.radio(), "no wrap")

	wrap.Set(true)
	key(event.KeyArrowRight)
	assert.Equal(t, "left", s.radio())
	key(event.KeyArrowLeft)
	assert.Equal(t, "right", s.radio())
	assert.Equal(t, "align", bar.ActiveWidget().ID)
}

func TestToolbar_CrossAxisForcesWrap(t *testing.T) {
	s := newSetup()
	s.key(event.KeyArrowRight)
	require.Equal(t, "left", s.radio())

	s.key(event.KeyArrowUp)
	assert.Equal(t, "right", s.radio(), "wraps although neither toolbar nor group wrap")
	s.key(event.KeyArrowDown)
	assert.Equal(t, "left", s.radio())
	assert.Equal(t, "align", s.widget())

	s.key(event.KeyHome)
	assert.Equal(t, "bold", s.widget())
	assert.False(t, s.key(event.KeyEscape))
	s.key(event.KeyArrowDown)
	assert.Equal(t, "bold", s.widget(), "cross axis on a plain widget does nothing")
}

func TestToolbar_Trigger(t *testing.T) {
	s := newSetup()
	s.key(event.KeySpace)
	s.key(event.KeyEnter)
	assert.Equal(t, 2, s.boldHits)

	s.key(event.KeyArrowRight)
	s.key(event.KeyArrowRight)
	s.key(event.KeyEnter)
	assert.Equal(t, []string{"center"}, s.alignVal.Get())

	s.key(event.KeyEnd)
	s.key(event.KeyEnter)
	assert.Equal(t, 1, s.moreHits)
}

func TestToolbar_HomeEndLeaveGroup(t *testing.T) {
	s := newSetup()
	s.key(event.KeyArrowRight)
	s.key(event.KeyEnd)
	assert.Equal(t, "more", s.widget())
	assert.Empty(t, s.radio())
	s.key(event.KeyHome)
	assert.Equal(t, "bold", s.widget())
}

func TestToolbar_Pointer(t *testing.T) {
	s := newSetup()

	s.bar.OnPointerdown(event.Pointer{Kind: event.Down, Target: s.alignOpts[1].Element})
	assert.Equal(t, "align", s.widget())
	assert.Equal(t, "center", s.radio())
	assert.Equal(t, []string{"center"}, s.alignVal.Get())

	s.bar.OnPointerdown(event.Pointer{Kind: event.Down, Target: s.widgets[2].Element})
	assert.Equal(t, "more", s.widget())
	assert.Empty(t, s.radio())
	assert.Equal(t, 1, s.moreHits)

	assert.False(t, s.bar.OnPointerdown(event.Pointer{Kind: event.Down, Target: &element{}}))
}

func TestToolbar_DisabledWidgetSkipped(t *testing.T) {
	s := newSetup()
	s.widgets[1].Disabled = true

	s.key(event.KeyArrowRight)
	assert.Equal(t, "more", s.widget())
	assert.Empty(t, s.radio())

	s.key(event.KeyEnter)
	assert.Equal(t, 1, s.moreHits)
}

func TestToolbar_SetDefaultStateEntersGroup(t *testing.T) {
	s := newSetup()
	s.widgets[0].Disabled = true
	s.alignVal.Set([]string{"right"})
	s.bar.SetDefaultState()

	assert.Equal(t, "align", s.widget())
	assert.Equal(t, "right", s.radio())
}

func TestToolbar_Validate(t *testing.T) {
	s := newSetup()
	assert.Empty(t, s.bar.Validate())

	s.widgets[0].Disabled = true
	assert.Len(t, s.bar.Validate(), 1)

	for _, w := range s.widgets {
		w.Disabled = true
	}
	assert.False(t, s.key(event.KeyArrowRight), "disabled toolbar")
	assert.Len(t, s.bar.Validate(), 2)
}
