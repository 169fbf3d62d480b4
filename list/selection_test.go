package list

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fruits() *listSetup {
	s := newListSetup("Apple", "Apricot", "Banana", "Blackberry", "Blueberry")
	s.multi.Set(true)
	return s
}

func TestSelection_SingleSelectInvariant(t *testing.T) {
	s := newListSetup("a", "b", "c", "d")
	for i := range 20 {
		s.list.Select(s.items[(i*7)%4])
		assert.LessOrEqual(t, len(s.list.Value()), 1)
	}
	s.list.SelectAll()
	assert.LessOrEqual(t, len(s.list.Value()), 1)
}

func TestSelection_SingleSelectReplacesDisabledValue(t *testing.T) {
	s := newListSetup("a", "b")
	s.value.Set([]string{"a"})
	s.items[0].Disabled = true

	s.list.Select(s.items[1])
	assert.Equal(t, []string{"b"}, s.list.Value())
}

func TestSelection_DisabledNeverSelected(t *testing.T) {
	s := fruits()
	s.items[2].Disabled = true
	s.items[3].Unselectable = true

	s.list.Select(s.items[2])
	s.list.Select(s.items[3])
	s.list.SelectAll()

	assert.Equal(t, []string{"Apple", "Apricot", "Blueberry"}, s.list.Value())
}

func TestSelection_InsertionOrder(t *testing.T) {
	s := fruits()
	s.list.Select(s.items[4])
	s.list.Select(s.items[0])
	s.list.Select(s.items[4])

	assert.Equal(t, []string{"Blueberry", "Apple"}, s.list.Value())
	assert.Equal(t, []*Item[string]{s.items[0], s.items[4]}, s.list.SelectedItems())
}

func TestSelection_DeselectNoop(t *testing.T) {
	s := fruits()
	s.list.Deselect(s.items[1])
	assert.Empty(t, s.list.Value())

	s.list.Select(s.items[1])
	s.items[1].Disabled = true
	s.list.Deselect(s.items[1])
	assert.Equal(t, []string{"Apricot"}, s.list.Value())
}

func TestSelection_ToggleDefaultsToActive(t *testing.T) {
	s := fruits()
	s.list.Toggle(nil)
	assert.Equal(t, []string{"Apple"}, s.list.Value())
	s.list.Toggle(nil)
	assert.Empty(t, s.list.Value())
}

func TestSelection_SelectOne(t *testing.T) {
	s := fruits()
	s.list.Select(s.items[1])
	s.list.Select(s.items[2])
	s.list.SelectOne()
	assert.Equal(t, []string{"Apple"}, s.list.Value())
}

func TestSelection_ToggleOne(t *testing.T) {
	s := fruits()
	s.list.Select(s.items[3])
	s.list.ToggleOne()
	assert.Equal(t, []string{"Apple"}, s.list.Value())
	s.list.ToggleOne()
	assert.Empty(t, s.list.Value())
}

func TestSelection_ToggleAll(t *testing.T) {
	s := fruits()
	s.items[4].Disabled = true

	s.list.ToggleAll()
	assert.Equal(t, []string{"Apple", "Apricot", "Banana", "Blackberry"}, s.list.Value())
	s.list.ToggleAll()
	assert.Empty(t, s.list.Value())
}

func TestSelection_DeselectAllDropsUnknownValues(t *testing.T) {
	s := fruits()
	s.value.Set([]string{"Cherry", "Apple"})
	s.list.DeselectAll()
	assert.Empty(t, s.list.Value())
}

func TestSelection_RangeScenario(t *testing.T) {
	s := fruits()

	s.list.Anchor(0)
	s.list.Next(NavOptions{SelectRange: true})
	s.list.Next(NavOptions{SelectRange: true})
	assert.Equal(t, []string{"Apple", "Apricot", "Banana"}, s.list.Value())

	s.list.Prev(NavOptions{SelectRange: true})
	assert.Equal(t, []string{"Apple", "Apricot"}, s.list.Value())
}

func TestSelection_RangeSymmetry(t *testing.T) {
	for a := range 5 {
		for b := range 5 {
			t.Run(fmt.Sprintf("anchor %d active %d", a, b), func(t *testing.T) {
				s := fruits()
				s.items[2].Disabled = true
				s.skip.Set(false)

				s.active.Set(s.items[b])
				s.list.Selection.BeginRangeSelection(a)
				s.list.Selection.SelectFromAnchor()

				var want []string
				for i := min(a, b); i <= max(a, b); i++ {
					if !s.items[i].Disabled {
						want = append(want, s.items[i].Value)
					}
				}
				assert.ElementsMatch(t, want, s.list.Value())
			})
		}
	}
}

func TestSelection_RangeNeverWraps(t *testing.T) {
	s := fruits()
	s.active.Set(s.items[4])
	s.list.Anchor(4)

	s.list.Next(NavOptions{SelectRange: true})

	assert.Equal(t, 4, s.list.ActiveIndex())
	assert.Empty(t, s.list.Value())
	assert.True(t, s.list.Inputs().Wrap.Get(), "wrap restored after range")
}

func TestSelection_NoSelectionOnNoopNavigation(t *testing.T) {
	s := fruits()
	s.list.First(NavOptions{Toggle: true})
	assert.Empty(t, s.list.Value(), "home on first item must not toggle")

	s.list.Last(NavOptions{Toggle: true})
	assert.Equal(t, []string{"Blueberry"}, s.list.Value())
}

func TestSelection_AnchorFollowsPlainSelection(t *testing.T) {
	s := fruits()
	s.list.Next(NavOptions{SelectOne: true})
	assert.Equal(t, 1, s.list.AnchorIndex())

	s.list.Next(NavOptions{SelectRange: true})
	s.list.Next(NavOptions{SelectRange: true})
	assert.Equal(t, 1, s.list.AnchorIndex())
	assert.Equal(t, []string{"Apricot", "Banana", "Blackberry"}, s.list.Value())
}

func TestSelection_KeepAnchorRangeToBoundary(t *testing.T) {
	s := fruits()
	s.active.Set(s.items[2])
	s.list.Anchor(2)

	s.list.Last(NavOptions{SelectRange: true, KeepAnchor: true})
	assert.Equal(t, []string{"Banana", "Blackberry", "Blueberry"}, s.list.Value())
	assert.Equal(t, 2, s.list.AnchorIndex())

	s.list.First(NavOptions{SelectRange: true, KeepAnchor: true})
	assert.ElementsMatch(t, []string{"Apple", "Apricot", "Banana"}, s.list.Value())
}
