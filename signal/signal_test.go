package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_GetSet(t *testing.T) {
	c := New(3)
	assert.Equal(t, 3, c.Get())
	c.Set(5)
	assert.Equal(t, 5, c.Get())
}

func TestCell_Update(t *testing.T) {
	c := New([]string{"a"})
	c.Update(func(v []string) []string { return append(v, "b") })
	assert.Equal(t, []string{"a", "b"}, c.Get())
}

func TestCell_Subscribe(t *testing.T) {
	c := New("x")
	var seen []string
	unsub := c.Subscribe(func(v string) { seen = append(seen, v) })

	c.Set("y")
	c.Set("z")
	unsub()
	c.Set("w")

	assert.Equal(t, []string{"y", "z"}, seen)
}

func TestCell_SubscribeOrder(t *testing.T) {
	c := New(0)
	var order []int
	c.Subscribe(func(int) { order = append(order, 1) })
	c.Subscribe(func(int) { order = append(order, 2) })
	c.Set(1)
	assert.Equal(t, []int{1, 2}, order)
}

func TestFunc(t *testing.T) {
	base := New(2)
	double := Func[int](func() int { return base.Get() * 2 })
	assert.Equal(t, 4, double.Get())
	base.Set(10)
	assert.Equal(t, 20, double.Get())
}

func TestConst(t *testing.T) {
	var s Signal[bool] = Const(true)
	assert.True(t, s.Get())
}
