// Package signal provides the value cells every behavior reads its
// configuration from and writes its derived state to. A host wires them to
// its own change tracking however it likes; the engine only calls Get and
// Set.
package signal

// Signal is a read-only accessor for a current value.
type Signal[T any] interface {
	Get() T
}

// WritableSignal is a Signal that can also be replaced.
type WritableSignal[T any] interface {
	Signal[T]
	Set(T)
}

// Cell stores a value and notifies subscribers synchronously on every Set.
type Cell[T any] struct {
	value T
	subs  []*subscriber[T]
}

type subscriber[T any] struct {
	fn func(T)
}

// New returns a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

func (c *Cell[T]) Get() T { return c.value }

// Set stores v and calls every subscriber in subscription order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	for _, s := range append([]*subscriber[T](nil), c.subs...) {
		s.fn(v)
	}
}

// Update replaces the value with fn applied to the current one.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s := &subscriber[T]{fn: fn}
	c.subs = append(c.subs, s)
	return func() {
		for i, cur := range c.subs {
			if cur == s {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Func is a computed signal; it runs on every Get.
type Func[T any] func() T

func (f Func[T]) Get() T { return f() }

// Const returns a signal that always yields v.
func Const[T any](v T) Signal[T] {
	return Func[T](func() T { return v })
}
