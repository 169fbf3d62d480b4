// Package event models raw keyboard and pointer input and the dispatch
// tables widget patterns use to turn it into semantic actions.
package event

import "strings"

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	Ctrl Modifier = 1 << iota
	Shift
	Alt
	Meta

	// Any matches every modifier combination, including none.
	Any Modifier = 1 << 7
)

// None is the empty modifier set.
const None Modifier = 0

func (m Modifier) String() string {
	if m == Any {
		return "*"
	}
	var parts []string
	if m&Ctrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&Alt != 0 {
		parts = append(parts, "Alt")
	}
	if m&Meta != 0 {
		parts = append(parts, "Meta")
	}
	if m&Shift != 0 {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Key names, matching the DOM KeyboardEvent.key vocabulary.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
	KeySpace      = " "
	KeyShift      = "Shift"
)

// Key is a keyboard event. Target is the host element the event was
// dispatched on, if the host tracks one.
type Key struct {
	Name   string
	Mods   Modifier
	Target any
}

func (k Key) String() string {
	name := k.Name
	if name == KeySpace {
		name = "Space"
	}
	if k.Mods == None {
		return name
	}
	return k.Mods.String() + "+" + name
}

// Printable reports whether the key produces a single character.
func (k Key) Printable() bool {
	return len([]rune(k.Name)) == 1
}

// PointerKind distinguishes the pointer interactions the engine reacts to.
type PointerKind uint8

const (
	Down PointerKind = iota
	Over
	Out
	Move
)

func (p PointerKind) String() string {
	switch p {
	case Down:
		return "down"
	case Over:
		return "over"
	case Out:
		return "out"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Pointer is a pointer event. Target is the host element under the pointer;
// patterns map it back to an item by element identity.
type Pointer struct {
	Kind   PointerKind
	Target any
	Mods   Modifier
	Button int

	// Related is the element the pointer moved to on Out.
	Related any
}
