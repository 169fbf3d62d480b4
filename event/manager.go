package event

import (
	"regexp"
	"strings"
)

type entry[E any] struct {
	trigger string
	match   func(E) bool
	action  func(E)
}

// Manager is an ordered dispatch table from predicates to actions.
// Handle runs only the first entry whose predicate matches.
type Manager[E any] struct {
	entries []entry[E]
}

// On appends an entry and returns the manager for chaining.
func (m *Manager[E]) On(match func(E) bool, action func(E)) *Manager[E] {
	return m.add("custom", match, action)
}

func (m *Manager[E]) add(trigger string, match func(E) bool, action func(E)) *Manager[E] {
	m.entries = append(m.entries, entry[E]{trigger: trigger, match: match, action: action})
	return m
}

// Handle dispatches e and reports whether an entry matched.
func (m *Manager[E]) Handle(e E) bool {
	if m == nil {
		return false
	}
	for _, en := range m.entries {
		if en.match(e) {
			en.action(e)
			return true
		}
	}
	return false
}

// Bindings describes each entry's trigger in registration order.
func (m *Manager[E]) Bindings() []string {
	out := make([]string, 0, len(m.entries))
	for _, en := range m.entries {
		out = append(out, en.trigger)
	}
	return out
}

// Len returns the number of registered entries.
func (m *Manager[E]) Len() int { return len(m.entries) }

func modsMatch(want []Modifier, got Modifier) bool {
	for _, w := range want {
		if w == Any || w == got {
			return true
		}
	}
	return false
}

func describe(mods []Modifier, key string) string {
	if key == KeySpace {
		key = "Space"
	}
	alts := make([]string, 0, len(mods))
	for _, m := range mods {
		switch m {
		case None:
			alts = append(alts, key)
		default:
			alts = append(alts, m.String()+"+"+key)
		}
	}
	return strings.Join(alts, " | ")
}

// KeyboardManager matches keyboard events by key name and exact modifier
// set.
type KeyboardManager struct {
	Manager[Key]
}

// NewKeyboard returns an empty keyboard dispatch table.
func NewKeyboard() *KeyboardManager {
	return &KeyboardManager{}
}

// On matches key with no modifiers held.
func (k *KeyboardManager) On(key string, action func(Key)) *KeyboardManager {
	return k.OnMods([]Modifier{None}, key, action)
}

// OnMods matches key when the held modifiers equal one of mods exactly.
// Key names compare case-insensitively.
func (k *KeyboardManager) OnMods(mods []Modifier, key string, action func(Key)) *KeyboardManager {
	k.add(describe(mods, key), func(e Key) bool {
		return strings.EqualFold(e.Name, key) && modsMatch(mods, e.Mods)
	}, action)
	return k
}

// OnPattern matches key names against re, typically a single printable
// character for typeahead.
func (k *KeyboardManager) OnPattern(mods []Modifier, re *regexp.Regexp, action func(Key)) *KeyboardManager {
	k.add(describe(mods, "/"+re.String()+"/"), func(e Key) bool {
		return re.MatchString(e.Name) && modsMatch(mods, e.Mods)
	}, action)
	return k
}

// OnMatch registers an arbitrary keyboard predicate.
func (k *KeyboardManager) OnMatch(trigger string, match func(Key) bool, action func(Key)) *KeyboardManager {
	k.add(trigger, match, action)
	return k
}

// PointerManager matches pointer events by kind, modifiers or target.
type PointerManager struct {
	Manager[Pointer]
}

// NewPointer returns an empty pointer dispatch table.
func NewPointer() *PointerManager {
	return &PointerManager{}
}

// On matches a pointer press with no modifiers held.
func (p *PointerManager) On(action func(Pointer)) *PointerManager {
	return p.OnMods([]Modifier{None}, action)
}

// OnMods matches a pointer press whose modifiers equal one of mods.
func (p *PointerManager) OnMods(mods []Modifier, action func(Pointer)) *PointerManager {
	p.add(describe(mods, "pointer"), func(e Pointer) bool {
		return e.Kind == Down && modsMatch(mods, e.Mods)
	}, action)
	return p
}

// OnKind matches every event of the given kind regardless of modifiers.
func (p *PointerManager) OnKind(kind PointerKind, action func(Pointer)) *PointerManager {
	p.add("pointer"+kind.String(), func(e Pointer) bool { return e.Kind == kind }, action)
	return p
}

// OnMatch registers a predicate that inspects the raw event.
func (p *PointerManager) OnMatch(trigger string, match func(Pointer) bool, action func(Pointer)) *PointerManager {
	p.add(trigger, match, action)
	return p
}
