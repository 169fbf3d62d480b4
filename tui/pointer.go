package tui

import (
	"time"

	"github.com/bernd/ariabox/event"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

// HitFunc maps a cell to the element drawn there, or nil.
type HitFunc func(x, y int) any

// PointerTracker turns terminal mouse messages into engine pointer events.
// Motion becomes Over and Out transitions between elements; a rate limiter
// drops excess motion so a fast-moving mouse does not flood hover handling.
type PointerTracker struct {
	hit     HitFunc
	limiter *rate.Limiter
	over    any
}

// DefaultMotionRate is how many motion events per second reach the engine.
const DefaultMotionRate = 30

func NewPointerTracker(hit HitFunc, perSecond float64, burst int) *PointerTracker {
	t := &PointerTracker{hit: hit}
	if perSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
	return t
}

func mods(m tea.MouseMsg) event.Modifier {
	var out event.Modifier
	if m.Ctrl {
		out |= event.Ctrl
	}
	if m.Shift {
		out |= event.Shift
	}
	if m.Alt {
		out |= event.Alt
	}
	return out
}

// Translate returns the engine events for msg, observed at now.
func (t *PointerTracker) Translate(msg tea.MouseMsg, now time.Time) []event.Pointer {
	target := t.hit(msg.X, msg.Y)
	m := mods(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		evs := t.moveTo(target, m)
		return append(evs, event.Pointer{Kind: event.Down, Target: target, Mods: m, Button: 0})
	case tea.MouseActionMotion:
		if t.limiter != nil && !t.limiter.AllowN(now, 1) {
			return nil
		}
		evs := t.moveTo(target, m)
		return append(evs, event.Pointer{Kind: event.Move, Target: target, Mods: m})
	}
	return nil
}

func (t *PointerTracker) moveTo(target any, m event.Modifier) []event.Pointer {
	if target == t.over {
		return nil
	}
	var evs []event.Pointer
	if t.over != nil {
		evs = append(evs, event.Pointer{Kind: event.Out, Target: t.over, Related: target, Mods: m})
	}
	if target != nil {
		evs = append(evs, event.Pointer{Kind: event.Over, Target: target, Mods: m})
	}
	t.over = target
	return evs
}
