package tui

import (
	"errors"
	"fmt"
)

// ErrBufferRange is returned for a viewport whose maximum scroll buffer is
// below its minimum.
var ErrBufferRange = errors.New("max buffer is below min buffer")

// Viewport scrolls a list so the active row stays visible with some rows of
// context around it. The context grows with the viewport height, bounded by
// MinBuffer and MaxBuffer. Screens embed it and call Follow with the
// widget's active index after every event.
type Viewport struct {
	Pos       int // active row
	Offset    int // first visible row
	VpHeight  int // visible rows
	ItemCount int // total rows

	MinBuffer int
	MaxBuffer int
}

func NewViewport(minBuffer, maxBuffer int) (*Viewport, error) {
	if minBuffer < 0 || maxBuffer < minBuffer {
		return nil, fmt.Errorf("viewport buffer %d..%d: %w", minBuffer, maxBuffer, ErrBufferRange)
	}
	return &Viewport{MinBuffer: minBuffer, MaxBuffer: maxBuffer}, nil
}

// buffer is the number of context rows kept above and below Pos.
func (v *Viewport) buffer() int {
	b := min(max(v.VpHeight/4, v.MinBuffer), v.MaxBuffer)
	return max(min(b, (v.VpHeight-1)/2), 0)
}

// Follow moves the viewport to row pos of count rows. A negative pos, as
// for a list without an active item, keeps the current offset.
func (v *Viewport) Follow(pos, count int) {
	v.ItemCount = count
	if pos < 0 {
		v.clamp()
		return
	}
	v.Pos = pos
	v.EnsureVisible()
}

// EnsureVisible adjusts Offset so Pos is within the visible window, with
// the scroll buffer on either side where the list allows it.
func (v *Viewport) EnsureVisible() {
	b := v.buffer()
	if v.Pos-b < v.Offset {
		v.Offset = v.Pos - b
	}
	if v.Pos+b >= v.Offset+v.VpHeight {
		v.Offset = v.Pos + b - v.VpHeight + 1
	}
	v.clamp()
}

func (v *Viewport) clamp() {
	v.Offset = min(v.Offset, max(v.ItemCount-v.VpHeight, 0))
	v.Offset = max(v.Offset, 0)
}

// Range returns the visible rows as a half-open interval.
func (v *Viewport) Range() (start, end int) {
	return v.Offset, min(v.Offset+v.VpHeight, v.ItemCount)
}

// AtEnd reports whether the active row is the last one.
func (v *Viewport) AtEnd() bool {
	return v.ItemCount > 0 && v.Pos == v.ItemCount-1
}

// FooterKeys returns the standard navigation keybinding hints.
func (v *Viewport) FooterKeys() []FooterKey {
	return []FooterKey{
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "Home/End", Desc: "jump"},
	}
}
