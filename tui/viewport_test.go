package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewport(t *testing.T) {
	v, err := NewViewport(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, v.MinBuffer)
	assert.Equal(t, 3, v.MaxBuffer)

	_, err = NewViewport(4, 2)
	assert.ErrorIs(t, err, ErrBufferRange)

	_, err = NewViewport(-1, 2)
	assert.ErrorIs(t, err, ErrBufferRange)
}

func TestViewport_Buffer(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		height   int
		want     int
	}{
		{"scales with height", 0, 10, 20, 5},
		{"capped by max", 0, 2, 20, 2},
		{"raised to min", 3, 5, 4, 1},
		{"never more than half", 4, 8, 6, 2},
		{"zero height", 1, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{MinBuffer: tt.min, MaxBuffer: tt.max, VpHeight: tt.height}
			assert.Equal(t, tt.want, v.buffer())
		})
	}
}

func TestViewport_FollowScrollsWithBuffer(t *testing.T) {
	v := Viewport{VpHeight: 8, MinBuffer: 2, MaxBuffer: 2}

	v.Follow(5, 30)
	assert.Equal(t, 0, v.Offset)

	v.Follow(6, 30)
	assert.Equal(t, 1, v.Offset, "keeps two rows below")

	v.Follow(29, 30)
	assert.Equal(t, 22, v.Offset, "clamped at the end")
	assert.True(t, v.AtEnd())

	v.Follow(20, 30)
	assert.Equal(t, 18, v.Offset, "keeps two rows above")

	v.Follow(0, 30)
	assert.Equal(t, 0, v.Offset)
}

func TestViewport_FollowWithoutActive(t *testing.T) {
	v := Viewport{VpHeight: 5, Offset: 10}
	v.Follow(-1, 8)
	assert.Equal(t, 3, v.Offset)
}

func TestViewport_ShortList(t *testing.T) {
	v := Viewport{VpHeight: 10, MinBuffer: 1, MaxBuffer: 3}
	v.Follow(3, 4)
	assert.Equal(t, 0, v.Offset)
	start, end := v.Range()
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, end)
}

func TestViewport_Range(t *testing.T) {
	v := Viewport{VpHeight: 5}
	v.Follow(12, 20)
	start, end := v.Range()
	assert.Equal(t, 8, start)
	assert.Equal(t, 13, end)
}
