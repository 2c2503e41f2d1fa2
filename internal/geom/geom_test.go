package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositiveFmod(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want float64
	}{
		{"inside", 1.5, 4, 1.5},
		{"above", 7, 3, 1},
		{"negative", -1, 3, 2},
		{"negative fraction", -0.25, 1, 0.75},
		{"far negative", -10, 4, 2},
		{"zero", 0, 5, 0},
		{"exact multiple", 6, 3, 0},
		{"negative exact multiple", -4, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PositiveFmod(tc.x, tc.y)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, tc.y)
		})
	}
}

func TestPositiveFmodWrapsAngles(t *testing.T) {
	assert.InDelta(t, TwoPi-0.5, PositiveFmod(-0.5, TwoPi), 1e-12)
	assert.InDelta(t, 0.5, PositiveFmod(0.5+3*TwoPi, TwoPi), 1e-9)
}

func TestMaskOverlap(t *testing.T) {
	// 4x4 mask with only its bottom-right pixel set.
	corner := NewMask(4, 4)
	corner.Set(3, 3, true)
	// 2x2 fully set.
	block := NewMask(2, 2)
	for y := range 2 {
		for x := range 2 {
			block.Set(x, y, true)
		}
	}

	cases := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"partial cover of corner", 2, 2, true},
		{"hanging off the far edge", 3, 3, true},
		{"beside the corner", 1, 1, false},
		{"disjoint", 4, 4, false},
		{"negative offset misses", -1, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, corner.Overlap(block, tc.dx, tc.dy))
		})
	}
}

func TestMaskOverlapNegativeOffset(t *testing.T) {
	// Top-left pixel of m against the bottom-right pixel of o.
	m := NewMask(3, 3)
	m.Set(0, 0, true)
	o := NewMask(3, 3)
	o.Set(2, 2, true)

	assert.True(t, m.Overlap(o, -2, -2))
	assert.False(t, m.Overlap(o, -2, -1))
	assert.False(t, m.Overlap(o, -3, -3))
}

func TestDiscMaskOverlap(t *testing.T) {
	a, b := DiscMask(10), DiscMask(10)
	assert.True(t, a.Overlap(b, 0, 0))
	assert.True(t, a.Overlap(b, 5, 0))
	assert.True(t, a.Overlap(b, -5, -3))
	// The bounding boxes overlap at the corners but the discs do not.
	assert.False(t, a.Overlap(b, 8, 8))
	assert.False(t, a.Overlap(b, -8, 8))
	assert.False(t, a.Overlap(b, 10, 0))
	assert.Equal(t, a.Count(), b.Count())
}
