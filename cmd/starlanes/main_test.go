package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDelta(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		prev time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, start, 1.0 / 60},
		{"wall clock", start, start.Add(25 * time.Millisecond), 0.025},
		{"clamped", start, start.Add(200 * time.Microsecond), minFrameDelta},
		{"same instant", start, start, minFrameDelta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, frameDelta(tt.prev, tt.now, 60), 1e-12)
		})
	}
}
