package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/spacehole-rogue/starlanes/internal/game"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want game.Key
	}{
		{ebiten.KeyW, game.KeyUp},
		{ebiten.KeyArrowLeft, game.KeyLeft},
		{ebiten.KeyShiftRight, game.KeyStrafe},
		{ebiten.KeyF6, game.KeySearch},
		{ebiten.KeyDigit7, game.Key7},
		{ebiten.KeyQ, game.KeyOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapKey(tt.key), tt.key.String())
	}
}

func TestEvents(t *testing.T) {
	evs := events([]ebiten.Key{ebiten.KeyF1, ebiten.KeyZ}, []rune("z"))
	assert.Equal(t, []game.Event{
		game.KeyEvent(game.KeyPause),
		game.KeyEvent(game.KeyOther),
		game.TextEvent('z'),
	}, evs)
}

func TestHeldKeys(t *testing.T) {
	held := heldKeys([]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyControlLeft, ebiten.KeyX})
	assert.Equal(t, game.KeySet{game.KeyUp: true, game.KeyBrake: true}, held)
	assert.True(t, held.Held(game.KeyBrake))
	assert.False(t, held.Held(game.KeyDown))
}
