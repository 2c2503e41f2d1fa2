package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/starlanes/internal/game"
)

// keyMap binds physical keys to the logical keys the modes read.
var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyW:            game.KeyUp,
	ebiten.KeyArrowUp:      game.KeyUp,
	ebiten.KeyS:            game.KeyDown,
	ebiten.KeyArrowDown:    game.KeyDown,
	ebiten.KeyA:            game.KeyLeft,
	ebiten.KeyArrowLeft:    game.KeyLeft,
	ebiten.KeyD:            game.KeyRight,
	ebiten.KeyArrowRight:   game.KeyRight,
	ebiten.KeyShiftLeft:    game.KeyStrafe,
	ebiten.KeyShiftRight:   game.KeyStrafe,
	ebiten.KeyControlLeft:  game.KeyBrake,
	ebiten.KeyControlRight: game.KeyBrake,
	ebiten.KeyF1:           game.KeyPause,
	ebiten.KeyF6:           game.KeySearch,
	ebiten.KeyM:            game.KeyMinimap,
	ebiten.KeyP:            game.KeyPlanet,
	ebiten.KeyEnter:        game.KeyEnter,
	ebiten.KeyNumpadEnter:  game.KeyEnter,
	ebiten.KeyEscape:       game.KeyEscape,
	ebiten.KeyBackspace:    game.KeyBackspace,
	ebiten.KeyDelete:       game.KeyDelete,
	ebiten.KeyTab:          game.KeyTab,
	ebiten.KeyDigit0:       game.Key0,
	ebiten.KeyDigit1:       game.Key1,
	ebiten.KeyDigit2:       game.Key2,
	ebiten.KeyDigit3:       game.Key3,
	ebiten.KeyDigit4:       game.Key4,
	ebiten.KeyDigit5:       game.Key5,
	ebiten.KeyDigit6:       game.Key6,
	ebiten.KeyDigit7:       game.Key7,
	ebiten.KeyDigit8:       game.Key8,
	ebiten.KeyDigit9:       game.Key9,
}

// mapKey returns the logical key for k, KeyOther when k has no binding.
func mapKey(k ebiten.Key) game.Key {
	if gk, ok := keyMap[k]; ok {
		return gk
	}
	return game.KeyOther
}

// events turns this tick's key presses and typed characters into game
// events, presses first.
func events(pressed []ebiten.Key, chars []rune) []game.Event {
	evs := make([]game.Event, 0, len(pressed)+len(chars))
	for _, k := range pressed {
		evs = append(evs, game.KeyEvent(mapKey(k)))
	}
	for _, r := range chars {
		evs = append(evs, game.TextEvent(r))
	}
	return evs
}

// heldKeys collects the logical keys whose physical keys are down.
func heldKeys(down []ebiten.Key) game.KeySet {
	held := make(game.KeySet, len(down))
	for _, k := range down {
		if gk, ok := keyMap[k]; ok {
			held[gk] = true
		}
	}
	return held
}
