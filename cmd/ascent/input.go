package main

import (
	"github.com/automoto/ascent/components"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	keysUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	keysDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	keysRun   = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}
	keysJump  = []ebiten.Key{ebiten.KeySpace}
	keysHold  = []ebiten.Key{ebiten.KeyJ}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// pollInput reads the keyboard into the character's intent.
func pollInput() components.InputData {
	return components.InputData{
		MoveLeft:  anyPressed(keysLeft),
		MoveRight: anyPressed(keysRight),
		MoveUp:    anyPressed(keysUp),
		MoveDown:  anyPressed(keysDown),
		Run:       anyPressed(keysRun),
		Jump:      anyPressed(keysJump),
		HoldWall:  anyPressed(keysHold),
	}
}
