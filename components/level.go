package components

import (
	"github.com/automoto/ascent/level"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the active level's traversal state.
type LevelData struct {
	Controller *level.Controller
}

var Level = donburi.NewComponentType[LevelData]()
