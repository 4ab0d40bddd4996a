package factory

import (
	"github.com/automoto/ascent/archetypes"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/level"
	"github.com/yohamta/donburi"
)

// CreateLevel stores ctrl in a new level singleton.
func CreateLevel(w donburi.World, ctrl *level.Controller) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, components.LevelData{Controller: ctrl})
	return entry
}
