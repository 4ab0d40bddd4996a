package systems

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/physics"
	"github.com/yohamta/donburi"
)

// UpdateKinematics integrates every simulated actor. Input is withheld while
// the actor is interacting.
func UpdateKinematics(w donburi.World, k *physics.Kinematics) {
	eachSimulated(w, func(e *donburi.Entry, _ *level.TileGrid) {
		var input *components.InputData
		if e.HasComponent(components.Input) && !components.State.Get(e).CurrentState.Interacting() {
			input = components.Input.Get(e)
		}
		k.Integrate(
			components.Actor.Get(e),
			components.Object.Get(e),
			components.Traits.Get(e),
			input,
		)
	})
}
