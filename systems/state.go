package systems

import (
	"github.com/automoto/ascent/character"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/tags"
	"github.com/yohamta/donburi"
)

func UpdateStates(w donburi.World, m *character.StateMachine) {
	eachSimulated(w, func(e *donburi.Entry, _ *level.TileGrid) {
		actor := components.Actor.Get(e)
		state := components.State.Get(e)
		if e.HasComponent(tags.NPC) {
			m.DeriveNPC(actor, state)
			return
		}
		m.Derive(actor, state)
	})
}

// UpdateAnimation advances every actor's sequence, including actors parked in
// other sub-levels, so their state timers keep counting.
func UpdateAnimation(w donburi.World, m *character.StateMachine) {
	actors.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animation) {
			return
		}
		m.Animate(
			components.State.Get(e),
			components.Actor.Get(e),
			components.Traits.Get(e),
			components.Animation.Get(e),
		)
	})
}
