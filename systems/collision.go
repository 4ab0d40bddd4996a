package systems

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/physics"
	"github.com/yohamta/donburi"
)

func UpdateCollisions(w donburi.World, r *physics.Resolver) {
	eachSimulated(w, func(e *donburi.Entry, grid *level.TileGrid) {
		body := components.Object.Get(e)
		r.Resolve(
			components.Actor.Get(e),
			body,
			components.Traits.Get(e),
			grid.Candidates(body.Object),
		)
	})
}
