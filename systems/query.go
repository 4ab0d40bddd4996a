package systems

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var actors = donburi.NewQuery(filter.Contains(
	components.Actor,
	components.Object,
	components.Traits,
	components.State,
))

// ActiveLevel returns the controller of the loaded level.
func ActiveLevel(w donburi.World) (*level.Controller, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	ctrl := components.Level.Get(entry).Controller
	return ctrl, ctrl != nil
}

// eachSimulated calls fn for every actor whose body is in the active
// sub-level. Actors parked in other sub-levels are frozen.
func eachSimulated(w donburi.World, fn func(e *donburi.Entry, grid *level.TileGrid)) {
	ctrl, ok := ActiveLevel(w)
	if !ok {
		return
	}
	grid := ctrl.Grid()
	actors.Each(w, func(e *donburi.Entry) {
		if grid.Holds(components.Object.Get(e).Object) {
			fn(e, grid)
		}
	})
}
