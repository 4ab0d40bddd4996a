package systems

import (
	"github.com/automoto/ascent/character"
	"github.com/automoto/ascent/components"
	"github.com/yohamta/donburi"
)

// UpdateBuffs starts newly granted buffs and advances running ones.
func UpdateBuffs(w donburi.World, r *character.BuffRunner) {
	components.Buffs.Each(w, func(e *donburi.Entry) {
		buffs := components.Buffs.Get(e)
		traits := components.Traits.Get(e)
		r.Sync(buffs, traits)
		r.Update(buffs, traits)
	})
}
