package archetypes

import (
	"slices"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Actor,
		components.Object,
		components.Traits,
		components.State,
		components.Animation,
		components.Input,
		components.Buffs,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Actor,
		components.Object,
		components.Traits,
		components.State,
		components.Animation,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(slices.Concat(a.components, cs)...))
}
