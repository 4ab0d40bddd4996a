package factory

import (
	"github.com/automoto/ascent/archetypes"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateNPC(w donburi.World, cfg *config.Config, x, y float64) *donburi.Entry {
	npc := archetypes.NPC.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.NPC.Width, cfg.NPC.Height, tags.ResolvActor)
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})
	components.Actor.SetValue(npc, components.ActorData{
		Direction: config.FacingLeft,
	})
	components.Traits.SetValue(npc, components.TraitsData{
		Name:      cfg.NPC.Name,
		Endurance: components.NewPool(cfg.NPC.Endurance),
	})
	components.State.SetValue(npc, components.StateData{
		CurrentState:  config.Idle,
		PreviousState: config.StateNone,
		Changed:       true,
	})
	components.Animation.SetValue(npc, components.AnimationData{
		Key:          "npc",
		CurrentSheet: config.StateNone,
	})

	return npc
}
