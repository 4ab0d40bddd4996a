package factory

import (
	"github.com/automoto/ascent/archetypes"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCharacter spawns the playable character at (x, y) with full pools
// and no buffs. The body is not attached to any grid yet.
func CreateCharacter(w donburi.World, cfg *config.Config, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Character.Width, cfg.Character.Height, tags.ResolvActor)
	obj.Data = character
	components.Object.SetValue(character, components.ObjectData{Object: obj})
	components.Actor.SetValue(character, components.ActorData{
		Direction: config.FacingRight,
	})
	components.Traits.SetValue(character, CharacterTraits(cfg.Character))
	components.State.SetValue(character, components.StateData{
		CurrentState:  config.Idle,
		PreviousState: config.StateNone,
		Changed:       true,
	})
	components.Animation.SetValue(character, components.AnimationData{
		Key:          "character",
		CurrentSheet: config.StateNone,
	})

	return character
}

// CharacterTraits builds the pools of a fresh character.
func CharacterTraits(c config.CharacterConfig) components.TraitsData {
	return components.TraitsData{
		Name:      c.Name,
		Endurance: components.NewPool(c.Endurance),
		Influence: components.NewPool(c.Influence),
		Resolve:   components.NewPool(c.Resolve),
		Strength:  components.NewPool(c.Strength),
	}
}

// Reshape replaces the body of e with one sized for the given box, keeping
// its position and grid.
func Reshape(e *donburi.Entry, w, h float64) {
	body := components.Object.Get(e)
	if body.W == w && body.H == h {
		return
	}
	space := body.Space
	if space != nil {
		space.Remove(body.Object)
	}
	obj := resolv.NewObject(body.X, body.Y, w, h, tags.ResolvActor)
	obj.Data = e
	if space != nil {
		space.Add(obj)
	}
	body.Object = obj
}
