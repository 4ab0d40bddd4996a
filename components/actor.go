package components

import (
	"github.com/automoto/ascent/config"
	"github.com/yohamta/donburi"
)

// ActorData is the kinematic state of a character or NPC. Position and box
// live on the actor's ObjectData.
type ActorData struct {
	SpeedX    float64
	SpeedY    float64 // positive is up while jumping, down while falling
	Direction config.Direction

	Falling  bool
	Jumping  bool
	Climbing bool
	TryClimb bool

	JumpCount  int
	ClimbTimer int
	RegenTimer int
}

var Actor = donburi.NewComponentType[ActorData]()

// Airborne reports whether the actor is jumping or falling.
func (a *ActorData) Airborne() bool {
	return a.Jumping || a.Falling
}
