package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	NPC       = donburi.NewTag().SetName("NPC")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvActor = "actor"
)
