package components

import (
	"github.com/automoto/ascent/assets/animations"
	"github.com/automoto/ascent/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Key              string // provider key, e.g. "character" or "npc"
	CurrentAnimation *animations.Animation
	Sequence         animations.Sequence
	CurrentSheet     config.StateID
	CurrentDirection config.Direction
}

// Frame returns the current drawable handle, or nil when no sequence is set.
func (a *AnimationData) Frame() animations.Frame {
	if a.CurrentAnimation == nil || len(a.Sequence.Frames) == 0 {
		return nil
	}
	i := min(max(a.CurrentAnimation.Frame(), 0), len(a.Sequence.Frames)-1)
	return a.Sequence.Frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
