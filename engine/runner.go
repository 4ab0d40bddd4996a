package engine

import (
	"sort"

	"github.com/yohamta/donburi"
)

// Phase orders systems within a tick.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseKinematics
	PhaseCollision
	PhaseState
	PhaseLevel
	PhaseBuffs
	PhaseAnimation
)

var phaseNames = map[Phase]string{
	PhaseInput:      "input",
	PhaseKinematics: "kinematics",
	PhaseCollision:  "collision",
	PhaseState:      "state",
	PhaseLevel:      "level",
	PhaseBuffs:      "buffs",
	PhaseAnimation:  "animation",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// System is one step of the tick.
type System struct {
	Name   string
	Phase  Phase
	Update func(w donburi.World)
}

// runner keeps systems sorted by phase. Systems in the same phase run in
// registration order.
type runner struct {
	systems []System
}

func (r *runner) add(s System) {
	r.systems = append(r.systems, s)
	sort.SliceStable(r.systems, func(i, j int) bool {
		return r.systems[i].Phase < r.systems[j].Phase
	})
}

func (r *runner) run(w donburi.World) {
	for _, s := range r.systems {
		s.Update(w)
	}
}
