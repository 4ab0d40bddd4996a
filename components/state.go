package components

import (
	"github.com/automoto/ascent/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int // ticks spent in CurrentState
	Changed       bool
}

var State = donburi.NewComponentType[StateData]()

// Set moves to next and reports whether the state changed.
func (s *StateData) Set(next config.StateID) bool {
	if s.CurrentState == next {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	s.Changed = true
	return true
}
