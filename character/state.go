// Package character derives discrete animation states from actor motion and
// runs the buff lifecycle.
package character

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/ascent/assets/animations"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"go.uber.org/zap"
)

// ErrNotInteraction is returned by Interact for a state that is not an
// interaction state.
var ErrNotInteraction = errors.New("not an interaction state")

// StateMachine maps kinematic facts to a StateID and keeps the actor's
// animation sequence in step with it.
type StateMachine struct {
	walkCap  float64
	provider animations.Provider
	log      *zap.Logger
}

func NewStateMachine(cfg *config.Config, provider animations.Provider, log *zap.Logger) *StateMachine {
	if log == nil {
		log = zap.NewNop()
	}
	return &StateMachine{walkCap: cfg.Physics.WalkCap, provider: provider, log: log}
}

// SetProvider replaces the animation source. Sequences are swapped on the
// next state or facing change.
func (m *StateMachine) SetProvider(p animations.Provider) {
	m.provider = p
}

// Derive applies the character transition rules and reports whether the
// state changed. Interaction states are left only by EndInteraction.
func (m *StateMachine) Derive(actor *components.ActorData, state *components.StateData) bool {
	cur := state.CurrentState
	if cur.Interacting() {
		return false
	}

	vx, vy := actor.SpeedX, actor.SpeedY
	next := cur
	switch {
	case vx == 0 && vy == 0:
		if cur != config.Idle && cur != config.Crying {
			next = config.Idle
		}
	case vy > 0:
		if cur != config.Climbing && cur != config.Falling {
			next = config.Falling
		}
	case vy == 0:
		if math.Abs(vx) > m.walkCap {
			next = config.Running
		} else if cur != config.Walking && cur != config.Running {
			next = config.Walking
		}
	}
	if actor.Climbing {
		next = config.Climbing
	}

	return state.Set(next)
}

// DeriveNPC applies the reduced NPC rules: idle at rest, running while
// moving along the ground.
func (m *StateMachine) DeriveNPC(actor *components.ActorData, state *components.StateData) bool {
	switch {
	case actor.SpeedX == 0 && actor.SpeedY == 0:
		return state.Set(config.Idle)
	case actor.SpeedX != 0 && actor.SpeedY == 0:
		return state.Set(config.Running)
	}
	return false
}

// Interact enters the interaction state kind.
func (m *StateMachine) Interact(state *components.StateData, kind config.StateID) error {
	if !kind.Interacting() {
		return fmt.Errorf("interact %s: %w", kind, ErrNotInteraction)
	}
	state.Set(kind)
	return nil
}

// EndInteraction returns an interacting actor to Idle.
func (m *StateMachine) EndInteraction(state *components.StateData) bool {
	if !state.CurrentState.Interacting() {
		return false
	}
	return state.Set(config.Idle)
}

// ToggleCrying switches between Idle and Crying. Other states are left
// alone.
func (m *StateMachine) ToggleCrying(state *components.StateData) bool {
	switch state.CurrentState {
	case config.Idle:
		return state.Set(config.Crying)
	case config.Crying:
		return state.Set(config.Idle)
	}
	return false
}

// Cadence returns the ticks per frame for s given its base speed. Idle
// breathes faster when endurance is low and slower when it is full.
func Cadence(speed int, s config.StateID, endurance components.Pool) int {
	if s != config.Idle {
		return speed
	}
	switch {
	case float64(endurance.Current) < float64(endurance.Max)/2:
		return speed - speed/2
	case endurance.Current == endurance.Max:
		return speed + speed/2
	}
	return speed
}

// Animate keeps anim on the sequence for the current state and facing, then
// advances it one tick. A state change restarts the sequence. A facing change
// keeps the frame index unless the new sequence has a different length.
func (m *StateMachine) Animate(state *components.StateData, actor *components.ActorData, traits *components.TraitsData, anim *components.AnimationData) {
	defer func() {
		state.StateTimer++
		state.Changed = false
	}()

	stateChanged := state.Changed || anim.CurrentSheet != state.CurrentState || anim.CurrentAnimation == nil
	if stateChanged || anim.CurrentDirection != actor.Direction {
		seq, ok := m.provider.Sequence(anim.Key, state.CurrentState, actor.Direction)
		if !ok {
			m.log.Debug("no animation sequence",
				zap.String("key", anim.Key),
				zap.Stringer("state", state.CurrentState),
				zap.Stringer("direction", actor.Direction))
		} else {
			resized := len(seq.Frames) != len(anim.Sequence.Frames)
			anim.Sequence = seq
			if stateChanged || resized || anim.CurrentAnimation == nil {
				anim.CurrentAnimation = animations.NewSequenceAnimation(seq, seq.Speed)
			}
		}
		anim.CurrentSheet = state.CurrentState
		anim.CurrentDirection = actor.Direction
	}

	if anim.CurrentAnimation == nil {
		return
	}
	anim.CurrentAnimation.SetSpeed(Cadence(anim.Sequence.Speed, state.CurrentState, traits.Endurance))
	anim.CurrentAnimation.Update()
}
