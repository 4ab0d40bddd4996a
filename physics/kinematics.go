// Package physics integrates actor motion and resolves it against sub-level
// walls.
package physics

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/shared/gamemath"
)

// Kinematics integrates one actor for one tick. It holds a copy of the
// physics tuning taken at construction.
type Kinematics struct {
	cfg       config.PhysicsConfig
	jumpCost  int
	climbCost int
}

func NewKinematics(cfg *config.Config) *Kinematics {
	return &Kinematics{
		cfg:       cfg.Physics,
		jumpCost:  cfg.Character.JumpCost,
		climbCost: cfg.Character.ClimbCost,
	}
}

// Integrate applies input, gravity, drag and endurance bookkeeping, then
// moves body by the resulting velocity. A nil input means no intent, as for
// NPCs or an actor in an interaction state.
func (k *Kinematics) Integrate(actor *components.ActorData, body *components.ObjectData, traits *components.TraitsData, input *components.InputData) {
	endurance := &traits.Endurance

	impulse := false
	if input != nil {
		impulse = k.applyInput(actor, endurance, input)
	}

	k.integrateVertical(actor, body, impulse)

	// Rest restores endurance.
	if !endurance.Full() && !actor.Climbing && !actor.Jumping {
		actor.RegenTimer++
		if actor.RegenTimer >= endurance.RegenInterval {
			endurance.Add(endurance.RegenAmount)
			actor.RegenTimer = 0
		}
	}

	drag := 0.0
	switch {
	case !actor.Falling && !actor.Jumping:
		drag = k.cfg.Friction
	case actor.Falling:
		drag = k.cfg.AirResistance
	}
	actor.SpeedX = gamemath.ApplyDrag(actor.SpeedX, drag, k.cfg.StopEpsilon)

	body.X += actor.SpeedX
}

// applyInput reports whether a jump or wall jump started this tick.
func (k *Kinematics) applyInput(actor *components.ActorData, endurance *components.Pool, input *components.InputData) bool {
	jumped := false
	if input.Jump {
		jumped = k.tryJump(actor, endurance)
	}

	if input.HoldWall {
		actor.TryClimb = true
	} else {
		actor.TryClimb = false
		actor.Climbing = false
	}

	if actor.Climbing && endurance.Current > k.climbCost {
		if k.climb(actor, endurance, input, jumped) {
			jumped = true
		}
	}

	if actor.Climbing || (actor.Airborne() && !k.cfg.AllowAirControl) {
		return jumped
	}

	limit := k.cfg.WalkCap
	if input.Run {
		limit = k.cfg.RunCap
	}
	if input.MoveRight {
		actor.Direction = config.FacingRight
		actor.SpeedX = gamemath.Approach(actor.SpeedX, k.cfg.Acceleration, limit)
	}
	if input.MoveLeft {
		actor.Direction = config.FacingLeft
		actor.SpeedX = gamemath.Approach(actor.SpeedX, k.cfg.Acceleration, -limit)
	}
	return jumped
}

// tryJump starts a jump when endurance and the jump count allow it and
// reports whether an impulse was given.
func (k *Kinematics) tryJump(actor *components.ActorData, endurance *components.Pool) bool {
	if endurance.Current <= k.jumpCost {
		return false
	}

	allowed := false
	switch {
	case !k.cfg.DoubleJump:
		allowed = !actor.Jumping && !actor.Falling
	case actor.JumpCount == 0:
		allowed = true
	case actor.JumpCount == 1:
		allowed = actor.SpeedY < k.cfg.DoubleJumpThreshold || actor.Falling
	}
	if !allowed {
		return false
	}

	endurance.Add(-k.jumpCost)
	actor.Jumping = true
	actor.Falling = false
	actor.SpeedY = k.cfg.JumpStrength
	actor.JumpCount++
	return true
}

// climb drives vertical speed from input and drains endurance. It reports
// whether the actor kicked off the wall.
func (k *Kinematics) climb(actor *components.ActorData, endurance *components.Pool, input *components.InputData, jumped bool) bool {
	switch {
	case input.MoveUp:
		actor.SpeedY = gamemath.Approach(actor.SpeedY, k.cfg.Acceleration, -k.cfg.ClimbCap)
	case input.MoveDown:
		actor.SpeedY = gamemath.Approach(actor.SpeedY, k.cfg.Acceleration, k.cfg.ClimbCap)
	default:
		actor.SpeedY = 0
	}

	kicked := false
	if input.Jump && k.cfg.WallRunJump {
		kicked = k.wallJump(actor, endurance, jumped)
	}

	actor.ClimbTimer++
	if actor.ClimbTimer >= endurance.DrainInterval {
		endurance.Add(-endurance.DrainAmount)
		actor.ClimbTimer = 0
	}
	return kicked
}

// wallJump kicks the actor off the wall it is climbing. It shares the
// endurance cost of a jump started on the same tick.
func (k *Kinematics) wallJump(actor *components.ActorData, endurance *components.Pool, jumped bool) bool {
	awayCap := k.cfg.WalkCap - k.cfg.Acceleration
	switch actor.Direction {
	case config.FacingRight:
		if actor.SpeedX < -awayCap {
			return false
		}
	case config.FacingLeft:
		if actor.SpeedX > awayCap {
			return false
		}
	}
	if !jumped {
		if endurance.Current <= k.jumpCost {
			return false
		}
		endurance.Add(-k.jumpCost)
	}

	actor.Direction = actor.Direction.Opposite()
	actor.SpeedX = actor.Direction.Sign() * k.cfg.JumpStrength / k.cfg.WallJumpRatioX
	actor.SpeedY = k.cfg.JumpStrength / k.cfg.WallJumpRatioY
	actor.Climbing = false
	actor.Jumping = true
	actor.Falling = false
	actor.JumpCount = 1
	return true
}

// integrateVertical moves the actor vertically. Gravity is not applied on
// the tick a jump starts, so the impulse is observable for one tick.
func (k *Kinematics) integrateVertical(actor *components.ActorData, body *components.ObjectData, impulse bool) {
	switch {
	case actor.Jumping:
		actor.Falling = false
		body.Y -= actor.SpeedY
		if !impulse {
			actor.SpeedY -= k.cfg.Gravity
		}
		if actor.SpeedY < 0 {
			actor.Jumping = false
			actor.Falling = true
			actor.SpeedY = 0
		}
	case actor.Falling && !actor.Climbing:
		body.Y += actor.SpeedY
		actor.SpeedY += k.cfg.Gravity
		if tv := k.cfg.TerminalVelocity; tv > 0 && actor.SpeedY > tv {
			actor.SpeedY = tv
		}
	}

	switch {
	case actor.Climbing:
		body.Y += actor.SpeedY
		actor.JumpCount = 0
	case !actor.Jumping && !actor.Falling:
		actor.JumpCount = 0
		actor.SpeedY = 0
	}
}
