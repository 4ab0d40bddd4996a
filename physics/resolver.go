package physics

import (
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/shared/gamemath"
	"go.uber.org/zap"
)

// ContactFlags reports which sides of the actor touched a wall during one
// resolve pass.
type ContactFlags struct {
	Top    bool // head bumped a wall above
	Bottom bool // landed on a wall below
	Left   bool // wall on the actor's left
	Right  bool // wall on the actor's right
}

// Any reports whether any contact was made.
func (c ContactFlags) Any() bool {
	return c.Top || c.Bottom || c.Left || c.Right
}

// Resolver corrects an actor's position against overlapping walls and
// updates its falling and climbing flags. Walls are visited in map order and
// a later wall may overwrite the decision of an earlier one.
type Resolver struct {
	climbCost int
	log       *zap.Logger
}

func NewResolver(cfg *config.Config, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{climbCost: cfg.Character.ClimbCost, log: log}
}

// Resolve runs one collision pass of body against walls, which must already
// be filtered to boxes overlapping the body.
func (r *Resolver) Resolve(actor *components.ActorData, body *components.ObjectData, traits *components.TraitsData, walls []*level.Wall) ContactFlags {
	var flags ContactFlags
	endurance := traits.Endurance.Current

	for _, w := range walls {
		r.resolveWall(actor, body, endurance, w.Box, &flags)
	}

	if len(walls) == 0 {
		actor.Climbing = false
		if !actor.Jumping && !actor.Falling {
			actor.Falling = true
		}
	}

	if endurance <= r.climbCost {
		actor.Climbing = false
	}

	if actor.Jumping && actor.Falling {
		r.log.Warn("actor both jumping and falling, clearing falling",
			zap.Float64("x", body.X),
			zap.Float64("y", body.Y),
			zap.Float64("vy", actor.SpeedY))
		actor.Falling = false
	}

	body.Update()
	return flags
}

func (r *Resolver) resolveWall(actor *components.ActorData, body *components.ObjectData, endurance int, wall gamemath.Rect, flags *ContactFlags) {
	// Landing on top.
	if body.Box().Contains(wall.MidTop()) {
		body.SetBottom(wall.Top() + 1)
		actor.Falling = false
		flags.Bottom = true
	}

	// Outside corners are passed through while falling and caught otherwise.
	if !actor.Falling && !actor.Climbing {
		if box := body.Box(); box.Contains(wall.TopLeft()) && !box.Contains(wall.MidLeft()) {
			body.SetBottom(wall.Top() + 1)
			flags.Bottom = true
		}
		if box := body.Box(); box.Contains(wall.TopRight()) && !box.Contains(wall.MidRight()) {
			body.SetBottom(wall.Top() + 1)
			flags.Bottom = true
		}
	}

	// Side contact.
	if box := body.Box(); box.Contains(wall.MidLeft()) {
		r.grip(actor, body, endurance, wall, wall.BottomRight(), wall.TopRight())
		if body.Box().Right() >= wall.Left() {
			body.SetRight(wall.Left() + 1)
		}
		flags.Right = true
	} else if box.Contains(wall.MidRight()) {
		r.grip(actor, body, endurance, wall, wall.BottomLeft(), wall.TopLeft())
		if body.Box().Left() <= wall.Right() {
			body.SetLeft(wall.Right() - 1)
		}
		flags.Left = true
	}

	// Head bump.
	if box := body.Box(); box.Contains(wall.MidBottom()) {
		actor.SpeedY = 0
		body.SetTop(wall.Bottom() + 1)
		if !body.Box().Contains(wall.MidTop()) && !actor.Climbing && !actor.Falling {
			actor.Jumping = false
			actor.Falling = true
		}
		flags.Top = true
	}
}

// grip decides whether a side contact turns into a climb. lower and upper
// are the wall corners on the far side of the contact.
func (r *Resolver) grip(actor *components.ActorData, body *components.ObjectData, endurance int, wall gamemath.Rect, lower, upper gamemath.Point) {
	box := body.Box()
	if actor.TryClimb && endurance > r.climbCost {
		actor.Climbing = true
		switch {
		case box.Contains(lower) || box.Contains(wall.MidBottom()):
			body.SetTop(wall.Bottom() + 1)
		case box.Contains(upper) || box.Contains(wall.MidTop()):
			body.SetBottom(wall.Top() - 1)
		}
		return
	}

	actor.Climbing = false
	if !box.Contains(wall.MidTop()) && !actor.Jumping {
		actor.Falling = true
	}
}
