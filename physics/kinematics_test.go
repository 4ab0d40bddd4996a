package physics

import (
	"math"
	"testing"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/solarlune/resolv"
)

type testActor struct {
	actor  *components.ActorData
	body   *components.ObjectData
	traits *components.TraitsData
}

func newTestActor(cfg *config.Config, x, y float64) testActor {
	c := cfg.Character
	return testActor{
		actor: &components.ActorData{Direction: config.FacingRight},
		body:  &components.ObjectData{Object: resolv.NewObject(x, y, c.Width, c.Height)},
		traits: &components.TraitsData{
			Name:      c.Name,
			Endurance: components.NewPool(c.Endurance),
		},
	}
}

func (a testActor) integrate(k *Kinematics, in *components.InputData) {
	k.Integrate(a.actor, a.body, a.traits, in)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGravityMonotonicity(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 100)
	a.actor.Falling = true

	for tick := 1; tick <= 60; tick++ {
		before := a.actor.SpeedY
		a.integrate(k, nil)
		if got := a.actor.SpeedY - before; !almostEqual(got, cfg.Physics.Gravity) {
			t.Fatalf("tick %d: vy grew by %v, want %v", tick, got, cfg.Physics.Gravity)
		}
	}
	if a.actor.SpeedY != 60 {
		t.Errorf("vy after 60 ticks = %v, want 60 with no terminal velocity", a.actor.SpeedY)
	}
}

func TestTerminalVelocity(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.TerminalVelocity = 12
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 100)
	a.actor.Falling = true

	for range 40 {
		a.integrate(k, nil)
	}
	if a.actor.SpeedY != 12 {
		t.Errorf("vy = %v, want clamp at 12", a.actor.SpeedY)
	}
}

func TestJumpFromRest(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.DoubleJump = false
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)

	a.integrate(k, &components.InputData{Jump: true})

	if !a.actor.Jumping || a.actor.Falling {
		t.Fatalf("jumping=%v falling=%v, want jumping only", a.actor.Jumping, a.actor.Falling)
	}
	if a.actor.SpeedY != 15 {
		t.Errorf("vy = %v, want 15", a.actor.SpeedY)
	}
	if a.traits.Endurance.Current != 45 {
		t.Errorf("endurance = %d, want 45", a.traits.Endurance.Current)
	}
	if a.body.Y != 485 {
		t.Errorf("y = %v, want 485", a.body.Y)
	}
}

func TestJumpCostOncePerImpulse(t *testing.T) {
	tests := []struct {
		name         string
		doubleJump   bool
		ticks        int
		wantImpulses int
	}{
		{"single jump held", false, 12, 1},
		{"double jump held", true, 30, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Physics.DoubleJump = tt.doubleJump
			k := NewKinematics(cfg)
			a := newTestActor(cfg, 100, 500)
			in := &components.InputData{Jump: true}

			impulses := 0
			for range tt.ticks {
				before := a.actor.SpeedY
				a.integrate(k, in)
				if a.actor.SpeedY == cfg.Physics.JumpStrength && before != cfg.Physics.JumpStrength {
					impulses++
				}
				if a.actor.Jumping && a.actor.Falling {
					t.Fatal("jumping and falling at once")
				}
			}
			if impulses != tt.wantImpulses {
				t.Fatalf("impulses = %d, want %d", impulses, tt.wantImpulses)
			}
			want := 50 - impulses*cfg.Character.JumpCost
			if a.traits.Endurance.Current != want {
				t.Errorf("endurance = %d, want %d", a.traits.Endurance.Current, want)
			}
		})
	}
}

func TestJumpNeedsEndurance(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)
	a.traits.Endurance.Current = cfg.Character.JumpCost

	a.integrate(k, &components.InputData{Jump: true})

	if a.actor.Jumping {
		t.Error("jumped without enough endurance")
	}
	if a.traits.Endurance.Current < cfg.Character.JumpCost {
		t.Errorf("endurance = %d, want no deduction", a.traits.Endurance.Current)
	}
}

func TestJumpApexTurnsToFalling(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)

	a.integrate(k, &components.InputData{Jump: true})
	for tick := 0; a.actor.Jumping; tick++ {
		if tick > 100 {
			t.Fatal("jump never ended")
		}
		a.integrate(k, nil)
	}
	if !a.actor.Falling || a.actor.SpeedY != 0 {
		t.Errorf("falling=%v vy=%v, want falling from rest", a.actor.Falling, a.actor.SpeedY)
	}
}

func TestStopEpsilon(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		falling bool
	}{
		{"friction right", 1.0, false},
		{"friction left", -1.0, false},
		{"air right", 1.3, true},
		{"air left", -1.3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			k := NewKinematics(cfg)
			a := newTestActor(cfg, 100, 100)
			a.actor.SpeedX = tt.speed
			a.actor.Falling = tt.falling

			a.integrate(k, nil)
			if a.actor.SpeedX != 0 {
				t.Errorf("vx = %v, want exactly 0", a.actor.SpeedX)
			}
		})
	}
}

func TestNoDragWhileRising(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)
	a.actor.SpeedX = 6
	a.actor.Jumping = true
	a.actor.SpeedY = 10

	a.integrate(k, nil)
	if a.actor.SpeedX != 6 {
		t.Errorf("vx = %v, want 6 while rising", a.actor.SpeedX)
	}
}

func TestHorizontalInput(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)

	t.Run("walk stays under cap", func(t *testing.T) {
		a := newTestActor(cfg, 100, 500)
		for range 30 {
			a.integrate(k, &components.InputData{MoveRight: true})
			if a.actor.SpeedX <= 0 || a.actor.SpeedX > cfg.Physics.WalkCap {
				t.Fatalf("vx = %v, want in (0, %v]", a.actor.SpeedX, cfg.Physics.WalkCap)
			}
		}
		if a.actor.Direction != config.FacingRight {
			t.Errorf("direction = %s, want right", a.actor.Direction)
		}
	})

	t.Run("run exceeds walk cap", func(t *testing.T) {
		a := newTestActor(cfg, 100, 500)
		fastest := 0.0
		for range 30 {
			a.integrate(k, &components.InputData{MoveLeft: true, Run: true})
			fastest = max(fastest, -a.actor.SpeedX)
		}
		if fastest <= cfg.Physics.WalkCap || fastest > cfg.Physics.RunCap {
			t.Errorf("top speed = %v, want in (%v, %v]", fastest, cfg.Physics.WalkCap, cfg.Physics.RunCap)
		}
		if a.actor.Direction != config.FacingLeft {
			t.Errorf("direction = %s, want left", a.actor.Direction)
		}
	})

	t.Run("ignored while airborne", func(t *testing.T) {
		a := newTestActor(cfg, 100, 100)
		a.actor.Falling = true
		a.integrate(k, &components.InputData{MoveRight: true})
		if a.actor.SpeedX != 0 {
			t.Errorf("vx = %v, want 0 without air control", a.actor.SpeedX)
		}
	})

	t.Run("air control", func(t *testing.T) {
		airCfg := config.Default()
		airCfg.Physics.AllowAirControl = true
		a := newTestActor(airCfg, 100, 100)
		a.actor.Falling = true
		a.integrate(NewKinematics(airCfg), &components.InputData{MoveRight: true})
		if !almostEqual(a.actor.SpeedX, 2) {
			t.Errorf("vx = %v, want 2 after air resistance", a.actor.SpeedX)
		}
	})

	t.Run("ignored while climbing", func(t *testing.T) {
		a := newTestActor(cfg, 100, 100)
		a.actor.Climbing = true
		a.integrate(k, &components.InputData{MoveRight: true, HoldWall: true})
		if a.actor.SpeedX != 0 {
			t.Errorf("vx = %v, want 0 while climbing", a.actor.SpeedX)
		}
	})
}

func TestClimb(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)
	a.actor.Climbing = true
	up := &components.InputData{HoldWall: true, MoveUp: true}

	a.integrate(k, up)
	if a.actor.SpeedY != -3 || a.body.Y != 497 {
		t.Fatalf("after one tick vy=%v y=%v, want -3 and 497", a.actor.SpeedY, a.body.Y)
	}
	a.integrate(k, up)
	a.integrate(k, up)
	if a.actor.SpeedY != -6 {
		t.Errorf("vy = %v, want -6 held under the climb cap", a.actor.SpeedY)
	}
	if a.body.Y != 485 {
		t.Errorf("y = %v, want 485", a.body.Y)
	}

	a.integrate(k, &components.InputData{HoldWall: true})
	if a.actor.SpeedY != 0 {
		t.Errorf("vy = %v, want 0 with no direction held", a.actor.SpeedY)
	}

	a.integrate(k, &components.InputData{})
	if a.actor.Climbing || a.actor.TryClimb {
		t.Error("releasing hold-wall should stop climbing")
	}
}

func TestClimbDrainsEndurance(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)
	a.actor.Climbing = true

	for range 10 {
		a.integrate(k, &components.InputData{HoldWall: true})
	}
	if a.traits.Endurance.Current != 48 {
		t.Errorf("endurance = %d, want 48 after 10 ticks", a.traits.Endurance.Current)
	}
}

func TestWallJump(t *testing.T) {
	tests := []struct {
		name    string
		facing  config.Direction
		wantDir config.Direction
		wantVX  float64
	}{
		{"off a wall on the right", config.FacingRight, config.FacingLeft, -6},
		{"off a wall on the left", config.FacingLeft, config.FacingRight, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			k := NewKinematics(cfg)
			a := newTestActor(cfg, 100, 500)
			a.actor.Climbing = true
			a.actor.Direction = tt.facing

			a.integrate(k, &components.InputData{HoldWall: true, Jump: true})

			if a.actor.Climbing || !a.actor.Jumping || a.actor.Falling {
				t.Fatalf("climbing=%v jumping=%v falling=%v", a.actor.Climbing, a.actor.Jumping, a.actor.Falling)
			}
			if a.actor.Direction != tt.wantDir {
				t.Errorf("direction = %s, want %s", a.actor.Direction, tt.wantDir)
			}
			if !almostEqual(a.actor.SpeedX, tt.wantVX) {
				t.Errorf("vx = %v, want %v", a.actor.SpeedX, tt.wantVX)
			}
			if !almostEqual(a.actor.SpeedY, 18.75) {
				t.Errorf("vy = %v, want 18.75", a.actor.SpeedY)
			}
			if a.traits.Endurance.Current != 45 {
				t.Errorf("endurance = %d, want a single jump cost", a.traits.Endurance.Current)
			}
		})
	}
}

func TestWallJumpDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.WallRunJump = false
	k := NewKinematics(cfg)
	a := newTestActor(cfg, 100, 500)
	a.actor.Climbing = true

	a.integrate(k, &components.InputData{HoldWall: true, Jump: true})
	if a.actor.SpeedX != 0 || a.actor.Direction != config.FacingRight {
		t.Errorf("vx=%v direction=%s, want no kick", a.actor.SpeedX, a.actor.Direction)
	}
}

func TestEnduranceRegen(t *testing.T) {
	cfg := config.Default()
	k := NewKinematics(cfg)

	t.Run("resting", func(t *testing.T) {
		a := newTestActor(cfg, 100, 500)
		a.traits.Endurance.Current = 40
		for range 8 {
			a.integrate(k, nil)
		}
		if a.traits.Endurance.Current != 42 {
			t.Errorf("endurance = %d, want 42", a.traits.Endurance.Current)
		}
	})

	t.Run("capped at max", func(t *testing.T) {
		a := newTestActor(cfg, 100, 500)
		a.traits.Endurance.Current = 49
		for range 40 {
			a.integrate(k, nil)
		}
		if a.traits.Endurance.Current != 50 {
			t.Errorf("endurance = %d, want 50", a.traits.Endurance.Current)
		}
	})

	t.Run("not while climbing", func(t *testing.T) {
		a := newTestActor(cfg, 100, 500)
		a.traits.Endurance.Current = 40
		a.actor.Climbing = true
		for range 4 {
			a.integrate(k, &components.InputData{HoldWall: true})
		}
		if a.traits.Endurance.Current != 40 {
			t.Errorf("endurance = %d, want 40", a.traits.Endurance.Current)
		}
	})
}
