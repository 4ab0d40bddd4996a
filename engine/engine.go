// Package engine wires the simulation packages into a fixed-tick world.
package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/ascent/assets/animations"
	"github.com/automoto/ascent/character"
	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/level"
	"github.com/automoto/ascent/physics"
	"github.com/automoto/ascent/systems"
	"github.com/automoto/ascent/systems/factory"
	"github.com/automoto/ascent/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var (
	ErrNoCharacter = errors.New("no character")
	ErrNoLevel     = errors.New("no level loaded")
)

// Engine owns the world and runs one tick at a time. It is not safe for
// concurrent use; GameLoop serializes access.
type Engine struct {
	world  donburi.World
	cfg    *config.Config
	staged *config.Config
	fsys   fs.FS
	log    *zap.Logger

	buffTable *config.BuffTable
	provider  animations.Provider

	kinematics *physics.Kinematics
	resolver   *physics.Resolver
	states     *character.StateMachine
	buffs      *character.BuffRunner

	runner runner
	ticks  uint64
}

// New builds an engine reading level data from fsys. A nil buff table uses
// the built-in one.
func New(cfg *config.Config, fsys fs.FS, buffTable *config.BuffTable, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if buffTable == nil {
		var err error
		if buffTable, err = config.DefaultBuffTable(); err != nil {
			return nil, err
		}
	}

	e := &Engine{
		world:     donburi.NewWorld(),
		fsys:      fsys,
		log:       log,
		buffTable: buffTable,
		provider:  animations.NewTableProvider(config.CharacterAnimations),
		buffs:     character.NewBuffRunner(buffTable, log.Named("buffs")),
	}
	e.applyConfig(cfg)
	e.registerSystems()
	return e, nil
}

func (e *Engine) applyConfig(cfg *config.Config) {
	e.cfg = cfg
	e.kinematics = physics.NewKinematics(cfg)
	e.resolver = physics.NewResolver(cfg, e.log.Named("physics"))
	e.states = character.NewStateMachine(cfg, e.provider, e.log.Named("state"))
}

func (e *Engine) registerSystems() {
	e.AddSystem(System{Name: "kinematics", Phase: PhaseKinematics, Update: func(w donburi.World) {
		systems.UpdateKinematics(w, e.kinematics)
	}})
	e.AddSystem(System{Name: "collision", Phase: PhaseCollision, Update: func(w donburi.World) {
		systems.UpdateCollisions(w, e.resolver)
	}})
	e.AddSystem(System{Name: "state", Phase: PhaseState, Update: func(w donburi.World) {
		systems.UpdateStates(w, e.states)
	}})
	e.AddSystem(System{Name: "level", Phase: PhaseLevel, Update: systems.UpdateLevel})
	e.AddSystem(System{Name: "buffs", Phase: PhaseBuffs, Update: func(w donburi.World) {
		systems.UpdateBuffs(w, e.buffs)
	}})
	e.AddSystem(System{Name: "animation", Phase: PhaseAnimation, Update: func(w donburi.World) {
		systems.UpdateAnimation(w, e.states)
	}})
}

// AddSystem registers s to run every tick within its phase.
func (e *Engine) AddSystem(s System) {
	e.runner.add(s)
}

// Tick advances the simulation by one fixed step.
func (e *Engine) Tick() {
	e.runner.run(e.world)
	e.ticks++
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

func (e *Engine) World() donburi.World   { return e.world }
func (e *Engine) Config() *config.Config { return e.cfg }

// SetProvider replaces the animation source for every actor.
func (e *Engine) SetProvider(p animations.Provider) {
	e.provider = p
	e.states.SetProvider(p)
}

// Level returns the active level controller.
func (e *Engine) Level() (*level.Controller, bool) {
	return systems.ActiveLevel(e.world)
}

// Character returns the playable character's entry.
func (e *Engine) Character() (*donburi.Entry, bool) {
	return tags.Character.First(e.world)
}

// ReloadConfig validates cfg and stages it. It takes effect on the next
// LoadLevel.
func (e *Engine) ReloadConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	e.staged = cfg
	e.log.Info("config staged", zap.Uint64("tick", e.ticks))
	return nil
}

// LoadLevel builds every sub-level of levelID and enters subLevel, applying
// any staged config. On error the previous level stays active.
func (e *Engine) LoadLevel(levelID, subLevel int) error {
	cfg := e.cfg
	if e.staged != nil {
		cfg = e.staged
	}
	ctrl, err := level.Load(e.fsys, cfg, levelID, subLevel, e.log.Named("level"))
	if err != nil {
		return fmt.Errorf("load level %d: %w", levelID, err)
	}
	if e.staged != nil {
		e.applyConfig(e.staged)
		e.staged = nil
		e.log.Info("config applied", zap.Int("level", levelID))
	}

	var stale []donburi.Entity
	components.Level.Each(e.world, func(entry *donburi.Entry) {
		stale = append(stale, entry.Entity())
	})
	tags.NPC.Each(e.world, func(entry *donburi.Entry) {
		stale = append(stale, entry.Entity())
	})
	for _, entity := range stale {
		e.world.Remove(entity)
	}
	factory.CreateLevel(e.world, ctrl)

	grid := ctrl.Grid()
	char, ok := e.Character()
	if !ok {
		char = factory.CreateCharacter(e.world, e.cfg, e.cfg.Character.StartX, e.cfg.Character.StartY)
	} else {
		factory.Reshape(char, e.cfg.Character.Width, e.cfg.Character.Height)
		e.place(char, e.cfg.Character.StartX, e.cfg.Character.StartY)
	}
	grid.Attach(components.Object.Get(char).Object)

	if e.cfg.NPC.Enabled {
		npc := factory.CreateNPC(e.world, e.cfg, e.cfg.NPC.StartX, e.cfg.NPC.StartY)
		grid.Attach(components.Object.Get(npc).Object)
	}
	return nil
}

// place puts an actor at rest at (x, y).
func (e *Engine) place(entry *donburi.Entry, x, y float64) {
	actor := components.Actor.Get(entry)
	*actor = components.ActorData{Direction: actor.Direction}
	body := components.Object.Get(entry)
	body.X, body.Y = x, y
	body.Update()
}

// SetInput replaces the character's intent for the following ticks.
func (e *Engine) SetInput(in components.InputData) error {
	char, ok := e.Character()
	if !ok {
		return ErrNoCharacter
	}
	components.Input.SetValue(char, in)
	return nil
}

// Interact puts the character into the interaction state kind. Movement
// input is ignored until EndInteraction.
func (e *Engine) Interact(kind config.StateID) error {
	char, ok := e.Character()
	if !ok {
		return ErrNoCharacter
	}
	return e.states.Interact(components.State.Get(char), kind)
}

func (e *Engine) EndInteraction() bool {
	char, ok := e.Character()
	if !ok {
		return false
	}
	return e.states.EndInteraction(components.State.Get(char))
}

func (e *Engine) ToggleCrying() bool {
	char, ok := e.Character()
	if !ok {
		return false
	}
	return e.states.ToggleCrying(components.State.Get(char))
}

// GrantBuff gives the character a buff from the table. It starts on the
// next tick.
func (e *Engine) GrantBuff(name string) error {
	char, ok := e.Character()
	if !ok {
		return ErrNoCharacter
	}
	return e.buffs.Grant(components.Buffs.Get(char), name)
}
