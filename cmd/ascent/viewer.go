package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/ascent/components"
	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/engine"
	"github.com/automoto/ascent/persistence"
	"github.com/automoto/ascent/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	wallColor       = color.RGBA{R: 90, G: 98, B: 120, A: 255}
	npcColor        = color.RGBA{R: 120, G: 200, B: 140, A: 255}

	stateColors = map[config.StateID]color.RGBA{
		config.Idle:     {R: 220, G: 220, B: 220, A: 255},
		config.Walking:  {R: 120, G: 180, B: 255, A: 255},
		config.Running:  {R: 60, G: 120, B: 255, A: 255},
		config.Climbing: {R: 255, G: 200, B: 60, A: 255},
		config.Falling:  {R: 255, G: 120, B: 60, A: 255},
		config.Crying:   {R: 160, G: 120, B: 220, A: 255},
	}
	interactingColor = color.RGBA{R: 240, G: 90, B: 160, A: 255}
)

// viewer is a debug window: walls and actors are drawn as rectangles.
type viewer struct {
	engine *engine.Engine
	store  persistence.Store
	slot   string
	log    *zap.Logger
	width  int
	height int
}

func newViewer(e *engine.Engine, store persistence.Store, slot string, log *zap.Logger) *viewer {
	return &viewer{
		engine: e,
		store:  store,
		slot:   slot,
		log:    log,
		width:  e.Config().Game.Width,
		height: e.Config().Game.Height,
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !v.engine.EndInteraction() {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.engine.ToggleCrying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if err := v.engine.Interact(config.InteractingWithHelp); err != nil {
			v.log.Warn("interact failed", zap.Error(err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if err := v.engine.GrantBuff("Chamomile Tea"); err != nil {
			v.log.Warn("grant failed", zap.Error(err))
		}
	}
	if v.store != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := v.engine.SaveTo(v.store, v.slot); err != nil {
			v.log.Warn("save failed", zap.Error(err))
		}
	}
	if v.store != nil && inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if _, err := v.engine.LoadFrom(v.store, v.slot); err != nil {
			v.log.Warn("load failed", zap.Error(err))
		}
	}

	if err := v.engine.SetInput(pollInput()); err != nil {
		return err
	}
	v.engine.Tick()
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	ctrl, ok := v.engine.Level()
	if !ok {
		return
	}
	dx, dy := ctrl.SlideOffset()
	grid := ctrl.Grid()

	for _, w := range grid.Walls {
		vector.FillRect(screen,
			float32(w.Box.X+dx), float32(w.Box.Y+dy),
			float32(w.Box.W), float32(w.Box.H),
			wallColor, false)
	}

	world := v.engine.World()
	components.Actor.Each(world, func(e *donburi.Entry) {
		body := components.Object.Get(e)
		if !grid.Holds(body.Object) {
			return
		}
		clr := npcColor
		if e.HasComponent(tags.Character) {
			clr = actorColor(components.State.Get(e).CurrentState)
		}
		vector.FillRect(screen,
			float32(body.X+dx), float32(body.Y+dy),
			float32(body.W), float32(body.H),
			clr, false)
	})

	if char, ok := v.engine.Character(); ok {
		actor := components.Actor.Get(char)
		traits := components.Traits.Get(char)
		state := components.State.Get(char)
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"level %d/%d  tick %d\nstate %s  dir %s\nv (%.2f, %.2f)\nendurance %d/%d  buffs %d",
			ctrl.Level(), ctrl.SubLevel(), v.engine.Ticks(),
			state.CurrentState, actor.Direction,
			actor.SpeedX, actor.SpeedY,
			traits.Endurance.Current, traits.Endurance.Max,
			len(components.Buffs.Get(char).Active),
		))
	}
}

func (v *viewer) Layout(width, height int) (int, int) {
	return v.width, v.height
}

func actorColor(s config.StateID) color.RGBA {
	if s.Interacting() {
		return interactingColor
	}
	if c, ok := stateColors[s]; ok {
		return c
	}
	return stateColors[config.Idle]
}
