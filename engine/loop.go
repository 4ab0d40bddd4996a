package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// GameLoop drives an Engine from a ticker. Callers on other goroutines reach
// the engine through Do.
type GameLoop struct {
	engine   *Engine
	tickRate int
	log      *zap.Logger

	mu      sync.Mutex
	pending []func(*Engine)

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewGameLoop(e *Engine, tickRate int) *GameLoop {
	return &GameLoop{
		engine:   e,
		tickRate: tickRate,
		log:      e.log.Named("loop"),
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Do queues fn to run on the loop goroutine before the next tick.
func (g *GameLoop) Do(fn func(*Engine)) {
	g.mu.Lock()
	g.pending = append(g.pending, fn)
	g.mu.Unlock()
}

// Run ticks until Stop is called.
func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tps", g.tickRate))
	for {
		select {
		case <-g.stopChan:
			g.log.Info("game loop stopped", zap.Uint64("ticks", g.engine.Ticks()))
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run after the current tick.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed when Run returns.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

func (g *GameLoop) tick() {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	for _, fn := range pending {
		fn(g.engine)
	}
	g.engine.Tick()
}
