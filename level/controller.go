package level

import (
	"fmt"
	"io/fs"

	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/shared/gamemath"
	"github.com/automoto/ascent/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Controller owns the sub-level graph of one level and the active TileGrid.
// Every sub-level is loaded up front, so a swap never observes a partially
// built grid.
type Controller struct {
	level    int
	subLevel int
	graph    *Graph
	grids    map[int]*TileGrid
	current  *TileGrid
	exits    Exits

	width       float64
	height      float64
	exitMargin  float64
	entryMargin float64
	slideTicks  int

	slide    *gween.Tween
	slideDir Direction
	slidePos float32

	log *zap.Logger
}

// Load reads the matrix and every sub-level of levelID from fsys and enters
// sub-level entry.
func Load(fsys fs.FS, cfg *config.Config, levelID, entry int, log *zap.Logger) (*Controller, error) {
	if log == nil {
		log = zap.NewNop()
	}

	matrix, err := leveldata.LoadMatrix(fsys, levelID)
	if err != nil {
		return nil, err
	}
	graph := NewGraph(matrix, log)
	if err := graph.Validate(entry); err != nil {
		return nil, fmt.Errorf("level %d: %w", levelID, err)
	}

	ids := graph.SubLevels()
	grids := make(map[int]*TileGrid, len(ids))
	for _, id := range ids {
		data, err := leveldata.LoadSubLevel(fsys, levelID, id, float64(cfg.Game.TileSize))
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", levelID, err)
		}
		grids[id] = NewTileGrid(data, cfg.Game.Width, cfg.Game.Height, cfg.Level.CellSize)
	}

	c := &Controller{
		level:       levelID,
		graph:       graph,
		grids:       grids,
		width:       float64(cfg.Game.Width),
		height:      float64(cfg.Game.Height),
		exitMargin:  cfg.Level.ExitMargin,
		entryMargin: cfg.Level.EntryMargin,
		slideTicks:  cfg.Level.SlideTicks,
		log:         log,
	}
	if err := c.enter(entry); err != nil {
		return nil, err
	}

	log.Info("level loaded",
		zap.Int("level", levelID),
		zap.Int("sub_levels", len(grids)),
		zap.Int("entry", entry))
	return c, nil
}

func (c *Controller) enter(id int) error {
	grid, ok := c.grids[id]
	if !ok {
		return fmt.Errorf("enter sub-level %d: %w", id, ErrUnknownSubLevel)
	}
	exits, err := c.graph.Adjacent(id)
	if err != nil {
		return err
	}
	c.current = grid
	c.subLevel = id
	c.exits = exits
	return nil
}

func (c *Controller) Level() int      { return c.level }
func (c *Controller) SubLevel() int   { return c.subLevel }
func (c *Controller) Grid() *TileGrid { return c.current }
func (c *Controller) Exits() Exits    { return c.exits }
func (c *Controller) Graph() *Graph   { return c.graph }

// GridFor returns the preloaded grid of sub-level id.
func (c *Controller) GridFor(id int) (*TileGrid, bool) {
	g, ok := c.grids[id]
	return g, ok
}

// Crossing reports whether box has passed a viewport edge by more than the
// exit margin, considering only directions with a valid exit. Edges are
// checked right, left, down, then up.
func (c *Controller) Crossing(box gamemath.Rect) (Direction, bool) {
	m := c.exitMargin
	switch {
	case box.X-m > c.width && c.exits.Right.OK:
		return Right, true
	case box.X+m < 0 && c.exits.Left.OK:
		return Left, true
	case box.Y-m > c.height && c.exits.Down.OK:
		return Down, true
	case box.Y+m < 0 && c.exits.Up.OK:
		return Up, true
	}
	return 0, false
}

// Traverse moves body into the neighbouring sub-level when it crosses an
// exit, placing it at the entry margin on the opposite side. A body outside
// the viewport by more than its own size is recentered.
func (c *Controller) Traverse(body *resolv.Object) (Direction, bool) {
	box := gamemath.Rect{X: body.X, Y: body.Y, W: body.W, H: body.H}
	dir, crossed := c.Crossing(box)
	if crossed {
		next, _ := c.exits.Get(dir)
		from := c.subLevel
		if err := c.enter(next); err != nil {
			c.log.Error("sub-level swap failed", zap.Int("from", from), zap.Int("to", next), zap.Error(err))
			crossed = false
		} else {
			c.current.Attach(body)
			switch dir {
			case Right:
				body.X = c.entryMargin
			case Left:
				body.X = c.width - c.entryMargin
			case Down:
				body.Y = c.entryMargin
			case Up:
				body.Y = c.height - c.entryMargin
			}
			c.startSlide(dir)
			c.log.Info("sub-level changed",
				zap.Int("level", c.level),
				zap.Int("from", from),
				zap.Int("to", next),
				zap.Stringer("direction", dir))
		}
	}

	if body.X > c.width+body.W || body.X < -body.W ||
		body.Y > c.height+body.H || body.Y < -body.H {
		c.log.Warn("actor out of bounds, recentering",
			zap.Float64("x", body.X),
			zap.Float64("y", body.Y))
		body.X = c.width / 2
		body.Y = c.height / 2
	}

	body.Update()
	return dir, crossed
}

func (c *Controller) startSlide(dir Direction) {
	if c.slideTicks <= 0 {
		return
	}
	span := c.width
	if dir == Up || dir == Down {
		span = c.height
	}
	c.slideDir = dir
	c.slide = gween.New(float32(span), 0, float32(c.slideTicks), ease.Linear)
	c.slidePos = float32(span)
}

// Tick advances the slide-in tween by one tick.
func (c *Controller) Tick() {
	if c.slide == nil {
		return
	}
	pos, done := c.slide.Update(1)
	c.slidePos = pos
	if done {
		c.slide = nil
		c.slidePos = 0
	}
}

// SlideOffset is the draw offset of the incoming sub-level while it slides
// into view. It is zero once the slide completes.
func (c *Controller) SlideOffset() (dx, dy float64) {
	if c.slide == nil {
		return 0, 0
	}
	p := float64(c.slidePos)
	switch c.slideDir {
	case Right:
		return p, 0
	case Left:
		return -p, 0
	case Down:
		return 0, p
	default:
		return 0, -p
	}
}

// Sliding reports whether a slide-in is in progress.
func (c *Controller) Sliding() bool {
	return c.slide != nil
}
