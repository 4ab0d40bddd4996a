package level

import (
	"errors"
	"fmt"

	"github.com/automoto/ascent/shared/leveldata"
	"go.uber.org/zap"
)

var (
	// ErrUnknownSubLevel is returned for ids that do not appear in the matrix.
	ErrUnknownSubLevel = errors.New("sub-level not in matrix")
	// ErrUnreachableSubLevel is returned when a matrix cell cannot be reached
	// from the entry sub-level.
	ErrUnreachableSubLevel = errors.New("sub-level unreachable from entry")
)

// Direction is a cardinal exit of a sub-level.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// offset returns the matrix row and column delta for d.
func (d Direction) offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// Exit is an optional neighbouring sub-level.
type Exit struct {
	SubLevel int
	OK       bool
}

// Exits lists the neighbour of a sub-level in each direction.
type Exits struct {
	Up, Down, Left, Right Exit
}

// Get returns the sub-level in direction d, if any.
func (e Exits) Get(d Direction) (int, bool) {
	var x Exit
	switch d {
	case Up:
		x = e.Up
	case Down:
		x = e.Down
	case Left:
		x = e.Left
	case Right:
		x = e.Right
	}
	return x.SubLevel, x.OK
}

func (e *Exits) set(d Direction, x Exit) {
	switch d {
	case Up:
		e.Up = x
	case Down:
		e.Down = x
	case Left:
		e.Left = x
	case Right:
		e.Right = x
	}
}

// None reports whether no direction has an exit.
func (e Exits) None() bool {
	return !e.Up.OK && !e.Down.OK && !e.Left.OK && !e.Right.OK
}

// Graph answers adjacency questions about a level matrix.
type Graph struct {
	matrix *leveldata.MatrixData
	log    *zap.Logger
}

func NewGraph(m *leveldata.MatrixData, log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	return &Graph{matrix: m, log: log}
}

// Locate finds id by linear scan in row-major order.
func (g *Graph) Locate(id int) (row, col int, ok bool) {
	for r, cells := range g.matrix.Cells {
		for c, cell := range cells {
			if !cell.Void && cell.SubLevel == id {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (g *Graph) cell(row, col int) (leveldata.Cell, bool) {
	if row < 0 || row >= len(g.matrix.Cells) {
		return leveldata.Cell{}, false
	}
	cells := g.matrix.Cells[row]
	if col < 0 || col >= len(cells) {
		return leveldata.Cell{}, false
	}
	return cells[col], true
}

// Adjacent returns the exits of sub-level id. Neighbours outside the matrix
// are logged and treated as having no exit.
func (g *Graph) Adjacent(id int) (Exits, error) {
	row, col, ok := g.Locate(id)
	if !ok {
		return Exits{}, fmt.Errorf("adjacent %d: %w", id, ErrUnknownSubLevel)
	}

	var exits Exits
	for _, d := range []Direction{Up, Down, Left, Right} {
		dr, dc := d.offset()
		cell, inBounds := g.cell(row+dr, col+dc)
		if !inBounds {
			g.log.Debug("invalid adjacency",
				zap.Int("sub_level", id),
				zap.Stringer("direction", d),
				zap.Int("row", row+dr),
				zap.Int("col", col+dc))
			continue
		}
		if cell.Void {
			continue
		}
		exits.set(d, Exit{SubLevel: cell.SubLevel, OK: true})
	}
	return exits, nil
}

// SubLevels returns every distinct sub-level id in row-major order.
func (g *Graph) SubLevels() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, cells := range g.matrix.Cells {
		for _, cell := range cells {
			if cell.Void || seen[cell.SubLevel] {
				continue
			}
			seen[cell.SubLevel] = true
			ids = append(ids, cell.SubLevel)
		}
	}
	return ids
}

type position struct{ row, col int }

// Validate checks that every sub-level cell is reachable from entry through
// cardinal neighbours.
func (g *Graph) Validate(entry int) error {
	row, col, ok := g.Locate(entry)
	if !ok {
		return fmt.Errorf("validate entry %d: %w", entry, ErrUnknownSubLevel)
	}

	visited := map[position]bool{{row, col}: true}
	queue := []position{{row, col}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []Direction{Up, Down, Left, Right} {
			dr, dc := d.offset()
			next := position{p.row + dr, p.col + dc}
			cell, inBounds := g.cell(next.row, next.col)
			if !inBounds || cell.Void || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	for r, cells := range g.matrix.Cells {
		for c, cell := range cells {
			if !cell.Void && !visited[position{r, c}] {
				return fmt.Errorf("validate matrix: LVL%d at (%d,%d): %w", cell.SubLevel, r, c, ErrUnreachableSubLevel)
			}
		}
	}
	return nil
}
