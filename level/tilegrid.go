// Package level holds sub-level wall grids, the level matrix graph and the
// controller that moves actors between sub-levels.
package level

import (
	"sort"

	"github.com/automoto/ascent/shared/gamemath"
	"github.com/automoto/ascent/shared/leveldata"
	"github.com/automoto/ascent/tags"
	"github.com/solarlune/resolv"
)

// Wall is an immutable solid tile.
type Wall struct {
	Box      gamemath.Rect
	SubLevel int
	Code     string
	Index    int // position in map order
	Object   *resolv.Object
}

// TileGrid is the wall set of one sub-level, indexed by a resolv.Space.
type TileGrid struct {
	SubLevel int
	Walls    []*Wall
	Space    *resolv.Space
	Width    int
	Height   int
}

// NewTileGrid builds the collision space for a parsed sub-level. The space
// covers at least the viewport so actors near the edges stay indexed.
func NewTileGrid(data *leveldata.SubLevelData, viewW, viewH, cellSize int) *TileGrid {
	width, height := viewW, viewH
	for _, t := range data.Tiles {
		width = max(width, int(t.X+t.W))
		height = max(height, int(t.Y+t.H))
	}

	g := &TileGrid{
		SubLevel: data.SubLevel,
		Walls:    make([]*Wall, 0, len(data.Tiles)),
		Space:    resolv.NewSpace(width, height, cellSize, cellSize),
		Width:    width,
		Height:   height,
	}

	for i, t := range data.Tiles {
		obj := resolv.NewObject(t.X, t.Y, t.W, t.H, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, t.W, t.H))
		w := &Wall{
			Box:      gamemath.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H},
			SubLevel: data.SubLevel,
			Code:     t.Code,
			Index:    i,
			Object:   obj,
		}
		obj.Data = w // Link for O(1) lookup
		g.Space.Add(obj)
		g.Walls = append(g.Walls, w)
	}
	return g
}

// Attach registers an actor body with the grid's space.
func (g *TileGrid) Attach(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	g.Space.Add(obj)
}

// Holds reports whether obj is registered with this grid.
func (g *TileGrid) Holds(obj *resolv.Object) bool {
	return obj.Space == g.Space
}

// Candidates returns the walls whose boxes overlap obj, in map order.
func (g *TileGrid) Candidates(obj *resolv.Object) []*Wall {
	if obj.Space != g.Space {
		return nil
	}
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	box := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	var walls []*Wall
	seen := make(map[int]bool)
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		w, ok := o.Data.(*Wall)
		if !ok || seen[w.Index] || !box.Overlaps(w.Box) {
			continue
		}
		seen[w.Index] = true
		walls = append(walls, w)
	}
	sort.Slice(walls, func(i, j int) bool { return walls[i].Index < walls[j].Index })
	return walls
}
