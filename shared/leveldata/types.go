// Package leveldata parses sub-level maps and level matrices. It has no
// dependencies on donburi or resolv, pure data only.
package leveldata

import (
	"errors"
	"fmt"
)

// ErrMissingLevelAsset is returned when a sub-level map or matrix file does
// not exist.
var ErrMissingLevelAsset = errors.New("missing level asset")

// VoidSentinel marks a matrix cell with no sub-level.
const VoidSentinel = "######"

// EmptyTile marks a sub-level cell with no wall.
const EmptyTile = "N/A"

// SubLevelData holds the walls parsed from one sub-level map.
type SubLevelData struct {
	Level    int
	SubLevel int
	Rows     int
	Cols     int
	Tiles    []Tile
}

// Tile is one occupied map cell.
type Tile struct {
	X, Y, W, H float64
	Row, Col   int
	Code       string // tile-type code, used for rendering only
}

// MatrixData is the sub-level layout of a level, indexed [row][col].
type MatrixData struct {
	Level int
	Cells [][]Cell
}

// Cell is either void or a sub-level id.
type Cell struct {
	Void     bool
	SubLevel int
}

// ParseError reports a malformed token in a level file.
type ParseError struct {
	File  string
	Line  int
	Col   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s %q", e.File, e.Line, e.Col, e.Msg, e.Token)
}
