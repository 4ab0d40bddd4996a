package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// SubLevelPath returns the text map path for a sub-level, relative to the
// level root.
func SubLevelPath(level, subLevel int) string {
	return path.Join(fmt.Sprintf("Level_%d", level), fmt.Sprintf("Sub_Level_%d.txt", subLevel))
}

// SubLevelTMXPath returns the Tiled export path for a sub-level.
func SubLevelTMXPath(level, subLevel int) string {
	return path.Join(fmt.Sprintf("Level_%d", level), fmt.Sprintf("Sub_Level_%d.tmx", subLevel))
}

// MatrixPath returns the matrix file path for a level.
func MatrixPath(level int) string {
	return path.Join(fmt.Sprintf("Level_%d", level), "level_matrix.lvl")
}

// LoadSubLevel loads a sub-level from fsys. The text map is preferred; a
// Tiled export with the same stem is used when no text map exists.
func LoadSubLevel(fsys fs.FS, level, subLevel int, tileSize float64) (*SubLevelData, error) {
	txtPath := SubLevelPath(level, subLevel)
	f, err := fsys.Open(txtPath)
	if err == nil {
		defer f.Close()
		data, err := ParseSubLevel(f, txtPath, tileSize)
		if err != nil {
			return nil, fmt.Errorf("load sub-level %s: %w", txtPath, err)
		}
		data.Level = level
		data.SubLevel = subLevel
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open sub-level %s: %w", txtPath, err)
	}

	tmxPath := SubLevelTMXPath(level, subLevel)
	if _, statErr := fs.Stat(fsys, tmxPath); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("load sub-level %s: %w", txtPath, ErrMissingLevelAsset)
		}
		return nil, fmt.Errorf("stat sub-level %s: %w", tmxPath, statErr)
	}
	data, err := LoadTMX(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	data.Level = level
	data.SubLevel = subLevel
	return data, nil
}

// LoadMatrix loads the sub-level matrix for level from fsys.
func LoadMatrix(fsys fs.FS, level int) (*MatrixData, error) {
	p := MatrixPath(level)
	f, err := fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load matrix %s: %w", p, ErrMissingLevelAsset)
		}
		return nil, fmt.Errorf("open matrix %s: %w", p, err)
	}
	defer f.Close()

	m, err := ParseMatrix(f, p)
	if err != nil {
		return nil, fmt.Errorf("load matrix %s: %w", p, err)
	}
	m.Level = level
	return m, nil
}

// ParseSubLevel reads a space-delimited tile grid. Columns are separated by
// single spaces so that blank tokens keep the grid aligned.
func ParseSubLevel(r io.Reader, name string, tileSize float64) (*SubLevelData, error) {
	data := &SubLevelData{}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		tokens := strings.Split(line, " ")
		for col, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" || tok == EmptyTile {
				continue
			}
			if len(tok) < 2 || len(tok) > 3 {
				return nil, &ParseError{File: name, Line: row + 1, Col: col + 1, Token: tok, Msg: "tile code must be 2-3 characters"}
			}
			data.Tiles = append(data.Tiles, Tile{
				X:    float64(col) * tileSize,
				Y:    float64(row) * tileSize,
				W:    tileSize,
				H:    tileSize,
				Row:  row,
				Col:  col,
				Code: tok,
			})
		}
		data.Cols = max(data.Cols, len(tokens))
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	data.Rows = row
	return data, nil
}

// ParseMatrix reads a level matrix. Tokens containing '#' are void cells and
// LVL<n> tokens name sub-level n. Blank lines are skipped.
func ParseMatrix(r io.Reader, name string) (*MatrixData, error) {
	m := &MatrixData{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]Cell, 0, len(fields))
		for col, tok := range fields {
			cell, err := parseMatrixToken(tok)
			if err != nil {
				return nil, &ParseError{File: name, Line: line, Col: col + 1, Token: tok, Msg: err.Error()}
			}
			row = append(row, cell)
		}
		m.Cells = append(m.Cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(m.Cells) == 0 {
		return nil, &ParseError{File: name, Line: 1, Col: 1, Msg: "matrix has no cells"}
	}
	return m, nil
}

func parseMatrixToken(tok string) (Cell, error) {
	if strings.Contains(tok, "#") {
		return Cell{Void: true}, nil
	}
	rest, ok := strings.CutPrefix(tok, "LVL")
	if !ok {
		return Cell{}, errors.New("expected LVL<n> or " + VoidSentinel)
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id < 0 {
		return Cell{}, errors.New("invalid sub-level id")
	}
	return Cell{SubLevel: id}, nil
}
