package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseSubLevel(t *testing.T) {
	src := "N/A N/A GL0\n" +
		"GL1  HR5\n" +
		"N/A N/A N/A\n"

	data, err := ParseSubLevel(strings.NewReader(src), "test.txt", 32)
	if err != nil {
		t.Fatalf("ParseSubLevel: %v", err)
	}
	if data.Rows != 3 || data.Cols != 3 {
		t.Fatalf("grid = %dx%d, want 3x3", data.Rows, data.Cols)
	}

	want := []Tile{
		{X: 64, Y: 0, W: 32, H: 32, Row: 0, Col: 2, Code: "GL0"},
		{X: 0, Y: 32, W: 32, H: 32, Row: 1, Col: 0, Code: "GL1"},
		{X: 64, Y: 32, W: 32, H: 32, Row: 1, Col: 2, Code: "HR5"},
	}
	if len(data.Tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d", len(data.Tiles), len(want))
	}
	for i, tile := range data.Tiles {
		if tile != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tile, want[i])
		}
	}
}

func TestParseSubLevelRejectsBadCode(t *testing.T) {
	_, err := ParseSubLevel(strings.NewReader("GL0 TOOLONG\n"), "bad.txt", 32)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Line != 1 || perr.Col != 2 || perr.Token != "TOOLONG" {
		t.Errorf("ParseError = %+v", perr)
	}
}

func TestParseMatrix(t *testing.T) {
	src := "###### LVL1 ######\n" +
		"######  LVL2 LVL3\n" +
		"\n"

	m, err := ParseMatrix(strings.NewReader(src), "level_matrix.lvl")
	if err != nil {
		t.Fatalf("ParseMatrix: %v", err)
	}
	if len(m.Cells) != 2 {
		t.Fatalf("rows = %d, want 2", len(m.Cells))
	}

	tests := []struct {
		row, col int
		want     Cell
	}{
		{0, 0, Cell{Void: true}},
		{0, 1, Cell{SubLevel: 1}},
		{1, 1, Cell{SubLevel: 2}},
		{1, 2, Cell{SubLevel: 3}},
	}
	for _, tt := range tests {
		if got := m.Cells[tt.row][tt.col]; got != tt.want {
			t.Errorf("cell[%d][%d] = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestParseMatrixErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", "\n\n"},
		{"unknown token", "###### ROOM1\n"},
		{"bad id", "LVLx\n"},
		{"negative id", "LVL-2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatrix(strings.NewReader(tt.src), "m.lvl")
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
		})
	}
}

func TestLoadMissingAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"Level_1/level_matrix.lvl": {Data: []byte("LVL1\n")},
	}

	if _, err := LoadSubLevel(fsys, 1, 7, 32); !errors.Is(err, ErrMissingLevelAsset) {
		t.Errorf("LoadSubLevel err = %v, want ErrMissingLevelAsset", err)
	}
	if _, err := LoadMatrix(fsys, 2); !errors.Is(err, ErrMissingLevelAsset) {
		t.Errorf("LoadMatrix err = %v, want ErrMissingLevelAsset", err)
	}
	if _, err := LoadMatrix(fsys, 1); err != nil {
		t.Errorf("LoadMatrix(1): %v", err)
	}
}

func TestLoadSubLevelText(t *testing.T) {
	fsys := fstest.MapFS{
		"Level_2/Sub_Level_3.txt": {Data: []byte("GL0 GL0\r\n")},
	}
	data, err := LoadSubLevel(fsys, 2, 3, 32)
	if err != nil {
		t.Fatalf("LoadSubLevel: %v", err)
	}
	if data.Level != 2 || data.SubLevel != 3 || len(data.Tiles) != 2 {
		t.Errorf("data = %+v", data)
	}
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="walls.png" width="64" height="32"/>
  <tile id="0">
   <properties>
    <property name="code" value="GL0"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="walls" width="3" height="2">
  <data encoding="csv">
0,0,1,
1,2,0
</data>
 </layer>
</map>
`

func TestLoadSubLevelTMXFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"Level_1/Sub_Level_1.tmx": {Data: []byte(testTMX)},
	}
	data, err := LoadSubLevel(fsys, 1, 1, 32)
	if err != nil {
		t.Fatalf("LoadSubLevel: %v", err)
	}
	if len(data.Tiles) != 3 {
		t.Fatalf("got %d tiles, want 3", len(data.Tiles))
	}
	if data.Tiles[0].Code != "GL0" || data.Tiles[0].X != 64 || data.Tiles[0].Y != 0 {
		t.Errorf("first tile = %+v", data.Tiles[0])
	}
	if data.Tiles[2].Code != "1" {
		t.Errorf("tile without code property = %q, want tile id", data.Tiles[2].Code)
	}
}
