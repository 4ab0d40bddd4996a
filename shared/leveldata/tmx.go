package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// WallLayer is the tile layer read from Tiled exports.
const WallLayer = "walls"

// LoadTMX parses a Tiled export into sub-level data. Tiles come from the
// "walls" layer, or the first tile layer when no layer has that name. A tile's
// code is its tileset "code" property, falling back to the tile id.
func LoadTMX(fsys fs.FS, tmxPath string) (*SubLevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == WallLayer {
			layer = l
			break
		}
	}

	data := &SubLevelData{
		Rows: levelMap.Height,
		Cols: levelMap.Width,
	}
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			code := strconv.FormatUint(uint64(tile.ID), 10)
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if c := tilesetTile.Properties.GetString("code"); c != "" {
					code = c
				}
			}

			data.Tiles = append(data.Tiles, Tile{
				X:    float64(x) * tileW,
				Y:    float64(y) * tileH,
				W:    tileW,
				H:    tileH,
				Row:  y,
				Col:  x,
				Code: code,
			})
		}
	}
	return data, nil
}
