// Package tileset turns external tileset references into embedded tileset
// records: it owns the source-to-image lookup table, the embedded record
// layout, and the per-entry skip conditions.
package tileset

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/backmassage/mapembed/internal/probe"
)

// Embedded is an inline tileset. Field order is the key order written to the
// map, so keep it stable.
type Embedded struct {
	FirstGID    int    `json:"firstgid"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	ImageWidth  int    `json:"imagewidth"`
	ImageHeight int    `json:"imageheight"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	TileCount   int    `json:"tilecount"`
	Columns     int    `json:"columns"`
	Margin      int    `json:"margin"`
	Spacing     int    `json:"spacing"`
}

// Rows is the number of tile rows in the image.
func (e *Embedded) Rows() int {
	if e.Columns == 0 {
		return 0
	}
	return e.TileCount / e.Columns
}

// Build sizes image (a path relative to dir, slash-separated) and returns the
// embedded tileset starting at firstGID with square tiles of tileSize pixels.
// Margin and spacing are always zero.
func Build(dir, image string, tileSize, firstGID int) (*Embedded, error) {
	imgPath := filepath.Join(dir, filepath.FromSlash(image))

	info, err := probe.Probe(imgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, imgPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableAsset, err)
	}

	columns, rows := info.Grid(tileSize)
	return &Embedded{
		FirstGID:    firstGID,
		Name:        NameFor(image),
		Image:       image,
		ImageWidth:  info.Width,
		ImageHeight: info.Height,
		TileWidth:   tileSize,
		TileHeight:  tileSize,
		TileCount:   columns * rows,
		Columns:     columns,
		Margin:      0,
		Spacing:     0,
	}, nil
}

// NameFor derives a tileset name from its image filename by dropping the
// extension: "broken-bridge.png" becomes "broken-bridge".
func NameFor(image string) string {
	return strings.TrimSuffix(image, path.Ext(image))
}
