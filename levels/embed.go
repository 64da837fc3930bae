package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/bobross/common"
)

//go:embed *.json
var LevelsFS embed.FS

// WallCell is the int-grid value marking a solid tile in a physics layer.
const WallCell = 1

var (
	ErrNoPlayerStart        = errors.New("levels: no PlayerStart entity")
	ErrMultiplePlayerStarts = errors.New("levels: more than one PlayerStart entity")
	ErrBadLayer             = errors.New("levels: layer size does not match level dimensions")
)

// Level is a tile grid plus placed entities. Layer cells are row-major with
// the first row at the top of the level.
type Level struct {
	Name      string      `json:"name,omitempty"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	TileSize  int         `json:"tile_size,omitempty"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Physics bool `json:"physics"`
}

// Entity is a placed object. X and Y are the pixel position of its center,
// measured from the top-left corner of the level.
type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Validate checks that every layer covers the whole grid.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("levels: invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("%w: layer %d has %d cells, want %d", ErrBadLayer, i, len(layer), l.Width*l.Height)
		}
	}
	return nil
}

func (l *Level) Tile() float64 {
	if l.TileSize <= 0 {
		return common.TileSize
	}
	return float64(l.TileSize)
}

// PixelHeight is the level height in world units.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * l.Tile()
}

// SolidCells flattens every physics layer into one grid holding 1 where
// any of them has a wall and 0 elsewhere.
func (l *Level) SolidCells() []int {
	cells := make([]int, l.Width*l.Height)
	for i, layer := range l.Layers {
		if i >= len(l.LayerMeta) || !l.LayerMeta[i].Physics {
			continue
		}
		for idx, v := range layer {
			if idx < len(cells) && v == WallCell {
				cells[idx] = 1
			}
		}
	}
	return cells
}

// LoadLevelFromFS reads a level by name. A file under levels/ on disk takes
// precedence over the embedded copy.
func LoadLevelFromFS(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}

// Names lists the embedded levels without extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		log.Printf("levels: list embedded levels: %v", err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return names
}
