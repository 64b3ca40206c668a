package level

import (
	"errors"
	"fmt"

	"raycast/model"
)

var (
	ErrEmpty                = errors.New("level has no cells")
	ErrNotRectangular       = errors.New("level rows differ in length")
	ErrUnknownTag           = errors.New("unknown cell tag")
	ErrNoPlayerSpawn        = errors.New("level has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("level has more than one player spawn")
)

// DefaultRows is the level used when no level file is configured.
var DefaultRows = []string{
	"11111",
	"10001",
	"1PXP1",
	"10001",
	"10111",
	"10101",
	"101P1",
	"11101",
	"10001",
	"10001",
	"11111",
}

// Spawn parameters applied to the player pose created at load time.
type Spawn struct {
	Angle float64
	FOV   float64
}

// Level is everything a load produces: the grid with spawn cells already
// rewritten to Free, the initial pose and the initial sprites. Sprites carry
// no texture yet.
type Level struct {
	Name    string
	Grid    *Grid
	Player  *model.Player
	Sprites []*model.Sprite
}

// Load builds a level from rows of single-character tags. It fails on an
// empty or ragged grid, an unknown tag, or anything other than exactly one
// player spawn.
func Load(rows []string, spawn Spawn) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	width, height := len(rows[0]), len(rows)
	g := &Grid{width: width, height: height, cells: make([]Tag, width*height)}
	lvl := &Level{Grid: g}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), width, ErrNotRectangular)
		}
		for x := 0; x < width; x++ {
			tag := Tag(row[x])
			if !tag.valid() {
				return nil, fmt.Errorf("cell (%d, %d) %q: %w", x, y, row[x], ErrUnknownTag)
			}

			// spawn cells become free space once their entity exists
			switch tag {
			case SpawnPlayer:
				if lvl.Player != nil {
					return nil, fmt.Errorf("cell (%d, %d): %w", x, y, ErrMultiplePlayerSpawns)
				}
				lvl.Player = model.NewPlayer(float64(x)+0.5, float64(y)+0.5, spawn.Angle, spawn.FOV)
				tag = Free
			case SpawnSprite:
				lvl.Sprites = append(lvl.Sprites, model.NewSprite(float64(x)+0.5, float64(y)+0.5, nil))
				tag = Free
			}
			g.cells[y*width+x] = tag
		}
	}

	if lvl.Player == nil {
		return nil, ErrNoPlayerSpawn
	}
	return lvl, nil
}
