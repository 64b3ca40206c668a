// Package level holds the tile grid the raycaster marches against and the
// loaders that turn level sources into a grid plus initial spawns.
package level

import (
	"errors"
	"fmt"
	"math"
)

type Tag byte

const (
	Free        Tag = '0'
	Wall        Tag = '1'
	SpawnPlayer Tag = 'X'
	SpawnSprite Tag = 'P'
)

func (t Tag) String() string {
	switch t {
	case Free:
		return "free"
	case Wall:
		return "wall"
	case SpawnPlayer:
		return "player spawn"
	case SpawnSprite:
		return "sprite spawn"
	}
	return fmt.Sprintf("tag(%q)", byte(t))
}

func (t Tag) valid() bool {
	switch t {
	case Free, Wall, SpawnPlayer, SpawnSprite:
		return true
	}
	return false
}

var ErrOutOfBounds = errors.New("cell out of bounds")

// OutOfBoundsError carries the offending cell.
type OutOfBoundsError struct {
	X, Y int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of bounds", e.X, e.Y)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Grid stores cell tags in row-major order.
type Grid struct {
	width, height int
	cells         []Tag
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tag stored at cell (x, y).
func (g *Grid) At(x, y int) (Tag, error) {
	if !g.InBounds(x, y) {
		return 0, &OutOfBoundsError{X: x, Y: y}
	}
	return g.cells[y*g.width+x], nil
}

// IsWall reports whether cell (x, y) is a wall. It panics with an
// *OutOfBoundsError for cells outside the grid; check InBounds first.
func (g *Grid) IsWall(x, y int) bool {
	t, err := g.At(x, y)
	if err != nil {
		panic(err)
	}
	return t == Wall
}

// CellAt returns the tag of the cell containing the world point (wx, wy).
func (g *Grid) CellAt(wx, wy float64) (Tag, error) {
	return g.At(int(math.Floor(wx)), int(math.Floor(wy)))
}

// Rows renders the grid back into its text form.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		b := make([]byte, g.width)
		for x := 0; x < g.width; x++ {
			b[x] = byte(g.cells[y*g.width+x])
		}
		rows[y] = string(b)
	}
	return rows
}
