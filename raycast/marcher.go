// Package raycast finds where a ray leaving a point first meets a wall.
package raycast

import (
	"math"

	"raycast/level"
)

const (
	DefaultMaxDepth = 20.0
	DefaultStep     = 0.01
)

// Hit is the result of one cast. Miss is set when no wall was met within
// the caster's maximum depth; Distance is then that depth.
type Hit struct {
	Distance float64
	HitX     float64
	HitY     float64
	Miss     bool
}

// Caster casts a single ray from (x, y) heading along angle.
type Caster interface {
	Cast(x, y, angle float64) Hit
	Depth() float64
}

// Marcher advances a point along the ray in fixed increments. Smaller steps
// are more accurate near grazing angles and proportionally slower.
type Marcher struct {
	Grid     *level.Grid
	MaxDepth float64
	Step     float64
}

func NewMarcher(grid *level.Grid) *Marcher {
	return &Marcher{Grid: grid, MaxDepth: DefaultMaxDepth, Step: DefaultStep}
}

func (m *Marcher) Depth() float64 { return m.MaxDepth }

// Cast stops at the first sample that is out of bounds or inside a wall and
// returns the exact sample point. The origin cell must not be a wall.
func (m *Marcher) Cast(x, y, angle float64) Hit {
	sin, cos := math.Sincos(angle)

	// t is recomputed from the step count so repeated casts agree bit for bit
	for i := 0; ; i++ {
		t := float64(i) * m.Step
		if t >= m.MaxDepth {
			break
		}
		px, py := x+cos*t, y+sin*t
		cellX, cellY := int(math.Floor(px)), int(math.Floor(py))
		if !m.Grid.InBounds(cellX, cellY) || m.Grid.IsWall(cellX, cellY) {
			return Hit{Distance: t, HitX: px, HitY: py}
		}
	}

	return Hit{
		Distance: m.MaxDepth,
		HitX:     x + cos*m.MaxDepth,
		HitY:     y + sin*m.MaxDepth,
		Miss:     true,
	}
}
