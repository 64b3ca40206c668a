package raycast

import (
	"math"

	"raycast/level"
)

// DDA walks the ray cell boundary by cell boundary instead of sampling it.
// Distances match the Marcher to within its step, at a cost proportional to
// the number of cells crossed.
type DDA struct {
	Grid     *level.Grid
	MaxDepth float64
}

func NewDDA(grid *level.Grid) *DDA {
	return &DDA{Grid: grid, MaxDepth: DefaultMaxDepth}
}

func (d *DDA) Depth() float64 { return d.MaxDepth }

func (d *DDA) Cast(x, y, angle float64) Hit {
	sin, cos := math.Sincos(angle)

	mapX, mapY := int(math.Floor(x)), int(math.Floor(y))
	deltaDistX := math.Abs(1 / cos)
	deltaDistY := math.Abs(1 / sin)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if cos < 0 {
		stepX = -1
		sideDistX = (x - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - x) * deltaDistX
	}
	if sin < 0 {
		stepY = -1
		sideDistY = (y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - y) * deltaDistY
	}

	for {
		var dist float64
		if sideDistX < sideDistY {
			dist = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
		} else {
			dist = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
		}

		if dist >= d.MaxDepth {
			break
		}
		if !d.Grid.InBounds(mapX, mapY) || d.Grid.IsWall(mapX, mapY) {
			return Hit{Distance: dist, HitX: x + cos*dist, HitY: y + sin*dist}
		}
	}

	return Hit{
		Distance: d.MaxDepth,
		HitX:     x + cos*d.MaxDepth,
		HitY:     y + sin*d.MaxDepth,
		Miss:     true,
	}
}
