// Package movement moves the player through the grid from polled control
// state, rejecting any step that would end inside or too close to a wall.
package movement

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"raycast/level"
	"raycast/model"
)

const (
	DefaultMoveSpeed     = 0.05
	DefaultRotationSpeed = 0.03
	DefaultTolerance     = 0.1
)

// Controls is the input state polled once per tick.
type Controls interface {
	Forward() bool
	Back() bool
	TurnLeft() bool
	TurnRight() bool

	// Strafe turns left/right into sideways steps instead of rotation
	Strafe() bool
}

type Controller struct {
	Grid          *level.Grid
	MoveSpeed     float64
	RotationSpeed float64

	// Tolerance is how close the player may come to a blocked neighbour
	// cell, as a fraction of a cell.
	Tolerance float64

	// StrictTolerance applies the Tolerance band to every cell edge, free
	// neighbours included. A step shorter than twice the band can then
	// never leave a cell.
	StrictTolerance bool
}

func New(grid *level.Grid) *Controller {
	return &Controller{
		Grid:          grid,
		MoveSpeed:     DefaultMoveSpeed,
		RotationSpeed: DefaultRotationSpeed,
		Tolerance:     DefaultTolerance,
	}
}

// CanMoveTo reports whether the player may stand at (x, y): the cell must be
// in bounds and free, and the point must keep Tolerance away from every edge
// or corner it shares with a blocked cell.
func (c *Controller) CanMoveTo(x, y float64) bool {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	if !c.open(cx, cy) {
		return false
	}

	fx, fy := x-float64(cx), y-float64(cy)

	dx := 0
	if fx <= c.Tolerance {
		dx = -1
	} else if fx >= 1-c.Tolerance {
		dx = 1
	}
	dy := 0
	if fy <= c.Tolerance {
		dy = -1
	} else if fy >= 1-c.Tolerance {
		dy = 1
	}

	if c.StrictTolerance {
		return dx == 0 && dy == 0
	}
	if dx != 0 && !c.open(cx+dx, cy) {
		return false
	}
	if dy != 0 && !c.open(cx, cy+dy) {
		return false
	}
	if dx != 0 && dy != 0 && !c.open(cx+dx, cy+dy) {
		return false
	}
	return true
}

func (c *Controller) open(x, y int) bool {
	return c.Grid.InBounds(x, y) && !c.Grid.IsWall(x, y)
}

// Update applies one tick of input to p. Every translation is validated
// against the position p had at the start of the tick and accepted ones are
// summed, so forward and strafe in the same tick do not see each other.
func (c *Controller) Update(p *model.Player, in Controls) {
	start := p.Position
	var dx, dy float64

	propose := func(step geom.Vector2) {
		if c.CanMoveTo(start.X+step.X, start.Y+step.Y) {
			dx += step.X
			dy += step.Y
		}
	}

	// back is the exact negation of forward so the two cancel
	ahead := c.step(p.Angle)
	if in.Forward() {
		propose(ahead)
	}
	if in.Back() {
		propose(geom.Vector2{X: -ahead.X, Y: -ahead.Y})
	}

	strafe := in.Strafe()
	if in.TurnLeft() {
		if strafe {
			propose(c.step(p.Angle - math.Pi/2))
		} else {
			p.Rotate(-c.RotationSpeed)
		}
	}
	if in.TurnRight() {
		if strafe {
			propose(c.step(p.Angle + math.Pi/2))
		} else {
			p.Rotate(c.RotationSpeed)
		}
	}

	p.Position.X = start.X + dx
	p.Position.Y = start.Y + dy
}

// step is one MoveSpeed displacement along angle.
func (c *Controller) step(angle float64) geom.Vector2 {
	line := geom.LineFromAngle(0, 0, angle, c.MoveSpeed)
	return geom.Vector2{X: line.X2, Y: line.Y2}
}
