package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type Player struct {
	Position geom.Vector2
	Angle    float64
	FOV      float64
}

func NewPlayer(x, y, angle, fov float64) *Player {
	p := &Player{
		Position: geom.Vector2{X: x, Y: y},
		Angle:    angle,
		FOV:      fov,
	}

	return p
}

// Rotate turns the heading by delta, keeping the angle within (-Pi, Pi].
func (p *Player) Rotate(delta float64) {
	p.Angle = WrapAngle(p.Angle + delta)
}

// WrapAngle maps a radian angle into (-Pi, Pi]. NaN and infinities are
// returned unchanged.
func WrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
