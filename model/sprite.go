package model

import (
	"github.com/harbdog/raycaster-go/geom"

	"raycast/texture"
)

// Sprite is a billboard: a flat texture drawn facing the viewer.
type Sprite struct {
	Position geom.Vector2
	Texture  *texture.Texture
}

func NewSprite(x, y float64, tex *texture.Texture) *Sprite {
	return &Sprite{
		Position: geom.Vector2{X: x, Y: y},
		Texture:  tex,
	}
}

// SetPosition relocates the sprite, e.g. when game logic respawns it.
func (s *Sprite) SetPosition(x, y float64) {
	s.Position.X, s.Position.Y = x, y
}
