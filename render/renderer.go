package render

import (
	"raycast/model"
)

// Renderer composes a frame: walls first, then sprites over them.
type Renderer struct {
	Walls   *WallProjector
	Sprites *SpriteRenderer
}

func New(walls *WallProjector) *Renderer {
	return &Renderer{Walls: walls, Sprites: &SpriteRenderer{}}
}

func (r *Renderer) Draw(s Surface, player *model.Player, sprites []*model.Sprite) {
	r.Walls.Draw(s, player)
	r.Sprites.Draw(s, player, sprites)
}
