package render

import (
	"image"
	"math"
	"sort"

	"raycast/model"
)

// SpriteRenderer draws billboards back to front. There is no depth buffer:
// a sprite inside the view cone is drawn even when a wall stands between it
// and the player.
type SpriteRenderer struct{}

// SpriteView is where a sprite lands on screen.
type SpriteView struct {
	Sprite   *model.Sprite
	Distance float64
	Angle    float64
	ScreenX  float64
	Size     float64
}

// Rect is the square the sprite texture is scaled into, centred on ScreenX
// and the horizon.
func (v SpriteView) Rect(height int) image.Rectangle {
	half := v.Size / 2
	cy := float64(height) / 2
	return image.Rect(
		int(math.Floor(v.ScreenX-half)), int(math.Floor(cy-half)),
		int(math.Ceil(v.ScreenX+half)), int(math.Ceil(cy+half)),
	)
}

// Project places sprite on a width x height screen. It reports false when
// the sprite lies outside the field of view or on the player's position.
func (r *SpriteRenderer) Project(player *model.Player, sprite *model.Sprite, width, height int) (SpriteView, bool) {
	dx := sprite.Position.X - player.Position.X
	dy := sprite.Position.Y - player.Position.Y
	distance := math.Hypot(dx, dy)
	angle := model.WrapAngle(math.Atan2(dy, dx) - player.Angle)

	v := SpriteView{Sprite: sprite, Distance: distance, Angle: angle}
	if distance == 0 || math.Abs(angle) >= player.FOV/2 {
		return v, false
	}

	w := float64(width)
	v.ScreenX = w/2 + angle*w/player.FOV
	v.Size = float64(height) / distance
	return v, true
}

// Order returns the sprites sorted farthest first, leaving the input slice
// untouched.
func Order(player *model.Player, sprites []*model.Sprite) []*model.Sprite {
	ordered := make([]*model.Sprite, len(sprites))
	copy(ordered, sprites)

	dist := func(s *model.Sprite) float64 {
		return math.Hypot(s.Position.X-player.Position.X, s.Position.Y-player.Position.Y)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return dist(ordered[i]) > dist(ordered[j])
	})
	return ordered
}

// Draw blits every visible sprite, nearest last so it covers farther ones.
func (r *SpriteRenderer) Draw(s Surface, player *model.Player, sprites []*model.Sprite) {
	w, h := s.Size()
	for _, sprite := range Order(player, sprites) {
		v, ok := r.Project(player, sprite, w, h)
		if !ok {
			continue
		}
		s.Blit(sprite.Texture, sprite.Texture.Bounds(), v.Rect(h))
	}
}
