package render

import (
	"image"
	"image/color"
	"math"

	"raycast/model"
	"raycast/raycast"
	"raycast/texture"
)

var (
	DefaultSkyColor   = color.RGBA{R: 5, G: 5, B: 10, A: 255}
	DefaultFloorColor = color.RGBA{R: 15, G: 15, B: 20, A: 255}
)

// Slice is the projection of one screen column.
type Slice struct {
	Angle     float64
	Hit       raycast.Hit
	Corrected float64
	Height    float64
	Top       float64
	Bottom    float64
	TexX      int
}

// WallProjector turns one cast per screen column into a textured vertical
// strip.
type WallProjector struct {
	Caster  raycast.Caster
	Texture *texture.Texture
	Sky     color.RGBA
	Floor   color.RGBA
}

func NewWallProjector(caster raycast.Caster, wall *texture.Texture) *WallProjector {
	return &WallProjector{
		Caster:  caster,
		Texture: wall,
		Sky:     DefaultSkyColor,
		Floor:   DefaultFloorColor,
	}
}

// ColumnAngle spreads the field of view evenly across the screen columns,
// left edge first.
func ColumnAngle(playerAngle, fov float64, column, width int) float64 {
	return playerAngle - fov/2 + fov*(float64(column)/float64(width))
}

// CorrectedDistance projects a ray's length onto the view direction, which
// keeps straight walls straight on the flat projection plane.
func CorrectedDistance(distance, rayAngle, playerAngle float64) float64 {
	return distance * math.Cos(rayAngle-playerAngle)
}

// TextureColumn picks the texel column for a hit point. Summing both
// coordinates works for either face of a cell without tracking which one
// the ray struck.
func TextureColumn(hitX, hitY float64, texWidth int) int {
	v := hitX + hitY
	frac := v - math.Floor(v)
	return int(math.Floor(frac*float64(texWidth))) % texWidth
}

// Project casts the ray for column and sizes its wall strip. It reports
// false when the ray missed and nothing should be drawn.
func (p *WallProjector) Project(player *model.Player, column, width, height int) (Slice, bool) {
	angle := ColumnAngle(player.Angle, player.FOV, column, width)
	hit := p.Caster.Cast(player.Position.X, player.Position.Y, angle)
	if hit.Miss {
		return Slice{Angle: angle, Hit: hit}, false
	}

	h := float64(height)
	half := h / 2
	corrected := CorrectedDistance(hit.Distance, angle, player.Angle)

	// near-zero distances divide to +Inf and are clamped to the viewport
	wallHeight := math.Min(half/corrected, h)

	return Slice{
		Angle:     angle,
		Hit:       hit,
		Corrected: corrected,
		Height:    wallHeight,
		Top:       math.Max(0, half-wallHeight/2),
		Bottom:    math.Min(h, half+wallHeight/2),
		TexX:      TextureColumn(hit.HitX, hit.HitY, p.Texture.Width),
	}, true
}

// Draw fills the sky and floor, then blits a wall strip into every column
// whose ray hit a wall.
func (p *WallProjector) Draw(s Surface, player *model.Player) {
	w, h := s.Size()
	s.FillRect(image.Rect(0, 0, w, h/2), p.Sky)
	s.FillRect(image.Rect(0, h/2, w, h), p.Floor)

	for i := 0; i < w; i++ {
		slice, ok := p.Project(player, i, w, h)
		if !ok {
			continue
		}

		top, bottom := int(math.Floor(slice.Top)), int(math.Ceil(slice.Bottom))
		if bottom <= top {
			continue
		}
		s.Blit(p.Texture,
			image.Rect(slice.TexX, 0, slice.TexX+1, p.Texture.Height),
			image.Rect(i, top, i+1, bottom),
		)
	}
}
