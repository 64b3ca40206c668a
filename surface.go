package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycast/texture"
)

// ebitenSurface draws the renderer's fills and blits directly onto an
// ebiten image, scaling texture regions on the GPU.
type ebitenSurface struct {
	target   *ebiten.Image
	textures *textureImages
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{textures: newTextureImages()}
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) FillRect(r image.Rectangle, c color.RGBA) {
	vector.DrawFilledRect(s.target, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *ebitenSurface) Blit(src *texture.Texture, sr, dr image.Rectangle) {
	if sr.Empty() || dr.Empty() {
		return
	}
	sub := s.textures.ImageOf(src).SubImage(sr).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(float64(dr.Dx())/float64(sr.Dx()), float64(dr.Dy())/float64(sr.Dy()))
	op.GeoM.Translate(float64(dr.Min.X), float64(dr.Min.Y))
	s.target.DrawImage(sub, op)
}
