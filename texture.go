package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"raycast/texture"
)

// textureImages uploads each texture to the GPU once and hands back the
// same *ebiten.Image on every later request.
type textureImages struct {
	images map[*texture.Texture]*ebiten.Image
}

func newTextureImages() *textureImages {
	return &textureImages{images: make(map[*texture.Texture]*ebiten.Image)}
}

func (t *textureImages) ImageOf(tex *texture.Texture) *ebiten.Image {
	if img, ok := t.images[tex]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(tex.RGBA())
	t.images[tex] = img
	return img
}
