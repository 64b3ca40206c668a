// Package engine is a CPU frame buffer plus an optional SDL window that
// presents it. The window half only builds with the sdl tag.
package engine

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"raycast/texture"
)

// Image is an RGBA frame buffer the renderer draws into directly.
type Image struct {
	pixels []byte
	width  int
	height int
}

func NewImage(width, height int) *Image {
	return &Image{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (img *Image) Size() (int, int) {
	return img.width, img.height
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Pix returns the backing pixels, four bytes per pixel in RGBA order.
func (img *Image) Pix() []byte {
	return img.pixels
}

func (img *Image) rgba() *image.RGBA {
	return &image.RGBA{Pix: img.pixels, Stride: img.width * 4, Rect: img.Bounds()}
}

func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	i := (y*img.width + x) * 4
	return color.RGBA{R: img.pixels[i], G: img.pixels[i+1], B: img.pixels[i+2], A: img.pixels[i+3]}
}

// Clear fills the whole buffer with c.
func (img *Image) Clear(c color.RGBA) {
	img.FillRect(img.Bounds(), c)
}

func (img *Image) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.pixels[(y*img.width+r.Min.X)*4 : (y*img.width+r.Max.X)*4]
		for i := 0; i < len(row); i += 4 {
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// Blit scales the sr region of src into dr with nearest-neighbour sampling
// and composites it over the existing pixels.
func (img *Image) Blit(src *texture.Texture, sr, dr image.Rectangle) {
	if src == nil || sr.Empty() || dr.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(img.rgba(), dr, src.RGBA(), sr, xdraw.Over, nil)
}
