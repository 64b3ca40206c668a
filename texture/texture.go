// Package texture holds decoded images in the row-major RGBA layout the
// renderer samples from.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

var ErrEmpty = errors.New("texture has no pixels")

// Texture is a width x height RGBA pixel buffer, four bytes per pixel.
type Texture struct {
	Width  int
	Height int
	Pix    []byte
}

func New(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FromImage converts img into a Texture. An *image.RGBA whose pixels are
// tightly packed from the origin is referenced rather than copied.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return &Texture{Width: b.Dx(), Height: b.Dy(), Pix: rgba.Pix}
	}

	t := New(b.Dx(), b.Dy())
	draw.Draw(t.RGBA(), t.Bounds(), img, b.Min, draw.Src)
	return t
}

// Decode reads a PNG, GIF, JPEG or BMP image.
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding texture: %w", err)
	}
	t := FromImage(img)
	if t.Width == 0 || t.Height == 0 {
		return nil, ErrEmpty
	}
	return t, nil
}

func LoadFile(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.Width, t.Height)
}

// RGBA exposes the texture as an *image.RGBA sharing the same pixel slice.
func (t *Texture) RGBA() *image.RGBA {
	return &image.RGBA{Pix: t.Pix, Stride: t.Width * 4, Rect: t.Bounds()}
}

func (t *Texture) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return color.RGBA{}
	}
	i := (y*t.Width + x) * 4
	return color.RGBA{R: t.Pix[i], G: t.Pix[i+1], B: t.Pix[i+2], A: t.Pix[i+3]}
}

func (t *Texture) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	i := (y*t.Width + x) * 4
	t.Pix[i] = c.R
	t.Pix[i+1] = c.G
	t.Pix[i+2] = c.B
	t.Pix[i+3] = c.A
}
