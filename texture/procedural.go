package texture

import (
	"image/color"
	"math"
)

var (
	brickColor  = color.RGBA{R: 132, G: 60, B: 42, A: 255}
	mortarColor = color.RGBA{R: 70, G: 66, B: 60, A: 255}
	leafColor   = color.RGBA{R: 46, G: 140, B: 60, A: 255}
	stemColor   = color.RGBA{R: 30, G: 96, B: 40, A: 255}
	potColor    = color.RGBA{R: 150, G: 84, B: 40, A: 255}
)

// Bricks draws a square running-bond brick pattern, used when no wall
// texture file is configured.
func Bricks(size int) *Texture {
	t := New(size, size)
	rowH := max(size/8, 2)
	brickW := max(size/4, 2)
	for y := 0; y < size; y++ {
		row := y / rowH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			c := brickColor
			if y%rowH == 0 || (x+offset)%brickW == 0 {
				c = mortarColor
			} else {
				// shade each brick a little differently
				shade := uint8((row*7 + (x+offset)/brickW*13) % 24)
				c.R -= shade
				c.G -= shade / 2
			}
			t.Set(x, y, c)
		}
	}
	return t
}

// Plant draws a potted plant on a transparent background, used as the
// default billboard texture.
func Plant(size int) *Texture {
	t := New(size, size)
	s := float64(size)
	potTop := int(s * 0.7)
	for y := potTop; y < size; y++ {
		// pot narrows towards the bottom
		inset := int(float64(y-potTop) * 0.25)
		for x := int(s*0.3) + inset; x < int(s*0.7)-inset; x++ {
			t.Set(x, y, potColor)
		}
	}

	cx := s / 2
	for x := int(cx) - 1; x <= int(cx); x++ {
		for y := int(s * 0.35); y < potTop; y++ {
			t.Set(x, y, stemColor)
		}
	}

	leaves := []struct{ x, y, r float64 }{
		{cx, s * 0.25, s * 0.16},
		{cx - s*0.17, s * 0.42, s * 0.13},
		{cx + s*0.17, s * 0.42, s * 0.13},
		{cx - s*0.1, s * 0.58, s * 0.1},
		{cx + s*0.1, s * 0.58, s * 0.1},
	}
	for _, l := range leaves {
		for y := int(l.y - l.r); y <= int(l.y+l.r); y++ {
			for x := int(l.x - l.r); x <= int(l.x+l.r); x++ {
				if math.Hypot(float64(x)-l.x, float64(y)-l.y) <= l.r {
					t.Set(x, y, leafColor)
				}
			}
		}
	}
	return t
}
