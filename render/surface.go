// Package render draws the raycast view: flat sky and floor, textured wall
// slices one screen column at a time, then billboard sprites on top.
package render

import (
	"image"
	"image/color"

	"raycast/texture"
)

// Surface is the target a frame is drawn onto.
type Surface interface {
	// Size returns the surface width and height in pixels
	Size() (int, int)

	// FillRect fills r with a flat colour, clipped to the surface
	FillRect(r image.Rectangle, c color.RGBA)

	// Blit scales the sr region of src onto dr, clipped to the surface.
	// Transparent source pixels leave the destination untouched.
	Blit(src *texture.Texture, sr, dr image.Rectangle)
}
