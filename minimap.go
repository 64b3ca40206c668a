// minimap.go
package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycast/level"
)

const (
	minimapScale  int = 8
	minimapMargin int = 10
)

var (
	minimapWall   = color.RGBA{50, 50, 50, 255}
	minimapFree   = color.RGBA{200, 200, 200, 255}
	minimapPlayer = color.RGBA{0, 255, 255, 255}
	minimapSprite = color.RGBA{255, 0, 0, 255}
	minimapFOV    = color.RGBA{255, 255, 0, 128}
)

// generateStaticMinimap draws the grid once; walls never change.
func (g *Game) generateStaticMinimap() {
	grid := g.scene.Grid()
	g.minimap = ebiten.NewImage(grid.Width()*minimapScale, grid.Height()*minimapScale)
	for y, row := range grid.Rows() {
		for x := 0; x < len(row); x++ {
			c := minimapFree
			if level.Tag(row[x]) == level.Wall {
				c = minimapWall
			}
			vector.DrawFilledRect(g.minimap, float32(x*minimapScale), float32(y*minimapScale), float32(minimapScale), float32(minimapScale), c, false)
		}
	}
}

// minimapOrigin is the top-left screen corner of the minimap.
func (g *Game) minimapOrigin() (float32, float32) {
	return float32(g.width - g.minimap.Bounds().Dx() - minimapMargin), float32(minimapMargin)
}

func (g *Game) toMinimap(x, y float64) (float32, float32) {
	ox, oy := g.minimapOrigin()
	return ox + float32(x*float64(minimapScale)), oy + float32(y*float64(minimapScale))
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	ox, oy := g.minimapOrigin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(g.minimap, op)

	for _, s := range g.scene.Sprites() {
		sx, sy := g.toMinimap(s.Position.X, s.Position.Y)
		vector.DrawFilledCircle(screen, sx, sy, float32(minimapScale)/4, minimapSprite, false)
	}

	g.drawMinimapPlayer(screen)
}

func (g *Game) drawMinimapPlayer(screen *ebiten.Image) {
	p := g.scene.Player()
	playerX, playerY := g.toMinimap(p.Position.X, p.Position.Y)

	// field of view edges, as far as the centre ray reaches
	depth := g.scene.Caster().Cast(p.Position.X, p.Position.Y, p.Angle).Distance
	reach := float32(depth * float64(minimapScale))
	for _, a := range []float64{p.Angle - p.FOV/2, p.Angle + p.FOV/2} {
		x := playerX + reach*float32(math.Cos(a))
		y := playerY + reach*float32(math.Sin(a))
		vector.StrokeLine(screen, playerX, playerY, x, y, 1, minimapFOV, false)
	}

	// calculate triangle points
	triangleSize := float32(minimapScale) / 2
	angle := p.Angle

	x1 := playerX + triangleSize*float32(math.Cos(angle))
	y1 := playerY + triangleSize*float32(math.Sin(angle))

	x2 := playerX + triangleSize*float32(math.Cos(angle+2.5))
	y2 := playerY + triangleSize*float32(math.Sin(angle+2.5))

	x3 := playerX + triangleSize*float32(math.Cos(angle-2.5))
	y3 := playerY + triangleSize*float32(math.Sin(angle-2.5))

	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 0, SrcY: 0, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, playerColorImage, nil)
}

// 1x1 image with the player colour
var playerColorImage = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(minimapPlayer)
	return img
}()
