// ui.go
package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	// draw FPS/TPS counter debug display
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f\nTPS: %0.2f/%v", ebiten.ActualFPS(), ebiten.ActualTPS(), ebiten.TPS()), 10, 10)

	p := g.scene.Player()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  x: %0.2f y: %0.2f angle: %0.2f", g.scene.Name(), p.Position.X, p.Position.Y, p.Angle), 10, g.height-60)
	ebitenutil.DebugPrintAt(screen, "arrows/WASD to move, shift to strafe, R respawn, M minimap", 10, g.height-40)
	ebitenutil.DebugPrintAt(screen, "P to pause, ESC to exit", 10, g.height-20)

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", g.width/2-18, g.height/2)
	}
}
