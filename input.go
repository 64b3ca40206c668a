package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// keyboard polls ebiten key state for the movement controller: arrows or
// WASD to move and turn, shift to strafe.
type keyboard struct{}

func (keyboard) Forward() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
}

func (keyboard) Back() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
}

func (keyboard) TurnLeft() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
}

func (keyboard) TurnRight() bool {
	return ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
}

func (keyboard) Strafe() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

// handleInput deals with the keys outside movement. It returns
// ebiten.Termination when the player quits.
func (g *Game) handleInput() error {
	// if escape, exit game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// if p, pause game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		if g.paused {
			g.log.Info("paused")
		} else {
			g.log.Info("resumed")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scene.Respawn(); err != nil {
			return err
		}
		p := g.scene.Player()
		g.log.Info("respawned",
			zap.Float64("x", p.Position.X),
			zap.Float64("y", p.Position.Y),
			zap.Float64("angle", p.Angle),
		)
	}

	return nil
}
