//go:build sdl

// Command raycast-sdl runs the raycaster in an SDL window, drawing every
// frame on the CPU. Build with -tags sdl.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"raycast/config"
	"raycast/engine"
	"raycast/level"
	"raycast/logger"
	"raycast/scene"
	"raycast/texture"
)

type game struct {
	scene  *scene.Scene
	log    *zap.Logger
	paused bool
}

func (g *game) Update(kb *engine.Keyboard) error {
	if kb.IsKeyJustPressed(engine.KeyEscape) {
		return engine.Termination
	}
	if kb.IsKeyJustPressed(engine.KeyP) {
		g.paused = !g.paused
		g.log.Info("pause toggled", zap.Bool("paused", g.paused))
	}
	if kb.IsKeyJustPressed(engine.KeyR) {
		if err := g.scene.Respawn(); err != nil {
			return err
		}
		g.log.Info("respawned")
	}
	if !g.paused {
		g.scene.Tick(kb)
	}
	return nil
}

func (g *game) Draw(screen *engine.Image) {
	g.scene.Draw(screen)
}

func run(cfg *config.Config, log *zap.Logger) error {
	spawn := level.Spawn{Angle: cfg.Movement.StartAngle(), FOV: cfg.Render.FOV()}
	var (
		lvl *level.Level
		err error
	)
	if cfg.Level.Path == "" {
		lvl, err = level.Load(level.DefaultRows, spawn)
	} else {
		lvl, err = level.ReadFile(cfg.Level.Path, spawn)
	}
	if err != nil {
		return err
	}
	log.Info("level loaded", zap.String("name", lvl.Name), zap.Int("sprites", len(lvl.Sprites)))

	tm := texture.NewManager()
	if err := tm.LoadDefaults(cfg.Level.WallTexture, cfg.Level.SpriteTexture); err != nil {
		return err
	}

	s, err := scene.New(cfg, lvl, tm)
	if err != nil {
		return err
	}

	e, err := engine.NewEngine(engine.Window{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer e.Destroy()

	log.Info("starting", zap.String("caster", cfg.Render.Caster))
	return e.Run(&game{scene: s, log: log})
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("raycast-sdl", zap.Error(err))
	}
}
