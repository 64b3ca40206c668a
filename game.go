package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"raycast/config"
	"raycast/engine"
	"raycast/level"
	"raycast/scene"
	"raycast/texture"
)

// main game object
type Game struct {
	cfg *config.Config
	log *zap.Logger

	paused      bool
	showMinimap bool

	// logical screen size
	width  int
	height int

	scene *scene.Scene
	input *keyboard

	// buffer backend: the frame is drawn on the CPU and uploaded whole
	frame      *engine.Image
	frameImage *ebiten.Image

	// ebiten backend: the renderer blits straight onto the screen
	surface *ebitenSurface

	minimap *ebiten.Image
}

// NewGame loads the configured level and textures and builds the scene.
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	lvl, err := loadLevel(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("level loaded",
		zap.String("name", lvl.Name),
		zap.Int("width", lvl.Grid.Width()),
		zap.Int("height", lvl.Grid.Height()),
		zap.Int("sprites", len(lvl.Sprites)),
	)

	tm := texture.NewManager()
	if err := tm.LoadDefaults(cfg.Level.WallTexture, cfg.Level.SpriteTexture); err != nil {
		return nil, err
	}
	for _, name := range tm.Names() {
		t := tm.TextureAt(name)
		log.Debug("texture ready",
			zap.String("name", name),
			zap.String("source", tm.Source(name)),
			zap.Int("width", t.Width),
			zap.Int("height", t.Height),
		)
	}

	s, err := scene.New(cfg, lvl, tm)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	g := &Game{
		cfg:         cfg,
		log:         log,
		showMinimap: cfg.Render.Minimap,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		scene:       s,
		input:       &keyboard{},
	}

	switch cfg.Render.Backend {
	case config.BackendEbiten:
		g.surface = newEbitenSurface()
	default:
		g.frame = engine.NewImage(g.width, g.height)
		g.frameImage = ebiten.NewImage(g.width, g.height)
	}
	g.generateStaticMinimap()

	return g, nil
}

func loadLevel(cfg *config.Config) (*level.Level, error) {
	spawn := level.Spawn{
		Angle: cfg.Movement.StartAngle(),
		FOV:   cfg.Render.FOV(),
	}
	if cfg.Level.Path == "" {
		lvl, err := level.Load(level.DefaultRows, spawn)
		if err != nil {
			return nil, err
		}
		lvl.Name = "default"
		return lvl, nil
	}
	return level.ReadFile(cfg.Level.Path, spawn)
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetFullscreen(g.cfg.Window.Fullscreen)
	ebiten.SetVsyncEnabled(g.cfg.Window.VSync)
	ebiten.SetTPS(g.cfg.Window.TPS)

	g.log.Info("starting",
		zap.Int("width", g.width),
		zap.Int("height", g.height),
		zap.String("caster", g.cfg.Render.Caster),
		zap.String("backend", g.cfg.Render.Backend),
	)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		g.log.Info("exiting")
		return nil
	}
	return err
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	if !g.paused {
		g.scene.Tick(g.input)
	}
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface != nil {
		g.surface.target = screen
		g.scene.Draw(g.surface)
	} else {
		g.scene.Draw(g.frame)
		g.frameImage.WritePixels(g.frame.Pix())
		screen.DrawImage(g.frameImage, nil)
	}

	if g.showMinimap {
		g.drawMinimap(screen)
	}
	g.drawUI(screen)
}
