// Package scene ties a loaded level to the movement controller and the
// renderer. One tick moves the player; one draw renders the frame.
package scene

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"raycast/config"
	"raycast/level"
	"raycast/model"
	"raycast/movement"
	"raycast/raycast"
	"raycast/render"
	"raycast/texture"
)

var (
	ErrNoWallTexture   = errors.New("no wall texture")
	ErrNoSpriteTexture = errors.New("sprite has no texture")
)

// snapshot is the pose and sprite layout right after load, kept for
// Respawn.
type snapshot struct {
	Player  model.Player
	Sprites []model.Sprite
}

type Scene struct {
	name       string
	grid       *level.Grid
	player     *model.Player
	sprites    []*model.Sprite
	spawn      snapshot
	caster     raycast.Caster
	controller *movement.Controller
	renderer   *render.Renderer
	ticks      uint64
}

// New builds a scene from a loaded level. Sprites without a texture get the
// handler's sprite texture; the level is not modified otherwise. Every
// texture must be present before the first frame.
func New(cfg *config.Config, lvl *level.Level, textures texture.Handler) (*Scene, error) {
	wall := textures.TextureAt(texture.Wall)
	if wall == nil {
		return nil, ErrNoWallTexture
	}

	sprites := make([]*model.Sprite, len(lvl.Sprites))
	for i, sp := range lvl.Sprites {
		s := *sp
		if s.Texture == nil {
			s.Texture = textures.TextureAt(texture.Sprite)
		}
		if s.Texture == nil {
			return nil, fmt.Errorf("sprite %d at (%.1f, %.1f): %w", i, s.Position.X, s.Position.Y, ErrNoSpriteTexture)
		}
		sprites[i] = &s
	}

	caster, err := newCaster(cfg.Render, lvl.Grid)
	if err != nil {
		return nil, err
	}

	walls := render.NewWallProjector(caster, wall)
	if walls.Sky, err = config.ParseColor(cfg.Render.SkyColor); err != nil {
		return nil, fmt.Errorf("sky colour: %w", err)
	}
	if walls.Floor, err = config.ParseColor(cfg.Render.FloorColor); err != nil {
		return nil, fmt.Errorf("floor colour: %w", err)
	}

	controller := movement.New(lvl.Grid)
	controller.MoveSpeed = cfg.Movement.MoveSpeed
	controller.RotationSpeed = cfg.Movement.RotationSpeed
	controller.Tolerance = cfg.Movement.Tolerance
	controller.StrictTolerance = cfg.Movement.StrictTolerance

	player := *lvl.Player
	s := &Scene{
		name:       lvl.Name,
		grid:       lvl.Grid,
		player:     &player,
		sprites:    sprites,
		caster:     caster,
		controller: controller,
		renderer:   render.New(walls),
	}
	if err := s.takeSnapshot(); err != nil {
		return nil, err
	}
	return s, nil
}

func newCaster(cfg config.RenderConfig, grid *level.Grid) (raycast.Caster, error) {
	switch cfg.Caster {
	case config.CasterMarch, "":
		m := raycast.NewMarcher(grid)
		m.MaxDepth = cfg.MaxDepth
		m.Step = cfg.Step
		return m, nil
	case config.CasterDDA:
		d := raycast.NewDDA(grid)
		d.MaxDepth = cfg.MaxDepth
		return d, nil
	default:
		return nil, fmt.Errorf("unknown caster %q", cfg.Caster)
	}
}

func (s *Scene) takeSnapshot() error {
	if err := copier.CopyWithOption(&s.spawn.Player, s.player, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("saving spawn pose: %w", err)
	}
	s.spawn.Sprites = make([]model.Sprite, len(s.sprites))
	for i, sp := range s.sprites {
		// textures are shared, not duplicated
		if err := copier.Copy(&s.spawn.Sprites[i], sp); err != nil {
			return fmt.Errorf("saving sprite %d: %w", i, err)
		}
	}
	return nil
}

// Respawn puts the player and every sprite back where the level placed
// them. Pointers handed out by Player and Sprites stay valid.
func (s *Scene) Respawn() error {
	if err := copier.CopyWithOption(s.player, &s.spawn.Player, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("restoring spawn pose: %w", err)
	}
	for i := range s.spawn.Sprites {
		if err := copier.Copy(s.sprites[i], &s.spawn.Sprites[i]); err != nil {
			return fmt.Errorf("restoring sprite %d: %w", i, err)
		}
	}
	return nil
}

// Tick applies one frame of input.
func (s *Scene) Tick(in movement.Controls) {
	s.controller.Update(s.player, in)
	s.ticks++
}

// Draw renders the current frame onto surface.
func (s *Scene) Draw(surface render.Surface) {
	s.renderer.Draw(surface, s.player, s.sprites)
}

func (s *Scene) Name() string                     { return s.name }
func (s *Scene) Grid() *level.Grid                { return s.grid }
func (s *Scene) Player() *model.Player            { return s.player }
func (s *Scene) Sprites() []*model.Sprite         { return s.sprites }
func (s *Scene) Caster() raycast.Caster           { return s.caster }
func (s *Scene) Controller() *movement.Controller { return s.controller }
func (s *Scene) Ticks() uint64                    { return s.ticks }
