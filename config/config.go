// Package config holds the client settings: window, renderer, movement
// tunables, level and texture paths, and logging.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"raycast/model"
)

const (
	CasterMarch = "march"
	CasterDDA   = "dda"

	BackendBuffer = "buffer"
	BackendEbiten = "ebiten"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	Movement MovementConfig `mapstructure:"movement" yaml:"movement"`
	Level    LevelConfig    `mapstructure:"level" yaml:"level"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Title      string `mapstructure:"title" yaml:"title"`
	Width      int    `mapstructure:"width" yaml:"width"`
	Height     int    `mapstructure:"height" yaml:"height"`
	Fullscreen bool   `mapstructure:"fullscreen" yaml:"fullscreen"`
	VSync      bool   `mapstructure:"vsync" yaml:"vsync"`
	TPS        int    `mapstructure:"tps" yaml:"tps"`
}

type RenderConfig struct {
	FOVDegrees float64 `mapstructure:"fov_degrees" yaml:"fov_degrees"`
	MaxDepth   float64 `mapstructure:"max_depth" yaml:"max_depth"`
	Step       float64 `mapstructure:"step" yaml:"step"`
	Caster     string  `mapstructure:"caster" yaml:"caster"`   // march or dda
	Backend    string  `mapstructure:"backend" yaml:"backend"` // buffer or ebiten
	SkyColor   string  `mapstructure:"sky_color" yaml:"sky_color"`
	FloorColor string  `mapstructure:"floor_color" yaml:"floor_color"`
	Minimap    bool    `mapstructure:"minimap" yaml:"minimap"`
}

type MovementConfig struct {
	MoveSpeed         float64 `mapstructure:"move_speed" yaml:"move_speed"`
	RotationSpeed     float64 `mapstructure:"rotation_speed" yaml:"rotation_speed"`
	Tolerance         float64 `mapstructure:"tolerance" yaml:"tolerance"`
	// StrictTolerance keeps the band on every cell edge, free neighbours too
	StrictTolerance   bool    `mapstructure:"strict_tolerance" yaml:"strict_tolerance"`
	StartAngleDegrees float64 `mapstructure:"start_angle_degrees" yaml:"start_angle_degrees"`
}

// LevelConfig points at the level and texture files. Empty paths select the
// built-in map and generated textures.
type LevelConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	WallTexture   string `mapstructure:"wall_texture" yaml:"wall_texture"`
	SpriteTexture string `mapstructure:"sprite_texture" yaml:"sprite_texture"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "raycast",
			Width:  1024,
			Height: 768,
			VSync:  true,
			TPS:    60,
		},
		Render: RenderConfig{
			FOVDegrees: 60,
			MaxDepth:   20,
			Step:       0.01,
			Caster:     CasterMarch,
			Backend:    BackendBuffer,
			SkyColor:   "#05050a",
			FloorColor: "#0f0f14",
		},
		Movement: MovementConfig{
			MoveSpeed:         0.05,
			RotationSpeed:     0.03,
			Tolerance:         0.1,
			StartAngleDegrees: 45,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// FOV returns the field of view in radians.
func (c *RenderConfig) FOV() float64 {
	return model.Radians(c.FOVDegrees)
}

func (c *MovementConfig) StartAngle() float64 {
	return model.WrapAngle(model.Radians(c.StartAngleDegrees))
}

// Validate reports every problem with cfg joined into one error wrapping
// ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		bad("window.tps %d must be positive", c.Window.TPS)
	}

	finite := func(key string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad("%s %v must be a finite number", key, v)
			return false
		}
		return true
	}

	if finite("render.fov_degrees", c.Render.FOVDegrees) && (c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180) {
		bad("render.fov_degrees %v must be in (0, 180)", c.Render.FOVDegrees)
	}
	if finite("render.max_depth", c.Render.MaxDepth) && c.Render.MaxDepth <= 0 {
		bad("render.max_depth %v must be positive", c.Render.MaxDepth)
	}
	if finite("render.step", c.Render.Step) && c.Render.Step <= 0 {
		bad("render.step %v must be positive", c.Render.Step)
	}
	switch c.Render.Caster {
	case CasterMarch, CasterDDA:
	default:
		bad("render.caster %q is not %q or %q", c.Render.Caster, CasterMarch, CasterDDA)
	}
	switch c.Render.Backend {
	case BackendBuffer, BackendEbiten:
	default:
		bad("render.backend %q is not %q or %q", c.Render.Backend, BackendBuffer, BackendEbiten)
	}
	if _, err := ParseColor(c.Render.SkyColor); err != nil {
		bad("render.sky_color: %v", err)
	}
	if _, err := ParseColor(c.Render.FloorColor); err != nil {
		bad("render.floor_color: %v", err)
	}

	if finite("movement.move_speed", c.Movement.MoveSpeed) && c.Movement.MoveSpeed <= 0 {
		bad("movement.move_speed %v must be positive", c.Movement.MoveSpeed)
	}
	if finite("movement.rotation_speed", c.Movement.RotationSpeed) && c.Movement.RotationSpeed <= 0 {
		bad("movement.rotation_speed %v must be positive", c.Movement.RotationSpeed)
	}
	if finite("movement.tolerance", c.Movement.Tolerance) && (c.Movement.Tolerance < 0 || c.Movement.Tolerance >= 0.5) {
		bad("movement.tolerance %v must be in [0, 0.5)", c.Movement.Tolerance)
	}
	finite("movement.start_angle_degrees", c.Movement.StartAngleDegrees)

	return errors.Join(errs...)
}

// ParseColor reads an opaque colour written as #rrggbb or #rgb.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("colour %q must start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q must be #rrggbb or #rgb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
