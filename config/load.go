package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, so render.caster is
// read from RAYCAST_RENDER_CASTER.
const EnvPrefix = "RAYCAST"

// DefaultFile is read when no --config flag is given and the file exists.
const DefaultFile = "raycast.yaml"

// flag name -> config key
var flagKeys = map[string]string{
	"width":            "window.width",
	"height":           "window.height",
	"fullscreen":       "window.fullscreen",
	"vsync":            "window.vsync",
	"fov":              "render.fov_degrees",
	"caster":           "render.caster",
	"backend":          "render.backend",
	"minimap":          "render.minimap",
	"strict-tolerance": "movement.strict_tolerance",
	"level":            "level.path",
	"wall":             "level.wall_texture",
	"sprite":           "level.sprite_texture",
	"log-level":        "logging.level",
	"log-file":         "logging.file",
}

func newFlagSet(name string, def *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file (default ./"+DefaultFile+" if present)")
	fs.Bool("debug", false, "shorthand for --log-level=debug")

	fs.Int("width", def.Window.Width, "window width")
	fs.Int("height", def.Window.Height, "window height")
	fs.Bool("fullscreen", def.Window.Fullscreen, "run fullscreen")
	fs.Bool("vsync", def.Window.VSync, "wait for vertical sync")
	fs.Float64("fov", def.Render.FOVDegrees, "field of view in degrees")
	fs.String("caster", def.Render.Caster, "ray caster: march or dda")
	fs.String("backend", def.Render.Backend, "surface backend: buffer or ebiten")
	fs.Bool("minimap", def.Render.Minimap, "show the minimap on start")
	fs.Bool("strict-tolerance", def.Movement.StrictTolerance, "keep the wall band on edges shared with free cells too")
	fs.StringP("level", "l", def.Level.Path, "level file (.txt, .yaml or .png); empty uses the built-in map")
	fs.String("wall", def.Level.WallTexture, "wall texture image; empty uses a generated one")
	fs.String("sprite", def.Level.SpriteTexture, "sprite texture image; empty uses a generated one")
	fs.String("log-level", def.Logging.Level, "log level: debug, info, warn, error")
	fs.String("log-file", def.Logging.File, "also write logs to this rotated file")
	return fs
}

// Load builds the configuration from defaults, then the config file, then
// RAYCAST_* environment variables, then command-line flags, each overriding
// the last. args excludes the program name. The result is validated.
func Load(args []string) (*Config, error) {
	def := Default()
	fs := newFlagSet("raycast", def)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, def)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", name, err)
		}
	}

	path, _ := fs.GetString("config")
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if debug, _ := fs.GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsHelp reports whether err came from -h/--help.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}

func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("window.title", c.Window.Title)
	v.SetDefault("window.width", c.Window.Width)
	v.SetDefault("window.height", c.Window.Height)
	v.SetDefault("window.fullscreen", c.Window.Fullscreen)
	v.SetDefault("window.vsync", c.Window.VSync)
	v.SetDefault("window.tps", c.Window.TPS)

	v.SetDefault("render.fov_degrees", c.Render.FOVDegrees)
	v.SetDefault("render.max_depth", c.Render.MaxDepth)
	v.SetDefault("render.step", c.Render.Step)
	v.SetDefault("render.caster", c.Render.Caster)
	v.SetDefault("render.backend", c.Render.Backend)
	v.SetDefault("render.sky_color", c.Render.SkyColor)
	v.SetDefault("render.floor_color", c.Render.FloorColor)
	v.SetDefault("render.minimap", c.Render.Minimap)

	v.SetDefault("movement.move_speed", c.Movement.MoveSpeed)
	v.SetDefault("movement.rotation_speed", c.Movement.RotationSpeed)
	v.SetDefault("movement.tolerance", c.Movement.Tolerance)
	v.SetDefault("movement.strict_tolerance", c.Movement.StrictTolerance)
	v.SetDefault("movement.start_angle_degrees", c.Movement.StartAngleDegrees)

	v.SetDefault("level.path", c.Level.Path)
	v.SetDefault("level.wall_texture", c.Level.WallTexture)
	v.SetDefault("level.sprite_texture", c.Level.SpriteTexture)

	v.SetDefault("logging.level", c.Logging.Level)
	v.SetDefault("logging.file", c.Logging.File)
}
