package level

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"raycast/model"
)

// Parse reads a plain text level: one row per line, blank lines and lines
// starting with '#' ignored, whitespace between cells allowed.
func Parse(r io.Reader, spawn Spawn) (*Level, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Join(strings.Fields(line), ""))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	return Load(rows, spawn)
}

// File is the YAML level format.
type File struct {
	Name string `yaml:"name"`
	// AngleDegrees overrides the configured starting heading when set
	AngleDegrees *float64 `yaml:"angle_degrees"`
	Tiles        []string `yaml:"tiles"`
}

// Decode reads a YAML level file.
func Decode(r io.Reader, spawn Spawn) (*Level, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding level: %w", err)
	}

	if f.AngleDegrees != nil {
		deg := *f.AngleDegrees
		if math.IsNaN(deg) || math.IsInf(deg, 0) {
			return nil, fmt.Errorf("decoding level: angle_degrees %v is not finite", deg)
		}
		spawn.Angle = model.WrapAngle(model.Radians(deg))
	}
	lvl, err := Load(f.Tiles, spawn)
	if err != nil {
		return nil, err
	}
	lvl.Name = f.Name
	return lvl, nil
}

var (
	ColorFree        = color.RGBA{255, 255, 255, 255}
	ColorWall        = color.RGBA{0, 0, 0, 255}
	ColorSpawnSprite = color.RGBA{255, 0, 0, 255}
	ColorSpawnPlayer = color.RGBA{0, 0, 255, 255}
)

// DecodeImage maps each pixel of a level image to a tag by colour: white
// free, black wall, blue player spawn, red sprite spawn.
func DecodeImage(img image.Image, spawn Spawn) (*Level, error) {
	bounds := img.Bounds()
	rows := make([]string, 0, bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := make([]byte, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)

			switch c {
			case ColorFree:
				row = append(row, byte(Free))
			case ColorWall:
				row = append(row, byte(Wall))
			case ColorSpawnPlayer:
				row = append(row, byte(SpawnPlayer))
			case ColorSpawnSprite:
				row = append(row, byte(SpawnSprite))
			default:
				return nil, fmt.Errorf("pixel (%d, %d) colour %v: %w", x, y, c, ErrUnknownTag)
			}
		}
		rows = append(rows, string(row))
	}

	return Load(rows, spawn)
}

// ReadFile loads a level, choosing the format by extension: .yaml/.yml,
// .png/.gif, or plain text for anything else.
func ReadFile(path string, spawn Spawn) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lvl *Level
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		lvl, err = Decode(f, spawn)
	case ".png", ".gif":
		var img image.Image
		if img, _, err = image.Decode(f); err == nil {
			lvl, err = DecodeImage(img, spawn)
		}
	default:
		lvl, err = Parse(f, spawn)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return lvl, nil
}
