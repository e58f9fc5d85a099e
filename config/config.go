// Package config loads the automap sandbox settings from an optional TOML file
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-automap/parameter"
	"github.com/lixenwraith/vi-automap/vmath"
)

var (
	ErrInvalidRatio = errors.New("config: invalid ratio")
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the full sandbox configuration
type Config struct {
	View  ViewConfig          `toml:"view"`
	Pan   PanConfig           `toml:"pan"`
	Level LevelConfig         `toml:"level"`
	Audio AudioConfig         `toml:"audio"`
	// Keys maps action names to key names, an empty list unbinds the action
	Keys map[string][]string `toml:"keys"`
}

// ViewConfig controls zoom and rotation of the overview window
type ViewConfig struct {
	Scale    Ratio `toml:"scale"`
	MinScale Ratio `toml:"min_scale"`
	MaxScale Ratio `toml:"max_scale"`
	ZoomStep Ratio `toml:"zoom_step"`
	Rotate   bool  `toml:"rotate"`
}

// PanConfig controls keyboard and mouse panning
type PanConfig struct {
	// Step is the keyboard pan per key press in display pixels
	Step  int32 `toml:"step"`
	Mouse bool  `toml:"mouse"`
}

// LevelConfig controls generation of the sandbox level
type LevelConfig struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Cell   int32 `toml:"cell"`
	Braid  int   `toml:"braid"`
	// Seed 0 picks a time-based seed
	Seed int64 `toml:"seed"`
}

// AudioConfig toggles the zoom-limit cue
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		View: ViewConfig{
			Scale:    Ratio(parameter.DefaultScale),
			MinScale: Ratio(parameter.MinScale),
			MaxScale: Ratio(parameter.MaxScale),
			ZoomStep: Ratio(parameter.ZoomStep),
			Rotate:   parameter.RotateEnabled,
		},
		Pan: PanConfig{
			Step:  parameter.PanStep,
			Mouse: parameter.MousePanEnabled,
		},
		Level: LevelConfig{
			Width:  parameter.LevelWidth,
			Height: parameter.LevelHeight,
			Cell:   parameter.LevelCellSize,
			Braid:  parameter.LevelBraidPercent,
		},
		Audio: AudioConfig{Enabled: true},
		Keys:  map[string][]string{},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result
// Unknown keys are rejected
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: unknown keys:\n%s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting at once
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidValue}, args...)...))
		}
	}

	v := c.View
	check(v.MinScale > 0, "view.min_scale must be positive")
	check(v.MaxScale >= v.MinScale, "view.max_scale below view.min_scale")
	check(v.Scale >= v.MinScale && v.Scale <= v.MaxScale, "view.scale outside [min_scale, max_scale]")
	check(v.ZoomStep > Ratio(vmath.FracUnit), "view.zoom_step must exceed 1")

	check(c.Pan.Step > 0, "pan.step must be positive, got %d", c.Pan.Step)

	l := c.Level
	check(l.Width >= 5 && l.Height >= 5, "level size %dx%d below 5x5", l.Width, l.Height)
	check(l.Cell > 0, "level.cell must be positive, got %d", l.Cell)
	check(l.Braid >= 0 && l.Braid <= 100, "level.braid %d outside [0, 100]", l.Braid)
	if l.Cell > 0 {
		check(int64(max(l.Width, l.Height))*int64(l.Cell) <= math.MaxInt32,
			"level %dx%d at cell %d exceeds the int32 map range", l.Width, l.Height, l.Cell)
	}

	return errors.Join(errs...)
}
