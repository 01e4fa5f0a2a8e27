// Package config loads the gologo TOML configuration: canvas dimensions,
// background color, execution limits, and rendering palette overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gologo-lang/gologo/pkg/turtle"
)

// Config is the top-level configuration.
type Config struct {
	Canvas  Canvas            `toml:"canvas"`
	Output  Output            `toml:"output"`
	Limits  Limits            `toml:"limits"`
	Palette []PaletteOverride `toml:"palette"`
}

// Canvas configures the drawing surface.
type Canvas struct {
	Width      int   `toml:"width"`
	Height     int   `toml:"height"`
	Background uint8 `toml:"background"` // palette index
}

// Output configures where drawings land when the CLI flag is absent.
type Output struct {
	// Path is the default output image path (.svg or .png).
	Path string `toml:"path"`
}

// Limits configures optional execution caps.
type Limits struct {
	// MaxSteps aborts a run after this many executed commands.
	// Zero leaves runs unbounded.
	MaxSteps int `toml:"max_steps"`
}

// PaletteOverride replaces one palette entry for rendering.
type PaletteOverride struct {
	Index uint8 `toml:"index"`
	R     uint8 `toml:"r"`
	G     uint8 `toml:"g"`
	B     uint8 `toml:"b"`
}

// Default returns the configuration used when no file is given: a
// 500x500 canvas with a black background and no execution cap.
func Default() *Config {
	return &Config{
		Canvas: Canvas{Width: 500, Height: 500, Background: 0},
		Output: Output{Path: "out.svg"},
	}
}

// Load reads and validates a TOML configuration file. Missing keys keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Background >= turtle.PaletteSize {
		return fmt.Errorf("background color index %d out of range [0,%d]", c.Canvas.Background, turtle.PaletteSize-1)
	}
	if c.Limits.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.Limits.MaxSteps)
	}
	for _, p := range c.Palette {
		if p.Index >= turtle.PaletteSize {
			return fmt.Errorf("palette override index %d out of range [0,%d]", p.Index, turtle.PaletteSize-1)
		}
	}
	return nil
}

// ApplyPalette installs the configured palette overrides. Overrides only
// change how color indices render; the interpreter core still validates
// indices against the fixed palette size.
func (c *Config) ApplyPalette() {
	for _, p := range c.Palette {
		turtle.Palette[p.Index] = turtle.RGB{R: p.R, G: p.G, B: p.B}
	}
}

// BackgroundRGB resolves the background palette index.
func (c *Config) BackgroundRGB() turtle.RGB {
	return turtle.Palette[c.Canvas.Background]
}
