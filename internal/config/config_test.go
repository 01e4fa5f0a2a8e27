package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gologo-lang/gologo/pkg/turtle"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gologo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Canvas.Width != 500 || cfg.Canvas.Height != 500 {
		t.Errorf("expected 500x500, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Background != 0 {
		t.Errorf("expected background 0, got %d", cfg.Canvas.Background)
	}
	if cfg.Limits.MaxSteps != 0 {
		t.Errorf("expected unbounded steps, got %d", cfg.Limits.MaxSteps)
	}
	if cfg.Output.Path != "out.svg" {
		t.Errorf("expected default output out.svg, got %q", cfg.Output.Path)
	}
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
[canvas]
width = 800
height = 600
background = 7

[output]
path = "drawing.png"

[limits]
max_steps = 10000

[[palette]]
index = 1
r = 10
g = 20
b = 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Background != 7 {
		t.Errorf("expected background 7, got %d", cfg.Canvas.Background)
	}
	if cfg.Limits.MaxSteps != 10000 {
		t.Errorf("expected max_steps 10000, got %d", cfg.Limits.MaxSteps)
	}
	if cfg.Output.Path != "drawing.png" {
		t.Errorf("expected output drawing.png, got %q", cfg.Output.Path)
	}
	if len(cfg.Palette) != 1 || cfg.Palette[0].Index != 1 {
		t.Fatalf("unexpected palette overrides: %+v", cfg.Palette)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[limits]
max_steps = 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 500 || cfg.Canvas.Height != 500 {
		t.Errorf("missing canvas section must keep defaults, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Limits.MaxSteps != 50 {
		t.Errorf("expected max_steps 50, got %d", cfg.Limits.MaxSteps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero width", "[canvas]\nwidth = 0\nheight = 100\n"},
		{"background out of range", "[canvas]\nwidth = 100\nheight = 100\nbackground = 16\n"},
		{"negative max_steps", "[limits]\nmax_steps = -1\n"},
		{"palette index out of range", "[[palette]]\nindex = 16\n"},
		{"malformed toml", "[canvas\nwidth = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApplyPalette(t *testing.T) {
	original := turtle.Palette[3]
	defer func() { turtle.Palette[3] = original }()

	cfg := Default()
	cfg.Palette = []PaletteOverride{{Index: 3, R: 1, G: 2, B: 3}}
	cfg.ApplyPalette()

	if turtle.Palette[3] != (turtle.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("override not applied: %+v", turtle.Palette[3])
	}
}

func TestBackgroundRGB(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Background = 7
	if got := cfg.BackgroundRGB(); got != (turtle.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("expected white, got %+v", got)
	}
}
