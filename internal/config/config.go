package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"PaintPlay/internal/state"
)

var ErrInvalidConfig = errors.New("invalid config")

// Preference keys read by ApplyPreferences.
const (
	KeyBrushThickness = "brush.thickness"
	KeyBrushColor     = "brush.color"
	KeyBackground     = "background.color"
	KeyExportDir      = "export.dir"
	KeyExportPDF      = "export.pdf"
)

type Config struct {
	AppID        string
	Title        string
	WindowWidth  float32
	WindowHeight float32

	BrushColor     string
	BrushThickness float32
	// Small, medium and large presets of the brush-size dialog.
	BrushSizes [3]float32
	Palette    []string
	Background string

	ExportDir  string
	FilePrefix string
	ExportPDF  bool
}

// Option changes a Config, e.g. from a command-line flag.
type Option func(*Config)

func Default() Config {
	return Config{
		AppID:          "com.example.paintplay",
		Title:          "PaintPlay",
		WindowWidth:    480,
		WindowHeight:   800,
		BrushColor:     "#000000",
		BrushThickness: 5,
		BrushSizes:     [3]float32{10, 20, 30},
		Palette: []string{
			"#000000",
			"#FF0000",
			"#00FF00",
			"#0000FF",
			"#FFFF00",
			"#FF00FF",
			"#FFFFFF",
		},
		Background: "#FFFFFF",
		ExportDir:  defaultExportDir(),
		FilePrefix: "PaintPlay",
	}
}

func defaultExportDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "paintplay")
}

// ApplyPreferences overrides fields with values stored in the app's
// preferences, where present.
func (c *Config) ApplyPreferences(p fyne.Preferences) {
	c.BrushThickness = float32(p.FloatWithFallback(KeyBrushThickness, float64(c.BrushThickness)))
	c.BrushColor = p.StringWithFallback(KeyBrushColor, c.BrushColor)
	c.Background = p.StringWithFallback(KeyBackground, c.Background)
	c.ExportDir = p.StringWithFallback(KeyExportDir, c.ExportDir)
	c.ExportPDF = p.BoolWithFallback(KeyExportPDF, c.ExportPDF)
}

func (c Config) Validate() error {
	if c.BrushThickness < state.MinThickness {
		return fmt.Errorf("%w: brush thickness %v below %v", ErrInvalidConfig, c.BrushThickness, state.MinThickness)
	}
	for _, s := range c.BrushSizes {
		if s < state.MinThickness {
			return fmt.Errorf("%w: brush size preset %v below %v", ErrInvalidConfig, s, state.MinThickness)
		}
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	for _, tag := range append([]string{c.BrushColor, c.Background}, c.Palette...) {
		if _, err := state.ParseColor(tag); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.ExportDir == "" {
		return fmt.Errorf("%w: empty export dir", ErrInvalidConfig)
	}
	if c.FilePrefix == "" || strings.ContainsAny(c.FilePrefix, `/\`) {
		return fmt.Errorf("%w: bad file prefix %q", ErrInvalidConfig, c.FilePrefix)
	}
	return nil
}

// Brush returns the start-up brush. Call Validate first.
func (c Config) Brush() state.Brush {
	col, _ := state.ParseColor(c.BrushColor)
	return state.Brush{Color: col, Thickness: c.BrushThickness}.Normalize()
}

// BackgroundColor returns the canvas colour. Call Validate first.
func (c Config) BackgroundColor() color.Color {
	col, _ := state.ParseColor(c.Background)
	return col
}
