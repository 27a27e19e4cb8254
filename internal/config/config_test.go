package config

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PaintPlay/internal/state"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, state.Brush{Color: color.NRGBA{A: 255}, Thickness: 5}, c.Brush())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c.BackgroundColor())
	assert.NotEmpty(t, c.ExportDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"thin brush", func(c *Config) { c.BrushThickness = 0.5 }},
		{"thin preset", func(c *Config) { c.BrushSizes[1] = 0 }},
		{"bad brush color", func(c *Config) { c.BrushColor = "#12" }},
		{"bad background", func(c *Config) { c.Background = "plaid" }},
		{"bad palette", func(c *Config) { c.Palette = append(c.Palette, "#XYZXYZ") }},
		{"empty palette", func(c *Config) { c.Palette = nil }},
		{"no export dir", func(c *Config) { c.ExportDir = "" }},
		{"prefix with slash", func(c *Config) { c.FilePrefix = "a/b" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestApplyPreferences(t *testing.T) {
	a := test.NewTempApp(t)
	p := a.Preferences()
	p.SetFloat(KeyBrushThickness, 12)
	p.SetString(KeyBrushColor, "#0000FF")
	p.SetString(KeyExportDir, "/tmp/elsewhere")
	p.SetBool(KeyExportPDF, true)

	c := Default()
	c.ApplyPreferences(p)

	assert.Equal(t, float32(12), c.BrushThickness)
	assert.Equal(t, "#0000FF", c.BrushColor)
	assert.Equal(t, "#FFFFFF", c.Background)
	assert.Equal(t, "/tmp/elsewhere", c.ExportDir)
	assert.True(t, c.ExportPDF)
	require.NoError(t, c.Validate())
}
