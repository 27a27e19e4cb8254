package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PaintPlay/internal/config"
)

func TestFlagsOverrideConfig(t *testing.T) {
	c := config.Default()
	cmd := &PaintPlay{Brush: 12, Color: "red", ExportDir: "/tmp/out", PDF: true}
	cmd.apply(&c)

	assert.Equal(t, float32(12), c.BrushThickness)
	assert.Equal(t, "red", c.BrushColor)
	assert.Equal(t, "#FFFFFF", c.Background)
	assert.Equal(t, "/tmp/out", c.ExportDir)
	assert.True(t, c.ExportPDF)
	assert.NoError(t, c.Validate())
}

func TestEmptyFlagsKeepConfig(t *testing.T) {
	c := config.Default()
	(&PaintPlay{}).apply(&c)
	assert.Equal(t, config.Default(), c)
}
