package main

import (
	"log"

	"github.com/tdewolff/argp"

	"PaintPlay/internal/config"
	"PaintPlay/internal/ui"
)

// PaintPlay holds the command-line overrides. Zero values leave the
// defaults and stored preferences alone.
type PaintPlay struct {
	Brush      float64 `short:"b" desc:"Brush thickness at start-up"`
	Color      string  `short:"c" desc:"Brush color at start-up, #RRGGBB or a name"`
	Background string  `desc:"Canvas color"`
	ExportDir  string  `short:"o" desc:"Directory exported drawings are written to"`
	PDF        bool    `desc:"Also export a PDF next to each PNG"`
}

func (cmd *PaintPlay) apply(c *config.Config) {
	if cmd.Brush > 0 {
		c.BrushThickness = float32(cmd.Brush)
	}
	if cmd.Color != "" {
		c.BrushColor = cmd.Color
	}
	if cmd.Background != "" {
		c.Background = cmd.Background
	}
	if cmd.ExportDir != "" {
		c.ExportDir = cmd.ExportDir
	}
	if cmd.PDF {
		c.ExportPDF = true
	}
}

func (cmd *PaintPlay) Run() error {
	if err := ui.RunApp(config.Default(), cmd.apply); err != nil {
		log.Printf("PaintPlay: %v", err)
		return err
	}
	return nil
}

func main() {
	root := argp.NewCmd(&PaintPlay{}, "PaintPlay, a freehand drawing pad")
	root.Parse()
}
