package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"PaintPlay/internal/board"
	"PaintPlay/internal/config"
	"PaintPlay/internal/export"
)

// Shell is the application window around one board.
type Shell struct {
	app      fyne.App
	win      fyne.Window
	cfg      config.Config
	canvas   *BoardWidget
	palette  *palette
	exporter *export.Exporter
	status   *widget.Label
}

// NewShell builds the window; cfg must be valid.
func NewShell(a fyne.App, cfg config.Config) *Shell {
	s := &Shell{
		app:      a,
		cfg:      cfg,
		exporter: export.NewExporter(cfg.ExportDir, cfg.FilePrefix, cfg.ExportPDF),
		status:   widget.NewLabel("Ready"),
	}

	b := board.New(cfg.Brush(), cfg.BackgroundColor())
	s.canvas = NewBoardWidget(b, cfg.BackgroundColor())
	s.canvas.OnResourceError = s.showResourceError
	s.palette = newPalette(cfg.Palette, cfg.Brush().Color, s.SetColor)

	s.win = a.NewWindow(cfg.Title)
	s.win.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	s.win.SetContent(container.NewBorder(
		NewToolbar(s),
		container.NewVBox(NewPaletteBar(s), s.status),
		nil, nil,
		s.canvas,
	))
	return s
}

func (s *Shell) Window() fyne.Window {
	return s.win
}

func (s *Shell) Board() *board.Board {
	return s.canvas.Board()
}

func (s *Shell) SetStatus(text string) {
	s.status.SetText(text)
}

func (s *Shell) Undo() {
	if !s.Board().Undo() {
		s.SetStatus("Nothing to undo")
	}
}

func (s *Shell) Clear() {
	if n := s.Board().Clear(); n > 0 {
		s.SetStatus(fmt.Sprintf("Cleared %d strokes", n))
	}
}

// SetColor applies a palette tag to the brush.
func (s *Shell) SetColor(tag string) {
	if err := s.Board().SetColorString(tag); err != nil {
		log.Printf("[UI] Bad palette color: %v", err)
	}
}

func (s *Shell) SetBrushThickness(v float32) {
	s.Board().SetBrushThickness(v)
	s.SetStatus(fmt.Sprintf("Brush size %.0f", s.Board().Brush().Thickness))
}

func (s *Shell) showResourceError(err error) {
	dialog.ShowError(fmt.Errorf("the drawing area could not be created: %w", err), s.win)
}

// RunApp starts the application and blocks until the window is closed.
// Stored preferences override cfg; opts override both.
func RunApp(cfg config.Config, opts ...config.Option) error {
	a := app.NewWithID(cfg.AppID)
	cfg.ApplyPreferences(a.Preferences())
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("[UI] Starting %s, exports go to %s", cfg.Title, cfg.ExportDir)
	NewShell(a, cfg).Window().ShowAndRun()
	return nil
}
