package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PaintPlay/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Tag      string
	Color    color.Color
	OnTapped func(*colorSwatch)

	selected bool
	border   *canvas.Rectangle
}

func newColorSwatch(tag string, c color.Color, tapped func(*colorSwatch)) *colorSwatch {
	s := &colorSwatch{Tag: tag, Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	s.border = canvas.NewRectangle(color.Transparent)
	s.styleBorder()

	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) styleBorder() {
	if s.border == nil {
		return
	}
	if s.selected {
		s.border.StrokeColor = color.Gray{Y: 40}
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

func (s *colorSwatch) SetSelected(selected bool) {
	s.selected = selected
	s.styleBorder()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s)
	}
}

// palette holds the swatches and keeps exactly one selected.
type palette struct {
	swatches []*colorSwatch
	current  *colorSwatch
}

func newPalette(tags []string, brush color.Color, onPick func(tag string)) *palette {
	p := &palette{}
	pick := func(s *colorSwatch) {
		if s == p.current {
			return
		}
		onPick(s.Tag)
		p.selectSwatch(s)
	}
	for _, tag := range tags {
		c, err := state.ParseColor(tag)
		if err != nil {
			log.Printf("[UI] Skipping palette entry %q: %v", tag, err)
			continue
		}
		s := newColorSwatch(tag, c, pick)
		p.swatches = append(p.swatches, s)
		if p.current == nil && state.FormatColor(c) == state.FormatColor(brush) {
			p.selectSwatch(s)
		}
	}
	return p
}

func (p *palette) selectSwatch(s *colorSwatch) {
	if p.current != nil {
		p.current.SetSelected(false)
	}
	p.current = s
	s.SetSelected(true)
}

func (p *palette) objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, len(p.swatches))
	for i, s := range p.swatches {
		objs[i] = s
	}
	return objs
}

// showBrushSizeDialog offers the small, medium and large presets.
func showBrushSizeDialog(sizes [3]float32, win fyne.Window, onPick func(float32)) {
	var d dialog.Dialog
	labels := [3]string{"Small", "Medium", "Large"}
	buttons := make([]fyne.CanvasObject, 0, len(sizes))
	for i, size := range sizes {
		size := size
		buttons = append(buttons, widget.NewButton(fmt.Sprintf("%s (%.0f)", labels[i], size), func() {
			onPick(size)
			d.Hide()
		}))
	}
	d = dialog.NewCustom("Brush size", "Cancel", container.NewVBox(buttons...), win)
	d.Show()
}

// --- The Main Toolbar ---
func NewToolbar(s *Shell) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), s.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), s.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FileImageIcon(), s.ImportBackground),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), s.Save),
	)

	sizeButton := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		showBrushSizeDialog(s.cfg.BrushSizes, s.win, s.SetBrushThickness)
	})

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sizeButton,
		layout.NewSpacer(),
	)
}

// NewPaletteBar lays the colour swatches out in a centred row.
func NewPaletteBar(s *Shell) fyne.CanvasObject {
	return container.NewCenter(container.NewHBox(s.palette.objects()...))
}
