// Package board is the drawing core the host shell talks to. It turns
// pointer events into strokes, keeps the undo history and the active brush,
// and drives the render surface.
//
// A Board is not safe for concurrent use. All calls are expected on the
// host's UI goroutine; only the images returned by ComposedImage may be
// handed to other goroutines.
package board

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"PaintPlay/internal/render"
	"PaintPlay/internal/state"
)

// Phase is where the board is in a gesture.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

type Board struct {
	brush   state.Brush
	acc     state.Accumulator
	history *state.History
	surface *render.Surface

	// OnInvalidate is called after every change that needs a redraw.
	OnInvalidate func()
}

// New returns an idle board that paints with brush on the given background.
func New(brush state.Brush, background color.Color) *Board {
	return &Board{
		brush:   brush.Normalize(),
		history: state.NewHistory(),
		surface: render.NewSurface(background),
	}
}

func (b *Board) invalidate() {
	if b.OnInvalidate != nil {
		b.OnInvalidate()
	}
}

func (b *Board) Phase() Phase {
	if b.acc.InProgress() {
		return Drawing
	}
	return Idle
}

// PointerDown starts a stroke with the current brush. Idle -> Drawing.
func (b *Board) PointerDown(x, y float32) error {
	if err := b.acc.Begin(state.Point{X: x, Y: y}, b.brush); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// PointerMove extends the stroke in progress. Drawing -> Drawing.
func (b *Board) PointerMove(x, y float32) error {
	if err := b.acc.Extend(state.Point{X: x, Y: y}); err != nil {
		return err
	}
	b.invalidate()
	return nil
}

// PointerUp seals the stroke in progress and commits it. Drawing -> Idle.
func (b *Board) PointerUp() error {
	s, err := b.acc.Seal()
	if err != nil {
		return err
	}
	b.history.Commit(s)
	b.invalidate()
	return nil
}

// PointerCancel drops the stroke in progress without committing it.
func (b *Board) PointerCancel() {
	if b.acc.Discard() {
		b.invalidate()
	}
}

// Undo removes the last committed stroke. A stroke still being drawn is
// not part of the history and is left alone.
func (b *Board) Undo() bool {
	if !b.history.Undo() {
		return false
	}
	b.invalidate()
	return true
}

// Clear removes every committed stroke.
func (b *Board) Clear() int {
	n := b.history.Clear()
	if n > 0 {
		log.Printf("[BOARD] Cleared %d strokes", n)
		b.invalidate()
	}
	return n
}

// SetColor changes the colour of strokes started from now on.
func (b *Board) SetColor(c color.Color) {
	b.brush.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	b.invalidate()
}

// SetColorString parses a palette tag and applies it.
func (b *Board) SetColorString(tag string) error {
	c, err := state.ParseColor(tag)
	if err != nil {
		return err
	}
	b.SetColor(c)
	return nil
}

// SetBrushThickness changes the thickness of strokes started from now on.
// Values below state.MinThickness are raised to it.
func (b *Board) SetBrushThickness(v float32) {
	b.brush.Thickness = v
	b.brush = b.brush.Normalize()
	b.invalidate()
}

func (b *Board) Brush() state.Brush {
	return b.brush
}

// Strokes returns the committed strokes in draw order.
func (b *Board) Strokes() []state.Stroke {
	return b.history.All()
}

// Active returns a copy of the stroke being drawn.
func (b *Board) Active() (state.Stroke, bool) {
	return b.acc.Active()
}

// Resize reallocates the raster for a w×h view.
func (b *Board) Resize(w, h int) error {
	ow, oh := b.surface.Size()
	if err := b.surface.Resize(w, h); err != nil {
		return err
	}
	if ow != w || oh != h {
		b.invalidate()
	}
	return nil
}

func (b *Board) Size() (int, int) {
	return b.surface.Size()
}

// SetBackgroundImage places an imported picture behind the strokes.
func (b *Board) SetBackgroundImage(img image.Image) {
	b.surface.SetBackgroundImage(img)
	b.invalidate()
}

func (b *Board) BackgroundImage() image.Image {
	return b.surface.BackgroundImage()
}

// Frame renders the history and the stroke in progress. The image belongs
// to the board and changes on the next call.
func (b *Board) Frame() (*image.RGBA, error) {
	var active *state.Stroke
	if s, ok := b.acc.Active(); ok {
		active = &s
	}
	return b.surface.Render(b.history.All(), active)
}

// ComposedImage returns a private copy of what is on screen, background
// included. It is safe to pass to another goroutine.
func (b *Board) ComposedImage() (*image.RGBA, error) {
	if _, err := b.Frame(); err != nil {
		return nil, err
	}
	return b.surface.ComposedImage()
}
