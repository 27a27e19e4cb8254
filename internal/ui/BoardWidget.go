package ui

import (
	"errors"
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"PaintPlay/internal/board"
	"PaintPlay/internal/render"
)

// BoardWidget shows a board and feeds it pointer events. The imported
// picture sits behind the strokes the same way it is composed on export.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	background *canvas.Rectangle
	backImage  *canvas.Image
	raster     *canvas.Raster

	// OnResourceError is called when the drawing buffer cannot be allocated.
	OnResourceError func(error)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board, background color.Color) *BoardWidget {
	w := &BoardWidget{
		board:      b,
		background: canvas.NewRectangle(background),
		backImage:  canvas.NewImageFromImage(nil),
	}
	w.background.SetMinSize(fyne.NewSize(300, 300))
	w.backImage.FillMode = canvas.ImageFillContain
	w.backImage.Hide()
	w.raster = canvas.NewRaster(w.generate)

	b.OnInvalidate = w.invalidate
	w.ExtendBaseWidget(w)
	return w
}

func (w *BoardWidget) Board() *board.Board {
	return w.board
}

func (w *BoardWidget) invalidate() {
	w.raster.Refresh()
}

// generate is the raster callback; width and height are in pixels.
func (w *BoardWidget) generate(width, height int) image.Image {
	if err := w.board.Resize(width, height); err != nil {
		w.reportResourceError(err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	frame, err := w.board.Frame()
	if err != nil {
		w.reportResourceError(err)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return frame
}

func (w *BoardWidget) reportResourceError(err error) {
	log.Printf("[UI] Drawing buffer unavailable: %v", err)
	if w.OnResourceError != nil && errors.Is(err, render.ErrResourceAllocation) {
		w.OnResourceError(err)
	}
}

// SetBackgroundImage shows img behind the strokes; nil removes it.
func (w *BoardWidget) SetBackgroundImage(img image.Image) {
	w.board.SetBackgroundImage(img)
	w.backImage.Image = img
	if img == nil {
		w.backImage.Hide()
	} else {
		w.backImage.Show()
	}
	w.backImage.Refresh()
}

// toBoard converts a widget position to raster pixels.
func (w *BoardWidget) toBoard(pos fyne.Position) (float32, float32) {
	scale := float32(1)
	if app := fyne.CurrentApp(); app != nil {
		if c := app.Driver().CanvasForObject(w); c != nil {
			scale = c.Scale()
		}
	}
	return pos.X * scale, pos.Y * scale
}

func (w *BoardWidget) down(pos fyne.Position) {
	x, y := w.toBoard(pos)
	if err := w.board.PointerDown(x, y); err != nil {
		log.Printf("[UI] Ignoring pointer down: %v", err)
	}
}

func (w *BoardWidget) up() {
	if w.board.Phase() != board.Drawing {
		return
	}
	if err := w.board.PointerUp(); err != nil {
		log.Printf("[UI] Ignoring pointer up: %v", err)
	}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.down(e.Position)
	}
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.up()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.board.Phase() != board.Drawing {
		return
	}
	x, y := w.toBoard(e.Position)
	if err := w.board.PointerMove(x, y); err != nil {
		log.Printf("[UI] Ignoring pointer move: %v", err)
	}
}

func (w *BoardWidget) DragEnd() {
	w.up()
}

func (w *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	w.down(e.Position)
}

func (w *BoardWidget) TouchUp(*mobile.TouchEvent) {
	w.up()
}

func (w *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	w.board.PointerCancel()
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(w.background, w.backImage, w.raster))
}
