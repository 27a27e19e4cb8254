package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	xdraw "golang.org/x/image/draw"

	"PaintPlay/internal/state"
)

// ErrResourceAllocation is returned when a raster buffer cannot be created
// at the requested size.
var ErrResourceAllocation = errors.New("raster allocation failed")

// MaxPixels bounds a single buffer; two buffers of this size are kept.
const MaxPixels = 64 << 20

// Surface owns the raster buffers of the drawing area. Committed strokes are
// rasterized once into a persistent cache; each frame is the cache plus the
// stroke in progress. The cache is only ever a function of the history it
// was given and is rebuilt from scratch after a resize, undo or clear.
type Surface struct {
	width, height int

	cache      *image.RGBA
	frame      *image.RGBA
	cacheBrush *painter
	frameBrush *painter

	// IDs of the strokes in cache, in draw order.
	rasterized []string
	// Region of frame that differs from cache.
	dirty image.Rectangle

	background      color.Color
	backgroundImage image.Image
	backdrop        *image.RGBA
}

func NewSurface(background color.Color) *Surface {
	if background == nil {
		background = color.White
	}
	return &Surface{background: background}
}

// Size returns the current buffer dimensions, zero before the first Resize.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the buffers for a w×h view. Raster contents are
// dropped; the next Render replays the history it is given.
func (s *Surface) Resize(w, h int) error {
	if w == s.width && h == s.height && s.cache != nil {
		return nil
	}
	if w <= 0 || h <= 0 || w > MaxPixels/h {
		return fmt.Errorf("resize to %dx%d: %w", w, h, ErrResourceAllocation)
	}

	bounds := image.Rect(0, 0, w, h)
	s.width, s.height = w, h
	s.cache = image.NewRGBA(bounds)
	s.frame = image.NewRGBA(bounds)
	s.cacheBrush = newPainter(s.cache)
	s.frameBrush = newPainter(s.frame)
	s.rasterized = s.rasterized[:0]
	s.dirty = image.Rectangle{}
	s.rebuildBackdrop()

	log.Printf("[SURFACE] Allocated %dx%d buffers", w, h)
	return nil
}

// Render brings the frame up to date with history and draws active, if
// any, on top. The returned image is owned by the surface and is only valid
// until the next call.
func (s *Surface) Render(history []state.Stroke, active *state.Stroke) (*image.RGBA, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("render before resize: %w", ErrResourceAllocation)
	}
	bounds := s.cache.Bounds()

	if !s.extends(history) {
		clear(s.cache.Pix)
		s.rasterized = s.rasterized[:0]
		s.dirty = bounds
	}

	for _, st := range history[len(s.rasterized):] {
		s.cacheBrush.paint(st)
		s.rasterized = append(s.rasterized, st.ID)
		s.dirty = s.dirty.Union(st.Bounds().Intersect(bounds))
	}

	if !s.dirty.Empty() {
		xdraw.Draw(s.frame, s.dirty, s.cache, s.dirty.Min, xdraw.Src)
	}
	s.dirty = image.Rectangle{}

	if active != nil && len(active.Points) > 0 {
		s.frameBrush.paint(*active)
		s.dirty = active.Bounds().Intersect(bounds)
	}
	return s.frame, nil
}

// extends reports whether history is the rasterized strokes plus zero or
// more newer ones. History only grows or shrinks at its end and stroke IDs
// are unique, so comparing the last rasterized ID is enough.
func (s *Surface) extends(history []state.Stroke) bool {
	n := len(s.rasterized)
	if len(history) < n {
		return false
	}
	return n == 0 || history[n-1].ID == s.rasterized[n-1]
}

// SetBackgroundImage places img behind the strokes, scaled to fit and
// centred. A nil image removes it.
func (s *Surface) SetBackgroundImage(img image.Image) {
	s.backgroundImage = img
	s.rebuildBackdrop()
}

func (s *Surface) BackgroundImage() image.Image {
	return s.backgroundImage
}

func (s *Surface) rebuildBackdrop() {
	if s.cache == nil {
		return
	}
	if s.backdrop == nil || s.backdrop.Bounds() != s.cache.Bounds() {
		s.backdrop = image.NewRGBA(s.cache.Bounds())
	}
	xdraw.Draw(s.backdrop, s.backdrop.Bounds(), image.NewUniform(s.background), image.Point{}, xdraw.Src)
	if s.backgroundImage != nil {
		dst := FitCenter(s.backgroundImage.Bounds(), s.backdrop.Bounds())
		xdraw.CatmullRom.Scale(s.backdrop, dst, s.backgroundImage, s.backgroundImage.Bounds(), xdraw.Over, nil)
	}
}

// ComposedImage returns a new image holding the background, the imported
// picture and the last rendered frame. The caller owns the result.
func (s *Surface) ComposedImage() (*image.RGBA, error) {
	if s.frame == nil {
		return nil, fmt.Errorf("compose before resize: %w", ErrResourceAllocation)
	}
	out := image.NewRGBA(s.frame.Bounds())
	copy(out.Pix, s.backdrop.Pix)
	xdraw.Draw(out, out.Bounds(), s.frame, image.Point{}, xdraw.Over)
	return out, nil
}

// FitCenter returns the largest rectangle with src's aspect ratio that fits
// inside dst, centred in it.
func FitCenter(src, dst image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	dw, dh := dst.Dx(), dst.Dy()
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return image.Rectangle{}
	}

	w, h := dw, sh*dw/sw
	if h > dh {
		w, h = sw*dh/sh, dh
	}
	x := dst.Min.X + (dw-w)/2
	y := dst.Min.Y + (dh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
