package render

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"PaintPlay/internal/state"
)

// miterLimit is unused with round joins but rasterx wants a value.
const miterLimit = 4 << 6

// painter rasterizes strokes onto one fixed image. It keeps its scanner
// between strokes because the scanner's coverage buffer is as large as the
// image.
type painter struct {
	dst     *image.RGBA
	stroker *rasterx.Stroker
	filler  *rasterx.Filler
}

func newPainter(dst *image.RGBA) *painter {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	return &painter{
		dst:     dst,
		stroker: rasterx.NewStroker(w, h, scanner),
		filler:  rasterx.NewFiller(w, h, scanner),
	}
}

// paint draws s with round caps and joins. A stroke whose points all
// coincide is drawn as a dot of the stroke's thickness.
func (p *painter) paint(s state.Stroke) {
	pts := dedupe(s.Points)
	if len(pts) == 0 {
		return
	}

	if len(pts) == 1 {
		rasterx.AddCircle(float64(s.Points[0].X), float64(s.Points[0].Y), float64(s.Thickness)/2, p.filler)
		p.filler.SetColor(s.Color)
		p.filler.Draw()
		p.filler.Clear()
		return
	}

	p.stroker.SetStroke(toFixed(s.Thickness), miterLimit, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	p.stroker.Start(pts[0])
	for _, pt := range pts[1:] {
		p.stroker.Line(pt)
	}
	p.stroker.Stop(false)
	p.stroker.SetColor(s.Color)
	p.stroker.Draw()
	p.stroker.Clear()
}

// dedupe converts to fixed point and drops consecutive duplicates, which
// would give the stroker zero-length segments.
func dedupe(points []state.Point) []fixed.Point26_6 {
	out := make([]fixed.Point26_6, 0, len(points))
	for _, pt := range points {
		fp := rasterx.ToFixedP(float64(pt.X), float64(pt.Y))
		if len(out) > 0 && out[len(out)-1] == fp {
			continue
		}
		out = append(out, fp)
	}
	return out
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
