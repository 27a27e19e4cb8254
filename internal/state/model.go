package state

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrInvalidState is returned when a stroke operation does not fit the
// accumulator's current phase, e.g. extending while idle.
var ErrInvalidState = errors.New("invalid stroke state")

// MinThickness is the thinnest brush allowed.
const MinThickness float32 = 1

type Point struct{ X, Y float32 }

// Stroke is one freehand line: the points of a single gesture plus the
// colour and thickness it was started with.
type Stroke struct {
	ID        string
	Points    []Point
	Color     color.NRGBA
	Thickness float32
}

// Clone returns a copy that shares no memory with s.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = append([]Point(nil), s.Points...)
	return c
}

// Bounds returns the pixel rectangle the stroke can touch once rendered,
// padded by half its thickness plus one pixel for anti-aliasing.
func (s Stroke) Bounds() image.Rectangle {
	if len(s.Points) == 0 {
		return image.Rectangle{}
	}

	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	padding := s.Thickness/2 + 1
	return image.Rect(
		int(math.Floor(float64(minX-padding))),
		int(math.Floor(float64(minY-padding))),
		int(math.Ceil(float64(maxX+padding))),
		int(math.Ceil(float64(maxY+padding))),
	)
}

// Brush is the colour and thickness applied to the next stroke.
type Brush struct {
	Color     color.NRGBA
	Thickness float32
}

// Normalize clamps the thickness to MinThickness.
func (b Brush) Normalize() Brush {
	if b.Thickness < MinThickness || math.IsNaN(float64(b.Thickness)) {
		b.Thickness = MinThickness
	}
	return b
}
