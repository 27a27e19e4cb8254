package state

import "fmt"

// Accumulator builds one stroke per gesture from incoming pointer positions.
// It holds at most one stroke in progress and never touches a raster.
type Accumulator struct {
	current *Stroke
}

// Begin starts a stroke at p with the given brush.
func (a *Accumulator) Begin(p Point, b Brush) error {
	if a.current != nil {
		return fmt.Errorf("begin: stroke %s already in progress: %w", a.current.ID, ErrInvalidState)
	}
	b = b.Normalize()
	a.current = &Stroke{
		ID:        NewStrokeID(),
		Points:    []Point{p},
		Color:     b.Color,
		Thickness: b.Thickness,
	}
	return nil
}

// Extend appends p to the stroke in progress.
func (a *Accumulator) Extend(p Point) error {
	if a.current == nil {
		return fmt.Errorf("extend: %w", ErrInvalidState)
	}
	a.current.Points = append(a.current.Points, p)
	return nil
}

// Seal finishes the stroke in progress and hands it to the caller, who is
// responsible for committing it.
func (a *Accumulator) Seal() (Stroke, error) {
	if a.current == nil {
		return Stroke{}, fmt.Errorf("seal: %w", ErrInvalidState)
	}
	s := *a.current
	a.current = nil
	return s, nil
}

// Discard drops the stroke in progress, if any.
func (a *Accumulator) Discard() bool {
	if a.current == nil {
		return false
	}
	a.current = nil
	return true
}

// Active returns a copy of the stroke in progress.
func (a *Accumulator) Active() (Stroke, bool) {
	if a.current == nil {
		return Stroke{}, false
	}
	return a.current.Clone(), true
}

func (a *Accumulator) InProgress() bool {
	return a.current != nil
}
