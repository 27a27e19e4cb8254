package state

// History is the ordered list of committed strokes. Later strokes are drawn
// on top of earlier ones. The in-progress stroke is never part of it.
type History struct {
	strokes []Stroke
}

func NewHistory() *History {
	return &History{strokes: make([]Stroke, 0, 16)}
}

// Commit appends a sealed stroke.
func (h *History) Commit(s Stroke) {
	h.strokes = append(h.strokes, s)
}

// Undo removes the most recent stroke and reports whether there was one.
func (h *History) Undo() bool {
	if len(h.strokes) == 0 {
		return false
	}
	h.strokes[len(h.strokes)-1] = Stroke{}
	h.strokes = h.strokes[:len(h.strokes)-1]
	return true
}

// All returns the committed strokes in draw order. The slice must be
// treated as read-only.
func (h *History) All() []Stroke {
	return h.strokes[:len(h.strokes):len(h.strokes)]
}

func (h *History) Len() int {
	return len(h.strokes)
}

// Last returns the most recently committed stroke.
func (h *History) Last() (Stroke, bool) {
	if len(h.strokes) == 0 {
		return Stroke{}, false
	}
	return h.strokes[len(h.strokes)-1], true
}

// Clear drops every stroke and returns how many were removed.
func (h *History) Clear() int {
	n := len(h.strokes)
	h.strokes = make([]Stroke, 0, 16)
	return n
}
