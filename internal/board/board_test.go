package board

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PaintPlay/internal/render"
	"PaintPlay/internal/state"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func newBoard(t *testing.T) *Board {
	t.Helper()
	b := New(state.Brush{Color: black, Thickness: 5}, color.White)
	require.NoError(t, b.Resize(64, 64))
	return b
}

func gesture(t *testing.T, b *Board, pts ...state.Point) {
	t.Helper()
	require.NoError(t, b.PointerDown(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		require.NoError(t, b.PointerMove(p.X, p.Y))
	}
	require.NoError(t, b.PointerUp())
}

func composed(t *testing.T, b *Board) []byte {
	t.Helper()
	img, err := b.ComposedImage()
	require.NoError(t, err)
	return img.Pix
}

func TestGesturesCommitOneStrokeEach(t *testing.T) {
	b := newBoard(t)
	for n := 1; n <= 5; n++ {
		pts := []state.Point{{X: float32(n), Y: float32(n)}}
		for i := 0; i < n-1; i++ {
			pts = append(pts, state.Point{X: float32(n + i*3), Y: float32(2 * i)})
		}
		gesture(t, b, pts...)
		assert.Equal(t, n, len(b.Strokes()))
		assert.Equal(t, Idle, b.Phase())
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	b := newBoard(t)
	assert.False(t, b.Undo())
	assert.Empty(t, b.Strokes())
}

func TestUndoRemovesMostRecentStroke(t *testing.T) {
	b := newBoard(t)
	gesture(t, b, state.Point{X: 1, Y: 1}, state.Point{X: 5, Y: 5})
	gesture(t, b, state.Point{X: 9, Y: 9}, state.Point{X: 20, Y: 20})
	first := b.Strokes()[0]

	require.True(t, b.Undo())
	require.Len(t, b.Strokes(), 1)
	assert.Equal(t, first.ID, b.Strokes()[0].ID)
	assert.Equal(t, first.Points, b.Strokes()[0].Points)
}

func TestUndoDuringGestureKeepsActiveStroke(t *testing.T) {
	b := newBoard(t)
	gesture(t, b, state.Point{X: 1, Y: 1}, state.Point{X: 5, Y: 5})

	require.NoError(t, b.PointerDown(30, 30))
	require.NoError(t, b.PointerMove(40, 40))
	before, ok := b.Active()
	require.True(t, ok)

	assert.True(t, b.Undo())
	assert.Empty(t, b.Strokes())
	assert.Equal(t, Drawing, b.Phase())

	after, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, before, after)

	// Nothing committed is left, so a second undo is a no-op.
	assert.False(t, b.Undo())

	require.NoError(t, b.PointerUp())
	require.Len(t, b.Strokes(), 1)
	assert.Equal(t, before.ID, b.Strokes()[0].ID)
}

func TestIllegalTransitions(t *testing.T) {
	b := newBoard(t)

	assert.ErrorIs(t, b.PointerMove(1, 1), state.ErrInvalidState)
	assert.ErrorIs(t, b.PointerUp(), state.ErrInvalidState)
	assert.Equal(t, Idle, b.Phase())

	require.NoError(t, b.PointerDown(1, 1))
	assert.ErrorIs(t, b.PointerDown(2, 2), state.ErrInvalidState)
	assert.Equal(t, Drawing, b.Phase())

	b.PointerCancel()
	assert.Equal(t, Idle, b.Phase())
	assert.Empty(t, b.Strokes())
}

func TestBrushChangesApplyToNewStrokesOnly(t *testing.T) {
	b := newBoard(t)
	b.SetColor(red)
	b.SetBrushThickness(5)
	gesture(t, b, state.Point{X: 10.5, Y: 10.5}, state.Point{X: 40.5, Y: 10.5})

	b.SetColor(blue)
	b.SetBrushThickness(10)
	gesture(t, b, state.Point{X: 10.5, Y: 40.5}, state.Point{X: 40.5, Y: 40.5})

	strokes := b.Strokes()
	require.Len(t, strokes, 2)
	assert.Equal(t, red, strokes[0].Color)
	assert.Equal(t, float32(5), strokes[0].Thickness)
	assert.Equal(t, blue, strokes[1].Color)
	assert.Equal(t, float32(10), strokes[1].Thickness)

	frame, err := b.Frame()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), frame.RGBAAt(25, 14).A, "red stroke is 5 wide")
	assert.Greater(t, frame.RGBAAt(25, 12).R, uint8(240))
	assert.Greater(t, frame.RGBAAt(25, 44).B, uint8(240), "blue stroke is 10 wide")
	assert.Less(t, frame.RGBAAt(25, 44).R, uint8(16))
}

func TestBrushThicknessMinimum(t *testing.T) {
	b := newBoard(t)
	b.SetBrushThickness(0)
	assert.Equal(t, state.MinThickness, b.Brush().Thickness)
}

func TestSetColorString(t *testing.T) {
	b := newBoard(t)
	require.NoError(t, b.SetColorString("#FF0000"))
	assert.Equal(t, red, b.Brush().Color)

	assert.Error(t, b.SetColorString("#nothex"))
	assert.Equal(t, red, b.Brush().Color)
}

func TestUndoSingleStrokeLeavesBackground(t *testing.T) {
	b := newBoard(t)
	empty := append([]byte(nil), composed(t, b)...)

	gesture(t, b, state.Point{X: 0, Y: 0}, state.Point{X: 10, Y: 10})
	assert.False(t, bytes.Equal(empty, composed(t, b)))

	require.True(t, b.Undo())
	assert.Empty(t, b.Strokes())
	assert.True(t, bytes.Equal(empty, composed(t, b)))

	for i := 0; i < len(empty); i += 4 {
		require.Equal(t, []byte{255, 255, 255, 255}, empty[i:i+4])
	}
}

func TestUndoSecondStrokeMatchesFirstAlone(t *testing.T) {
	first := []state.Point{{X: 5, Y: 5}, {X: 50, Y: 20}, {X: 30, Y: 60}}
	second := []state.Point{{X: 60, Y: 2}, {X: 2, Y: 60}}

	b := newBoard(t)
	gesture(t, b, first...)
	b.SetColor(red)
	gesture(t, b, second...)
	require.True(t, b.Undo())
	require.Len(t, b.Strokes(), 1)

	only := newBoard(t)
	gesture(t, only, first...)

	assert.True(t, bytes.Equal(composed(t, only), composed(t, b)))
}

func TestResizeKeepsHistory(t *testing.T) {
	b := newBoard(t)
	gesture(t, b, state.Point{X: 5, Y: 5}, state.Point{X: 30, Y: 30})
	before := append([]byte(nil), composed(t, b)...)

	require.NoError(t, b.Resize(100, 80))
	w, h := b.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 80, h)
	assert.Len(t, b.Strokes(), 1)

	require.NoError(t, b.Resize(64, 64))
	assert.True(t, bytes.Equal(before, composed(t, b)))
}

func TestResizeFailure(t *testing.T) {
	b := newBoard(t)
	assert.ErrorIs(t, b.Resize(0, 10), render.ErrResourceAllocation)
	w, h := b.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 64, h)
}

func TestInvalidateSignal(t *testing.T) {
	b := newBoard(t)
	calls := 0
	b.OnInvalidate = func() { calls++ }

	gesture(t, b, state.Point{X: 1, Y: 1}, state.Point{X: 2, Y: 2})
	assert.Equal(t, 3, calls)

	b.Undo()
	assert.Equal(t, 4, calls)

	b.Undo()
	assert.Equal(t, 4, calls, "no-op undo does not redraw")

	assert.Error(t, b.PointerMove(1, 1))
	assert.Equal(t, 4, calls, "rejected events do not redraw")

	require.NoError(t, b.Resize(10, 10))
	b.SetColor(red)
	b.SetBrushThickness(3)
	assert.Equal(t, 7, calls)
}

func TestClear(t *testing.T) {
	b := newBoard(t)
	gesture(t, b, state.Point{X: 1, Y: 1}, state.Point{X: 2, Y: 2})
	gesture(t, b, state.Point{X: 3, Y: 3}, state.Point{X: 4, Y: 4})
	assert.Equal(t, 2, b.Clear())
	assert.Empty(t, b.Strokes())
	assert.Equal(t, 0, b.Clear())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "drawing", Drawing.String())
}
