package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(tool Tool) (*DrawingEngine, *Scene) {
	s := newTestScene()
	e := NewDrawingEngine(s)
	e.SetTool(tool)
	return e, s
}

func TestPenClickWithoutMoveAddsNothing(t *testing.T) {
	e, s := newTestEngine(ToolPen)
	e.PointerDown(Point{X: 10, Y: 10})
	e.PointerUp()
	assert.Empty(t, s.Paths())
	assert.Equal(t, DrawIdle, e.State())
}

func TestPenStroke(t *testing.T) {
	e, s := newTestEngine(ToolPen)
	e.SetColor("#ff0000")
	e.SetStrokeWidth(4)

	e.PointerDown(Point{X: 10, Y: 10})
	e.PointerMove(Point{X: 20, Y: 15})
	assert.Len(t, e.CurrentPath(), 2)
	e.PointerMove(Point{X: 30, Y: 20})
	e.PointerUp()

	paths := s.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, []Point{{X: 10, Y: 10}, {X: 20, Y: 15}, {X: 30, Y: 20}}, paths[0].Points)
	assert.Equal(t, ToolPen, paths[0].Tool)
	assert.Equal(t, "#ff0000", paths[0].Color)
	assert.Equal(t, 4.0, paths[0].Width)
	assert.Nil(t, e.CurrentPath())
}

func TestPointerLeaveCommitsLikeUp(t *testing.T) {
	e, s := newTestEngine(ToolPen)
	e.PointerDown(Point{X: 0, Y: 0})
	e.PointerMove(Point{X: 5, Y: 5})
	e.PointerLeave()
	assert.Len(t, s.Paths(), 1)
	assert.Equal(t, DrawIdle, e.State())

	// moves after leaving are ignored
	e.PointerMove(Point{X: 50, Y: 50})
	assert.Len(t, s.Paths(), 1)
}

func TestRectangleAndCircle(t *testing.T) {
	for _, tc := range []struct {
		tool Tool
		kind ShapeKind
	}{
		{ToolRectangle, ShapeRectangle},
		{ToolCircle, ShapeCircle},
	} {
		t.Run(string(tc.tool), func(t *testing.T) {
			e, s := newTestEngine(tc.tool)
			e.PointerDown(Point{X: 50, Y: 40})
			e.PointerMove(Point{X: 20, Y: 30})
			preview, ok := e.CurrentShape()
			require.True(t, ok)
			assert.Equal(t, 20.0, preview.EndX)
			e.PointerMove(Point{X: 10, Y: 10})
			e.PointerUp()

			shapes := s.Shapes()
			require.Len(t, shapes, 1)
			assert.Equal(t, tc.kind, shapes[0].Kind)
			assert.Equal(t, Rect{X: 10, Y: 10, Width: 40, Height: 30}, shapes[0].Bounds())
			assert.Equal(t, defaultStrokeColor, shapes[0].Color)
		})
	}
}

func TestZeroSizeShapeIsDropped(t *testing.T) {
	e, s := newTestEngine(ToolRectangle)
	e.PointerDown(Point{X: 10, Y: 10})
	e.PointerUp()
	assert.Empty(t, s.Shapes())

	e.PointerDown(Point{X: 10, Y: 10})
	e.PointerMove(Point{X: 10, Y: 30})
	e.PointerUp()
	assert.Len(t, s.Shapes(), 1, "a flat shape still has a size")
}

func TestTextToolWaitsForContent(t *testing.T) {
	e, s := newTestEngine(ToolText)
	e.PointerDown(Point{X: 40, Y: 60})
	pos, waiting := e.PendingText()
	require.True(t, waiting)
	assert.Equal(t, Point{X: 40, Y: 60}, pos)
	assert.Equal(t, DrawAwaitingText, e.State())

	assert.True(t, e.SubmitText("hello"))
	texts := s.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, TextElement{Position: Point{X: 40, Y: 60}, Content: "hello", FontSize: defaultFontSize, Color: defaultStrokeColor}, texts[0])

	e.PointerDown(Point{X: 0, Y: 0})
	assert.False(t, e.SubmitText(""))
	assert.Len(t, s.Texts(), 1)

	e.PointerDown(Point{X: 0, Y: 0})
	e.CancelText()
	assert.False(t, e.SubmitText("late"))
	assert.Len(t, s.Texts(), 1)
}

func TestEraserRemovesTouchedPathsOnMove(t *testing.T) {
	e, s := newTestEngine(ToolEraser)
	s.AddPath(DrawingPath{Points: []Point{{X: 100, Y: 100}, {X: 200, Y: 100}}, Tool: ToolPen})
	s.AddPath(DrawingPath{Points: []Point{{X: 500, Y: 500}, {X: 600, Y: 500}}, Tool: ToolPen})

	// a press alone does not erase
	e.PointerDown(Point{X: 100, Y: 100})
	assert.Len(t, s.Paths(), 2)

	e.PointerMove(Point{X: 195, Y: 105})
	e.PointerUp()

	paths := s.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, 500.0, paths[0].Points[0].X)
	assert.Empty(t, s.Shapes(), "eraser strokes are never committed")
}

func TestSelectToolNeverDraws(t *testing.T) {
	e, s := newTestEngine(ToolSelect)
	e.PointerDown(Point{X: 0, Y: 0})
	e.PointerMove(Point{X: 10, Y: 10})
	e.PointerUp()
	assert.Equal(t, DrawIdle, e.State())
	assert.True(t, s.IsEmpty())
}

func TestSwitchingToolsFinalizesStroke(t *testing.T) {
	e, s := newTestEngine(ToolPen)
	e.PointerDown(Point{X: 0, Y: 0})
	e.PointerMove(Point{X: 10, Y: 10})
	e.SetTool(ToolRectangle)
	assert.Len(t, s.Paths(), 1)
	assert.Equal(t, DrawIdle, e.State())
	assert.Equal(t, ToolRectangle, e.Tool())
}
