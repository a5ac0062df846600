package main

// Tool is the active interaction mode.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolPen       Tool = "pen"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolText      Tool = "text"
	ToolEraser    Tool = "eraser"
)

var allTools = []Tool{ToolSelect, ToolPen, ToolRectangle, ToolCircle, ToolText, ToolEraser}

func (t Tool) drawing() bool {
	return t != ToolSelect && t != ""
}

const (
	defaultFontSize    = 16.0
	defaultStrokeColor = "#000000"
	defaultStrokeWidth = 2.0
	eraserTolerance    = 10.0
)

type DrawState int

const (
	DrawIdle DrawState = iota
	DrawActive
	// DrawAwaitingText means a text tool press is waiting for the host to
	// collect the content.
	DrawAwaitingText
)

// DrawingEngine turns pointer sequences into annotations on a Scene, one
// annotation at a time. All points it receives are in canvas space.
type DrawingEngine struct {
	scene *Scene
	tool  Tool
	color string
	width float64

	state   DrawState
	path    []Point
	shape   *ShapeElement
	textPos Point
}

func NewDrawingEngine(scene *Scene) *DrawingEngine {
	return &DrawingEngine{
		scene: scene,
		tool:  ToolSelect,
		color: defaultStrokeColor,
		width: defaultStrokeWidth,
	}
}

func (e *DrawingEngine) Tool() Tool { return e.tool }

func (e *DrawingEngine) State() DrawState { return e.state }

func (e *DrawingEngine) Color() string { return e.color }

func (e *DrawingEngine) StrokeWidth() float64 { return e.width }

// SetTool switches tools. An in-flight annotation is finalized first.
func (e *DrawingEngine) SetTool(t Tool) {
	if e.state == DrawActive {
		e.PointerUp()
	}
	if e.state == DrawAwaitingText {
		e.CancelText()
	}
	e.tool = t
}

func (e *DrawingEngine) SetColor(c string) {
	if c != "" {
		e.color = c
	}
}

func (e *DrawingEngine) SetStrokeWidth(w float64) {
	if w > 0 {
		e.width = w
	}
}

// PointerDown starts an annotation for the active tool. The select tool
// never leaves Idle.
func (e *DrawingEngine) PointerDown(p Point) {
	if !e.tool.drawing() || e.state != DrawIdle {
		return
	}
	switch e.tool {
	case ToolPen, ToolEraser:
		e.path = []Point{p}
		e.state = DrawActive
	case ToolRectangle, ToolCircle:
		kind := ShapeRectangle
		if e.tool == ToolCircle {
			kind = ShapeCircle
		}
		e.shape = &ShapeElement{
			Kind:   kind,
			StartX: p.X,
			StartY: p.Y,
			EndX:   p.X,
			EndY:   p.Y,
			Color:  e.color,
			Width:  e.width,
		}
		e.state = DrawActive
	case ToolText:
		e.textPos = p
		e.state = DrawAwaitingText
	}
}

func (e *DrawingEngine) PointerMove(p Point) {
	if e.state != DrawActive {
		return
	}
	switch e.tool {
	case ToolPen:
		e.path = append(e.path, p)
	case ToolEraser:
		e.path = append(e.path, p)
		e.scene.ErasePathsNear(p, eraserTolerance)
	case ToolRectangle, ToolCircle:
		if e.shape != nil {
			e.shape.EndX = p.X
			e.shape.EndY = p.Y
		}
	}
}

// PointerUp commits the annotation in progress and returns to Idle. Pen
// strokes need at least two points; zero-size shapes are dropped.
func (e *DrawingEngine) PointerUp() {
	if e.state != DrawActive {
		return
	}
	switch e.tool {
	case ToolPen:
		if len(e.path) >= 2 {
			e.scene.AddPath(DrawingPath{Points: e.path, Tool: ToolPen, Color: e.color, Width: e.width})
		}
	case ToolRectangle, ToolCircle:
		if e.shape != nil && !e.shape.Degenerate() {
			e.scene.AddShape(*e.shape)
		}
	}
	e.path = nil
	e.shape = nil
	e.state = DrawIdle
}

// PointerLeave behaves exactly like PointerUp.
func (e *DrawingEngine) PointerLeave() {
	e.PointerUp()
}

// PendingText returns where a text annotation is waiting for content.
func (e *DrawingEngine) PendingText() (Point, bool) {
	return e.textPos, e.state == DrawAwaitingText
}

// SubmitText completes a text tool press. Empty content adds nothing.
func (e *DrawingEngine) SubmitText(content string) bool {
	if e.state != DrawAwaitingText {
		return false
	}
	e.state = DrawIdle
	if content == "" {
		return false
	}
	e.scene.AddText(TextElement{Position: e.textPos, Content: content, FontSize: defaultFontSize, Color: e.color})
	return true
}

func (e *DrawingEngine) CancelText() {
	if e.state == DrawAwaitingText {
		e.state = DrawIdle
	}
}

// CurrentPath is the pen stroke being drawn, for previews.
func (e *DrawingEngine) CurrentPath() []Point {
	if e.tool != ToolPen || e.state != DrawActive {
		return nil
	}
	return append([]Point(nil), e.path...)
}

// CurrentShape is the shape being dragged, for previews.
func (e *DrawingEngine) CurrentShape() (ShapeElement, bool) {
	if e.shape == nil || e.state != DrawActive {
		return ShapeElement{}, false
	}
	return *e.shape, true
}
