package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Task cards and connector anchors, in canvas units.
const (
	taskWidth  = 180.0
	taskHeight = 50.0
)

var (
	connectorStartOffset = Point{X: 90, Y: 25}
	connectorEndOffset   = Point{X: 0, Y: 25}
)

const connectionColor = "#5AA2F5"

func taskBounds(t CanvasTask) Rect {
	return Rect{X: t.Position.X, Y: t.Position.Y, Width: taskWidth, Height: taskHeight}
}

// ConnectorCurve returns the bezier control points for a connection, or
// false when either end is missing from tasks.
func ConnectorCurve(c Connection, tasks []CanvasTask) ([4]Point, bool) {
	var start, end *CanvasTask
	for i := range tasks {
		if tasks[i].ID == c.Start {
			start = &tasks[i]
		}
		if tasks[i].ID == c.End {
			end = &tasks[i]
		}
	}
	if start == nil || end == nil {
		return [4]Point{}, false
	}
	s := start.Position.Add(connectorStartOffset)
	e := end.Position.Add(connectorEndOffset)
	return [4]Point{s, {X: s.X + 50, Y: s.Y}, {X: e.X - 50, Y: e.Y}, e}, true
}

type cell struct {
	r     rune
	color string
	bold  bool
}

// Frame is what the renderer needs beyond the scene itself.
type Frame struct {
	Viewport     Viewport
	Zoom         float64
	PreviewPath  []Point
	PreviewShape *ShapeElement
	Popup        PopupState
	Selected     string
	CursorX      int
	CursorY      int
	ShowCursor   bool
	Plain        bool
}

type raster struct {
	cells  [][]cell
	width  int
	height int
	frame  Frame
}

func newRaster(frame Frame) *raster {
	w, h := frame.Viewport.Width, frame.Viewport.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &raster{cells: cells, width: w, height: h, frame: frame}
}

// toCell maps a canvas point to raster coordinates (row 0 = first canvas row).
func (r *raster) toCell(p Point) (int, int) {
	col, row := r.frame.Viewport.CanvasToCell(p, r.frame.Zoom)
	return col, row - r.frame.Viewport.Top
}

func (r *raster) set(x, y int, ch rune, color string) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.cells[y][x] = cell{r: ch, color: color}
}

func (r *raster) line(x0, y0, x1, y1 int, ch rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *raster) polyline(points []Point, ch rune, color string) {
	if len(points) == 1 {
		x, y := r.toCell(points[0])
		r.set(x, y, ch, color)
		return
	}
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := r.toCell(points[i])
		x1, y1 := r.toCell(points[i+1])
		r.line(x0, y0, x1, y1, ch, color)
	}
}

func (r *raster) text(x, y int, s string, color string, bold bool) {
	for _, ch := range s {
		if x >= 0 && y >= 0 && x < r.width && y < r.height {
			r.cells[y][x] = cell{r: ch, color: color, bold: bold}
		}
		x++
	}
}

func (r *raster) rectOutline(b Rect, color string, corners [4]rune, h, v rune) {
	x0, y0 := r.toCell(b.TopLeft())
	x1, y1 := r.toCell(Point{X: b.X + b.Width, Y: b.Y + b.Height})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r.boxCells(x0, y0, x1, y1, color, corners, h, v)
}

func (r *raster) shape(s ShapeElement) {
	b := s.Bounds()
	switch s.Kind {
	case ShapeCircle:
		r.polyline(EllipsePoints(b, 48), 'o', s.Color)
	default:
		r.rectOutline(b, s.Color, [4]rune{'┌', '┐', '└', '┘'}, '─', '│')
	}
}

func (r *raster) task(t CanvasTask, selected bool) {
	b := taskBounds(t)
	color := t.Task.Color.Hex()
	corners := [4]rune{'╭', '╮', '╰', '╯'}
	h, v := '─', '│'
	if selected {
		corners = [4]rune{'#', '#', '#', '#'}
		h, v = '#', '#'
	}
	x0, y0 := r.toCell(b.TopLeft())
	x1, y1 := r.toCell(Point{X: b.X + b.Width, Y: b.Y + b.Height})
	if y1 < y0+2 {
		y1 = y0 + 2
	}
	if x1 < x0+4 {
		x1 = x0 + 4
	}
	for y := y0 + 1; y < y1; y++ {
		for x := x0 + 1; x < x1; x++ {
			r.set(x, y, ' ', "")
		}
	}
	r.boxCells(x0, y0, x1, y1, color, corners, h, v)

	title := t.Task.Title
	if room := x1 - x0 - 1; len([]rune(title)) > room && room > 0 {
		title = string([]rune(title)[:room])
	}
	r.text(x0+1, y0+(y1-y0)/2, title, color, true)
}

func (r *raster) boxCells(x0, y0, x1, y1 int, color string, corners [4]rune, h, v rune) {
	for x := x0 + 1; x < x1; x++ {
		r.set(x, y0, h, color)
		r.set(x, y1, h, color)
	}
	for y := y0 + 1; y < y1; y++ {
		r.set(x0, y, v, color)
		r.set(x1, y, v, color)
	}
	r.set(x0, y0, corners[0], color)
	r.set(x1, y0, corners[1], color)
	r.set(x0, y1, corners[2], color)
	r.set(x1, y1, corners[3], color)
}

func (r *raster) popup(p PopupState, title string) {
	if !p.IsOpen {
		return
	}
	x0, y0 := r.toCell(p.Position)
	lines := []string{
		" " + title + " ",
		" Drop an image here:  ",
		" press 'f' to choose a file ",
		" Esc to close ",
	}
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	x1, y1 := x0+w+1, y0+len(lines)+1
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(x, y, ' ', "")
		}
	}
	r.boxCells(x0, y0, x1, y1, "#94A3B8", [4]rune{'┌', '┐', '└', '┘'}, '─', '│')
	for i, l := range lines {
		r.text(x0+1, y0+1+i, l, "#E2E8F0", i == 0)
	}
}

// Render draws the scene into lines for the canvas area. Connections whose
// endpoints are gone are skipped.
func (s *Scene) Render(frame Frame) []string {
	r := newRaster(frame)
	tasks := s.tasks

	var ends []Point
	for _, conn := range s.connections {
		curve, ok := ConnectorCurve(conn, tasks)
		if !ok {
			continue
		}
		r.polyline(CubicBezier(curve[0], curve[1], curve[2], curve[3], 32), '·', connectionColor)
		ends = append(ends, curve[3])
	}
	for _, p := range s.paths {
		r.polyline(p.Points, '•', p.Color)
	}
	if len(frame.PreviewPath) > 0 {
		r.polyline(frame.PreviewPath, '•', "")
	}
	for _, shape := range s.shapes {
		r.shape(shape)
	}
	if frame.PreviewShape != nil {
		r.shape(*frame.PreviewShape)
	}
	for _, t := range s.texts {
		x, y := r.toCell(t.Position)
		for i, line := range strings.Split(t.Content, "\n") {
			r.text(x, y+i, line, t.Color, false)
		}
	}
	for _, t := range tasks {
		r.task(t, t.ID == frame.Selected)
	}
	// End markers sit on the target card's left edge.
	for _, p := range ends {
		x, y := r.toCell(p)
		r.set(x, y, '●', connectionColor)
	}
	if frame.Popup.IsOpen {
		title := "Upload input"
		if t, ok := s.Task(frame.Popup.TaskID); ok {
			title = t.Task.Title
		}
		r.popup(frame.Popup, title)
	}
	return r.lines()
}

func (r *raster) lines() []string {
	out := make([]string, r.height)
	cursorRow := r.frame.CursorY - r.frame.Viewport.Top
	for y, row := range r.cells {
		var b strings.Builder
		for x, cl := range row {
			ch := string(cl.r)
			if r.frame.ShowCursor && x == r.frame.CursorX && y == cursorRow {
				if r.frame.Plain {
					b.WriteString(ch)
				} else {
					b.WriteString(lipgloss.NewStyle().Reverse(true).Render(ch))
				}
				continue
			}
			if r.frame.Plain || (cl.color == "" && !cl.bold) {
				b.WriteString(ch)
				continue
			}
			style := lipgloss.NewStyle().Bold(cl.bold)
			if cl.color != "" {
				style = style.Foreground(lipgloss.Color(cl.color))
			}
			b.WriteString(style.Render(ch))
		}
		out[y] = b.String()
	}
	return out
}
