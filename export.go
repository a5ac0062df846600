package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const exportPadding = 40.0

// bounds returns the canvas-space box holding every entity.
func (s *Scene) bounds() (Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, t := range s.tasks {
		b := taskBounds(t)
		grow(b.TopLeft())
		grow(Point{X: b.X + b.Width, Y: b.Y + b.Height})
	}
	for _, p := range s.paths {
		for _, pt := range p.Points {
			grow(pt)
		}
	}
	for _, sh := range s.shapes {
		grow(Point{X: sh.StartX, Y: sh.StartY})
		grow(Point{X: sh.EndX, Y: sh.EndY})
	}
	for _, t := range s.texts {
		grow(t.Position)
		longest := 0
		lines := strings.Split(t.Content, "\n")
		for _, l := range lines {
			if n := len([]rune(l)); n > longest {
				longest = n
			}
		}
		grow(Point{X: t.Position.X + float64(longest)*t.FontSize*0.6, Y: t.Position.Y + float64(len(lines))*t.FontSize})
	}
	if math.IsInf(minX, 1) {
		return Rect{}, false
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}, true
}

func parseHexColor(hex string, fallback color.Color) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var r, g, b uint8
	if len(hex) != 6 {
		return fallback
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ExportToPNG draws the whole scene at zoom 1 into filename.
func (s *Scene) ExportToPNG(filename string) error {
	b, ok := s.bounds()
	if !ok {
		return fmt.Errorf("nothing to export")
	}
	origin := Point{X: b.X - exportPadding, Y: b.Y - exportPadding}
	width := int(math.Ceil(b.Width + 2*exportPadding))
	height := int(math.Ceil(b.Height + 2*exportPadding))

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	faces := make(map[float64]font.Face)
	faceFor := func(size float64) font.Face {
		if f, ok := faces[size]; ok {
			return f
		}
		f := truetype.NewFace(ttfFont, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
		faces[size] = f
		return f
	}

	at := func(p Point) (float64, float64) {
		return p.X - origin.X, p.Y - origin.Y
	}

	// Connections first so cards sit on top of them.
	for _, conn := range s.connections {
		curve, ok := ConnectorCurve(conn, s.tasks)
		if !ok {
			continue
		}
		drawConnectionPNG(dc, curve, at)
	}
	for _, p := range s.paths {
		drawPathPNG(dc, p, at)
	}
	for _, sh := range s.shapes {
		drawShapePNG(dc, sh, at)
	}
	for _, t := range s.texts {
		dc.SetFontFace(faceFor(t.FontSize))
		dc.SetColor(parseHexColor(t.Color, color.Black))
		x, y := at(t.Position)
		for i, line := range strings.Split(t.Content, "\n") {
			dc.DrawString(line, x, y+t.FontSize*float64(i+1))
		}
	}
	dc.SetFontFace(faceFor(12))
	for _, t := range s.tasks {
		drawTaskPNG(dc, t, at)
	}

	return dc.SavePNG(filename)
}

func drawConnectionPNG(dc *gg.Context, curve [4]Point, at func(Point) (float64, float64)) {
	x0, y0 := at(curve[0])
	x1, y1 := at(curve[1])
	x2, y2 := at(curve[2])
	x3, y3 := at(curve[3])
	dc.SetColor(color.RGBA{R: 90, G: 162, B: 245, A: 153})
	dc.SetLineWidth(2)
	dc.MoveTo(x0, y0)
	dc.CubicTo(x1, y1, x2, y2, x3, y3)
	dc.Stroke()
	dc.SetColor(color.RGBA{R: 90, G: 162, B: 245, A: 230})
	dc.DrawCircle(x3, y3, 3)
	dc.Fill()
}

func drawPathPNG(dc *gg.Context, p DrawingPath, at func(Point) (float64, float64)) {
	if len(p.Points) < 2 {
		return
	}
	dc.SetColor(parseHexColor(p.Color, color.Black))
	dc.SetLineWidth(p.Width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	x, y := at(p.Points[0])
	dc.MoveTo(x, y)
	for _, pt := range p.Points[1:] {
		x, y = at(pt)
		dc.LineTo(x, y)
	}
	dc.Stroke()
}

func drawShapePNG(dc *gg.Context, sh ShapeElement, at func(Point) (float64, float64)) {
	b := sh.Bounds()
	x, y := at(b.TopLeft())
	dc.SetColor(parseHexColor(sh.Color, color.Black))
	dc.SetLineWidth(sh.Width)
	switch sh.Kind {
	case ShapeCircle:
		dc.DrawEllipse(x+b.Width/2, y+b.Height/2, b.Width/2, b.Height/2)
	default:
		dc.DrawRectangle(x, y, b.Width, b.Height)
	}
	dc.Stroke()
}

func drawTaskPNG(dc *gg.Context, t CanvasTask, at func(Point) (float64, float64)) {
	b := taskBounds(t)
	x, y := at(b.TopLeft())
	accent := parseHexColor(t.Task.Color.Hex(), color.Black)

	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(x, y, b.Width, b.Height, 8)
	dc.Fill()
	dc.SetColor(accent)
	dc.SetLineWidth(1.5)
	dc.DrawRoundedRectangle(x, y, b.Width, b.Height, 8)
	dc.Stroke()
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(t.Task.Title, x+b.Width/2, y+b.Height/2, 0.5, 0.5)
}

// ExportVisualTXT writes the plain terminal rendering of the current view.
func (s *Scene) ExportVisualTXT(filename string, vp Viewport) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	vp.Top = 0
	if vp.Width < 1 {
		vp.Width = 80
	}
	if vp.Height < 1 {
		vp.Height = 24
	}
	for _, line := range s.Render(Frame{Viewport: vp, Zoom: s.Zoom(), Plain: true}) {
		fmt.Fprintln(file, strings.TrimRight(line, " "))
	}
	return nil
}
