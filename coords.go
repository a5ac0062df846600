package main

import "math"

// Terminal cells are mapped to device units so the canvas math can stay in
// floating point. These match the PNG export's glyph cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// CanvasPoint maps a device point into canvas space:
// (device - origin.topLeft) / zoom.
func CanvasPoint(device Point, origin Rect, zoom float64) Point {
	if zoom <= 0 {
		zoom = 1
	}
	return device.Sub(origin.TopLeft()).Scale(1 / zoom)
}

// DevicePoint is the inverse of CanvasPoint.
func DevicePoint(canvas Point, origin Rect, zoom float64) Point {
	if zoom <= 0 {
		zoom = 1
	}
	return canvas.Scale(zoom).Add(origin.TopLeft())
}

// cellToDevice converts a terminal cell to the device point at its top-left.
func cellToDevice(col, row int) Point {
	return Point{X: float64(col) * cellWidth, Y: float64(row) * cellHeight}
}

// deviceToCell converts a device point to the terminal cell containing it.
func deviceToCell(p Point) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// Viewport describes where the canvas sits on the terminal. Top is the first
// screen row of the canvas; the pan offset is in cells.
type Viewport struct {
	Top    int
	Width  int
	Height int
	PanX   int
	PanY   int
}

// Origin returns the device rectangle of the canvas with the pan applied, so
// that CanvasPoint needs no knowledge of panning.
func (v Viewport) Origin() Rect {
	return Rect{
		X:      -float64(v.PanX) * cellWidth,
		Y:      float64(v.Top-v.PanY) * cellHeight,
		Width:  float64(v.Width) * cellWidth,
		Height: float64(v.Height) * cellHeight,
	}
}

// ContainsCell reports whether the screen cell is part of the canvas area.
func (v Viewport) ContainsCell(col, row int) bool {
	return col >= 0 && col < v.Width && row >= v.Top && row < v.Top+v.Height
}

// CellToCanvas maps a screen cell to canvas space at the given zoom.
func (v Viewport) CellToCanvas(col, row int, zoom float64) Point {
	return CanvasPoint(cellToDevice(col, row), v.Origin(), zoom)
}

// CanvasToCell maps a canvas point to the screen cell it renders in.
func (v Viewport) CanvasToCell(p Point, zoom float64) (int, int) {
	return deviceToCell(DevicePoint(p, v.Origin(), zoom))
}
