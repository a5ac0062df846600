package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasPointSubtractsOriginAndDividesByZoom(t *testing.T) {
	origin := Rect{X: 100, Y: 50, Width: 800, Height: 600}
	device := Point{X: 300, Y: 200}

	assert.Equal(t, Point{X: 200, Y: 150}, CanvasPoint(device, origin, 1))
	assert.Equal(t, Point{X: 100, Y: 75}, CanvasPoint(device, origin, 2))
	assert.Equal(t, Point{X: 400, Y: 300}, CanvasPoint(device, origin, 0.5))
}

func TestDevicePointInvertsCanvasPoint(t *testing.T) {
	origin := Rect{X: -40, Y: 16, Width: 640, Height: 320}
	for _, zoom := range []float64{0.5, 1, 1.5, 2} {
		device := Point{X: 256, Y: 96}
		back := DevicePoint(CanvasPoint(device, origin, zoom), origin, zoom)
		assert.InDelta(t, device.X, back.X, 1e-9)
		assert.InDelta(t, device.Y, back.Y, 1e-9)
	}
}

func TestViewportOriginIncludesPan(t *testing.T) {
	vp := Viewport{Top: 1, Width: 80, Height: 20}
	assert.Equal(t, Rect{X: 0, Y: 16, Width: 640, Height: 320}, vp.Origin())
	assert.Equal(t, Point{X: 80, Y: 0}, vp.CellToCanvas(10, 1, 1))

	vp.PanX = 5
	assert.Equal(t, Point{X: 120, Y: 0}, vp.CellToCanvas(10, 1, 1))

	col, row := vp.CanvasToCell(Point{X: 120, Y: 0}, 1)
	assert.Equal(t, 10, col)
	assert.Equal(t, 1, row)
}

func TestViewportContainsCell(t *testing.T) {
	vp := Viewport{Top: 1, Width: 80, Height: 20}
	assert.False(t, vp.ContainsCell(0, 0), "toolbar row")
	assert.True(t, vp.ContainsCell(0, 1))
	assert.True(t, vp.ContainsCell(79, 20))
	assert.False(t, vp.ContainsCell(80, 1))
	assert.False(t, vp.ContainsCell(0, 21))
}
