package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindParent(t *testing.T) {
	existing := []CanvasTask{
		{ID: "a", Position: Point{X: 100, Y: 100}},
		{ID: "b", Position: Point{X: 150, Y: 200}},
		{ID: "c", Position: Point{X: 900, Y: 250}},
	}

	tests := []struct {
		name   string
		pos    Point
		want   string
		wantOK bool
	}{
		{"nearest above wins", Point{X: 120, Y: 300}, "b", true},
		{"only strictly above", Point{X: 100, Y: 100}, "", false},
		{"same row is not above", Point{X: 150, Y: 200}, "a", true},
		{"outside horizontal band", Point{X: 1500, Y: 300}, "", false},
		{"band edge is exclusive", Point{X: 300, Y: 150}, "", false},
		{"far task in its own band", Point{X: 950, Y: 400}, "c", true},
		{"nothing above", Point{X: 100, Y: 50}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindParent(tt.pos, existing, 200)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindParentTieKeepsListOrder(t *testing.T) {
	existing := []CanvasTask{
		{ID: "first", Position: Point{X: 0, Y: 100}},
		{ID: "second", Position: Point{X: 50, Y: 100}},
	}
	got, ok := FindParent(Point{X: 25, Y: 200}, existing, 200)
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestFindParentDefaultsThreshold(t *testing.T) {
	existing := []CanvasTask{{ID: "a", Position: Point{X: 0, Y: 0}}}
	got, ok := FindParent(Point{X: 150, Y: 100}, existing, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", got)
}
