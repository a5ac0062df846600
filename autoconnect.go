package main

import "math"

const defaultConnectThreshold = 200.0

// FindParent picks the task a newly placed task at pos should hang off.
// Candidates must sit strictly above pos and within threshold horizontally;
// the one with the smallest vertical gap wins and ties keep list order.
func FindParent(pos Point, existing []CanvasTask, threshold float64) (string, bool) {
	if threshold <= 0 {
		threshold = defaultConnectThreshold
	}
	bestID := ""
	bestDist := math.Inf(1)
	for _, t := range existing {
		if t.Position.Y >= pos.Y {
			continue
		}
		if math.Abs(t.Position.X-pos.X) >= threshold {
			continue
		}
		if d := pos.Y - t.Position.Y; d < bestDist {
			bestDist = d
			bestID = t.ID
		}
	}
	return bestID, bestID != ""
}
