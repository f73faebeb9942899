package evasion

import (
	"math"

	"github.com/vovakirdan/space-evasion/internal/core"
)

// excluded reports whether (x, y) falls inside the no-spawn box around the
// player.
func excluded(x, y, px, py, exclusion float64) bool {
	return math.Abs(x-px) < exclusion && math.Abs(y-py) < exclusion
}

// spawnPoint draws uniform positions over the playfield until one lies
// outside the exclusion box, for at most attempts draws. If every draw is
// rejected it falls back to the nearest point on the box boundary.
func (e *Engine) spawnPoint(px, py float64) (float64, float64) {
	field := e.world.field
	var x, y float64
	for i := 0; i < e.spawnAttempts; i++ {
		x = e.rng.Float64() * field.W
		y = e.rng.Float64() * field.H
		if !excluded(x, y, px, py, e.exclusion) {
			return x, y
		}
	}
	e.logger.Debug("spawn sampling exhausted, using fallback", "attempts", e.spawnAttempts)
	return spawnFallback(field, px, py, e.exclusion, x, y)
}

// spawnFallback pushes the rejected point (x, y) out of the exclusion box
// along whichever axis needs the shortest move while staying inside the
// playfield. When the box covers the whole playfield, the corner farthest
// from the player is used.
func spawnFallback(field core.Rect, px, py, exclusion, x, y float64) (float64, float64) {
	candidates := [][2]float64{
		{px - exclusion, y},
		{px + exclusion, y},
		{x, py - exclusion},
		{x, py + exclusion},
	}
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		if !field.Contains(c[0], c[1]) || excluded(c[0], c[1], px, py, exclusion) {
			continue
		}
		if d := math.Hypot(c[0]-x, c[1]-y); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return candidates[best][0], candidates[best][1]
	}

	maxX := math.Nextafter(field.Right(), field.X)
	maxY := math.Nextafter(field.Bottom(), field.Y)
	corners := [][2]float64{{field.X, field.Y}, {maxX, field.Y}, {field.X, maxY}, {maxX, maxY}}
	far, farDist := corners[0], -1.0
	for _, c := range corners {
		if d := math.Hypot(c[0]-px, c[1]-py); d > farDist {
			far, farDist = c, d
		}
	}
	return far[0], far[1]
}
