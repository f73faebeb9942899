package evasion

import "math"

// Direction is one of the eight compass facings of the player.
type Direction int

const (
	DirS Direction = iota
	DirSE
	DirE
	DirNE
	DirN
	DirNW
	DirW
	DirSW
)

// Heading returns the angle used for motion. A heading θ moves by
// (sin θ, cos θ), so 0 points down the screen and π/2 to the right.
func (d Direction) Heading() float64 {
	return float64(d) * math.Pi / 4
}

// Glyph returns the arrow drawn for the facing.
func (d Direction) Glyph() rune {
	switch d {
	case DirS:
		return '▼'
	case DirSE:
		return '◢'
	case DirE:
		return '▶'
	case DirNE:
		return '◥'
	case DirN:
		return '▲'
	case DirNW:
		return '◤'
	case DirW:
		return '◀'
	case DirSW:
		return '◣'
	default:
		return '●'
	}
}

// DirectionFromAxis maps unit axis steps to a facing. ok is false when there
// is no movement.
func DirectionFromAxis(dx, dy int) (d Direction, ok bool) {
	switch {
	case dx == 0 && dy > 0:
		return DirS, true
	case dx > 0 && dy > 0:
		return DirSE, true
	case dx > 0 && dy == 0:
		return DirE, true
	case dx > 0 && dy < 0:
		return DirNE, true
	case dx == 0 && dy < 0:
		return DirN, true
	case dx < 0 && dy < 0:
		return DirNW, true
	case dx < 0 && dy == 0:
		return DirW, true
	case dx < 0 && dy > 0:
		return DirSW, true
	}
	return DirN, false
}

// step returns the displacement of moving dist along heading.
func step(heading, dist float64) (dx, dy float64) {
	return math.Sin(heading) * dist, math.Cos(heading) * dist
}

// headingTo returns the heading from (x, y) toward (tx, ty).
func headingTo(x, y, tx, ty float64) float64 {
	return math.Atan2(tx-x, ty-y)
}
