package evasion

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-evasion/internal/core"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// viewport maps world units onto screen cells.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	rows := dst.Height() - HUDRows
	return viewport{
		top: HUDRows,
		sx:  float64(dst.Width()) / s.Width,
		sy:  float64(rows) / s.Height,
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), v.top + int(math.Floor(y*v.sy))
}

// box returns the cell rectangle covering r, at least one cell in size.
func (v viewport) box(r core.Rect) (x, y, w, h int) {
	x0, y0 := v.point(r.X, r.Y)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := v.top + int(math.Ceil(r.Bottom()*v.sy))
	return x0, y0, max(x1-x0, 1), max(y1-y0, 1)
}

// Draw renders s into dst: a HUD line on top and the playfield scaled to
// the remaining cells. Entities are painted back to front.
func Draw(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() < 1 || dst.Height() <= HUDRows || s.Width <= 0 || s.Height <= 0 {
		return
	}
	v := newViewport(dst, s)

	for _, st := range s.Stars {
		x, y := v.point(st.X, st.Y)
		if st.Bright {
			dst.SetColor(x, y, '+', core.ColorWhite)
		} else {
			dst.SetColor(x, y, '.', s.Background)
		}
	}

	for _, c := range s.Corpses {
		x, y, w, h := v.box(c.Bounds())
		glyph, color := corpseLook(c.Opacity)
		dst.FillBox(x, y, w, h, glyph, color)
	}

	for _, e := range s.Enemies {
		x, y, w, h := v.box(e.Bounds())
		dst.FillBox(x, y, w, h, '▓', core.ColorRed)
		cx, cy := v.point(e.X, e.Y)
		dst.SetColor(cx, cy, enemyGlyph(e.Heading), core.ColorBrightRed)
	}

	for _, p := range s.Projectiles {
		x, y := v.point(p.X, p.Y)
		dst.SetColor(x, y, '•', core.ColorBrightYellow)
	}

	pl := s.Player
	x, y, w, h := v.box(pl.Bounds())
	color := core.ColorBrightCyan
	if s.Alarm {
		color = core.ColorBrightMagenta
	}
	dst.FillBox(x, y, w, h, '█', core.ColorCyan)
	cx, cy := v.point(pl.X, pl.Y)
	dst.SetColor(cx, cy, pl.Facing.Glyph(), color)

	drawHUD(dst, s)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.FillBox(0, 0, dst.Width(), HUDRows, ' ', core.ColorDefault)
	hpColor := core.ColorBrightGreen
	switch hp := s.DisplayHealth(); {
	case hp < 25:
		hpColor = core.ColorBrightRed
	case hp < 50:
		hpColor = core.ColorBrightYellow
	}
	label := fmt.Sprintf("HP %3d", s.DisplayHealth())
	dst.DrawText(1, 0, label, hpColor)
	rest := fmt.Sprintf("  SCORE %6d  DIFFICULTY %5.2f  ENEMIES %3d", s.Score, s.Difficulty, len(s.Enemies))
	dst.DrawText(1+len(label), 0, rest, core.ColorWhite)
	if s.Alarm {
		dst.DrawText(dst.Width()-8, 0, "CONTACT", core.ColorBrightRed)
	}
}

func corpseLook(opacity float64) (rune, core.Color) {
	switch {
	case opacity > 0.66:
		return '▒', core.ColorOrange
	case opacity > 0.33:
		return '░', core.ColorYellow
	default:
		return '·', core.ColorGray
	}
}

// enemyGlyph snaps a heading to the nearest of the eight facings.
func enemyGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return Direction(octant).Glyph()
}
