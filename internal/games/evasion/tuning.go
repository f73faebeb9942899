package evasion

import (
	"math"
	"slices"

	"github.com/vovakirdan/space-evasion/internal/config"
)

type enemyTuning struct {
	w, h       float64
	health     float64
	speed      float64
	speedBase  float64
	speedScale float64
	baseDamage float64
}

type projectileTuning struct {
	w, h   float64
	speed  float64
	damage float64
}

func enemyTuningFrom(c config.EnemyConfig) enemyTuning {
	return enemyTuning{
		w:          c.Width,
		h:          c.Height,
		health:     c.Health,
		speed:      c.Speed,
		speedBase:  c.SpeedBase,
		speedScale: c.SpeedScale,
		baseDamage: c.BaseDamage,
	}
}

func projectileTuningFrom(c config.ProjectileConfig) projectileTuning {
	return projectileTuning{w: c.Width, h: c.Height, speed: c.Speed, damage: c.Damage}
}

// broadPhaseReach returns the largest centre delta on either axis at which
// two entities can still overlap: the sum of the two largest half-diagonals
// among all sprite sizes.
func broadPhaseReach(cfg config.EvasionConfig) float64 {
	halves := []float64{
		math.Hypot(cfg.Player.Width, cfg.Player.Height) / 2,
		math.Hypot(cfg.Enemy.Width, cfg.Enemy.Height) / 2,
		math.Hypot(cfg.Projectile.Width, cfg.Projectile.Height) / 2,
	}
	slices.Sort(halves)
	return halves[len(halves)-1] + halves[len(halves)-2]
}

// near is the cheap pre-filter run before the exact rectangle test.
func near(a, b Body, reach float64) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return math.Abs(ax-bx) <= reach && math.Abs(ay-by) <= reach
}
