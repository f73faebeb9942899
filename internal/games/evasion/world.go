package evasion

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/core"
)

// World is the shared game state. The engine changes enemy and corpse
// membership and prunes projectiles; Control moves the player and adds
// projectiles; renderers read copies through Snapshot. Every access goes
// through mu.
type World struct {
	mu sync.RWMutex

	cfg               config.EvasionConfig
	field             core.Rect
	initialDifficulty float64

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	corpses     []*Corpse
	stars       []Star

	score      int
	difficulty float64
	alarm      bool
	tick       uint64
	round      int
}

// Star is a fixed background point in world units.
type Star struct {
	X, Y   float64
	Bright bool
}

// NewWorld creates the world for one session and resets it. The seed only
// places the background stars.
func NewWorld(cfg config.EvasionConfig, difficulty float64, seed int64) *World {
	w := &World{
		cfg:               cfg,
		field:             core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height),
		initialDifficulty: difficulty,
		player:            &Player{W: cfg.Player.Width, H: cfg.Player.Height},
	}
	rng := rand.New(rand.NewSource(seed))
	w.stars = make([]Star, cfg.Render.Stars)
	for i := range w.stars {
		w.stars[i] = Star{
			X:      rng.Float64() * w.field.W,
			Y:      rng.Float64() * w.field.H,
			Bright: rng.Intn(5) == 0,
		}
	}
	w.Reset()
	return w
}

// Reset clears every collection and re-centres the player at full health.
// The player instance is kept so a session only ever has one.
func (w *World) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	cx, cy := w.field.Center()
	*w.player = Player{
		X:      cx,
		Y:      cy,
		W:      w.cfg.Player.Width,
		H:      w.cfg.Player.Height,
		HP:     w.cfg.Player.Health,
		Facing: DirN,
	}
	clear(w.enemies)
	w.enemies = w.enemies[:0]
	clear(w.projectiles)
	w.projectiles = w.projectiles[:0]
	clear(w.corpses)
	w.corpses = w.corpses[:0]
	w.score = 0
	w.difficulty = w.initialDifficulty
	w.alarm = false
	w.tick = 0
	w.round++
}

// Playfield returns the world rectangle.
func (w *World) Playfield() core.Rect {
	return w.field
}

// Score returns the current score.
func (w *World) Score() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.score
}

// Difficulty returns the current global difficulty.
func (w *World) Difficulty() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.difficulty
}

// Round returns how many times the world has been reset, starting at 1.
func (w *World) Round() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.round
}
