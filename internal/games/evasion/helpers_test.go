package evasion

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/space-evasion/internal/audio"
	"github.com/vovakirdan/space-evasion/internal/config"
)

// recordingSink captures cues for assertions.
type recordingSink struct {
	mu     sync.Mutex
	cues   []audio.Cue
	alarms []bool
}

func (r *recordingSink) Play(c audio.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *recordingSink) SetAlarm(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alarms = append(r.alarms, on)
}

func (r *recordingSink) count(c audio.Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (r *recordingSink) lastAlarm() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alarms) > 0 && r.alarms[len(r.alarms)-1]
}

// quietConfig disables spawning and difficulty growth so a test controls
// every entity itself.
func quietConfig() config.EvasionConfig {
	cfg := config.DefaultEvasionConfig()
	cfg.Simulation.BaseSpawnRate = 0
	cfg.Simulation.Growth = 0
	cfg.Render.Stars = 0
	return cfg
}

func newTestEngine(cfg config.EvasionConfig, difficulty float64, seed int64) (*World, *Engine, *recordingSink) {
	w := NewWorld(cfg, difficulty, seed)
	sink := &recordingSink{}
	e := NewEngine(w, rand.New(rand.NewSource(seed)), sink, nil)
	return w, e, sink
}

func (w *World) addEnemy(x, y, difficulty float64) *Enemy {
	en := newEnemy(x, y, difficulty, enemyTuningFrom(w.cfg.Enemy))
	w.mu.Lock()
	w.enemies = append(w.enemies, en)
	w.mu.Unlock()
	return en
}

func (w *World) addProjectile(x, y, heading float64) *Projectile {
	pr := newProjectile(x, y, heading, projectileTuningFrom(w.cfg.Projectile))
	w.mu.Lock()
	w.projectiles = append(w.projectiles, pr)
	w.mu.Unlock()
	return pr
}

func (w *World) placePlayer(x, y float64) {
	w.mu.Lock()
	w.player.X, w.player.Y = x, y
	w.mu.Unlock()
}
