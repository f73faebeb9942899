package evasion

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-evasion/internal/audio"
)

// TickResult tells the loop driving the engine what happened.
type TickResult int

const (
	// TickAdvanced means the world moved forward one tick.
	TickAdvanced TickResult = iota
	// TickPlayerDied means the player's health dropped below zero. Nothing
	// moved; the caller decides between Reset and ending the session.
	TickPlayerDied
)

// Engine advances a World one fixed tick at a time.
type Engine struct {
	world  *World
	rng    *rand.Rand
	sink   audio.Sink
	logger *log.Logger

	maxEnemies    int
	baseRate      float64
	growth        float64
	exclusion     float64
	spawnAttempts int
	scoreBonus    int
	corpseFade    float64
	corpseMin     float64
	reach         float64
	scale         float64 // effective difficulty per unit of enemy difficulty
	enemy         enemyTuning
}

// NewEngine creates an engine for w. rng drives every random decision, so
// a fixed seed gives a reproducible run.
func NewEngine(w *World, rng *rand.Rand, sink audio.Sink, logger *log.Logger) *Engine {
	if sink == nil {
		sink = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := w.cfg
	scale := cfg.Difficulty.EffectiveScale
	if scale <= 0 {
		scale = 1
	}
	return &Engine{
		world:         w,
		rng:           rng,
		sink:          sink,
		logger:        logger,
		maxEnemies:    cfg.Simulation.MaxEnemies,
		baseRate:      cfg.Simulation.BaseSpawnRate,
		growth:        cfg.Simulation.Growth,
		exclusion:     cfg.Simulation.SpawnExclusion,
		spawnAttempts: max(cfg.Simulation.SpawnAttempts, 1),
		scoreBonus:    cfg.Enemy.ScoreBonus,
		corpseFade:    cfg.Corpse.Fade,
		corpseMin:     cfg.Corpse.Threshold,
		reach:         broadPhaseReach(cfg),
		scale:         scale,
		enemy:         enemyTuningFrom(cfg.Enemy),
	}
}

// Tick runs one simulation step: loss check, spawn, enemies, projectiles,
// corpse decay, then difficulty growth. Audio cues are emitted after the
// world lock is released.
func (e *Engine) Tick() TickResult {
	w := e.world
	w.mu.Lock()

	if w.player.HP < 0 {
		w.player.HP = 0
		score := w.score
		w.alarm = false
		w.mu.Unlock()
		e.sink.SetAlarm(false)
		e.logger.Info("player destroyed", "score", score, "round", w.Round())
		return TickPlayerDied
	}

	w.tick++
	e.spawn()
	destroyed, contact := e.updateEnemies()
	e.updateProjectiles()
	e.decayCorpses()
	w.difficulty *= 1 + e.growth
	w.alarm = contact
	w.mu.Unlock()

	for range destroyed {
		e.sink.Play(audio.CueEnemyDestroyed)
	}
	e.sink.SetAlarm(contact)
	return TickAdvanced
}

// spawn runs one Bernoulli trial with p = baseRate * difficulty. The new
// enemy is frozen at the unscaled difficulty, so effective_scale only
// affects how often enemies appear.
func (e *Engine) spawn() {
	w := e.world
	if len(w.enemies) >= e.maxEnemies {
		return
	}
	if e.rng.Float64() >= e.baseRate*w.difficulty {
		return
	}
	x, y := e.spawnPoint(w.player.X, w.player.Y)
	w.enemies = append(w.enemies, newEnemy(x, y, w.difficulty/e.scale, e.enemy))
	e.logger.Debug("enemy spawned", "x", x, "y", y, "difficulty", w.difficulty, "live", len(w.enemies))
}

// updateEnemies converts dead enemies to corpses and moves the rest toward
// the player, applying contact damage.
func (e *Engine) updateEnemies() (destroyed int, contact bool) {
	w := e.world
	p := w.player
	live := w.enemies[:0]
	for _, en := range w.enemies {
		if en.Dead() {
			w.corpses = append(w.corpses, newCorpse(en))
			w.score += e.scoreBonus
			destroyed++
			continue
		}
		en.MoveToward(p.X, p.Y)
		if near(en, p, e.reach) && en.Bounds().Intersects(p.Bounds()) {
			en.OnCollide(p)
			contact = true
		}
		live = append(live, en)
	}
	clear(w.enemies[len(live):])
	w.enemies = live
	return destroyed, contact
}

// updateProjectiles moves every projectile and resolves its first hit.
func (e *Engine) updateProjectiles() {
	w := e.world
	kept := w.projectiles[:0]
	for _, pr := range w.projectiles {
		pr.Advance()
		for _, en := range w.enemies {
			if en.Dead() || !near(pr, en, e.reach) {
				continue
			}
			if pr.Bounds().Intersects(en.Bounds()) {
				pr.OnCollide(en)
				break
			}
		}
		if pr.Spent() || !w.field.Contains(pr.X, pr.Y) {
			continue
		}
		kept = append(kept, pr)
	}
	clear(w.projectiles[len(kept):])
	w.projectiles = kept
}

func (e *Engine) decayCorpses() {
	w := e.world
	kept := w.corpses[:0]
	for _, c := range w.corpses {
		if c.Fade(e.corpseFade, e.corpseMin) {
			kept = append(kept, c)
		}
	}
	clear(w.corpses[len(kept):])
	w.corpses = kept
}
