package evasion

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/core"
)

func TestWorldReset(t *testing.T) {
	cfg := config.DefaultEvasionConfig()
	w, e, _ := newTestEngine(cfg, 2.2, 1)
	player := w.player
	w.addEnemy(10, 10, 1)
	w.addProjectile(600, 600, 0)
	w.addEnemy(800, 100, 1).HP = -1
	for range 5 {
		e.Tick()
	}

	w.Reset()
	snap := w.Snapshot()
	if len(snap.Enemies)+len(snap.Projectiles)+len(snap.Corpses) != 0 {
		t.Errorf("Reset() left entities: %d enemies, %d projectiles, %d corpses",
			len(snap.Enemies), len(snap.Projectiles), len(snap.Corpses))
	}
	if snap.Player.X != 512 || snap.Player.Y != 384 || snap.Player.HP != 1000 {
		t.Errorf("player after Reset() = %+v", snap.Player)
	}
	if snap.Score != 0 || snap.Difficulty != 2.2 || snap.Tick != 0 {
		t.Errorf("Reset() score=%d difficulty=%v tick=%d", snap.Score, snap.Difficulty, snap.Tick)
	}
	if w.player != player {
		t.Error("Reset() must keep the single player instance")
	}
	if snap.Round != 2 {
		t.Errorf("Round = %d, expected 2", snap.Round)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w, _, _ := newTestEngine(quietConfig(), 1.1, 1)
	en := w.addEnemy(100, 100, 1)

	snap := w.Snapshot()
	snap.Enemies[0].X = 999
	snap.Player.HP = -50

	if en.X != 100 {
		t.Error("mutating a snapshot changed the live enemy")
	}
	if w.Snapshot().Player.HP != 1000 {
		t.Error("mutating a snapshot changed the live player")
	}
}

// TestConcurrentLoops exercises the sharing model under -race: one
// goroutine ticks, one applies input, one reads snapshots.
func TestConcurrentLoops(t *testing.T) {
	cfg := config.DefaultEvasionConfig()
	cfg.Simulation.BaseSpawnRate = 0.2
	cfg.Player.FireCooldownTicks = 0
	w, e, _ := newTestEngine(cfg, 2, 3)
	c := NewControl(w, nil)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for range 500 {
			if e.Tick() == TickPlayerDied {
				w.Reset()
			}
		}
	}()
	go func() {
		defer wg.Done()
		rng := rand.New(rand.NewSource(4))
		for range 500 {
			c.Apply(core.Intents{Up: rng.Intn(2) == 0, Right: rng.Intn(2) == 0, Fire: true})
		}
	}()
	go func() {
		defer wg.Done()
		screen := core.NewScreen(80, 24)
		for range 200 {
			Draw(screen, w.Snapshot())
		}
	}()
	wg.Wait()

	snap := w.Snapshot()
	for _, pr := range snap.Projectiles {
		if pr.Spent() {
			t.Error("spent projectile survived a tick")
		}
	}
}
