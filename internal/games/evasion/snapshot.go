package evasion

import "github.com/vovakirdan/space-evasion/internal/core"

// Snapshot is a detached copy of the world for drawing. Slices are owned
// by the snapshot, so the world can change while it is being read.
type Snapshot struct {
	Tick          uint64
	Round         int
	Width, Height float64
	Player        Player
	Enemies       []Enemy
	Projectiles   []Projectile
	Corpses       []Corpse
	Stars         []Star
	Background    core.Color
	Score         int
	Difficulty    float64
	Alarm         bool
}

// Snapshot copies the world under a read lock.
func (w *World) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	s := Snapshot{
		Tick:        w.tick,
		Round:       w.round,
		Width:       w.field.W,
		Height:      w.field.H,
		Player:      *w.player,
		Enemies:     make([]Enemy, len(w.enemies)),
		Projectiles: make([]Projectile, len(w.projectiles)),
		Corpses:     make([]Corpse, len(w.corpses)),
		Stars:       w.stars, // never written after NewWorld
		Background:  core.ColorDarkGray,
		Score:       w.score,
		Difficulty:  w.difficulty,
		Alarm:       w.alarm,
	}
	for i, e := range w.enemies {
		s.Enemies[i] = *e
	}
	for i, p := range w.projectiles {
		s.Projectiles[i] = *p
	}
	for i, c := range w.corpses {
		s.Corpses[i] = *c
	}
	return s
}

// DisplayHealth is the player's health as shown on the HUD.
func (s Snapshot) DisplayHealth() int {
	return int(s.Player.HP / 10)
}
