package evasion

import (
	"github.com/vovakirdan/space-evasion/internal/audio"
	"github.com/vovakirdan/space-evasion/internal/core"
)

// Control applies sampled input intents to the world: player movement with
// the playfield boundary policy, facing, and firing.
type Control struct {
	world      *World
	sink       audio.Sink
	step       float64
	diagonal   float64
	cooldown   int
	sinceFire  int
	projectile projectileTuning
}

// NewControl creates the input-to-world bridge for w.
func NewControl(w *World, sink audio.Sink) *Control {
	if sink == nil {
		sink = audio.Nop{}
	}
	cfg := w.cfg
	return &Control{
		world:      w,
		sink:       sink,
		step:       cfg.Player.Step,
		diagonal:   cfg.Player.DiagonalStep,
		cooldown:   cfg.Player.FireCooldownTicks,
		sinceFire:  cfg.Player.FireCooldownTicks,
		projectile: projectileTuningFrom(cfg.Projectile),
	}
}

// Apply moves the player one input cycle and fires if requested. It
// reports whether a projectile was launched.
func (c *Control) Apply(in core.Intents) bool {
	w := c.world
	w.mu.Lock()
	c.move(w.player, in)
	fired := false
	c.sinceFire++
	if in.Fire && c.sinceFire > c.cooldown {
		p := w.player
		w.projectiles = append(w.projectiles, newProjectile(p.X, p.Y, p.Facing.Heading(), c.projectile))
		c.sinceFire = 0
		fired = true
	}
	w.mu.Unlock()

	if fired {
		c.sink.Play(audio.CueProjectileFired)
	}
	return fired
}

// move implements the boundary policy. An axis is blocked when moving along
// it would push the player's box out of the playfield. Diagonals become a
// single orthogonal step along the free axis when the other is blocked, and
// a blocked axis snaps the player flush against that edge.
func (c *Control) move(p *Player, in core.Intents) {
	dx, dy := in.Axis()
	if d, ok := DirectionFromAxis(dx, dy); ok {
		p.Facing = d
	}
	if dx == 0 && dy == 0 {
		return
	}

	field := c.world.field
	minX, maxX := field.X+p.W/2, field.Right()-p.W/2
	minY, maxY := field.Y+p.H/2, field.Bottom()-p.H/2

	blockedX := (dx < 0 && p.X-c.step < minX) || (dx > 0 && p.X+c.step > maxX)
	blockedY := (dy < 0 && p.Y-c.step < minY) || (dy > 0 && p.Y+c.step > maxY)

	switch {
	case dx != 0 && dy != 0 && !blockedX && !blockedY:
		p.X += float64(dx) * c.diagonal
		p.Y += float64(dy) * c.diagonal
	case dx != 0 && !blockedX:
		p.X += float64(dx) * c.step
	case dy != 0 && !blockedY:
		p.Y += float64(dy) * c.step
	}

	if blockedX {
		p.X = edge(dx, minX, maxX)
	}
	if blockedY {
		p.Y = edge(dy, minY, maxY)
	}
	p.X = core.ClampF(p.X, minX, maxX)
	p.Y = core.ClampF(p.Y, minY, maxY)
}

func edge(dir int, lo, hi float64) float64 {
	if dir < 0 {
		return lo
	}
	return hi
}
