package evasion

import "github.com/vovakirdan/space-evasion/internal/core"

// Body is what every entity exposes: a centre position, health and an
// axis-aligned bounding box.
type Body interface {
	Position() (x, y float64)
	Health() float64
	Bounds() core.Rect
}

// Collider is a Body that reacts when it overlaps another one.
type Collider interface {
	Body
	OnCollide(other Collider)
}

// Player is the ship controlled by the input loop.
type Player struct {
	X, Y   float64
	W, H   float64
	HP     float64
	Facing Direction
}

func (p *Player) Position() (float64, float64) { return p.X, p.Y }
func (p *Player) Health() float64              { return p.HP }
func (p *Player) Bounds() core.Rect            { return core.RectAround(p.X, p.Y, p.W, p.H) }

// OnCollide does nothing; damage is applied by the enemy side of a contact.
func (p *Player) OnCollide(Collider) {}

// Enemy homes in on the player. Its difficulty is captured at spawn and
// scales both its speed and the damage it deals.
type Enemy struct {
	X, Y    float64
	W, H    float64
	HP      float64
	Heading float64

	difficulty float64
	speed      float64
	damage     float64
}

func newEnemy(x, y, difficulty float64, cfg enemyTuning) *Enemy {
	return &Enemy{
		X:          x,
		Y:          y,
		W:          cfg.w,
		H:          cfg.h,
		HP:         cfg.health,
		difficulty: difficulty,
		speed:      cfg.speed * (cfg.speedBase + cfg.speedScale*difficulty),
		damage:     cfg.baseDamage * difficulty,
	}
}

func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }
func (e *Enemy) Health() float64              { return e.HP }
func (e *Enemy) Bounds() core.Rect            { return core.RectAround(e.X, e.Y, e.W, e.H) }

// Difficulty returns the difficulty the enemy was spawned with.
func (e *Enemy) Difficulty() float64 { return e.difficulty }

// Speed returns the distance covered per tick.
func (e *Enemy) Speed() float64 { return e.speed }

// Dead reports whether the enemy is due for removal.
func (e *Enemy) Dead() bool { return e.HP < 0 }

// MoveToward turns the enemy to face (tx, ty) and advances one step.
func (e *Enemy) MoveToward(tx, ty float64) {
	e.Heading = headingTo(e.X, e.Y, tx, ty)
	dx, dy := step(e.Heading, e.speed)
	e.X += dx
	e.Y += dy
}

// OnCollide damages a player it touches.
func (e *Enemy) OnCollide(other Collider) {
	if p, ok := other.(*Player); ok {
		p.HP -= e.damage
	}
}

// Projectile flies along a fixed heading until it hits an enemy or leaves
// the playfield.
type Projectile struct {
	X, Y float64
	W, H float64

	heading float64
	speed   float64
	damage  float64
	spent   bool
}

func newProjectile(x, y, heading float64, cfg projectileTuning) *Projectile {
	return &Projectile{
		X:       x,
		Y:       y,
		W:       cfg.w,
		H:       cfg.h,
		heading: heading,
		speed:   cfg.speed,
		damage:  cfg.damage,
	}
}

func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }
func (p *Projectile) Health() float64              { return 1 }
func (p *Projectile) Bounds() core.Rect            { return core.RectAround(p.X, p.Y, p.W, p.H) }

// Heading returns the fixed direction of travel.
func (p *Projectile) Heading() float64 { return p.heading }

// Spent reports whether the projectile has already hit something.
func (p *Projectile) Spent() bool { return p.spent }

// Advance moves the projectile one tick along its heading.
func (p *Projectile) Advance() {
	dx, dy := step(p.heading, p.speed)
	p.X += dx
	p.Y += dy
}

// OnCollide deals the projectile's damage to an enemy and spends it.
func (p *Projectile) OnCollide(other Collider) {
	if e, ok := other.(*Enemy); ok && !p.spent {
		e.HP -= p.damage
		p.spent = true
	}
}

// Corpse is the fading remains of a destroyed enemy. It never collides.
type Corpse struct {
	X, Y    float64
	W, H    float64
	Heading float64
	Opacity float64
}

func newCorpse(e *Enemy) *Corpse {
	return &Corpse{X: e.X, Y: e.Y, W: e.W, H: e.H, Heading: e.Heading, Opacity: 1}
}

func (c *Corpse) Position() (float64, float64) { return c.X, c.Y }
func (c *Corpse) Health() float64              { return 0 }
func (c *Corpse) Bounds() core.Rect            { return core.RectAround(c.X, c.Y, c.W, c.H) }

// Fade lowers the opacity by amount and reports whether the corpse is
// still visible above threshold.
func (c *Corpse) Fade(amount, threshold float64) bool {
	c.Opacity -= amount
	return c.Opacity >= threshold
}
