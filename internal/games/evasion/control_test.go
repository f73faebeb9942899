package evasion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-evasion/internal/audio"
	"github.com/vovakirdan/space-evasion/internal/core"
)

func newTestControl() (*World, *Control, *recordingSink) {
	w := NewWorld(quietConfig(), 1.1, 1)
	sink := &recordingSink{}
	return w, NewControl(w, sink), sink
}

func TestControlMovement(t *testing.T) {
	tests := []struct {
		name   string
		in     core.Intents
		dx, dy float64
		facing Direction
	}{
		{"up", core.Intents{Up: true}, 0, -5, DirN},
		{"down", core.Intents{Down: true}, 0, 5, DirS},
		{"left", core.Intents{Left: true}, -5, 0, DirW},
		{"right", core.Intents{Right: true}, 5, 0, DirE},
		{"up right is one diagonal step", core.Intents{Up: true, Right: true}, 3, -3, DirNE},
		{"down left is one diagonal step", core.Intents{Down: true, Left: true}, -3, 3, DirSW},
		{"opposites cancel", core.Intents{Left: true, Right: true}, 0, 0, DirN},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, c, _ := newTestControl()
			x0, y0 := w.player.X, w.player.Y
			c.Apply(tc.in)
			p := w.Snapshot().Player
			if p.X-x0 != tc.dx || p.Y-y0 != tc.dy {
				t.Errorf("moved (%v, %v), expected (%v, %v)", p.X-x0, p.Y-y0, tc.dx, tc.dy)
			}
			if p.Facing != tc.facing {
				t.Errorf("facing = %v, expected %v", p.Facing, tc.facing)
			}
		})
	}
}

func TestControlBoundaryPolicy(t *testing.T) {
	// With a 64x64 ship the centre is confined to [32, 992] x [32, 736].
	tests := []struct {
		name         string
		x, y         float64
		in           core.Intents
		wantX, wantY float64
	}{
		{"left edge band snaps flush", 34, 300, core.Intents{Left: true}, 32, 300},
		{"right edge band snaps flush", 990, 300, core.Intents{Right: true}, 992, 300},
		{"at top edge up does nothing", 400, 32, core.Intents{Up: true}, 400, 32},
		{"top edge turns up-left into left", 400, 33, core.Intents{Up: true, Left: true}, 395, 32},
		{"left edge turns down-left into down", 33, 300, core.Intents{Down: true, Left: true}, 32, 305},
		{"top-left corner suppresses both", 33, 33, core.Intents{Up: true, Left: true}, 32, 32},
		{"bottom-right corner suppresses both", 991, 735, core.Intents{Down: true, Right: true}, 992, 736},
		{"bottom-right corner allows moving away", 991, 735, core.Intents{Up: true, Left: true}, 988, 732},
		{"along bottom edge", 500, 736, core.Intents{Down: true, Right: true}, 505, 736},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, c, _ := newTestControl()
			w.placePlayer(tc.x, tc.y)
			c.Apply(tc.in)
			p := w.Snapshot().Player
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("player at (%v, %v), expected (%v, %v)", p.X, p.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestControlNeverLeavesPlayfield(t *testing.T) {
	w, c, _ := newTestControl()
	rng := rand.New(rand.NewSource(11))
	field := w.Playfield()

	for i := range 20000 {
		in := core.Intents{
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(3) == 0,
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(3) == 0,
		}
		c.Apply(in)
		b := w.Snapshot().Player.Bounds()
		if b.X < field.X || b.Y < field.Y || b.Right() > field.Right() || b.Bottom() > field.Bottom() {
			t.Fatalf("step %d: player bounds %+v left the playfield", i, b)
		}
	}
}

func TestControlFire(t *testing.T) {
	w, c, sink := newTestControl()
	c.Apply(core.Intents{Right: true})

	if !c.Apply(core.Intents{Fire: true}) {
		t.Fatal("first fire should launch a projectile")
	}
	if c.Apply(core.Intents{Fire: true}) {
		t.Error("fire during cooldown should be ignored")
	}

	snap := w.Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(snap.Projectiles))
	}
	pr := snap.Projectiles[0]
	if pr.X != snap.Player.X || pr.Y != snap.Player.Y {
		t.Errorf("projectile at (%v, %v), expected player centre", pr.X, pr.Y)
	}
	if math.Abs(pr.Heading()-math.Pi/2) > eps {
		t.Errorf("projectile heading = %v, expected east (π/2)", pr.Heading())
	}
	if sink.count(audio.CueProjectileFired) != 1 {
		t.Error("expected one fired cue")
	}

	// The cooldown is counted in input cycles.
	for range 12 {
		c.Apply(core.Intents{})
	}
	if !c.Apply(core.Intents{Fire: true}) {
		t.Error("fire should be available again after the cooldown")
	}
}

func TestDirectionHeadings(t *testing.T) {
	for d := DirS; d <= DirSW; d++ {
		dx, dy := step(d.Heading(), 1)
		ax, ay := 0, 0
		if dx > 0.5 {
			ax = 1
		} else if dx < -0.5 {
			ax = -1
		}
		if dy > 0.5 {
			ay = 1
		} else if dy < -0.5 {
			ay = -1
		}
		got, ok := DirectionFromAxis(ax, ay)
		if !ok || got != d {
			t.Errorf("direction %d heads (%v, %v), which maps back to %d", d, dx, dy, got)
		}
	}
}
