package session

import (
	"fmt"
	"time"

	"github.com/vovakirdan/space-evasion/internal/core"
	"github.com/vovakirdan/space-evasion/internal/games/evasion"
)

// simStep advances the world one tick. On death the loop pauses itself
// and leaves the decision to Run.
func (s *Session) simStep() {
	if s.engine.Tick() != evasion.TickPlayerDied {
		return
	}
	s.dying.Store(true)
	if err := s.sim.Pause(); err != nil {
		s.logger.Warn("cannot pause simulation", "error", err)
	}
	s.signal(event{kind: eventDied, round: s.world.Round()})
}

// inputStep samples the input source and applies it to the world. A pause
// request suspends this loop until Run resumes it.
func (s *Session) inputStep() {
	in := s.opts.Input.Sample()
	switch {
	case in.Quit:
		s.signal(event{kind: eventQuit})
		return
	case in.Pause:
		if err := s.input.Pause(); err != nil {
			s.logger.Warn("cannot pause input", "error", err)
		}
		s.signal(event{kind: eventPause})
		return
	}
	s.control.Apply(in)
}

// renderStep draws a snapshot sized to the surface and presents it.
func (s *Session) renderStep() {
	cols, rows := s.opts.Surface.Size()
	s.screen.Resize(cols, rows)
	snap := s.world.Snapshot()
	evasion.Draw(s.screen, snap)
	fps := s.fps.frame(time.Now())
	if s.opts.Debug.Render {
		drawOverlay(s.screen, snap, fps)
	}
	s.opts.Surface.Present(s.screen)
}

func drawOverlay(dst *core.Screen, snap evasion.Snapshot, fps int) {
	text := fmt.Sprintf(" fps %d  tick %d  round %d  proj %d  corpses %d ",
		fps, snap.Tick, snap.Round, len(snap.Projectiles), len(snap.Corpses))
	dst.DrawText(dst.Width()-len(text), dst.Height()-1, text, core.ColorGray)
}

// fpsCounter measures frames per second over one-second windows.
type fpsCounter struct {
	start  time.Time
	frames int
	last   int
}

func (f *fpsCounter) frame(now time.Time) int {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if elapsed := now.Sub(f.start); elapsed >= time.Second {
		f.last = int(float64(f.frames) / elapsed.Seconds())
		f.frames = 0
		f.start = now
	}
	return f.last
}
