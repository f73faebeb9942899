// Package session runs one game: it builds the world and owns the
// simulation, input, render and audio loops, and turns player death and
// pause requests into prompts for the human at the keyboard.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-evasion/internal/audio"
	"github.com/vovakirdan/space-evasion/internal/config"
	"github.com/vovakirdan/space-evasion/internal/core"
	"github.com/vovakirdan/space-evasion/internal/games/evasion"
	"github.com/vovakirdan/space-evasion/internal/loop"
	"github.com/vovakirdan/space-evasion/internal/storage"
)

// Prompter asks the player a yes/no question. Both calls block until the
// player answers or ctx is done.
type Prompter interface {
	PlayAgain(ctx context.Context, score int) (bool, error)
	ConfirmQuit(ctx context.Context) (bool, error)
}

// InputSource reports the player's intents once per input cycle.
type InputSource interface {
	Sample() core.Intents
}

// Surface shows rendered frames. Present must not keep frame after it
// returns; the render loop reuses the buffer.
type Surface interface {
	Size() (cols, rows int)
	Present(frame *core.Screen)
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Debug enables per-loop debug logging and the render overlay.
type Debug struct {
	Logic, Input, Render, Audio bool
}

// Options configures a session.
type Options struct {
	Config   config.EvasionConfig
	Preset   config.DifficultyPreset
	Seed     int64 // 0 picks a time-based seed
	Input    InputSource
	Surface  Surface
	Prompter Prompter
	Sink     audio.Sink  // nil means silent
	Music    audio.Music // nil means silent
	Runs     RunRecorder // nil disables run history
	Logger   *log.Logger
	Debug    Debug
}

type eventKind int

const (
	eventDied eventKind = iota
	eventPause
	eventQuit
)

type event struct {
	kind  eventKind
	round int
}

// Session is one running game.
type Session struct {
	opts    Options
	rt      core.RuntimeConfig
	logger  *log.Logger
	world   *evasion.World
	engine  *evasion.Engine
	control *evasion.Control
	jukebox *audio.Jukebox

	sim, input, render, music *loop.Runner

	screen   *core.Screen
	fps      fpsCounter
	events   chan event
	recorded int // last round saved to the run history

	// dying is set by the simulation loop when the player dies and cleared
	// once a new round starts. While set, nothing but a reset resumes sim.
	dying atomic.Bool
}

// New validates opts and builds the world and the four loops. Nothing runs
// until Run.
func New(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if opts.Input == nil || opts.Surface == nil || opts.Prompter == nil {
		return nil, errors.New("session: input, surface and prompter are required")
	}
	if opts.Preset == "" {
		opts.Preset = config.DifficultyEasy
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Music == nil {
		opts.Music = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	rt := opts.Config.Runtime(opts.Preset, opts.Seed)
	s := &Session{
		opts:   opts,
		rt:     rt,
		logger: opts.Logger.WithPrefix("session"),
		screen: core.NewScreen(0, 0),
		events: make(chan event, 4),
	}
	s.world = evasion.NewWorld(opts.Config, rt.Difficulty, rt.Seed)
	s.engine = evasion.NewEngine(s.world, rand.New(rand.NewSource(rt.Seed)), opts.Sink, loopLogger(opts.Logger, "sim", opts.Debug.Logic))
	s.control = evasion.NewControl(s.world, opts.Sink)

	audioLog := loopLogger(opts.Logger, "audio", opts.Debug.Audio)
	s.jukebox = audio.NewJukebox(opts.Music, time.Duration(opts.Config.Audio.SongSeconds)*time.Second, audioLog)

	s.sim = loop.New("sim", core.Interval(rt.TickRate), s.simStep, loopLogger(opts.Logger, "sim", opts.Debug.Logic))
	s.input = loop.New("input", core.Interval(rt.InputRate), s.inputStep, loopLogger(opts.Logger, "input", opts.Debug.Input))
	s.render = loop.New("render", core.Interval(rt.FrameRate), s.renderStep, loopLogger(opts.Logger, "render", opts.Debug.Render))
	s.music = loop.New("audio", time.Second, s.jukebox.Step, audioLog)
	return s, nil
}

func loopLogger(base *log.Logger, name string, debug bool) *log.Logger {
	l := base.WithPrefix(name)
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// World returns the session's world.
func (s *Session) World() *evasion.World {
	return s.world
}

// Runtime returns the resolved session parameters.
func (s *Session) Runtime() core.RuntimeConfig {
	return s.rt
}

// Run starts every loop and blocks until the player quits, declines to
// play again, or ctx is cancelled. All loops are stopped on return.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session starting",
		"difficulty", s.opts.Preset, "initial", s.rt.Difficulty,
		"playfield", fmt.Sprintf("%gx%g", s.rt.Width, s.rt.Height), "seed", s.rt.Seed)

	runners := []*loop.Runner{s.render, s.sim, s.input}
	if s.opts.Config.Audio.Enabled {
		runners = append(runners, s.music)
	}
	for _, r := range runners {
		if err := r.Start(); err != nil {
			s.stopAll()
			return fmt.Errorf("session: %w", err)
		}
	}
	defer s.stopAll()

	for {
		select {
		case <-ctx.Done():
			s.recordRun("cancelled")
			return nil
		case ev := <-s.events:
			switch ev.kind {
			case eventQuit:
				s.recordRun("quit")
				return nil
			case eventDied:
				if ev.round != s.world.Round() {
					continue
				}
				again, err := s.handleDeath(ctx)
				if err != nil || !again {
					return err
				}
			case eventPause:
				quit, err := s.handlePause(ctx)
				if err != nil {
					return err
				}
				if quit {
					s.recordRun("quit")
					return nil
				}
			}
		}
	}
}

// handleDeath holds the game, records the run and asks whether to go
// again. The simulation loop has already paused itself, but a pause prompt
// answered in between may have woken it, so it is held again here.
func (s *Session) handleDeath(ctx context.Context) (bool, error) {
	s.hold(s.sim, s.input, s.music)
	snap := s.recordRun("died")

	again, err := s.opts.Prompter.PlayAgain(ctx, snap.Score)
	if err != nil {
		return false, promptErr(ctx, err)
	}
	if !again {
		s.logger.Info("player left after death", "score", snap.Score)
		return false, nil
	}

	s.world.Reset()
	s.dying.Store(false)
	s.logger.Info("new round", "round", s.world.Round())
	s.release(s.sim, s.input, s.music)
	return true, nil
}

// handlePause holds the game while the player decides whether to quit.
// The input loop has already paused itself. If the player died while the
// prompt was open, the simulation stays paused for the queued death event.
func (s *Session) handlePause(ctx context.Context) (bool, error) {
	s.hold(s.sim, s.music)
	quit, err := s.opts.Prompter.ConfirmQuit(ctx)
	if err != nil {
		return false, promptErr(ctx, err)
	}
	if quit {
		return true, nil
	}
	if s.dying.Load() {
		s.release(s.input, s.music)
		return false, nil
	}
	s.release(s.sim, s.input, s.music)
	return false, nil
}

// promptErr treats a prompt abandoned by cancellation as a normal exit.
func promptErr(ctx context.Context, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return fmt.Errorf("session: prompt: %w", err)
}

func (s *Session) hold(runners ...*loop.Runner) {
	for _, r := range runners {
		if err := r.Pause(); err != nil && !errors.Is(err, loop.ErrNotRunning) {
			s.logger.Warn("cannot pause loop", "loop", r.Name(), "error", err)
		}
		if r == s.music {
			s.jukebox.Hold()
		}
	}
	s.opts.Sink.SetAlarm(false)
}

func (s *Session) release(runners ...*loop.Runner) {
	for _, r := range runners {
		if r == s.music {
			s.jukebox.Release()
		}
		if err := r.Resume(); err != nil && !errors.Is(err, loop.ErrNotRunning) {
			s.logger.Warn("cannot resume loop", "loop", r.Name(), "error", err)
		}
	}
}

func (s *Session) stopAll() {
	for _, r := range []*loop.Runner{s.input, s.sim, s.music, s.render} {
		if err := r.Stop(); err != nil && !errors.Is(err, loop.ErrNotRunning) {
			s.logger.Warn("cannot stop loop", "loop", r.Name(), "error", err)
		}
	}
	s.opts.Sink.SetAlarm(false)
	s.opts.Music.StopMusic()
}

// recordRun saves the current round to the run history, once per round.
func (s *Session) recordRun(reason string) evasion.Snapshot {
	snap := s.world.Snapshot()
	s.logger.Info("round over", "reason", reason, "score", snap.Score, "ticks", snap.Tick, "difficulty", snap.Difficulty)
	if s.opts.Runs == nil || snap.Tick == 0 || snap.Round == s.recorded {
		return snap
	}
	s.recorded = snap.Round
	_, err := s.opts.Runs.SaveRun(storage.Run{
		Difficulty:     string(s.opts.Preset),
		Score:          snap.Score,
		Ticks:          snap.Tick,
		PeakDifficulty: snap.Difficulty,
	})
	if err != nil {
		s.logger.Warn("cannot save run", "error", err)
	}
	return snap
}

// signal queues an event for Run without blocking a loop.
func (s *Session) signal(ev event) {
	select {
	case s.events <- ev:
	default:
	}
}
