// Package loop runs a step function on its own goroutine at a fixed
// cadence, with a start/pause/resume/stop lifecycle shared by every game
// loop.
package loop

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// State is the lifecycle state of a Runner.
type State int

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

var (
	// ErrAlreadyRunning is returned by Start on a runner that is running or paused.
	ErrAlreadyRunning = errors.New("loop: already running")
	// ErrNotRunning is returned by Pause, Resume and Stop before Start.
	ErrNotRunning = errors.New("loop: not running")
)

// Runner owns one worker goroutine that calls step, then sleeps for what is
// left of the interval. A slow step shortens the sleep; ticks are never
// made up.
//
// Pause takes effect after the current step: the worker blocks until
// Resume or Stop. Stop waits for the worker to exit, so it must not be
// called from inside step.
type Runner struct {
	name     string
	interval time.Duration
	step     func()
	logger   *log.Logger

	mu      sync.Mutex
	wake    *sync.Cond
	running bool
	paused  bool
	stop    chan struct{}
	done    chan struct{}
	steps   uint64
}

// New creates a stopped runner that calls step every interval.
func New(name string, interval time.Duration, step func(), logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &Runner{
		name:     name,
		interval: interval,
		step:     step,
		logger:   logger,
	}
	r.wake = sync.NewCond(&r.mu)
	return r
}

// Name returns the name given at construction.
func (r *Runner) Name() string {
	return r.name
}

// Start launches the worker. The first step runs immediately.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("start %s: %w", r.name, ErrAlreadyRunning)
	}
	r.running = true
	r.paused = false
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go r.run(r.stop, r.done)
	r.logger.Debug("loop started", "interval", r.interval)
	return nil
}

// Pause asks the worker to suspend after its current step.
func (r *Runner) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return fmt.Errorf("pause %s: %w", r.name, ErrNotRunning)
	}
	r.paused = true
	return nil
}

// Resume clears a pending or active pause and wakes the worker.
func (r *Runner) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return fmt.Errorf("resume %s: %w", r.name, ErrNotRunning)
	}
	r.paused = false
	r.wake.Signal()
	return nil
}

// Stop ends the worker after its current step and waits for it to exit.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return fmt.Errorf("stop %s: %w", r.name, ErrNotRunning)
	}
	r.running = false
	r.paused = false
	close(r.stop)
	r.wake.Broadcast()
	done := r.done
	r.mu.Unlock()

	<-done
	r.logger.Debug("loop stopped", "steps", r.Steps())
	return nil
}

// State reports the current lifecycle state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case !r.running:
		return Stopped
	case r.paused:
		return Paused
	default:
		return Running
	}
}

// Steps returns how many steps have completed since construction.
func (r *Runner) Steps() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.steps
}

func (r *Runner) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		start := time.Now()
		r.step()
		elapsed := time.Since(start)

		r.mu.Lock()
		r.steps++
		r.mu.Unlock()

		if wait := r.interval - elapsed; wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-stop:
				timer.Stop()
				return
			}
		} else if elapsed > 2*r.interval {
			r.logger.Debug("step overran", "elapsed", elapsed, "interval", r.interval)
		}

		r.mu.Lock()
		if r.paused && !closed(stop) {
			r.logger.Debug("loop paused")
			for r.paused && !closed(stop) {
				r.wake.Wait()
			}
		}
		r.mu.Unlock()

		if closed(stop) {
			return
		}
	}
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
