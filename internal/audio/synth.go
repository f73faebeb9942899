package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-evasion/internal/config"
)

// Synth plays synthesized cues and background music through the system
// speaker. Every method is safe before Initialize and after Close; calls
// made while the speaker is unavailable are dropped.
type Synth struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	soundVolume float64
	musicVolume float64
	logger      *log.Logger

	mixer       *beep.Mixer
	alarm       *beep.Ctrl
	music       *beep.Ctrl
	initialized bool
	cues        int64
}

// NewSynth creates a synthesizer for the given settings. It does not touch
// the audio device until Initialize.
func NewSynth(cfg config.AudioConfig, logger *log.Logger) *Synth {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synth{
		sr:          beep.SampleRate(rate),
		soundVolume: cfg.SoundVolume,
		musicVolume: cfg.MusicVolume,
		logger:      logger,
		mixer:       &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Calling it twice is a
// no-op.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sr, s.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	s.logger.Debug("speaker ready", "sample_rate", int(s.sr))
	return nil
}

// Close silences everything and detaches the mixer.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.alarm = nil
	s.music = nil
	s.initialized = false
}

// Play triggers a one-shot cue.
func (s *Synth) Play(cue Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	var streamer beep.Streamer
	switch cue {
	case CueEnemyDestroyed:
		s.cues++
		streamer = beep.Take(s.sr.N(400*time.Millisecond), newExplosionGenerator(s.sr, s.cues))
	case CueProjectileFired:
		streamer = beep.Take(s.sr.N(120*time.Millisecond), newLaserGenerator(s.sr))
	default:
		s.logger.Warn("unknown cue", "cue", cue)
		return
	}
	s.add(volume(streamer, s.soundVolume))
}

// SetAlarm starts the looping alarm when on and pauses it otherwise.
// Repeated calls with the same level do nothing.
func (s *Synth) SetAlarm(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if s.alarm == nil {
		if !on {
			return
		}
		s.alarm = &beep.Ctrl{Streamer: volume(newAlarmGenerator(s.sr), s.soundVolume)}
		s.add(s.alarm)
		return
	}
	speaker.Lock()
	s.alarm.Paused = !on
	speaker.Unlock()
}

// PlayMusic replaces the background track.
func (s *Synth) PlayMusic(track int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
		s.music.Streamer = nil
	}
	speaker.Unlock()
	s.music = &beep.Ctrl{Streamer: volume(newDroneGenerator(s.sr, track), s.musicVolume)}
	s.add(s.music)
}

// StopMusic silences the background track.
func (s *Synth) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
}

func (s *Synth) add(streamer beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// volume scales a streamer linearly in [0,1].
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0.01 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}
