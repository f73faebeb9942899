package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Jukebox rotates the background track on a fixed period. Step is driven by
// the audio loop while Hold may come from the session goroutine.
type Jukebox struct {
	mu      sync.Mutex
	music   Music
	period  time.Duration
	now     func() time.Time
	logger  *log.Logger
	track   int
	started time.Time
	playing bool
	held    bool
}

// NewJukebox creates a jukebox that switches tracks every period.
func NewJukebox(music Music, period time.Duration, logger *log.Logger) *Jukebox {
	if period <= 0 {
		period = time.Minute
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Jukebox{music: music, period: period, now: time.Now, logger: logger}
}

// Step starts music if it is silent and advances to the next track once the
// current one has played for a full period.
func (j *Jukebox) Step() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.held {
		return
	}
	now := j.now()
	switch {
	case !j.playing:
		j.music.PlayMusic(j.track)
		j.started = now
		j.playing = true
		j.logger.Debug("music started", "track", j.track)
	case now.Sub(j.started) >= j.period:
		j.track++
		j.music.PlayMusic(j.track)
		j.started = now
		j.logger.Debug("music switched", "track", j.track)
	}
}

// Hold silences the music until Release. Steps in between do nothing.
func (j *Jukebox) Hold() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.held = true
	if !j.playing {
		return
	}
	j.music.StopMusic()
	j.playing = false
}

// Release lets the next Step restart the current track.
func (j *Jukebox) Release() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.held = false
}

// Track returns the index of the current track.
func (j *Jukebox) Track() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.track
}
