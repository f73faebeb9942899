// Package audio carries the fire-and-forget cue contract used by the game
// loops and a synthesized implementation backed by beep.
package audio

// Cue names a one-shot sound.
type Cue string

const (
	CueEnemyDestroyed  Cue = "enemy_destroyed"
	CueProjectileFired Cue = "projectile_fired"
)

// Sink accepts cues from the simulation and input loops. Implementations
// must not block the caller.
type Sink interface {
	// Play triggers a one-shot cue.
	Play(cue Cue)
	// SetAlarm asserts or deasserts the leveled proximity alarm.
	SetAlarm(on bool)
}

// Music is the background track control driven by the audio loop.
type Music interface {
	PlayMusic(track int)
	StopMusic()
}

// Nop is a silent Sink and Music.
type Nop struct{}

func (Nop) Play(Cue)      {}
func (Nop) SetAlarm(bool) {}
func (Nop) PlayMusic(int) {}
func (Nop) StopMusic()    {}
