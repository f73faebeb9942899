package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-evasion/internal/core"
)

// keyHoldDuration is how long a movement or fire key counts as held after
// its last press. Terminals only report presses and auto-repeats, never
// releases.
const keyHoldDuration = 150 * time.Millisecond

// KeyMap defines the in-game and prompt key bindings.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Pause key.Binding
	Quit  key.Binding
	Yes   key.Binding
	No    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Pause, k.Quit},
		{k.Yes, k.No},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "no"),
		),
	}
}

// KeyTracker turns key presses into sampled intents. Movement and fire stay
// held for keyHoldDuration after each press; pause and quit are delivered
// to exactly one Sample.
type KeyTracker struct {
	keys KeyMap
	hold time.Duration
	now  func() time.Time

	mu                    sync.Mutex
	up, down, left, right time.Time
	fire                  time.Time
	pause, quit           bool
}

// NewKeyTracker creates a tracker for the given bindings.
func NewKeyTracker(keys KeyMap) *KeyTracker {
	return &KeyTracker{keys: keys, hold: keyHoldDuration, now: time.Now}
}

// Press records a key message. It reports whether the key is bound.
func (t *KeyTracker) Press(msg tea.KeyMsg) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	switch {
	case key.Matches(msg, t.keys.Up):
		t.up = now
	case key.Matches(msg, t.keys.Down):
		t.down = now
	case key.Matches(msg, t.keys.Left):
		t.left = now
	case key.Matches(msg, t.keys.Right):
		t.right = now
	case key.Matches(msg, t.keys.Fire):
		t.fire = now
	case key.Matches(msg, t.keys.Pause):
		t.pause = true
	case key.Matches(msg, t.keys.Quit):
		t.quit = true
	default:
		return false
	}
	return true
}

// Sample returns the current intents and consumes pause and quit.
func (t *KeyTracker) Sample() core.Intents {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	held := func(at time.Time) bool { return !at.IsZero() && now.Sub(at) < t.hold }
	in := core.Intents{
		Up:    held(t.up),
		Down:  held(t.down),
		Left:  held(t.left),
		Right: held(t.right),
		Fire:  held(t.fire),
		Pause: t.pause,
		Quit:  t.quit,
	}
	t.pause, t.quit = false, false
	return in
}

// Release forgets every held key, so nothing carries over a prompt.
func (t *KeyTracker) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.up, t.down, t.left, t.right, t.fire = time.Time{}, time.Time{}, time.Time{}, time.Time{}, time.Time{}
	t.pause, t.quit = false, false
}
