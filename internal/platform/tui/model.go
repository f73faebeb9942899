package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-evasion/internal/core"
)

// Terminal runs a Bubble Tea program for one session. It implements the
// session's Surface and Prompter; Keys is the session's input source.
type Terminal struct {
	keyMap  KeyMap
	keys    *KeyTracker
	program *tea.Program

	mu         sync.Mutex
	cols, rows int
}

// NewTerminal creates a terminal sized cols by rows until the program
// reports the real window size.
func NewTerminal(cols, rows int) *Terminal {
	t := &Terminal{keyMap: DefaultKeyMap()}
	t.keys = NewKeyTracker(t.keyMap)
	t.cols, t.rows = clampSize(cols, rows)
	t.program = tea.NewProgram(newModel(t), tea.WithAltScreen())
	return t
}

// Keys returns the key tracker fed by this terminal.
func (t *Terminal) Keys() *KeyTracker {
	return t.keys
}

// Size returns the frame size: the window minus the help line.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cols, max(t.rows-1, 1)
}

func (t *Terminal) resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = clampSize(cols, rows)
}

// Present sends a frame to the program. It returns once the program has
// taken the frame or has exited.
func (t *Terminal) Present(frame *core.Screen) {
	t.program.Send(frameMsg(RenderScreen(frame)))
}

// PlayAgain asks whether to start a new round after a death.
func (t *Terminal) PlayAgain(ctx context.Context, score int) (bool, error) {
	return t.ask(ctx, promptMsg{
		title:    fmt.Sprintf("GAME OVER  ·  SCORE %d", score),
		question: "Play again? [y/n]",
		onQuit:   false,
	})
}

// ConfirmQuit asks whether to leave a paused game.
func (t *Terminal) ConfirmQuit(ctx context.Context) (bool, error) {
	return t.ask(ctx, promptMsg{
		title:    "PAUSED",
		question: "Quit the game? [y/n]",
		onQuit:   true,
	})
}

func (t *Terminal) ask(ctx context.Context, p promptMsg) (bool, error) {
	reply := make(chan bool, 1)
	p.reply = reply
	t.keys.Release()
	t.program.Send(p)
	select {
	case answer := <-reply:
		t.keys.Release()
		return answer, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Run starts the program and calls play with a context that is cancelled
// when the program exits. The program exits when play returns.
func (t *Terminal) Run(ctx context.Context, play func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		err := play(ctx)
		t.program.Send(sessionDoneMsg{})
		done <- err
	}()

	_, err := t.program.Run()
	cancel()
	playErr := <-done
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return playErr
}

// model is the Bubble Tea model behind a Terminal.
type model struct {
	term   *Terminal
	keys   KeyMap
	help   help.Model
	frame  string
	prompt *promptMsg
	width  int
	height int
}

func newModel(t *Terminal) model {
	h := help.New()
	h.ShowAll = false
	return model{term: t, keys: t.keyMap, help: h, width: t.cols, height: t.rows}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.term.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame = string(msg)
		return m, nil

	case promptMsg:
		m.prompt = &msg
		return m, nil

	case sessionDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

// handleKey answers an open prompt or records the key for the input loop.
func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.prompt == nil {
		m.term.keys.Press(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Yes):
		m.answer(true)
	case key.Matches(msg, m.keys.No):
		m.answer(false)
	case key.Matches(msg, m.keys.Quit):
		m.answer(m.prompt.onQuit)
	default:
		return m, nil
	}
	m.prompt = nil
	return m, nil
}

func (m model) answer(v bool) {
	select {
	case m.prompt.reply <- v:
	default:
	}
}

var (
	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 4).
			Align(lipgloss.Center)
	promptTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the latest frame, or the open prompt, above the help line.
func (m model) View() string {
	body := m.frame
	if m.prompt != nil {
		box := promptBoxStyle.Render(
			promptTitleStyle.Render(m.prompt.title) + "\n\n" + m.prompt.question,
		)
		body = lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, box)
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}
