package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-evasion/internal/core"
)

func testModel() (model, *Terminal) {
	term := NewTerminal(40, 12)
	return newModel(term), term
}

func TestTerminalSizeLeavesHelpLine(t *testing.T) {
	_, term := testModel()
	cols, rows := term.Size()
	if cols != 40 || rows != 11 {
		t.Errorf("Size() = %dx%d, expected 40x11", cols, rows)
	}

	m, _ := testModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(model)
	cols, rows = m.term.Size()
	if cols != 100 || rows != 29 {
		t.Errorf("Size() after resize = %dx%d, expected 100x29", cols, rows)
	}
}

func TestModelShowsFrames(t *testing.T) {
	m, _ := testModel()
	next, _ := m.Update(frameMsg("HELLO"))
	view := next.(model).View()
	if !strings.HasPrefix(view, "HELLO\n") {
		t.Errorf("View() should start with the frame, got %q", view)
	}
}

func TestModelAnswersPrompt(t *testing.T) {
	tests := []struct {
		name   string
		key    tea.KeyMsg
		onQuit bool
		want   bool
	}{
		{"y", runeKey('y'), false, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, false, true},
		{"n", runeKey('n'), true, false},
		{"quit during play again", runeKey('q'), false, false},
		{"quit during pause", runeKey('q'), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := testModel()
			reply := make(chan bool, 1)
			next, _ := m.Update(promptMsg{title: "T", question: "Q?", onQuit: tt.onQuit, reply: reply})
			m = next.(model)
			if !strings.Contains(m.View(), "Q?") {
				t.Fatal("View() should show the open prompt")
			}

			next, _ = m.Update(tt.key)
			m = next.(model)
			select {
			case got := <-reply:
				if got != tt.want {
					t.Errorf("answer = %v, expected %v", got, tt.want)
				}
			default:
				t.Fatal("no answer sent")
			}
			if m.prompt != nil {
				t.Error("prompt should close after an answer")
			}
		})
	}
}

func TestModelIgnoresOtherKeysDuringPrompt(t *testing.T) {
	m, term := testModel()
	reply := make(chan bool, 1)
	next, _ := m.Update(promptMsg{reply: reply})
	next, _ = next.(model).Update(runeKey('d'))
	if next.(model).prompt == nil {
		t.Error("unbound key should leave the prompt open")
	}
	if term.Keys().Sample().Right {
		t.Error("keys pressed during a prompt should not reach the game")
	}
}

func TestModelFeedsKeyTracker(t *testing.T) {
	m, term := testModel()
	m.Update(runeKey('d'))
	if !term.Keys().Sample().Right {
		t.Error("key press should reach the tracker")
	}
}

func TestModelQuitsWhenSessionEnds(t *testing.T) {
	m, _ := testModel()
	_, cmd := m.Update(sessionDoneMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, 'A')
	s.Set(3, 1, 'B')
	if got := RenderScreen(s); got != "A   \n   B" {
		t.Errorf("RenderScreen() = %q", got)
	}
}
