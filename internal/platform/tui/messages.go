// Package tui hosts a game session inside a Bubble Tea program: it shows
// the frames the render loop produces, feeds key presses to the input loop
// and asks the player the session's questions.
package tui

import "github.com/vovakirdan/space-evasion/internal/core"

// frameMsg carries one rendered frame to the program.
type frameMsg string

// promptMsg opens a yes/no question. The answer is sent on reply.
type promptMsg struct {
	title    string
	question string
	onQuit   bool // answer given when the player presses quit
	reply    chan<- bool
}

// sessionDoneMsg tells the program the session has ended.
type sessionDoneMsg struct{}

// clampSize keeps a terminal size usable by the renderer.
func clampSize(cols, rows int) (int, int) {
	return core.Clamp(cols, 1, 1<<12), core.Clamp(rows, 1, 1<<12)
}
