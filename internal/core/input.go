package core

// Intents is the input state sampled once per input cycle. Directions are
// held states; Fire, Pause and Quit are momentary and consumed by sampling.
type Intents struct {
	Up, Down, Left, Right bool
	Fire                  bool
	Pause                 bool
	Quit                  bool
}

// Axis returns the movement direction as unit steps on each axis, with
// opposite directions cancelling out. Positive y points down the screen.
func (in Intents) Axis() (dx, dy int) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// Moving reports whether any net movement is requested.
func (in Intents) Moving() bool {
	dx, dy := in.Axis()
	return dx != 0 || dy != 0
}
