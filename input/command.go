// Package input translates terminal key events into per-frame flight
// commands. Terminals deliver key presses, not key state, so held keys are
// synthesized with a short repeat-decay window.
package input

// Command is the player's intent for one simulation frame
type Command struct {
	Thrust      bool
	Reverse     bool
	TurnLeft    bool
	TurnRight   bool
	StrafeLeft  bool
	StrafeRight bool
	Fire        bool
	Ability     bool
	Quit        bool
}

// Turn returns the signed turn direction: -1 left, +1 right, 0 neither
func (c Command) Turn() float64 {
	switch {
	case c.TurnLeft && !c.TurnRight:
		return -1
	case c.TurnRight && !c.TurnLeft:
		return 1
	}
	return 0
}

// Strafe returns the signed lateral direction: -1 left, +1 right
func (c Command) Strafe() float64 {
	switch {
	case c.StrafeLeft && !c.StrafeRight:
		return -1
	case c.StrafeRight && !c.StrafeLeft:
		return 1
	}
	return 0
}
