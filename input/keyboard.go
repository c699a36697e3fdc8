package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actThrust action = iota
	actReverse
	actTurnLeft
	actTurnRight
	actStrafeLeft
	actStrafeRight
	actFire
	actAbility
	actionCount
)

// Keyboard synthesizes held-key state from tcell key events. A key counts
// as held until its auto-repeat stops arriving within the hold window.
type Keyboard struct {
	holdWindow time.Duration
	deadline   [actionCount]time.Time
	quit       bool
}

// NewKeyboard uses a hold window long enough to bridge typical terminal
// auto-repeat gaps
func NewKeyboard() *Keyboard {
	return &Keyboard{holdWindow: 150 * time.Millisecond}
}

// HandleEvent folds one tcell event into the held state
func (k *Keyboard) HandleEvent(ev tcell.Event, now time.Time) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyUp:
		k.press(actThrust, now)
		return
	case tcell.KeyDown:
		k.press(actReverse, now)
		return
	case tcell.KeyLeft:
		k.press(actTurnLeft, now)
		return
	case tcell.KeyRight:
		k.press(actTurnRight, now)
		return
	}

	switch key.Rune() {
	case 'w', 'W':
		k.press(actThrust, now)
	case 's', 'S':
		k.press(actReverse, now)
	case 'a', 'A':
		k.press(actTurnLeft, now)
	case 'd', 'D':
		k.press(actTurnRight, now)
	case 'q', 'Q':
		k.press(actStrafeLeft, now)
	case 'e', 'E':
		k.press(actStrafeRight, now)
	case ' ':
		k.press(actFire, now)
	case 'b', 'B':
		k.press(actAbility, now)
	}
}

func (k *Keyboard) press(a action, now time.Time) {
	k.deadline[a] = now.Add(k.holdWindow)
}

func (k *Keyboard) held(a action, now time.Time) bool {
	return now.Before(k.deadline[a])
}

// Command snapshots the held state as this frame's flight command
func (k *Keyboard) Command(now time.Time) Command {
	return Command{
		Thrust:      k.held(actThrust, now),
		Reverse:     k.held(actReverse, now),
		TurnLeft:    k.held(actTurnLeft, now),
		TurnRight:   k.held(actTurnRight, now),
		StrafeLeft:  k.held(actStrafeLeft, now),
		StrafeRight: k.held(actStrafeRight, now),
		Fire:        k.held(actFire, now),
		Ability:     k.held(actAbility, now),
		Quit:        k.quit,
	}
}
