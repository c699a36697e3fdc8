// Package systems implements the per-frame simulation passes: time
// dilation, steering AI, collision scheduling and resolution, entity
// lifecycle and the boss encounter. Every system receives the engine
// context explicitly and mutates it only during its own pass.
package systems

import (
	"math"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// DilationController produces the global time-scale factor from player
// aggression. Faster, shootier play slows the world down; idling freezes it.
type DilationController struct {
	Current float64

	shots     int
	firing    bool
	turnAccum float64 // degrees, resets when turning stops
}

// NewDilationController starts at real time
func NewDilationController() *DilationController {
	return &DilationController{Current: 1.0}
}

// NoteShot registers one fired bullet for the progressive shoot bonus
func (d *DilationController) NoteShot() {
	d.shots++
}

// Update advances the dilation factor and returns it. speed is the player's
// velocity magnitude; turnDegrees is this frame's unsigned turn input.
func (d *DilationController) Update(dt, speed float64, firing bool, turnDegrees float64) float64 {
	if dt <= 0 {
		return d.Current
	}

	if !firing {
		d.shots = 0
	}
	d.firing = firing

	if turnDegrees > 0 {
		d.turnAccum += turnDegrees
	} else {
		d.turnAccum = 0
	}

	total := speed + d.shootBonus() + d.turnBonus()
	target := dilationTarget(total)

	if target > d.Current {
		// Fast rise: straight interpolation toward target
		d.Current += (target - d.Current) * math.Min(parameter.DilationRiseRate*dt, 1)
	} else {
		// Exponential decay, sharpened when the player is nearly idle so
		// near-frozen time recovers instead of lingering
		pow := 1.0
		idle := parameter.DilationBreakpoints[1]
		switch {
		case total < idle*parameter.DilationDecayFasterPct:
			pow = parameter.DilationDecayFasterPow
		case total < idle*parameter.DilationDecayFastPct:
			pow = parameter.DilationDecayFastPow
		}
		d.Current *= math.Pow(parameter.ShipSpeedDecay, pow*dt)
		if d.Current < target {
			d.Current = target
		}
	}

	d.Current = vmath.Clamp(d.Current, parameter.DilationMin, parameter.DilationMax)
	return d.Current
}

func (d *DilationController) shootBonus() float64 {
	if !d.firing || d.shots == 0 {
		return 0
	}
	i := d.shots - 1
	if i >= len(parameter.DilationShootBonuses) {
		i = len(parameter.DilationShootBonuses) - 1
	}
	return parameter.DilationShootBonuses[i]
}

func (d *DilationController) turnBonus() float64 {
	if d.turnAccum <= 0 {
		return 0
	}
	t := math.Min(d.turnAccum/parameter.TurnBonusFullDegrees, 1)
	rate := parameter.TurnBonusRateMin +
		(parameter.TurnBonusRateMax-parameter.TurnBonusRateMin)*t*t
	return math.Min(d.turnAccum*rate, parameter.TurnBonusCap)
}

// dilationTarget maps total movement units to a target dilation: linear
// interpolation inside the low brackets, a step table above
func dilationTarget(total float64) float64 {
	bp := parameter.DilationBreakpoints
	tg := parameter.DilationTargets

	if total <= bp[0] {
		return tg[0]
	}
	last := len(bp) - 1
	if total >= bp[last] {
		return tg[last]
	}

	i := 0
	for i < last && total >= bp[i+1] {
		i++
	}

	if total < parameter.DilationLerpCeiling {
		f := (total - bp[i]) / (bp[i+1] - bp[i])
		return vmath.Lerp(tg[i], tg[i+1], f)
	}
	return tg[i]
}
