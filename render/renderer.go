// Package render draws the simulation state onto a tcell screen. The
// world is mapped onto the cell grid each frame, so resizing the
// terminal just rescales the field.
package render

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/systems"
	"github.com/lixenwraith/stardrift/vmath"
)

const statusRows = 1

// TerminalRenderer draws one frame per Render call
type TerminalRenderer struct {
	screen tcell.Screen
	sim    *systems.Simulation

	mu       sync.Mutex
	rankLine string
}

// NewTerminalRenderer wraps an initialized screen
func NewTerminalRenderer(screen tcell.Screen, sim *systems.Simulation) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, sim: sim}
}

// SetRankLine stores the leaderboard result shown in the status bar.
// Safe to call from the event fan-out goroutine.
func (r *TerminalRenderer) SetRankLine(line string) {
	r.mu.Lock()
	r.rankLine = line
	r.mu.Unlock()
}

// Render draws the full frame
func (r *TerminalRenderer) Render() {
	r.screen.Clear()

	ctx := r.sim.Ctx
	w, h := r.screen.Size()
	fieldH := h - statusRows
	if w < 2 || fieldH < 2 {
		r.screen.Show()
		return
	}

	sx := float64(w) / ctx.World.Width
	sy := float64(fieldH) / ctx.World.Height

	base := tcell.StyleDefault.Background(RgbBackground)

	r.drawParticles(ctx.Particles, sx, sy, base)
	r.drawAsteroids(ctx.Asteroids, sx, sy, base)
	r.drawBullets(ctx.Bullets, sx, sy, base)
	r.drawBullets(ctx.BossBullets, sx, sy, base)
	r.drawUFOs(ctx.UFOs, sx, sy, base)
	if ctx.Boss != nil && ctx.Boss.Active {
		r.drawBoss(ctx.Boss, sx, sy, base)
	}
	if ctx.Ship != nil && ctx.Ship.Active {
		r.drawShip(ctx.Ship, sx, sy, base)
	}
	r.drawStatus(w, base)

	r.screen.Show()
}

// put plots one world position, skipping anything off grid
func (r *TerminalRenderer) put(pos vmath.Vec, sx, sy float64, ch rune, style tcell.Style) {
	x := int(pos.X * sx)
	y := statusRows + int(pos.Y*sy)
	w, h := r.screen.Size()
	if x < 0 || x >= w || y < statusRows || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

var shipGlyphs = []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

func (r *TerminalRenderer) drawShip(ship *component.Ship, sx, sy float64, base tcell.Style) {
	style := base.Foreground(RgbShip)
	if ship.Invulnerable() {
		style = base.Foreground(RgbInvuln)
	}

	octant := int(math.Round(ship.Angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	r.put(ship.Pos, sx, sy, shipGlyphs[octant], style)

	if ship.ShieldHits > 0 {
		shield := base.Foreground(RgbShield)
		for _, d := range []vmath.Vec{{X: -12}, {X: 12}, {Y: -12}, {Y: 12}} {
			r.put(ship.Pos.Add(d), sx, sy, 'o', shield)
		}
	}
}

func asteroidGlyph(size int) rune {
	switch {
	case size >= 5:
		return '@'
	case size == 4:
		return 'O'
	case size == 3:
		return 'o'
	case size == 2:
		return '*'
	default:
		return '.'
	}
}

func (r *TerminalRenderer) drawAsteroids(asteroids []*component.Asteroid, sx, sy float64, base tcell.Style) {
	style := base.Foreground(RgbAsteroid)
	for _, a := range asteroids {
		if !a.Active {
			continue
		}
		r.put(a.Pos, sx, sy, asteroidGlyph(a.Size), style)
	}
}

func ufoGlyph(p component.Personality) rune {
	switch p {
	case component.PersonalityAggressive:
		return 'A'
	case component.PersonalityDefensive:
		return 'D'
	case component.PersonalityTactical:
		return 'T'
	case component.PersonalitySwarm:
		return 'S'
	default:
		return 'X'
	}
}

func (r *TerminalRenderer) drawUFOs(ufos []*component.UFO, sx, sy float64, base tcell.Style) {
	for _, u := range ufos {
		if !u.Active {
			continue
		}
		style := base.Foreground(RgbUFO)
		if u.SpinningOut() {
			style = base.Foreground(RgbUFOSpin)
		}
		r.put(u.Pos, sx, sy, ufoGlyph(u.Personality), style)
	}
}

func (r *TerminalRenderer) drawBullets(bullets []*component.Bullet, sx, sy float64, base tcell.Style) {
	for _, b := range bullets {
		if !b.Active {
			continue
		}
		switch b.Owner {
		case component.OwnerShip:
			r.put(b.Pos, sx, sy, '.', base.Foreground(RgbBullet))
		case component.OwnerUFO:
			r.put(b.Pos, sx, sy, '-', base.Foreground(RgbEnemyShot))
		case component.OwnerBoss:
			r.put(b.Pos, sx, sy, '*', base.Foreground(RgbEnemyShot))
		}
	}
}

func (r *TerminalRenderer) drawParticles(particles []*component.Particle, sx, sy float64, base tcell.Style) {
	for _, p := range particles {
		if !p.Active {
			continue
		}
		frac := 0.0
		if p.InitialLife > 0 {
			frac = p.Life / p.InitialLife
		}
		ch := '.'
		if frac > 0.66 {
			ch = '*'
		} else if frac > 0.33 {
			ch = '+'
		}
		r.put(p.Pos, sx, sy, ch, base.Foreground(ParticleColor(p.Color)))
	}
}

func (r *TerminalRenderer) drawBoss(boss *component.Boss, sx, sy float64, base tcell.Style) {
	style := base.Foreground(RgbBoss)

	// Trace the hull by sampling each polygon edge
	world := r.sim.Ctx.World
	hull := boss.WorldHitbox(nil)
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		steps := int(math.Max(a.Sub(b).Magnitude()/8, 1))
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			p := vmath.Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			r.put(world.WrapPosition(p), sx, sy, '#', style)
		}
	}
}

func (r *TerminalRenderer) drawStatus(w int, base tcell.Style) {
	ctx := r.sim.Ctx

	r.mu.Lock()
	rank := r.rankLine
	r.mu.Unlock()

	text := fmt.Sprintf(" SCORE %d  LIVES %d  LEVEL %d  TIME x%.2f", ctx.Score, ctx.Lives, ctx.Level, ctx.TimeScale)
	if ctx.Ship != nil && ctx.Ship.Active {
		text += fmt.Sprintf("  BLAST %d", ctx.Ship.AbilityCharges)
	}
	if r.sim.Over() {
		text += "  GAME OVER"
	}
	if rank != "" {
		text += "  " + rank
	}

	style := base.Foreground(RgbStatus)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		r.screen.SetContent(x, 0, ch, nil, style)
	}
}
