package render

import "github.com/gdamore/tcell/v2"

// Palette for entity drawing. Particle color bytes index into
// particlePalette.
var (
	RgbBackground = tcell.NewRGBColor(8, 8, 16)
	RgbShip       = tcell.NewRGBColor(80, 220, 255)
	RgbShield     = tcell.NewRGBColor(120, 160, 255)
	RgbInvuln     = tcell.NewRGBColor(200, 200, 200)
	RgbAsteroid   = tcell.NewRGBColor(170, 140, 100)
	RgbUFO        = tcell.NewRGBColor(120, 255, 120)
	RgbUFOSpin    = tcell.NewRGBColor(255, 180, 60)
	RgbBullet     = tcell.NewRGBColor(255, 255, 160)
	RgbEnemyShot  = tcell.NewRGBColor(255, 90, 90)
	RgbBoss       = tcell.NewRGBColor(220, 80, 220)
	RgbStatus     = tcell.NewRGBColor(0, 255, 255)
)

var particlePalette = []tcell.Color{
	tcell.NewRGBColor(255, 200, 80),
	tcell.NewRGBColor(255, 120, 40),
	tcell.NewRGBColor(200, 200, 220),
	tcell.NewRGBColor(120, 255, 120),
	tcell.NewRGBColor(255, 90, 90),
	tcell.NewRGBColor(120, 160, 255),
}

// ParticleColor maps a particle's palette byte to a terminal color
func ParticleColor(idx uint8) tcell.Color {
	return particlePalette[int(idx)%len(particlePalette)]
}
