package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-quad/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	PlayerUpChar   = '▲'
	PlayerDownChar = '▼'
	PipeChar       = '█'
	GroundChar     = '═'
)

// tiltThreshold is the tilt (radians) beyond which the player glyph turns.
const tiltThreshold = 0.2

// Render draws the machine's current snapshot to the screen.
func (m *Machine) Render(dst *core.Screen) {
	Render(dst, m.Snapshot())
}

// Render draws a snapshot to the screen, scaling the world viewport onto all
// rows but the last, which holds the ground line.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || snap.Viewport.X <= 0 || snap.Viewport.Y <= 0 {
		return
	}

	groundY := dst.Height() - 1
	sx := float64(dst.Width()) / snap.Viewport.X
	sy := float64(groundY) / snap.Viewport.Y
	toScreen := func(pos, size core.Vec2) core.Rect {
		return core.NewRect(pos.X*sx, pos.Y*sy, size.X*sx, size.Y*sy)
	}

	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorCyan)

	for _, o := range snap.Obstacles {
		r := toScreen(o.Pos, o.Size)
		dst.DrawRect(r, PipeChar, core.ColorGreen)
		drawCaps(dst, r)
	}

	color := core.ColorYellow
	if !snap.PlayerAlive {
		color = core.ColorRed
	}
	dst.DrawRect(toScreen(snap.PlayerPos, snap.PlayerSize), playerGlyph(snap.PlayerTilt), color)

	switch snap.State {
	case StatePlaying:
		dst.DrawTextColored(2, 0, " "+snap.Message()+" ", core.ColorWhite)
	default:
		drawCenteredMessage(dst, snap.Message())
	}
}

// drawCaps highlights the first and last rows of an obstacle.
func drawCaps(dst *core.Screen, r core.Rect) {
	x0 := int(math.Floor(r.X))
	x1 := int(math.Ceil(r.Right()))
	top := int(math.Floor(r.Y))
	bottom := int(math.Ceil(r.Bottom())) - 1
	for _, y := range []int{top, bottom} {
		dst.DrawHLine(x0, y, x1-x0, PipeChar, core.ColorBrightGreen)
	}
}

// playerGlyph picks a glyph that hints at the player's tilt.
func playerGlyph(tilt float64) rune {
	switch {
	case tilt < -tiltThreshold:
		return PlayerUpChar
	case tilt > tiltThreshold:
		return PlayerDownChar
	default:
		return PlayerChar
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, text string) {
	w := dst.Width()
	h := dst.Height()
	textW := len([]rune(text))

	boxW := textW + 4
	boxH := 3
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		dst.DrawHLine(boxX, y, boxW, ' ', core.ColorDefault)
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextColored(boxX+2, boxY+1, text, core.ColorWhite)
}
