// Package tui provides the Bubble Tea frontend for the game.
// It drives the simulation from a tick loop, maps keys and mouse clicks to
// input frames and presents the rendered screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-quad/internal/core"
)

// maxFrameDT caps the seconds simulated by one frame.
const maxFrameDT = 0.25

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds elapsed between two ticks.
// The first frame has no previous tick and uses the nominal interval.
func frameDT(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	return core.ClampF(now.Sub(prev).Seconds(), 0, maxFrameDT)
}
