package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/flappy-quad/internal/core"
)

// Display strings for the presentation layer.
const (
	MenuMessage = "Click or press Space to start."
	deadFormat  = "You died. Final score: %s"
	scoreFormat = "Score: %s"
)

// ObstacleView is the render-facing data for one obstacle.
type ObstacleView struct {
	Pos  core.Vec2
	Size core.Vec2
}

// Snapshot captures everything a presentation layer needs for one frame.
// It is plain data; holding it has no effect on the simulation.
type Snapshot struct {
	Frame      uint64
	State      State
	Score      float64
	FinalScore float64
	Speed      float64
	Viewport   core.Vec2

	PlayerPos   core.Vec2
	PlayerSize  core.Vec2
	PlayerTilt  float64
	PlayerVel   float64
	PlayerAlive bool

	Obstacles []ObstacleView
}

// Snapshot returns the current frame's render data.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	p := s.Player()

	views := make([]ObstacleView, len(s.Obstacles()))
	for i, o := range s.Obstacles() {
		views[i] = ObstacleView{Pos: o.Pos, Size: o.Size}
	}

	return Snapshot{
		Frame:       m.frame,
		State:       m.state,
		Score:       s.Score(),
		FinalScore:  s.FinalScore(),
		Speed:       s.Speed(),
		Viewport:    s.Viewport(),
		PlayerPos:   p.Pos,
		PlayerSize:  p.Size,
		PlayerTilt:  p.Tilt,
		PlayerVel:   p.Velocity,
		PlayerAlive: p.Alive,
		Obstacles:   views,
	}
}

// Message returns the text to show for the snapshot's state.
func (s Snapshot) Message() string {
	switch s.State {
	case StateMainMenu:
		return MenuMessage
	case StateDead:
		return fmt.Sprintf(deadFormat, FormatScore(s.FinalScore))
	default:
		return fmt.Sprintf(scoreFormat, FormatScore(s.Score))
	}
}

// FormatScore renders a score without trailing zeros (1, 1.5, 12).
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
