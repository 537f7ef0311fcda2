package flappy

import "github.com/vovakirdan/flappy-quad/internal/core"

// Obstacle is a single rectangular hazard moving leftward.
type Obstacle struct {
	Pos   core.Vec2 // Top-left corner
	Size  core.Vec2 // Fixed at creation
	Speed float64   // Units per second, leftward

	// PassedPlayer latches true the first frame the obstacle is left of the
	// player and is never reset.
	PassedPlayer bool
}

// NewObstacle creates an obstacle at pos.
func NewObstacle(pos, size core.Vec2, speed float64) Obstacle {
	return Obstacle{Pos: pos, Size: size, Speed: speed}
}

// Advance moves the obstacle left by speed*dt. Removal is up to the session.
func (o *Obstacle) Advance(dt float64) {
	o.Pos.X -= o.Speed * dt
}

// Rect returns the obstacle's collision rectangle.
func (o Obstacle) Rect() core.Rect {
	return core.RectAt(o.Pos, o.Size)
}

// OffScreen reports whether the obstacle is fully behind the left viewport edge.
func (o Obstacle) OffScreen() bool {
	return o.Pos.X < -o.Size.X
}
