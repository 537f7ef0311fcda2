package flappy

import (
	"math"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

// Tilt shaping: tilt = sin(velocity / tiltDivisor) * tiltScale radians.
const (
	tiltDivisor = 250.0
	tiltScale   = 0.5
)

// Player is the vertical motion body. Its x never changes during a session.
type Player struct {
	Pos      core.Vec2
	Size     core.Vec2
	Velocity float64 // Positive is downward
	Alive    bool
	Tilt     float64 // Cosmetic rotation in radians

	spawn   core.Vec2
	physics config.Physics
}

// NewPlayer creates a live player at its spawn position.
func NewPlayer(cfg config.PlayerConfig, physics config.Physics) *Player {
	spawn := core.NewVec2(cfg.X, cfg.Y)
	return &Player{
		Pos:     spawn,
		Size:    core.NewVec2(cfg.Width, cfg.Height),
		Alive:   true,
		spawn:   spawn,
		physics: physics,
	}
}

// Rect returns the player's collision rectangle.
func (p *Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Update advances the player by dt seconds.
//
// A jump replaces the current velocity with the upward impulse. Gravity is then
// integrated and capped at max_gravity (only downward speed is capped). Reaching
// the floor clamps the player to it and kills it; so does overlapping any
// obstacle. obstacles is only read.
func (p *Player) Update(dt float64, jump bool, viewportHeight float64, obstacles []Obstacle) {
	if jump {
		p.Velocity = -p.physics.JumpStrength
	}

	p.Velocity = math.Min(p.Velocity+p.physics.Gravity*dt, p.physics.MaxGravity)
	p.Tilt = math.Sin(p.Velocity/tiltDivisor) * tiltScale
	p.Pos.Y += p.Velocity * dt

	floor := viewportHeight - p.Size.Y
	if p.Pos.Y > floor {
		p.Pos.Y = floor
		p.Velocity = 0
		p.Alive = false
	}

	rect := p.Rect()
	for i := range obstacles {
		if rect.Intersects(obstacles[i].Rect()) {
			p.Alive = false
		}
	}
}

// Respawn puts the player back at its spawn point at rest.
func (p *Player) Respawn() {
	p.Pos = p.spawn
	p.Velocity = 0
	p.Tilt = 0
}

// Revive marks the player alive again with zero velocity.
func (p *Player) Revive() {
	p.Alive = true
	p.Velocity = 0
}
