package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultFlappyConfig()
	return NewPlayer(cfg.Player, cfg.Physics)
}

func TestPlayerJumpReplacesVelocity(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		dt      float64
		wantVel float64
		wantY   float64
	}{
		{"at rest, zero dt", 0, 0, -400, 100},
		{"falling fast, zero dt", 1000, 0, -400, 100},
		{"rising, zero dt", -900, 0, -400, 100},
		{"at rest, half second", 0, 0.5, -50, 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Velocity = tc.initial

			p.Update(tc.dt, true, 480, nil)

			if p.Velocity != tc.wantVel {
				t.Errorf("velocity = %v, want %v", p.Velocity, tc.wantVel)
			}
			if p.Pos.Y != tc.wantY {
				t.Errorf("y = %v, want %v", p.Pos.Y, tc.wantY)
			}
			if !p.Alive {
				t.Error("player should still be alive")
			}
		})
	}
}

func TestPlayerGravity(t *testing.T) {
	p := newTestPlayer()

	p.Update(0.5, false, 480, nil)

	if p.Velocity != 350 {
		t.Errorf("velocity = %v, want 350", p.Velocity)
	}
	if p.Pos.Y != 275 {
		t.Errorf("y = %v, want 275", p.Pos.Y)
	}
	if p.Pos.X != 100 {
		t.Errorf("x changed to %v", p.Pos.X)
	}
}

func TestPlayerVelocityCap(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 1000; i++ {
		p.Update(0.1, false, 1e12, nil)
		if p.Velocity > 2500 {
			t.Fatalf("frame %d: velocity %v exceeds max gravity", i, p.Velocity)
		}
	}
	if p.Velocity != 2500 {
		t.Errorf("terminal velocity = %v, want 2500", p.Velocity)
	}
}

func TestPlayerUpwardVelocityNotCapped(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.JumpStrength = 5000
	p := NewPlayer(cfg.Player, cfg.Physics)
	p.Pos.Y = 1e6

	p.Update(0, true, 1e12, nil)

	if p.Velocity != -5000 {
		t.Errorf("velocity = %v, want -5000", p.Velocity)
	}
}

func TestPlayerTilt(t *testing.T) {
	p := newTestPlayer()

	p.Update(0, true, 480, nil)

	want := math.Sin(-400.0/250) * 0.5
	if p.Tilt != want {
		t.Errorf("tilt = %v, want %v", p.Tilt, want)
	}
}

func TestPlayerFloorKills(t *testing.T) {
	p := newTestPlayer()
	p.Pos.Y = 440

	p.Update(1, false, 480, nil)

	if p.Pos.Y != 448 {
		t.Errorf("y = %v, want clamped to 448", p.Pos.Y)
	}
	if p.Velocity != 0 {
		t.Errorf("velocity = %v, want 0 after floor clamp", p.Velocity)
	}
	if p.Alive {
		t.Error("player should die on the floor")
	}
}

func TestPlayerCeilingIsOpen(t *testing.T) {
	p := newTestPlayer()
	p.Pos.Y = 10

	p.Update(0.5, true, 480, nil)

	if p.Pos.Y >= 0 {
		t.Fatalf("expected player above the viewport, y = %v", p.Pos.Y)
	}
	if !p.Alive {
		t.Error("leaving the top of the viewport must not kill the player")
	}
}

func TestPlayerCollision(t *testing.T) {
	size := core.NewVec2(52, 320)

	tests := []struct {
		name      string
		obstacles []Obstacle
		wantAlive bool
	}{
		{"no obstacles", nil, true},
		{
			"overlapping",
			[]Obstacle{NewObstacle(core.NewVec2(120, 110), size, 500)},
			false,
		},
		{
			"touching right edge only",
			[]Obstacle{NewObstacle(core.NewVec2(132, 100), size, 500)},
			true,
		},
		{
			"touching bottom edge only",
			[]Obstacle{NewObstacle(core.NewVec2(100, 132), size, 500)},
			true,
		},
		{
			"second of several overlaps",
			[]Obstacle{
				NewObstacle(core.NewVec2(400, 0), size, 500),
				NewObstacle(core.NewVec2(90, -200), size, 500),
				NewObstacle(core.NewVec2(400, 300), size, 500),
			},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			before := append([]Obstacle(nil), tc.obstacles...)

			p.Update(0, false, 480, tc.obstacles)

			if p.Alive != tc.wantAlive {
				t.Errorf("Alive = %v, want %v", p.Alive, tc.wantAlive)
			}
			for i := range before {
				if before[i] != tc.obstacles[i] {
					t.Errorf("obstacle %d modified by collision check", i)
				}
			}
		})
	}
}

func TestPlayerRespawnAndRevive(t *testing.T) {
	p := newTestPlayer()
	p.Pos.Y = 440
	p.Update(1, false, 480, nil)
	if p.Alive {
		t.Fatal("setup: expected dead player")
	}

	p.Respawn()
	if p.Pos != core.NewVec2(100, 100) || p.Velocity != 0 || p.Tilt != 0 {
		t.Errorf("Respawn() left pos=%+v vel=%v tilt=%v", p.Pos, p.Velocity, p.Tilt)
	}
	if p.Alive {
		t.Error("Respawn() should not revive")
	}

	p.Velocity = 123
	p.Revive()
	if !p.Alive || p.Velocity != 0 {
		t.Errorf("Revive() left alive=%v vel=%v", p.Alive, p.Velocity)
	}
}
