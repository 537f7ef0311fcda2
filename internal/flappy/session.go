package flappy

import (
	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

// scorePerObstacle is awarded per obstacle, so a full pair is worth 1.
const scorePerObstacle = 0.5

// Session owns all entity state for a run: the player, the obstacle set,
// score, current obstacle speed and the spawn timer.
type Session struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	player     *Player

	// Insertion order keeps each top/bottom pair adjacent.
	obstacles []Obstacle

	score      float64
	finalScore float64
	speed      float64

	spawnTimer    int
	spawnInterval int
	gapScale      float64
}

// NewSession creates a session. The spawn interval and gap scale are derived
// once from the viewport height and stay fixed for the session's lifetime.
func NewSession(cfg config.FlappyConfig, rng RandomSource) *Session {
	difficulty := config.NewDifficultyManager(cfg)
	interval, gapScale := difficulty.Schedule(cfg.Viewport.Height)

	return &Session{
		cfg:           cfg,
		difficulty:    difficulty,
		spawner:       NewSpawner(rng, cfg.Obstacles),
		player:        NewPlayer(cfg.Player, cfg.Physics),
		obstacles:     make([]Obstacle, 0, 8),
		speed:         cfg.Physics.BaseSpeed,
		spawnTimer:    cfg.Spawn.InitialTimer,
		spawnInterval: interval,
		gapScale:      gapScale,
	}
}

// Update runs one Playing frame and reports whether the player is still alive.
// When the player dies the rest of the frame is skipped; the caller is expected
// to end the episode.
func (s *Session) Update(dt float64, jump bool) bool {
	s.player.Update(dt, jump, s.cfg.Viewport.Height, s.obstacles)
	if !s.player.Alive {
		return false
	}

	step := s.difficulty.SpeedStep()
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.Advance(dt)
		if !o.PassedPlayer && o.Pos.X < s.player.Pos.X {
			o.PassedPlayer = true
			s.score += scorePerObstacle
			s.speed += step
		}
	}

	// Remove obstacles that have fully left the viewport
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.OffScreen() {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	s.spawnTimer++
	if s.spawnTimer >= s.spawnInterval {
		s.spawnPair()
		s.spawnTimer = 0
	}

	return true
}

// spawnPair appends a new obstacle pair using the current speed.
func (s *Session) spawnPair() {
	top, bottom := s.spawner.SpawnPair(
		s.cfg.Viewport.Width,
		s.cfg.Viewport.Height,
		s.speed,
		s.gapScale,
	)
	s.obstacles = append(s.obstacles, top, bottom)
}

// EndEpisode handles a death: the score is kept for display, the player goes
// back to its spawn point, the speed returns to base and obstacles are cleared.
func (s *Session) EndEpisode() {
	s.finalScore = s.score
	s.player.Respawn()
	s.speed = s.cfg.Physics.BaseSpeed
	s.obstacles = s.obstacles[:0]
}

// Restart begins a new episode after a death. Obstacles stay empty until the
// next spawn.
func (s *Session) Restart() {
	s.score = 0
	s.player.Revive()
}

// Player returns the session's player for read-only inspection.
func (s *Session) Player() *Player {
	return s.player
}

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// Score returns the current score.
func (s *Session) Score() float64 {
	return s.score
}

// FinalScore returns the score captured at the last death.
func (s *Session) FinalScore() float64 {
	return s.finalScore
}

// Speed returns the speed newly spawned obstacles will get.
func (s *Session) Speed() float64 {
	return s.speed
}

// SpawnInterval returns the number of frames between pair spawns.
func (s *Session) SpawnInterval() int {
	return s.spawnInterval
}

// GapScale returns the gap multiplier chosen at session start.
func (s *Session) GapScale() float64 {
	return s.gapScale
}

// SpawnTimer returns the frames counted toward the next spawn.
func (s *Session) SpawnTimer() int {
	return s.spawnTimer
}

// Viewport returns the world size the session runs in.
func (s *Session) Viewport() core.Vec2 {
	return core.NewVec2(s.cfg.Viewport.Width, s.cfg.Viewport.Height)
}
