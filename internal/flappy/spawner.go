package flappy

import (
	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

// Spawner creates top/bottom obstacle pairs with a randomized vertical gap.
type Spawner struct {
	rng RandomSource
	cfg config.Obstacles
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandomSource, cfg config.Obstacles) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// ObstacleSize returns the size every spawned obstacle gets.
func (s *Spawner) ObstacleSize() core.Vec2 {
	return core.NewVec2(s.cfg.Width, s.cfg.Height)
}

// SpawnPair builds a pair at the right edge of the viewport.
//
// The gap size is drawn first from [gap_min, gap_max] scaled by gapScale, then
// the top obstacle's y. With relative placement y is drawn so the gap opens
// between band_top and band_bottom of the viewport height; with fixed placement
// both x and the y range come straight from the config.
func (s *Spawner) SpawnPair(viewportW, viewportH, speed, gapScale float64) (top, bottom Obstacle) {
	size := s.ObstacleSize()

	gap := s.rng.GenRange(s.cfg.GapMin*gapScale, s.cfg.GapMax*gapScale)

	var x, y float64
	switch s.cfg.Placement {
	case config.PlacementFixed:
		x = s.cfg.FixedX
		y = s.rng.GenRange(s.cfg.FixedMinY, s.cfg.FixedMaxY)
	default:
		x = viewportW
		y = s.rng.GenRange(
			s.cfg.BandTop*viewportH-size.Y,
			s.cfg.BandBottom*viewportH-size.Y,
		)
	}

	top = NewObstacle(core.NewVec2(x, y), size, speed)
	bottom = NewObstacle(core.NewVec2(x, y+size.Y+gap), size, speed)
	return top, bottom
}
