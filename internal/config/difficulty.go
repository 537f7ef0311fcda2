package config

// DifficultyManager derives difficulty-dependent session parameters.
type DifficultyManager struct {
	cfg   DifficultyConfig
	spawn Spawn
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg FlappyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg.Difficulty,
		spawn: cfg.Spawn,
	}
}

// SpeedStep returns the obstacle speed added each time an obstacle passes the player.
func (d *DifficultyManager) SpeedStep() float64 {
	return d.cfg.SpeedStep
}

// Schedule returns the spawn interval (frames) and gap scale for a viewport height.
// A taller viewport gets a longer interval and a looser gap.
func (d *DifficultyManager) Schedule(viewportHeight float64) (interval int, gapScale float64) {
	if d.spawn.Schedule == ScheduleFixed || len(d.cfg.Tiers) == 0 {
		return max(d.spawn.FixedInterval, 1), 1.0
	}

	last := len(d.cfg.Tiers) - 1
	for i, tier := range d.cfg.Tiers {
		if i == last || viewportHeight <= tier.MaxHeight {
			return tier.Interval, tier.GapScale
		}
	}
	return d.cfg.Tiers[last].Interval, d.cfg.Tiers[last].GapScale
}
