package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded YAML is unusable.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Viewport: Viewport{
			Width:  640,
			Height: 480,
		},
		Physics: Physics{
			Gravity:      700,
			JumpStrength: 400,
			MaxGravity:   2500,
			BaseSpeed:    500,
		},
		Player: PlayerConfig{
			X:      100,
			Y:      100,
			Width:  32,
			Height: 32,
		},
		Obstacles: Obstacles{
			Width:      52,
			Height:     320,
			GapMin:     120,
			GapMax:     160,
			BandTop:    0.2,
			BandBottom: 0.7,
			Placement:  PlacementRelative,
			FixedX:     700,
			FixedMinY:  -220,
			FixedMaxY:  0,
		},
		Spawn: Spawn{
			Schedule:      ScheduleScaled,
			FixedInterval: 200,
			InitialTimer:  50,
		},
		Difficulty: DifficultyConfig{
			SpeedStep: 2,
			Tiers: []SpawnTier{
				{MaxHeight: 480, Interval: 180, GapScale: 1.0},
				{MaxHeight: 720, Interval: 200, GapScale: 1.15},
				{MaxHeight: 0, Interval: 240, GapScale: 1.3},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
