// Package config provides YAML-based game configuration loading and
// difficulty management for the simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for one game session.
type FlappyConfig struct {
	Viewport   Viewport         `yaml:"viewport"`
	Physics    Physics          `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  Obstacles        `yaml:"obstacles"`
	Spawn      Spawn            `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Viewport is the size of the virtual world the simulation runs in.
// The terminal renderer scales it to whatever screen is available.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines motion parameters. Units are world units per second.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration (units/s^2)
	JumpStrength float64 `yaml:"jump_strength"` // Upward impulse magnitude
	MaxGravity   float64 `yaml:"max_gravity"`   // Downward velocity cap
	BaseSpeed    float64 `yaml:"base_speed"`    // Obstacle speed at session start
}

// PlayerConfig defines the spawn position and body size of the player.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Placement selects how obstacle pairs are positioned when spawned.
type Placement string

const (
	// PlacementRelative spawns at the right viewport edge inside a band
	// derived from the viewport height.
	PlacementRelative Placement = "relative"
	// PlacementFixed spawns at a fixed x with the gap top drawn from a fixed range.
	PlacementFixed Placement = "fixed"
)

// Obstacles defines obstacle size and pair placement.
type Obstacles struct {
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	GapMin     float64   `yaml:"gap_min"`     // Unscaled minimum gap
	GapMax     float64   `yaml:"gap_max"`     // Unscaled maximum gap
	BandTop    float64   `yaml:"band_top"`    // Fraction of viewport height
	BandBottom float64   `yaml:"band_bottom"` // Fraction of viewport height
	Placement  Placement `yaml:"placement"`
	FixedX     float64   `yaml:"fixed_x"`
	FixedMinY  float64   `yaml:"fixed_min_y"`
	FixedMaxY  float64   `yaml:"fixed_max_y"`
}

// Schedule selects how the spawn interval and gap scale are chosen.
type Schedule string

const (
	// ScheduleScaled picks interval and gap scale from the difficulty tiers.
	ScheduleScaled Schedule = "scaled"
	// ScheduleFixed always uses FixedInterval and a gap scale of 1.
	ScheduleFixed Schedule = "fixed"
)

// Spawn defines the obstacle spawn timer.
type Spawn struct {
	Schedule      Schedule `yaml:"schedule"`
	FixedInterval int      `yaml:"fixed_interval"` // Frames between pairs
	InitialTimer  int      `yaml:"initial_timer"`  // Timer value at session start
}

// DifficultyConfig defines difficulty progression.
type DifficultyConfig struct {
	SpeedStep float64     `yaml:"speed_step"` // Speed added per obstacle passed
	Tiers     []SpawnTier `yaml:"tiers"`
}

// SpawnTier maps a viewport height bound to a spawn interval and gap scale.
// Tiers are checked in order; the first with MaxHeight >= viewport height wins
// and the last tier catches everything taller.
type SpawnTier struct {
	MaxHeight float64 `yaml:"max_height"`
	Interval  int     `yaml:"interval"`
	GapScale  float64 `yaml:"gap_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyNormal   DifficultyPreset = "normal"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyConstant DifficultyPreset = "constant" // Speed never grows
)

// ParsePreset converts a CLI string into a preset.
// An empty string means "keep the config's own values".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyConstant:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or constant)", s)
	}
}

// SpeedStepForPreset returns the speed increment used by a difficulty preset.
func SpeedStepForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 4
	case DifficultyConstant:
		return 0
	default:
		return 2
	}
}

// Validate reports the first structural problem with the config.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return errors.New("config: viewport width and height must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return errors.New("config: player width and height must be positive")
	case c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0:
		return errors.New("config: obstacle width and height must be positive")
	case c.Obstacles.GapMin > c.Obstacles.GapMax:
		return fmt.Errorf("config: gap_min %v exceeds gap_max %v", c.Obstacles.GapMin, c.Obstacles.GapMax)
	case c.Obstacles.BandTop < 0 || c.Obstacles.BandBottom > 1 || c.Obstacles.BandTop > c.Obstacles.BandBottom:
		return errors.New("config: obstacle band must satisfy 0 <= band_top <= band_bottom <= 1")
	case c.Obstacles.FixedMinY > c.Obstacles.FixedMaxY:
		return errors.New("config: fixed_min_y exceeds fixed_max_y")
	case c.Physics.MaxGravity <= 0:
		return errors.New("config: max_gravity must be positive")
	}

	switch c.Obstacles.Placement {
	case PlacementRelative, PlacementFixed:
	default:
		return fmt.Errorf("config: unknown placement %q", c.Obstacles.Placement)
	}

	switch c.Spawn.Schedule {
	case ScheduleScaled:
		if len(c.Difficulty.Tiers) == 0 {
			return errors.New("config: scaled schedule needs at least one difficulty tier")
		}
		for i, tier := range c.Difficulty.Tiers {
			if tier.Interval <= 0 || tier.GapScale <= 0 {
				return fmt.Errorf("config: tier %d must have positive interval and gap_scale", i)
			}
		}
	case ScheduleFixed:
		if c.Spawn.FixedInterval <= 0 {
			return errors.New("config: fixed_interval must be positive")
		}
	default:
		return fmt.Errorf("config: unknown schedule %q", c.Spawn.Schedule)
	}

	return nil
}
