package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	builtin := DefaultFlappyConfig()
	if cfg.Physics != builtin.Physics {
		t.Errorf("physics mismatch: embedded %+v, builtin %+v", cfg.Physics, builtin.Physics)
	}
	if cfg.Player != builtin.Player {
		t.Errorf("player mismatch: embedded %+v, builtin %+v", cfg.Player, builtin.Player)
	}
	if cfg.Obstacles != builtin.Obstacles {
		t.Errorf("obstacles mismatch: embedded %+v, builtin %+v", cfg.Obstacles, builtin.Obstacles)
	}
	if cfg.Spawn != builtin.Spawn {
		t.Errorf("spawn mismatch: embedded %+v, builtin %+v", cfg.Spawn, builtin.Spawn)
	}
	if len(cfg.Difficulty.Tiers) != len(builtin.Difficulty.Tiers) {
		t.Fatalf("tier count mismatch: %d vs %d", len(cfg.Difficulty.Tiers), len(builtin.Difficulty.Tiers))
	}
	for i := range cfg.Difficulty.Tiers {
		if cfg.Difficulty.Tiers[i] != builtin.Difficulty.Tiers[i] {
			t.Errorf("tier %d mismatch: %+v vs %+v", i, cfg.Difficulty.Tiers[i], builtin.Difficulty.Tiers[i])
		}
	}
}

func TestDefaultPhysicsConstants(t *testing.T) {
	p := DefaultFlappyConfig().Physics
	if p.JumpStrength != 400 || p.MaxGravity != 2500 || p.Gravity != 700 {
		t.Errorf("physics constants changed: %+v", p)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  base_speed: 300\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.BaseSpeed != 300 {
		t.Errorf("BaseSpeed = %v, want 300", cfg.Physics.BaseSpeed)
	}
	if cfg.Physics.JumpStrength != 400 {
		t.Errorf("JumpStrength should keep default, got %v", cfg.Physics.JumpStrength)
	}
	if cfg.Viewport.Height != 480 {
		t.Errorf("Viewport.Height should keep default, got %v", cfg.Viewport.Height)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "physics: [1, 2"},
		{"zero viewport", "viewport:\n  width: 0\n"},
		{"inverted gap", "obstacles:\n  gap_min: 200\n  gap_max: 100\n"},
		{"band out of range", "obstacles:\n  band_bottom: 1.5\n"},
		{"unknown placement", "obstacles:\n  placement: diagonal\n"},
		{"unknown schedule", "spawn:\n  schedule: random\n"},
		{"empty tiers", "difficulty:\n  tiers: []\n"},
		{"bad fixed interval", "spawn:\n  schedule: fixed\n  fixed_interval: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMarshalRoundTripPreservesConfig(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Obstacles.Placement = PlacementFixed
	cfg.Difficulty.SpeedStep = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "placement: fixed") {
		t.Errorf("marshalled YAML missing placement:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Obstacles.Placement != PlacementFixed || back.Difficulty.SpeedStep != 4 {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("difficulty:\n  speed_step: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Difficulty.SpeedStep != 4 {
		t.Errorf("SpeedStep = %v, want 4", cfg.Difficulty.SpeedStep)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "constant"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"insane", "fixed"} {
		if _, err := ParsePreset(s); err == nil {
			t.Errorf("ParsePreset(%q) should be rejected", s)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 2},
		{DifficultyHard, 4},
		{DifficultyConstant, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			cfg.Difficulty.SpeedStep = 99
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.SpeedStep != tc.want {
				t.Errorf("SpeedStep = %v, want %v", cfg.Difficulty.SpeedStep, tc.want)
			}
		})
	}

	cfg := DefaultFlappyConfig()
	cfg.Difficulty.SpeedStep = 7
	ApplyPreset(&cfg, "")
	if cfg.Difficulty.SpeedStep != 7 {
		t.Error("empty preset should not modify config")
	}
}
