package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{1, "1"},
		{12.5, "12.5"},
		{104, "104"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSnapshotMessage(t *testing.T) {
	tests := []struct {
		snap Snapshot
		want string
	}{
		{Snapshot{State: StateMainMenu}, "Click or press Space to start."},
		{Snapshot{State: StatePlaying, Score: 3.5}, "Score: 3.5"},
		{Snapshot{State: StateDead, Score: 0, FinalScore: 7}, "You died. Final score: 7"},
	}

	for _, tc := range tests {
		if got := tc.snap.Message(); got != tc.want {
			t.Errorf("%v message = %q, want %q", tc.snap.State, got, tc.want)
		}
	}
}

func TestMachineSnapshot(t *testing.T) {
	m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))
	m.Session().obstacles = append(m.Session().obstacles,
		NewObstacle(core.NewVec2(300, 40), core.NewVec2(52, 320), 500))

	snap := m.Snapshot()

	if snap.State != StateMainMenu || snap.Frame != 0 {
		t.Errorf("state=%v frame=%d", snap.State, snap.Frame)
	}
	if snap.Viewport != core.NewVec2(640, 480) {
		t.Errorf("viewport = %+v", snap.Viewport)
	}
	if snap.PlayerPos != core.NewVec2(100, 100) || snap.PlayerSize != core.NewVec2(32, 32) || !snap.PlayerAlive {
		t.Errorf("player view = %+v %+v alive=%v", snap.PlayerPos, snap.PlayerSize, snap.PlayerAlive)
	}
	if len(snap.Obstacles) != 1 || snap.Obstacles[0].Pos != core.NewVec2(300, 40) {
		t.Fatalf("obstacles = %+v", snap.Obstacles)
	}

	// The snapshot is a copy.
	snap.Obstacles[0].Pos.X = 0
	if m.Session().Obstacles()[0].Pos.X != 300 {
		t.Error("modifying a snapshot changed the session")
	}
}
