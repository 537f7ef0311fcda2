package flappy

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

const frameDT = 1.0 / 60

func TestMachineStartsInMenu(t *testing.T) {
	m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))

	for i := 0; i < 1000; i++ {
		res := m.Step(frameDT, core.NewInputFrame())
		if res.Transitioned {
			t.Fatalf("frame %d: left the menu without input", i)
		}
	}

	if m.State() != StateMainMenu {
		t.Errorf("state = %v, want MainMenu", m.State())
	}
	if p := m.Session().Player(); p.Pos != core.NewVec2(100, 100) || p.Velocity != 0 {
		t.Errorf("player moved in the menu: pos=%+v vel=%v", p.Pos, p.Velocity)
	}
	if m.Frame() != 1000 {
		t.Errorf("frame = %d, want 1000", m.Frame())
	}
}

func TestMachineConfirmActions(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want State
	}{
		{"none", core.NewInputFrame(), StateMainMenu},
		{"jump", core.InputOf(core.ActionJump), StatePlaying},
		{"confirm", core.InputOf(core.ActionConfirm), StatePlaying},
		{"quit", core.InputOf(core.ActionQuit), StateMainMenu},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))
			res := m.Step(frameDT, tc.in)

			if res.State != tc.want {
				t.Errorf("state = %v, want %v", res.State, tc.want)
			}
			if res.Transitioned != (tc.want != StateMainMenu) {
				t.Errorf("Transitioned = %v", res.Transitioned)
			}
			if res.Transitioned && res.From != StateMainMenu {
				t.Errorf("From = %v, want MainMenu", res.From)
			}
		})
	}
}

func TestMachineConfirmFrameDoesNotSimulate(t *testing.T) {
	m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))

	m.Step(frameDT, core.InputOf(core.ActionJump))

	if v := m.Session().Player().Velocity; v != 0 {
		t.Errorf("velocity = %v, the start frame should not run physics", v)
	}
}

// playUntilDead steps without input until the player dies or max frames pass.
// It reports whether any obstacle existed while playing.
func playUntilDead(t *testing.T, m *Machine, maxFrames int) (sawObstacles bool) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if len(m.Session().Obstacles()) > 0 {
			sawObstacles = true
		}
		if res := m.Step(frameDT, core.NewInputFrame()); res.State == StateDead {
			if !res.Transitioned || res.From != StatePlaying {
				t.Fatalf("bad death result %+v", res)
			}
			return sawObstacles
		}
	}
	t.Fatalf("player still alive after %d frames", maxFrames)
	return false
}

func TestMachineFullCycle(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Spawn.InitialTimer = 175 // first pair after five frames

	m := New(cfg, newScriptedSource(140, 100))

	if res := m.Step(frameDT, core.InputOf(core.ActionConfirm)); res.State != StatePlaying {
		t.Fatalf("confirm did not start play: %+v", res)
	}

	if !playUntilDead(t, m, 600) {
		t.Fatal("expected obstacles to spawn before death")
	}

	s := m.Session()
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles not cleared on death: %d", len(s.Obstacles()))
	}
	if s.Player().Pos != core.NewVec2(100, 100) {
		t.Errorf("player at %+v, want respawned", s.Player().Pos)
	}
	if s.Speed() != cfg.Physics.BaseSpeed {
		t.Errorf("speed = %v, want base", s.Speed())
	}
	if msg := m.Snapshot().Message(); msg != "You died. Final score: 0" {
		t.Errorf("dead message = %q", msg)
	}

	// Dead waits for confirmation.
	for i := 0; i < 100; i++ {
		m.Step(frameDT, core.NewInputFrame())
	}
	if m.State() != StateDead {
		t.Fatalf("state = %v, want Dead until confirmed", m.State())
	}

	res := m.Step(frameDT, core.InputOf(core.ActionJump))
	if res.State != StatePlaying || res.From != StateDead {
		t.Fatalf("restart result %+v", res)
	}
	if s.Score() != 0 {
		t.Errorf("score = %v after restart", s.Score())
	}
	if !s.Player().Alive || s.Player().Velocity != 0 {
		t.Errorf("player alive=%v vel=%v after restart", s.Player().Alive, s.Player().Velocity)
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("restart should begin with no obstacles, got %d", len(s.Obstacles()))
	}

	// The next episode dies again the same way.
	playUntilDead(t, m, 600)
}

func TestMachineFloorDeathInOneStep(t *testing.T) {
	m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))
	m.Step(frameDT, core.InputOf(core.ActionConfirm))

	// A single huge step carries the player past the floor.
	res := m.Step(10, core.NewInputFrame())
	if res.State != StateDead || !res.Transitioned || res.From != StatePlaying {
		t.Fatalf("large dt step = %+v, want Playing -> Dead", res)
	}

	s := m.Session()
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles = %d after death, want none", len(s.Obstacles()))
	}

	res = m.Step(frameDT, core.InputOf(core.ActionConfirm))
	if res.State != StatePlaying || res.From != StateDead {
		t.Fatalf("restart result %+v", res)
	}
	if s.Score() != 0 {
		t.Errorf("score = %v after restart, want 0", s.Score())
	}
	if !s.Player().Alive {
		t.Error("player should be alive after restart")
	}
}

func TestMachineTransitionObservers(t *testing.T) {
	m := New(config.DefaultFlappyConfig(), newScriptedSource(140, 100))

	type edge struct{ from, to State }
	var got []edge
	m.OnTransition(func(from, to State) {
		got = append(got, edge{from, to})
	})

	m.Step(frameDT, core.InputOf(core.ActionConfirm))
	playUntilDead(t, m, 600)
	m.Step(frameDT, core.InputOf(core.ActionConfirm))

	want := []edge{
		{StateMainMenu, StatePlaying},
		{StatePlaying, StateDead},
		{StateDead, StatePlaying},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("transitions = %v, want %v", got, want)
	}
}

func TestMachineDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical frames.
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() []Snapshot {
		m := New(config.DefaultFlappyConfig(), NewSeededSource(12345))
		snaps := make([]Snapshot, 0, len(inputs))
		for _, in := range inputs {
			m.Step(frameDT, in)
			snaps = append(snaps, m.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("frame %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}
