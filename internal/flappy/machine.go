// Package flappy implements the simulation core of a Flappy Bird-style game.
// The player falls under gravity, flaps on input and must pass through the
// gaps of procedurally spawned obstacle pairs. The package has no terminal or
// timing dependencies: a driver supplies elapsed time and input each frame.
package flappy

import (
	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateDead
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// TransitionFunc observes state changes.
type TransitionFunc func(from, to State)

// StepResult is returned by Machine.Step after each frame.
type StepResult struct {
	State        State
	Transitioned bool  // Whether this frame changed the state
	From         State // Previous state when Transitioned
}

// Machine is the MainMenu -> Playing -> Dead -> Playing controller.
// It owns the session and decides which subsystem runs each frame.
type Machine struct {
	state     State
	session   *Session
	frame     uint64
	observers []TransitionFunc
}

// New creates a machine in the main menu.
func New(cfg config.FlappyConfig, rng RandomSource) *Machine {
	return &Machine{
		state:   StateMainMenu,
		session: NewSession(cfg, rng),
	}
}

// OnTransition registers fn to be called after every state change.
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.observers = append(m.observers, fn)
}

// Step advances the game by one frame of dt seconds.
// Either a jump or a confirm action counts as confirm in the menus.
func (m *Machine) Step(dt float64, in core.InputFrame) StepResult {
	m.frame++
	from := m.state

	switch m.state {
	case StateMainMenu:
		if confirmed(in) {
			m.transition(StatePlaying)
		}

	case StatePlaying:
		if !m.session.Update(dt, in.Has(core.ActionJump)) {
			m.session.EndEpisode()
			m.transition(StateDead)
		}

	case StateDead:
		if confirmed(in) {
			m.session.Restart()
			m.transition(StatePlaying)
		}
	}

	return StepResult{
		State:        m.state,
		Transitioned: m.state != from,
		From:         from,
	}
}

// transition switches state and notifies observers.
func (m *Machine) transition(to State) {
	from := m.state
	m.state = to
	for _, fn := range m.observers {
		fn(from, to)
	}
}

// confirmed reports whether the frame carries a menu confirmation.
func confirmed(in core.InputFrame) bool {
	return in.Has(core.ActionConfirm) || in.Has(core.ActionJump)
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Session returns the machine's session for read-only inspection.
func (m *Machine) Session() *Session {
	return m.session
}

// Frame returns the number of frames stepped so far.
func (m *Machine) Frame() uint64 {
	return m.frame
}
