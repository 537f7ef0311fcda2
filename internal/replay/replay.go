// Package replay records the per-frame input of a run and re-runs it headlessly.
// A run is fully determined by its config, its seed and the recorded frames,
// so re-running a recording reproduces every frame exactly.
package replay

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
	"github.com/vovakirdan/flappy-quad/internal/flappy"
)

// ErrScoreMismatch is returned by Verify when a re-run ends on a different score.
var ErrScoreMismatch = errors.New("replay: recomputed score differs from recorded score")

// Frame is the input for one simulation step.
type Frame struct {
	DT      float64
	Jump    bool
	Confirm bool
}

// FrameOf captures the actions a machine cares about from an input frame.
func FrameOf(dt float64, in core.InputFrame) Frame {
	return Frame{
		DT:      dt,
		Jump:    in.Has(core.ActionJump),
		Confirm: in.Has(core.ActionConfirm),
	}
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	if f.Jump {
		in.Set(core.ActionJump)
	}
	if f.Confirm {
		in.Set(core.ActionConfirm)
	}
	return in
}

// Recording is a complete, replayable run.
type Recording struct {
	Seed     int64
	TickRate int
	Config   config.FlappyConfig
	Frames   []Frame
	Score    float64 // Score shown when the run ended
}

// Saver persists recordings.
type Saver interface {
	SaveRecording(rec Recording) (int64, error)
}

// Recorder accumulates frames while a run is played.
type Recorder struct {
	rec Recording
}

// NewRecorder starts an empty recording for a run with the given parameters.
func NewRecorder(cfg config.FlappyConfig, seed int64, tickRate int) *Recorder {
	return &Recorder{rec: Recording{
		Seed:     seed,
		TickRate: tickRate,
		Config:   cfg,
		Frames:   make([]Frame, 0, 1024),
	}}
}

// Record appends one stepped frame.
func (r *Recorder) Record(dt float64, in core.InputFrame) {
	r.rec.Frames = append(r.rec.Frames, FrameOf(dt, in))
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish returns the recording ended with the given snapshot.
func (r *Recorder) Finish(last flappy.Snapshot) Recording {
	rec := r.rec
	rec.Score = ScoreOf(last)
	return rec
}

// ScoreOf returns the score a player sees in the snapshot's state.
func ScoreOf(snap flappy.Snapshot) float64 {
	if snap.State == flappy.StatePlaying {
		return snap.Score
	}
	return snap.FinalScore
}

// Run re-runs a recording on a fresh machine and returns its final snapshot.
// Observers registered through onTransition see every state change.
func Run(rec Recording, onTransition flappy.TransitionFunc) flappy.Snapshot {
	m := flappy.New(rec.Config, flappy.NewSeededSource(rec.Seed))
	if onTransition != nil {
		m.OnTransition(onTransition)
	}
	for _, f := range rec.Frames {
		m.Step(f.DT, f.Input())
	}
	return m.Snapshot()
}

// Verify re-runs a recording and checks the recorded score.
func Verify(rec Recording, onTransition flappy.TransitionFunc) (flappy.Snapshot, error) {
	snap := Run(rec, onTransition)
	if got := ScoreOf(snap); got != rec.Score {
		return snap, fmt.Errorf("%w: got %s, recorded %s",
			ErrScoreMismatch, flappy.FormatScore(got), flappy.FormatScore(rec.Score))
	}
	return snap, nil
}
