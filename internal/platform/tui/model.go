package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-quad/internal/config"
	"github.com/vovakirdan/flappy-quad/internal/core"
	"github.com/vovakirdan/flappy-quad/internal/flappy"
	"github.com/vovakirdan/flappy-quad/internal/replay"
)

// Options configures a play session.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig

	// Saver stores the recorded run on quit. Nil disables recording storage.
	Saver replay.Saver
	// Logger receives session summaries after the program exits.
	Logger *log.Logger
	// ScreenshotDir defaults to ~/.flappy/screenshots.
	ScreenshotDir string
}

// Result describes a finished play session.
type Result struct {
	Seed     int64
	Score    float64 // Score shown when the player quit
	Frames   int
	Episodes int   // Number of deaths
	ReplayID int64 // Zero if the run was not stored
}

// Model is the Bubble Tea model driving one game machine.
type Model struct {
	machine  *flappy.Machine
	screen   *core.Screen
	recorder *replay.Recorder
	opts     Options
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	lastTick time.Time
	width    int
	height   int
	episodes *int
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for a play session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}

	machine := flappy.New(opts.Game, flappy.NewSeededSource(opts.Runtime.Seed))
	episodes := new(int)
	machine.OnTransition(func(_, to flappy.State) {
		if to == flappy.StateDead {
			*episodes++
		}
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		machine:  machine,
		screen:   core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		recorder: replay.NewRecorder(opts.Game, opts.Runtime.Seed, opts.Runtime.TickRate),
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
		episodes: episodes,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation frame with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDT(m.lastTick, now, m.opts.Runtime.FrameInterval())
	m.lastTick = now

	m.machine.Step(dt, m.input)
	m.recorder.Record(dt, m.input)

	// Input is edge-triggered: clear for next frame
	m.input.Clear()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.machine.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// footer renders the help bar and the latest status message.
func (m Model) footer() string {
	bar := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, "  ", statusStyle.Render(m.status))
	}
	return bar
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(footer), 0))
	m.machine.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// Result summarizes the session and the recording it produced.
func (m Model) Result() (Result, replay.Recording) {
	rec := m.recorder.Finish(m.machine.Snapshot())
	return Result{
		Seed:     rec.Seed,
		Score:    rec.Score,
		Frames:   len(rec.Frames),
		Episodes: *m.episodes,
	}, rec
}

// Run starts the Bubble Tea program and stores the recorded run on exit.
func Run(opts Options) (Result, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}

	res, rec := m.Result()
	opts.Logger.Info("session ended",
		"score", flappy.FormatScore(res.Score),
		"deaths", res.Episodes,
		"frames", res.Frames,
	)

	if opts.Saver == nil || res.Frames == 0 {
		return res, nil
	}

	id, err := opts.Saver.SaveRecording(rec)
	if err != nil {
		// The game already ran; losing the replay is not fatal
		opts.Logger.Warn("could not save replay", "error", err)
		return res, nil
	}
	res.ReplayID = id
	opts.Logger.Info("replay saved", "id", id, "seed", res.Seed)

	return res, nil
}
