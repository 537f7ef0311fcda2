package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-quad/internal/core"
	"github.com/vovakirdan/flappy-quad/internal/flappy"
	"github.com/vovakirdan/flappy-quad/internal/replay"
	"github.com/vovakirdan/flappy-quad/internal/storage"
)

// Replay browser layout constants
const (
	maxReplays     = 100 // Max replays to load when no limit is given
	browserMargins = 8   // Rows used by title, help and borders
)

// ReplayStore is the storage the replay browser reads from.
type ReplayStore interface {
	ListReplays(limit int) ([]storage.ReplayEntry, error)
	Recording(id int64) (replay.Recording, error)
	DeleteReplay(id int64) error
}

// BrowserKeyMap defines the key bindings for the replay browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "re-run"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// verifyDoneMsg carries the outcome of a background re-run.
type verifyDoneMsg struct {
	status string
}

// BrowserModel is the Bubble Tea model for the replay browser.
type BrowserModel struct {
	store    ReplayStore
	limit    int
	entries  []storage.ReplayEntry
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	width    int
	height   int
	status   string
	quitting bool
}

// NewBrowserModel creates a new replay browser showing at most limit replays.
// A non-positive limit falls back to maxReplays.
func NewBrowserModel(store ReplayStore, width, height, limit int) BrowserModel {
	h := help.New()
	h.ShowAll = false

	if limit <= 0 {
		limit = maxReplays
	}

	m := BrowserModel{
		store:  store,
		limit:  limit,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReplays()

	return m
}

// createTable creates a new table sized to the window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Frames", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(m.height-browserMargins, 3, maxReplays)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays refreshes the entries from the store.
func (m *BrowserModel) loadReplays() {
	entries, err := m.store.ListReplays(m.limit)
	if err != nil {
		m.status = err.Error()
		entries = nil
	}
	m.entries = entries
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = ReplayRow(e)
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.GotoBottom()
	}
}

// ReplayRow formats an entry as table cells: id, score, seed, frames, length, date.
func ReplayRow(e storage.ReplayEntry) []string {
	return []string{
		fmt.Sprintf("#%d", e.ID),
		flappy.FormatScore(e.Score),
		strconv.FormatInt(e.Seed, 10),
		strconv.Itoa(e.FrameCount),
		e.Duration.Round(100 * time.Millisecond).String(),
		e.CreatedAt.Format("Jan 02 15:04"),
	}
}

// selected returns the entry under the cursor.
func (m BrowserModel) selected() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplayEntry{}, false
	}
	return m.entries[i], true
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			if e, ok := m.selected(); ok {
				m.status = fmt.Sprintf("re-running replay #%d...", e.ID)
				return m, verifyCmd(m.store, e.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selected(); ok {
				if err := m.store.DeleteReplay(e.ID); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("deleted replay #%d", e.ID)
				}
				m.loadReplays()
			}
			return m, nil
		}

	case verifyDoneMsg:
		m.status = msg.status
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// verifyCmd re-runs a stored replay off the update loop.
func verifyCmd(store ReplayStore, id int64) tea.Cmd {
	return func() tea.Msg {
		return verifyDoneMsg{status: verifyStatus(store, id)}
	}
}

// verifyStatus re-runs a stored replay and describes the outcome.
func verifyStatus(store ReplayStore, id int64) string {
	rec, err := store.Recording(id)
	if err != nil {
		return err.Error()
	}
	snap, err := replay.Verify(rec, nil)
	if err != nil {
		return fmt.Sprintf("replay #%d: %v", id, err)
	}
	return fmt.Sprintf("replay #%d verified: %s after %d frames (%s)",
		id, flappy.FormatScore(replay.ScoreOf(snap)), snap.Frame, snap.State)
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nPlay a game to record one!")
	}

	return m.table.View()
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunBrowser runs the replay browser.
func RunBrowser(store ReplayStore, width, height, limit int) error {
	p := tea.NewProgram(
		NewBrowserModel(store, width, height, limit),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
