package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-quad/internal/core"
	"github.com/vovakirdan/flappy-quad/internal/flappy"
	"github.com/vovakirdan/flappy-quad/internal/platform/tui"
	"github.com/vovakirdan/flappy-quad/internal/replay"
	"github.com/vovakirdan/flappy-quad/internal/storage"
)

var (
	flagLimit  int
	flagPlain  bool
	flagWidth  int
	flagHeight int
	flagFile   string
	flagExport string
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `Show the recorded runs stored in the replays database.

In a terminal this opens an interactive browser: Enter re-runs the
selected replay and checks its score, D deletes it. With --plain, or
when output is not a terminal, a table is printed instead.

Examples:
  flappy replays
  flappy replays --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Re-run a recorded run headlessly",
	Long: `Re-run a stored replay without a terminal UI, log every state change,
print the final frame and verify that the recomputed score matches
the recorded one. Exits non-zero on a mismatch.

A replay can also be exported to a portable file with --export and
re-run from that file later with --file.

Examples:
  flappy replay 3
  flappy replay 3 --width 100 --height 30
  flappy replay 3 --export best.flpr
  flappy replay --file best.flpr`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive browser")

	replayCmd.Flags().IntVar(&flagWidth, "width", 80, "Width of the printed final frame")
	replayCmd.Flags().IntVar(&flagHeight, "height", 24, "Height of the printed final frame")
	replayCmd.Flags().StringVar(&flagFile, "file", "", "Re-run a replay file instead of a stored replay")
	replayCmd.Flags().StringVar(&flagExport, "export", "", "Write the replay to a file before re-running it")
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open replays database", "path", flagDBPath, "error", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunBrowser(store, width, height, flagLimit); err != nil {
			logger.Error("replay browser failed", "error", err)
		}
		return
	}

	entries, err := store.ListReplays(flagLimit)
	if err != nil {
		logger.Error("could not list replays", "error", err)
		return
	}
	printReplayTable(os.Stdout, entries)
}

// printReplayTable writes entries as a bordered table.
func printReplayTable(w io.Writer, entries []storage.ReplayEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No replays recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to record one!")
		return
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Score", "Seed", "Frames", "Length", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, e := range entries {
		t.Row(tui.ReplayRow(e)...)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'flappy replay <id>' to re-run one.")
}

func runReplay(_ *cobra.Command, args []string) {
	rec, name, err := loadRecording(args)
	if err != nil {
		logger.Fatal("could not load replay", "replay", name, "error", err)
	}

	if flagExport != "" {
		if err := replay.WriteFile(flagExport, rec); err != nil {
			logger.Fatal("could not export replay", "path", flagExport, "error", err)
		}
		logger.Info("replay exported", "replay", name, "path", flagExport)
	}

	logger.Info("re-running replay", "replay", name, "seed", rec.Seed, "frames", len(rec.Frames))

	snap, verifyErr := replay.Verify(rec, func(from, to flappy.State) {
		logger.Info("transition", "from", from, "to", to)
	})

	printFinalFrame(os.Stdout, snap, flagWidth, flagHeight)

	if verifyErr != nil {
		logger.Fatal("replay did not reproduce", "replay", name, "error", verifyErr)
	}
	logger.Info("replay verified", "replay", name, "score", flappy.FormatScore(replay.ScoreOf(snap)), "frames", snap.Frame)
}

// loadRecording reads the recording named by --file or by a stored replay id.
func loadRecording(args []string) (replay.Recording, string, error) {
	switch {
	case flagFile != "" && len(args) > 0:
		return replay.Recording{}, args[0], errors.New("give either a replay id or --file, not both")
	case flagFile != "":
		rec, err := replay.ReadFile(flagFile)
		return rec, flagFile, err
	case len(args) == 0:
		return replay.Recording{}, "", errors.New("a replay id or --file is required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return replay.Recording{}, args[0], errors.New("replay id must be a number")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return replay.Recording{}, args[0], err
	}
	defer store.Close()

	rec, err := store.Recording(id)
	return rec, "#" + args[0], err
}

// printFinalFrame renders a snapshot and a short summary.
func printFinalFrame(w io.Writer, snap flappy.Snapshot, width, height int) {
	screen := core.NewScreen(width, height)
	flappy.Render(screen, snap)

	fmt.Fprintln(w, tui.RenderScreen(screen))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "State: %s\n", snap.State)
	fmt.Fprintf(w, "Score: %s\n", flappy.FormatScore(replay.ScoreOf(snap)))
	fmt.Fprintf(w, "Frames: %d\n", snap.Frame)
}
