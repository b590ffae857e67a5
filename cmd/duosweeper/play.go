package main

import (
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
	"github.com/vovakirdan/duosweeper/internal/platform/tui"
	"github.com/vovakirdan/duosweeper/internal/storage"
)

var flagNoHistory bool

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a hot-seat match",
	Long: `Start a two-player match in this terminal. Without a difficulty the
difficulty menu is shown first.

Players take turns on their own board. Opening a cell scores a point,
a mine costs a life shared by both players. The turn passes after every
move that changes a board, placing or removing a flag included.

Controls:
  Arrows/hjkl   - Move cursor on the active board
  Space/Enter   - Open cell
  F             - Toggle flag
  A             - Use a revealed ? or ! tile
  1-4           - Answer a question
  Esc           - Skip a question (no cost, turn stays)
  R             - Rematch (after game over)
  B             - Back to menu
  Q/Ctrl+C      - Quit

Examples:
  duosweeper play
  duosweeper play medium
  duosweeper play hard --seed 42
  duosweeper play easy --no-history`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record matches")
}

func runPlay(_ *cobra.Command, args []string) {
	// The TUI owns the terminal, so logs only go to --log-file
	e, err := loadEnv(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	var start *core.Difficulty
	if len(args) == 1 {
		d, err := e.cfg.Difficulty(args[0])
		if err != nil {
			fail("%v\nRun 'duosweeper presets' to see available difficulties.", err)
		}
		start = &d
	}

	var store *storage.Store
	if !flagNoHistory {
		store, err = storage.Open(e.dbPath)
		if err != nil {
			e.logger.Warn("could not open history database", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := tui.SessionConfig{
		Difficulties: e.cfg.Difficulties(),
		Match:        e.matchOptions(localUser()),
		Store:        store,
		Start:        start,
		Width:        width,
		Height:       height,
	}
	if err := tui.RunSession(cfg); err != nil {
		fail("%v", err)
	}
}

// localUser names the host of local matches.
func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
