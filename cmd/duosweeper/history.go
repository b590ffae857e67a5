package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duosweeper/internal/platform/tui"
	"github.com/vovakirdan/duosweeper/internal/storage"
)

var (
	flagHistoryTop   string
	flagHistoryStats bool
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished matches",
	Long: `Browse finished matches. In a terminal this opens the history screen;
with --plain, or when output is not a terminal, recent matches are printed.

Examples:
  duosweeper history
  duosweeper history --plain --limit 5
  duosweeper history --top hard
  duosweeper history --stats
  duosweeper history --clear easy`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryTop, "top", "", "Print the best matches of a difficulty")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Print per-difficulty statistics")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to print")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print instead of opening the history screen")
	historyCmd.Flags().StringVar(&flagHistoryClear, "clear", "", "Delete all matches of a difficulty")
}

func runHistory(_ *cobra.Command, _ []string) {
	e, err := loadEnv(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	store, err := storage.Open(e.dbPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	switch {
	case flagHistoryClear != "":
		if err := store.ClearMatches(flagHistoryClear); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared %s matches.\n", flagHistoryClear)

	case flagHistoryTop != "":
		matches, err := store.TopScores(flagHistoryTop, flagHistoryLimit)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Best Matches - %s\n\n", flagHistoryTop)
		printMatches(os.Stdout, matches, false)

	case flagHistoryStats:
		stats, err := store.AllStats()
		if err != nil {
			fail("%v", err)
		}
		printStats(os.Stdout, stats)

	case flagHistoryPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		matches, err := store.RecentMatches(flagHistoryLimit)
		if err != nil {
			fail("%v", err)
		}
		fmt.Print("Recent Matches\n\n")
		printMatches(os.Stdout, matches, true)

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, e.cfg.Difficulties(), width, height); err != nil {
			fail("%v", err)
		}
	}
}

func printMatches(w io.Writer, matches []storage.MatchRecord, withDifficulty bool) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'duosweeper play' to record the first one!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-5s  %-5s  %-6s  %-12s  %s\n",
		"Rank", "Level", "Score", "Lives", "Turns", "Result", "Host", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-5s  %-5s  %-6s  %-12s  %s\n",
		"----", "-----", "-----", "-----", "-----", "------", "----", "----")

	for i, m := range matches {
		level := m.Difficulty
		if !withDifficulty {
			level = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8s  %-6d  %-5d  %-5d  %-6s  %-12s  %s\n",
			i+1, level, m.Score, m.Lives, m.Turns, m.Outcome, m.Host,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(w io.Writer, stats map[string]*storage.DifficultyStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		return
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "  %-8s  %-7s  %-5s  %-6s  %-5s  %-9s  %s\n",
		"Level", "Matches", "Wins", "Rate", "Best", "Avg score", "Last played")
	for _, name := range names {
		st := stats[name]
		fmt.Fprintf(w, "  %-8s  %-7d  %-5d  %5.0f%%  %-5d  %-9.1f  %s\n",
			name, st.Matches, st.Wins, st.WinRate()*100, st.HighScore, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
