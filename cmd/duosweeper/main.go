// duosweeper is a two-player, two-board minesweeper for the terminal.
//
// Usage:
//
//	duosweeper play [difficulty]  - Play a hot-seat match (menu if no difficulty)
//	duosweeper serve              - Host hot-seat sessions over SSH
//	duosweeper history            - Browse or print finished matches
//	duosweeper presets            - List difficulty presets
//	duosweeper questions [path]   - Validate and summarize a question bank
//	duosweeper config             - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.duosweeper, ./configs, embedded)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: storage.path from config)
//	--log-level <lvl>   - debug, info, warn, error (default: log.level from config)
//	--log-file <path>   - Write logs to a file
//	--theme <name>      - default or mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagTheme    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duosweeper",
	Short: "DuoSweeper - two boards, one pool of lives",
	Long: `DuoSweeper is a hot-seat minesweeper for two players in one terminal.
Each player clears their own board, but score and lives are shared, and
only the player whose turn it is may touch their board.

Question (?) and Surprise (!) tiles can be activated once revealed:
a Surprise is a coin flip, a Question asks a multiple-choice question
that pays out according to its difficulty.

Available commands:
  play       - Start a match (difficulty menu if none given)
  serve      - Start SSH server for remote play
  history    - View finished matches and stats
  presets    - Show difficulty presets
  questions  - Validate a question bank
  config     - Print the default configuration

Examples:
  duosweeper play
  duosweeper play hard --seed 42
  duosweeper serve --ssh :2222
  duosweeper history --top easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(configCmd)
}
