package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duosweeper/internal/config"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/questions"
	"github.com/vovakirdan/duosweeper/internal/platform/tui"
)

// env is everything a command needs, built from config and global flags.
type env struct {
	cfg     config.Config
	logger  *log.Logger
	logFile *os.File
	bank    *questions.Bank
	rewards duosweeper.RewardTable
	dbPath  string
}

// loadEnv loads the config and applies global flag overrides.
// defaultLog is where logs go when --log-file is not set.
func loadEnv(defaultLog io.Writer) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", flagTheme)
	}
	tui.SetTheme(theme)

	e := &env{
		cfg:     cfg,
		rewards: cfg.RewardTable(),
		dbPath:  cfg.Storage.Path,
	}
	if flagDBPath != "" {
		e.dbPath = flagDBPath
	}

	out := defaultLog
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		e.logFile = f
		out = f
	}
	e.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "duosweeper",
		Level:           level,
	})
	e.logger.Debug("config loaded", "source", cfg.Source)

	e.bank, err = loadBank(cfg.Questions.BankPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// loadBank reads the configured bank, or the built-in one when path is empty.
func loadBank(path string) (*questions.Bank, error) {
	if path == "" {
		return questions.Default()
	}
	return questions.Load(path)
}

// Close releases the log file, if any.
func (e *env) Close() {
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// matchOptions returns the template for matches started by this process.
func (e *env) matchOptions(host string) duosweeper.Options {
	return duosweeper.Options{
		Seed:    flagSeed,
		Bank:    e.bank,
		Rewards: e.rewards,
		Logger:  e.logger,
		Host:    host,
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
