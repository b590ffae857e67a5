package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/questions"
)

// ErrUnknownPreset is returned when a difficulty name is not configured.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// Difficulty converts the preset to a core difficulty.
func (p PresetConfig) Difficulty() core.Difficulty {
	return core.Difficulty{
		Name:           strings.ToLower(p.Name),
		Rows:           p.Rows,
		Cols:           p.Cols,
		MineCount:      p.Mines,
		QuestionCount:  p.Questions,
		SurpriseCount:  p.Surprises,
		StartingLives:  p.Lives,
		PowerCost:      p.PowerCost,
		SurprisePoints: p.SurprisePoints,
	}
}

// Difficulties returns every configured preset in file order.
func (c Config) Difficulties() []core.Difficulty {
	out := make([]core.Difficulty, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Difficulty()
	}
	return out
}

// Difficulty looks up a preset by name, case-insensitively.
func (c Config) Difficulty(name string) (core.Difficulty, error) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p.Difficulty(), nil
		}
	}
	return core.Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// RewardTable converts the configured question rewards.
func (c Config) RewardTable() duosweeper.RewardTable {
	table := make(duosweeper.RewardTable, len(c.Questions.Rewards))
	for name, rule := range c.Questions.Rewards {
		table[questions.Difficulty(strings.ToLower(name))] = duosweeper.RewardRule{
			Correct: duosweeper.Reward{Lives: rule.Correct.Lives, Score: rule.Correct.Score},
			Wrong:   duosweeper.Reward{Lives: rule.Wrong.Lives, Score: rule.Wrong.Score},
		}
	}
	return table
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: %w", err)
	}
	return level, nil
}

// Validate checks presets, reward keys and the log level.
func (c Config) Validate() error {
	if len(c.Presets) == 0 {
		return errors.New("no difficulty presets")
	}
	seen := make(map[string]bool, len(c.Presets))
	for _, p := range c.Presets {
		name := strings.ToLower(p.Name)
		if name == "" {
			return errors.New("preset without a name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate preset %q", name)
		}
		seen[name] = true
		if err := p.Difficulty().Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}
	}
	for name := range c.Questions.Rewards {
		if !questions.Difficulty(strings.ToLower(name)).Valid() {
			return fmt.Errorf("rewards: unknown question difficulty %q", name)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
