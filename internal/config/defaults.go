package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/duosweeper.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It mirrors the embedded
// defaults/duosweeper.yaml and is used if that file cannot be parsed.
func Default() Config {
	return Config{
		Presets: []PresetConfig{
			{Name: "easy", Rows: 9, Cols: 9, Mines: 10, Questions: 6, Surprises: 2, Lives: 10, PowerCost: 5, SurprisePoints: 8},
			{Name: "medium", Rows: 13, Cols: 13, Mines: 26, Questions: 7, Surprises: 3, Lives: 8, PowerCost: 8, SurprisePoints: 12},
			{Name: "hard", Rows: 16, Cols: 16, Mines: 44, Questions: 11, Surprises: 4, Lives: 6, PowerCost: 12, SurprisePoints: 16},
		},
		Questions: QuestionsConfig{
			Rewards: map[string]RuleConfig{
				"easy": {
					Correct: EffectConfig{Score: 3},
					Wrong:   EffectConfig{Score: -3},
				},
				"medium": {
					Correct: EffectConfig{Lives: 1, Score: 6},
					Wrong:   EffectConfig{Score: -6},
				},
				"hard": {
					Correct: EffectConfig{Lives: 1, Score: 10},
					Wrong:   EffectConfig{Lives: -1, Score: -10},
				},
			},
		},
		Storage: StorageConfig{
			Path: "~/.duosweeper/history.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
