// Package config provides YAML-based configuration loading for duosweeper:
// difficulty presets, question rewards, storage, SSH server and logging.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Presets   []PresetConfig  `yaml:"presets"`
	Questions QuestionsConfig `yaml:"questions"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`

	// Source names where the config came from: a file path, "embedded" or "default".
	Source string `yaml:"-"`
}

// PresetConfig defines one named difficulty.
type PresetConfig struct {
	Name           string `yaml:"name"`
	Rows           int    `yaml:"rows"`
	Cols           int    `yaml:"cols"`
	Mines          int    `yaml:"mines"`
	Questions      int    `yaml:"questions"`
	Surprises      int    `yaml:"surprises"`
	Lives          int    `yaml:"lives"`
	PowerCost      int    `yaml:"power_cost"`
	SurprisePoints int    `yaml:"surprise_points"`
}

// QuestionsConfig selects the question bank and how answers pay out.
type QuestionsConfig struct {
	BankPath string                `yaml:"bank_path"` // empty = built-in bank
	Rewards  map[string]RuleConfig `yaml:"rewards"`   // keyed by question difficulty
}

// RuleConfig is the outcome of a right and a wrong answer.
type RuleConfig struct {
	Correct EffectConfig `yaml:"correct"`
	Wrong   EffectConfig `yaml:"wrong"`
}

// EffectConfig is a lives and score change.
type EffectConfig struct {
	Lives int `yaml:"lives"`
	Score int `yaml:"score"`
}

// StorageConfig locates the match history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // empty = ~/.duosweeper/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
