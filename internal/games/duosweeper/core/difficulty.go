// Package core provides the rules of DuoSweeper: board generation, the reveal
// cascade, the shared score/life economy, power tile activation and the turn
// coordinator that arbitrates between the two boards of a match.
// This package is UI-agnostic and deterministic for a given RNG.
package core

import "fmt"

// MaxLives is the upper bound of the shared life pool, independent of difficulty.
const MaxLives = 10

// Difficulty is an immutable set of match parameters.
type Difficulty struct {
	Name           string
	Rows           int
	Cols           int
	MineCount      int
	QuestionCount  int
	SurpriseCount  int
	StartingLives  int
	PowerCost      int
	SurprisePoints int
}

// Built-in presets.
var (
	Easy = Difficulty{
		Name: "easy", Rows: 9, Cols: 9, MineCount: 10,
		QuestionCount: 6, SurpriseCount: 2,
		StartingLives: 10, PowerCost: 5, SurprisePoints: 8,
	}
	Medium = Difficulty{
		Name: "medium", Rows: 13, Cols: 13, MineCount: 26,
		QuestionCount: 7, SurpriseCount: 3,
		StartingLives: 8, PowerCost: 8, SurprisePoints: 12,
	}
	Hard = Difficulty{
		Name: "hard", Rows: 16, Cols: 16, MineCount: 44,
		QuestionCount: 11, SurpriseCount: 4,
		StartingLives: 6, PowerCost: 12, SurprisePoints: 16,
	}
)

// Presets returns the built-in presets ordered from easiest to hardest.
func Presets() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Cells returns the number of cells on a board of this difficulty.
func (d Difficulty) Cells() int {
	return d.Rows * d.Cols
}

// Validate reports ErrInvalidConfiguration if a board cannot be built from d.
func (d Difficulty) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfiguration, d.Rows, d.Cols)
	}
	if d.MineCount < 0 || d.QuestionCount < 0 || d.SurpriseCount < 0 {
		return fmt.Errorf("%w: negative tile count", ErrInvalidConfiguration)
	}
	if d.MineCount >= d.Cells() {
		return fmt.Errorf("%w: %d mines on %d cells", ErrInvalidConfiguration, d.MineCount, d.Cells())
	}
	if d.MineCount+d.QuestionCount+d.SurpriseCount > d.Cells() {
		return fmt.Errorf("%w: %d mines and %d power tiles on %d cells",
			ErrInvalidConfiguration, d.MineCount, d.QuestionCount+d.SurpriseCount, d.Cells())
	}
	if d.PowerCost < 0 {
		return fmt.Errorf("%w: negative power cost", ErrInvalidConfiguration)
	}
	return nil
}

// String returns the preset name, or its dimensions when unnamed.
func (d Difficulty) String() string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("%dx%d/%d", d.Rows, d.Cols, d.MineCount)
}
