package core

import "fmt"

// Economy holds the score and life pool shared by both boards of a match.
// All mutation goes through its methods.
type Economy struct {
	score      int
	lives      int
	difficulty Difficulty
}

// NewEconomy starts a match economy with zero score and the preset's lives.
func NewEconomy(d Difficulty) *Economy {
	e := &Economy{difficulty: d}
	e.ChangeLives(d.StartingLives)
	return e
}

// Score returns the current score.
func (e *Economy) Score() int { return e.score }

// Lives returns the remaining lives.
func (e *Economy) Lives() int { return e.lives }

// Difficulty returns the preset the economy was created with.
func (e *Economy) Difficulty() Difficulty { return e.difficulty }

// UpdateScore adds delta to the score. The score is unbounded.
func (e *Economy) UpdateScore(delta int) {
	e.score += delta
}

// DecreaseLives removes one life.
func (e *Economy) DecreaseLives() {
	e.ChangeLives(-1)
}

// IncreaseLives adds one life.
func (e *Economy) IncreaseLives() {
	e.ChangeLives(1)
}

// ChangeLives adds delta to the life pool. Lives above MaxLives are stripped
// and paid out as PowerCost points each. There is no floor at zero.
func (e *Economy) ChangeLives(delta int) {
	e.lives += delta
	if excess := e.lives - MaxLives; excess > 0 {
		e.lives = MaxLives
		e.score += excess * e.difficulty.PowerCost
	}
}

// IsOutOfLives returns true when the life pool is exhausted.
func (e *Economy) IsOutOfLives() bool {
	return e.lives <= 0
}

// CanPayForPower returns true if the score covers one power activation.
func (e *Economy) CanPayForPower() bool {
	return e.score >= e.difficulty.PowerCost
}

// PayForPower deducts the power cost, or fails without touching the score.
func (e *Economy) PayForPower() error {
	if !e.CanPayForPower() {
		return fmt.Errorf("%w: score %d, cost %d", ErrInsufficientFunds, e.score, e.difficulty.PowerCost)
	}
	e.score -= e.difficulty.PowerCost
	return nil
}

// ApplyEffect changes lives, then score.
func (e *Economy) ApplyEffect(livesDelta, scoreDelta int) {
	e.ChangeLives(livesDelta)
	e.UpdateScore(scoreDelta)
}

// ApplySurprise pays the power cost, then a good surprise grants a life and
// SurprisePoints while a bad one takes them away. Nothing changes if the
// payment fails.
func (e *Economy) ApplySurprise(good bool) error {
	if err := e.PayForPower(); err != nil {
		return err
	}
	if good {
		e.ApplyEffect(1, e.difficulty.SurprisePoints)
	} else {
		e.ApplyEffect(-1, -e.difficulty.SurprisePoints)
	}
	return nil
}
