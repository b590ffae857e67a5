package core

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("core: cell out of bounds")

	// ErrInvalidConfiguration is returned when a difficulty cannot produce a board.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")

	// ErrInsufficientFunds is returned when the score cannot cover the power cost.
	ErrInsufficientFunds = errors.New("core: insufficient funds")

	// ErrNotYourTurn is returned when a player acts on a board while the other player is active.
	ErrNotYourTurn = errors.New("core: not your turn")

	// ErrGameOver is returned for any mutation after the match has ended.
	ErrGameOver = errors.New("core: game over")
)
