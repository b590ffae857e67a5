package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

func newMatchBoards(t *testing.T) (*core.Board, *core.Board) {
	t.Helper()
	b1 := buildBoard(t,
		"*...",
		"....",
		"..?*",
	)
	b2 := buildBoard(t,
		"...*",
		"!...",
		"....",
	)
	return b1, b2
}

func TestCoordinatorStartsWithPlayer1(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	c := core.NewCoordinator(core.NewEconomy(core.Easy), b1, b2)

	assert.Equal(t, core.PhasePlayer1Active, c.Phase())
	assert.Equal(t, core.Player1, c.Active())
	assert.Equal(t, core.OutcomeNone, c.Outcome())
	assert.Same(t, b1, c.Board(core.Player1))
	assert.Same(t, b2, c.Board(core.Player2))
	assert.Nil(t, c.Board(core.Player(7)))
}

func TestCoordinatorExclusivity(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	e := core.NewEconomy(core.Easy)
	c := core.NewCoordinator(e, b1, b2)

	_, err := c.Open(core.Player2, core.P(0, 0))
	assert.ErrorIs(t, err, core.ErrNotYourTurn)
	_, err = c.ToggleFlag(core.Player2, core.P(0, 0))
	assert.ErrorIs(t, err, core.ErrNotYourTurn)
	_, err = c.Activate(core.Player2, core.P(1, 0), core.SurpriseEffect{})
	assert.ErrorIs(t, err, core.ErrNotYourTurn)

	assert.Equal(t, 0, b2.RevealedCount())
	assert.False(t, cellAt(t, b2, 0, 0).Flagged())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, core.Player1, c.Active())

	_, err = c.Open(core.Player(3), core.P(0, 0))
	assert.Error(t, err)
}

func TestCoordinatorTurnFlip(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	e := core.NewEconomy(core.Easy)
	c := core.NewCoordinator(e, b1, b2)

	res, err := c.Open(core.Player1, core.P(0, 1))
	require.NoError(t, err)
	require.True(t, res.Changed())
	assert.Equal(t, core.Player2, c.Active())
	assert.Equal(t, 1, b1.RevealedCount())
	assert.Equal(t, 0, b2.RevealedCount())

	changed, err := c.ToggleFlag(core.Player2, core.P(0, 3))
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, core.Player1, c.Active())
	assert.Equal(t, 2, c.Turns())
}

func TestCoordinatorNoopKeepsTurn(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	c := core.NewCoordinator(core.NewEconomy(core.Easy), b1, b2)

	_, err := c.Open(core.Player1, core.P(0, 1))
	require.NoError(t, err)
	_, err = c.Open(core.Player2, core.P(0, 2))
	require.NoError(t, err)

	// Player 1 reopens a revealed cell: nothing happens.
	res, err := c.Open(core.Player1, core.P(0, 1))
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Equal(t, core.Player1, c.Active())

	_, err = c.Open(core.Player1, core.P(5, 5))
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Equal(t, core.Player1, c.Active())
	assert.Equal(t, 2, c.Turns())
}

func TestCoordinatorFailedActivationKeepsTurn(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	e := core.NewEconomy(core.Easy)
	c := core.NewCoordinator(e, b1, b2)

	_, err := c.Open(core.Player1, core.P(2, 2))
	require.NoError(t, err)
	_, err = c.Open(core.Player2, core.P(0, 2))
	require.NoError(t, err)
	require.Equal(t, core.Player1, c.Active())
	require.True(t, c.CanActivate(core.Player1, core.P(2, 2)))
	require.False(t, c.CanActivate(core.Player2, core.P(1, 0)), "not player 2's turn")

	used, err := c.Activate(core.Player1, core.P(2, 2), core.QuestionEffect{Score: 3})
	assert.ErrorIs(t, err, core.ErrInsufficientFunds)
	assert.False(t, used)
	assert.Equal(t, core.Player1, c.Active())

	// Wrong kind of effect: rejected, still player 1.
	used, err = c.Activate(core.Player1, core.P(2, 2), core.SurpriseEffect{Good: true})
	require.NoError(t, err)
	assert.False(t, used)
	assert.Equal(t, core.Player1, c.Active())
}

func TestCoordinatorSuccessfulActivationFlips(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	e := core.NewEconomy(core.Easy)
	e.UpdateScore(10)
	c := core.NewCoordinator(e, b1, b2)

	_, err := c.Open(core.Player1, core.P(2, 2))
	require.NoError(t, err)
	_, err = c.Open(core.Player2, core.P(1, 0))
	require.NoError(t, err)
	_, err = c.Open(core.Player1, core.P(1, 1))
	require.NoError(t, err)
	require.Equal(t, core.Player2, c.Active())

	used, err := c.Activate(core.Player2, core.P(1, 0), core.SurpriseEffect{Good: false})
	require.NoError(t, err)
	assert.True(t, used)
	assert.Equal(t, core.Player1, c.Active())
	assert.Equal(t, 9, e.Lives())
	assert.Equal(t, 13-5-8, e.Score())
}

func TestCoordinatorGameOverLost(t *testing.T) {
	b1, b2 := newMatchBoards(t)
	e := economyWith(t, core.Easy, 0, 1)
	c := core.NewCoordinator(e, b1, b2)

	res, err := c.Open(core.Player1, core.P(0, 0))
	require.NoError(t, err)
	require.True(t, res.HitMine())

	assert.True(t, c.GameOver())
	assert.Equal(t, core.PhaseGameOver, c.Phase())
	assert.Equal(t, core.OutcomeLost, c.Outcome())
	assert.Equal(t, core.Player(0), c.Active())

	_, err = c.Open(core.Player2, core.P(0, 0))
	assert.ErrorIs(t, err, core.ErrGameOver)
	_, err = c.Open(core.Player1, core.P(0, 1))
	assert.ErrorIs(t, err, core.ErrGameOver)
	_, err = c.ToggleFlag(core.Player2, core.P(0, 0))
	assert.ErrorIs(t, err, core.ErrGameOver)
	assert.False(t, c.CanActivate(core.Player1, core.P(2, 2)))
	assert.Equal(t, 1, b1.RevealedCount())
	assert.Equal(t, 0, b2.RevealedCount())
}

func TestCoordinatorGameOverWon(t *testing.T) {
	b1 := buildBoard(t, "*.")
	b2 := buildBoard(t, "...", "..*")
	c := core.NewCoordinator(core.NewEconomy(core.Easy), b1, b2)

	_, err := c.Open(core.Player1, core.P(0, 1))
	require.NoError(t, err)

	assert.True(t, c.GameOver())
	assert.Equal(t, core.OutcomeWon, c.Outcome())
	assert.Equal(t, "won", c.Outcome().String())
}
