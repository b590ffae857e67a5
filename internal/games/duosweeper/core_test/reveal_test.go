package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

func TestOpenNumberCell(t *testing.T) {
	b := buildBoard(t,
		"*....",
		".....",
	)
	e := core.NewEconomy(core.Easy)

	res, err := core.OpenCell(b, core.P(0, 1), e)
	require.NoError(t, err)

	assert.Equal(t, core.KindNumber, res.Kind)
	assert.Equal(t, []core.Pos{core.P(0, 1)}, res.Revealed)
	assert.Equal(t, 1, e.Score())
	assert.Equal(t, 10, e.Lives())
	assert.Equal(t, 1, b.RevealedCount())
}

func TestOpenMine(t *testing.T) {
	b := buildBoard(t,
		"*..",
		"...",
	)
	e := core.NewEconomy(core.Easy)

	res, err := core.OpenCell(b, core.P(0, 0), e)
	require.NoError(t, err)

	assert.True(t, res.HitMine())
	assert.Len(t, res.Revealed, 1)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 9, e.Lives())
	assert.True(t, cellAt(t, b, 0, 0).Revealed())
	assert.False(t, cellAt(t, b, 1, 2).Revealed(), "mines never cascade")
}

func TestCascadeContainment(t *testing.T) {
	b := buildBoard(t,
		"..*..",
		"..*..",
		"..*..",
		"..*..",
		"..*..",
	)
	e := core.NewEconomy(core.Easy)

	res, err := core.OpenCell(b, core.P(0, 0), e)
	require.NoError(t, err)

	assert.Equal(t, core.KindEmpty, res.Kind)
	assert.Len(t, res.Revealed, 10)
	assert.Equal(t, 10, b.RevealedCount())

	for r := 0; r < 5; r++ {
		assert.True(t, cellAt(t, b, r, 0).Revealed(), "empty (%d,0)", r)
		assert.True(t, cellAt(t, b, r, 1).Revealed(), "border number (%d,1)", r)
		assert.Equal(t, core.KindNumber, cellAt(t, b, r, 1).Kind())
		assert.False(t, cellAt(t, b, r, 2).Revealed(), "mine (%d,2)", r)
		assert.False(t, cellAt(t, b, r, 3).Revealed(), "beyond wall (%d,3)", r)
		assert.False(t, cellAt(t, b, r, 4).Revealed(), "beyond wall (%d,4)", r)
	}

	// Flooded cells do not score.
	assert.Equal(t, 1, e.Score())
}

func TestCascadeStopsAtPowerTiles(t *testing.T) {
	b := buildBoard(t,
		"..?..",
		"..!..",
		"..?..",
	)
	e := core.NewEconomy(core.Easy)

	res, err := core.OpenCell(b, core.P(1, 0), e)
	require.NoError(t, err)
	assert.Len(t, res.Revealed, 9)

	assert.True(t, cellAt(t, b, 0, 2).Revealed())
	assert.True(t, cellAt(t, b, 1, 2).Revealed())
	assert.False(t, cellAt(t, b, 1, 2).PowerUsed())
	assert.False(t, cellAt(t, b, 1, 3).Revealed())
	assert.False(t, cellAt(t, b, 0, 4).Revealed())
}

func TestCascadeSkipsFlags(t *testing.T) {
	b := buildBoard(t,
		"....",
		"....",
		"....",
	)
	e := core.NewEconomy(core.Easy)

	changed, err := core.ToggleFlag(b, core.P(1, 1))
	require.NoError(t, err)
	require.True(t, changed)

	res, err := core.OpenCell(b, core.P(0, 0), e)
	require.NoError(t, err)

	assert.Len(t, res.Revealed, 11)
	flagged := cellAt(t, b, 1, 1)
	assert.False(t, flagged.Revealed())
	assert.True(t, flagged.Flagged())
}

func TestOpenIdempotent(t *testing.T) {
	b := buildBoard(t,
		"....*",
		".....",
		".....",
	)
	e := core.NewEconomy(core.Easy)

	first, err := core.OpenCell(b, core.P(2, 0), e)
	require.NoError(t, err)
	require.True(t, first.Changed())
	score, lives, revealed := e.Score(), e.Lives(), b.RevealedCount()

	for _, p := range first.Revealed {
		again, err := core.OpenCell(b, p, e)
		require.NoError(t, err)
		assert.False(t, again.Changed(), "reopen %v", p)
	}

	assert.Equal(t, score, e.Score())
	assert.Equal(t, lives, e.Lives())
	assert.Equal(t, revealed, b.RevealedCount())
}

func TestOpenFlaggedIsNoop(t *testing.T) {
	b := buildBoard(t, "*..")
	e := core.NewEconomy(core.Easy)

	_, err := core.ToggleFlag(b, core.P(0, 0))
	require.NoError(t, err)

	res, err := core.OpenCell(b, core.P(0, 0), e)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Equal(t, 10, e.Lives())
}

func TestOpenOutOfBounds(t *testing.T) {
	b := buildBoard(t, "...", "...")
	e := core.NewEconomy(core.Easy)

	for _, p := range []core.Pos{core.P(-1, 0), core.P(0, -1), core.P(2, 0), core.P(0, 3)} {
		res, err := core.OpenCell(b, p, e)
		assert.ErrorIs(t, err, core.ErrOutOfBounds, "pos %v", p)
		assert.False(t, res.Changed())

		_, err = core.ToggleFlag(b, p)
		assert.ErrorIs(t, err, core.ErrOutOfBounds)

		_, err = b.Cell(p)
		assert.ErrorIs(t, err, core.ErrOutOfBounds)
	}
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, b.RevealedCount())
}

func TestToggleFlag(t *testing.T) {
	b := buildBoard(t, "*..")
	e := core.NewEconomy(core.Easy)

	changed, err := core.ToggleFlag(b, core.P(0, 2))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, cellAt(t, b, 0, 2).Flagged())

	changed, err = core.ToggleFlag(b, core.P(0, 2))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, cellAt(t, b, 0, 2).Flagged())

	_, err = core.OpenCell(b, core.P(0, 1), e)
	require.NoError(t, err)

	changed, err = core.ToggleFlag(b, core.P(0, 1))
	require.NoError(t, err)
	assert.False(t, changed, "revealed cells cannot be flagged")
	assert.False(t, cellAt(t, b, 0, 1).Flagged())
}

func TestCascadeLargeOpenBoard(t *testing.T) {
	b, err := core.NewBoard(300, 300)
	require.NoError(t, err)
	e := core.NewEconomy(core.Hard)

	res, err := core.OpenCell(b, core.P(150, 150), e)
	require.NoError(t, err)

	assert.Len(t, res.Revealed, 300*300)
	assert.True(t, b.Cleared())
	assert.Equal(t, 1, e.Score())
}
