package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

// buildBoard creates a board from an ASCII layout:
// '*' mine, '?' question, '!' surprise, anything else empty.
func buildBoard(t *testing.T, layout ...string) *core.Board {
	t.Helper()
	require.NotEmpty(t, layout)

	b, err := core.NewBoard(len(layout), len(layout[0]))
	require.NoError(t, err)

	for r, row := range layout {
		require.Len(t, row, len(layout[0]), "ragged layout row %d", r)
		for c, ch := range row {
			var kind core.Kind
			switch ch {
			case '*':
				kind = core.KindMine
			case '?':
				kind = core.KindQuestion
			case '!':
				kind = core.KindSurprise
			default:
				continue
			}
			require.NoError(t, b.Seed(core.P(r, c), kind))
		}
	}
	core.ComputeAdjacency(b)
	return b
}

// cellAt fetches a cell and fails the test on error.
func cellAt(t *testing.T, b *core.Board, r, c int) core.Cell {
	t.Helper()
	cell, err := b.Cell(core.P(r, c))
	require.NoError(t, err)
	return cell
}

// economyWith returns an Easy economy moved to the given score and lives
// using only public operations.
func economyWith(t *testing.T, d core.Difficulty, score, lives int) *core.Economy {
	t.Helper()
	e := core.NewEconomy(d)
	e.ChangeLives(lives - e.Lives())
	e.UpdateScore(score - e.Score())
	require.Equal(t, score, e.Score())
	require.Equal(t, lives, e.Lives())
	return e
}
