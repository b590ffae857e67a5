package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

// revealed opens p and fails the test if nothing happened.
func revealed(t *testing.T, b *core.Board, e *core.Economy, p core.Pos) {
	t.Helper()
	res, err := core.OpenCell(b, p, e)
	require.NoError(t, err)
	require.True(t, res.Changed())
}

func TestCanActivateSpecial(t *testing.T) {
	b := buildBoard(t,
		"?!*",
		"...",
	)
	e := economyWith(t, core.Easy, 20, 10)

	assert.False(t, core.CanActivateSpecial(b, core.P(0, 0)), "hidden question")
	assert.False(t, core.CanActivateSpecial(b, core.P(9, 9)), "out of bounds")

	revealed(t, b, e, core.P(0, 0))
	revealed(t, b, e, core.P(0, 1))
	revealed(t, b, e, core.P(1, 0))

	assert.True(t, core.CanActivateSpecial(b, core.P(0, 0)))
	assert.True(t, core.CanActivateSpecial(b, core.P(0, 1)))
	assert.False(t, core.CanActivateSpecial(b, core.P(1, 0)), "plain cell")
}

func TestActivateIsOneShot(t *testing.T) {
	b := buildBoard(t, "!..")
	e := economyWith(t, core.Easy, 20, 5)
	revealed(t, b, e, core.P(0, 0))
	score := e.Score()

	used, err := core.Activate(b, core.P(0, 0), e, core.SurpriseEffect{Good: true})
	require.NoError(t, err)
	require.True(t, used)
	assert.Equal(t, 6, e.Lives())
	assert.Equal(t, score-5+8, e.Score())
	assert.True(t, cellAt(t, b, 0, 0).PowerUsed())
	assert.False(t, core.CanActivateSpecial(b, core.P(0, 0)))

	afterScore, afterLives := e.Score(), e.Lives()
	used, err = core.Activate(b, core.P(0, 0), e, core.SurpriseEffect{Good: true})
	require.NoError(t, err)
	assert.False(t, used)
	assert.Equal(t, afterScore, e.Score())
	assert.Equal(t, afterLives, e.Lives())
}

func TestActivateInsufficientFunds(t *testing.T) {
	b := buildBoard(t, "?..")
	e := economyWith(t, core.Easy, 3, 10)
	revealed(t, b, e, core.P(0, 0))
	require.Equal(t, 4, e.Score())

	used, err := core.Activate(b, core.P(0, 0), e, core.QuestionEffect{Score: 3})
	assert.ErrorIs(t, err, core.ErrInsufficientFunds)
	assert.False(t, used)
	assert.Equal(t, 4, e.Score())
	assert.False(t, cellAt(t, b, 0, 0).PowerUsed())
	assert.True(t, core.CanActivateSpecial(b, core.P(0, 0)), "tile stays usable")
}

func TestActivateQuestionEffect(t *testing.T) {
	tests := []struct {
		name      string
		effect    core.QuestionEffect
		wantLives int
		wantScore int
	}{
		{"easy right", core.QuestionEffect{Score: 3}, 7, 12 - 5 + 3},
		{"medium right", core.QuestionEffect{Lives: 1, Score: 6}, 8, 12 - 5 + 6},
		{"hard wrong", core.QuestionEffect{Lives: -1, Score: -10}, 6, 12 - 5 - 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := buildBoard(t, "?*")
			e := economyWith(t, core.Easy, 11, 7)
			revealed(t, b, e, core.P(0, 0))

			used, err := core.Activate(b, core.P(0, 0), e, tc.effect)
			require.NoError(t, err)
			assert.True(t, used)
			assert.Equal(t, tc.wantLives, e.Lives())
			assert.Equal(t, tc.wantScore, e.Score())
		})
	}
}

func TestActivateKindMismatch(t *testing.T) {
	b := buildBoard(t, "?..")
	e := economyWith(t, core.Easy, 20, 10)
	revealed(t, b, e, core.P(0, 0))

	used, err := core.Activate(b, core.P(0, 0), e, core.SurpriseEffect{Good: true})
	require.NoError(t, err)
	assert.False(t, used)

	used, err = core.Activate(b, core.P(0, 0), e, nil)
	require.NoError(t, err)
	assert.False(t, used)

	assert.Equal(t, 21, e.Score())
	assert.False(t, cellAt(t, b, 0, 0).PowerUsed())
}

func TestActivateOutOfBounds(t *testing.T) {
	b := buildBoard(t, "?")
	e := economyWith(t, core.Easy, 20, 10)

	used, err := core.Activate(b, core.P(1, 0), e, core.QuestionEffect{})
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.False(t, used)
	assert.Equal(t, 20, e.Score())
}
