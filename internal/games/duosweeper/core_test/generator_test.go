package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

func TestGenerateMineCount(t *testing.T) {
	for _, d := range core.Presets() {
		t.Run(d.Name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				b, err := core.NewSeededGenerator(seed).Generate(d)
				require.NoError(t, err)

				assert.Equal(t, d.Rows, b.Rows())
				assert.Equal(t, d.Cols, b.Cols())
				assert.Equal(t, d.MineCount, b.MineCount())
				assert.Equal(t, d.MineCount, b.CountKind(core.KindMine), "seed %d", seed)
			}
		})
	}
}

func TestGenerateAdjacency(t *testing.T) {
	for _, d := range core.Presets() {
		t.Run(d.Name, func(t *testing.T) {
			gen := core.NewSeededGenerator(42)
			b, err := gen.Generate(d)
			require.NoError(t, err)
			require.NoError(t, gen.PlaceSpecials(b, core.KindQuestion, d.QuestionCount))
			require.NoError(t, gen.PlaceSpecials(b, core.KindSurprise, d.SurpriseCount))

			assertAdjacency(t, b)
			assert.Equal(t, d.MineCount, b.CountKind(core.KindMine))
			assert.Equal(t, d.QuestionCount, b.CountKind(core.KindQuestion))
			assert.Equal(t, d.SurpriseCount, b.CountKind(core.KindSurprise))
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := core.NewSeededGenerator(7).Generate(core.Medium)
	require.NoError(t, err)
	b, err := core.NewSeededGenerator(7).Generate(core.Medium)
	require.NoError(t, err)

	for _, p := range a.Positions() {
		ca, _ := a.Cell(p)
		cb, _ := b.Cell(p)
		assert.Equal(t, ca, cb, "cell %v differs", p)
	}
}

func TestGenerateInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		d    core.Difficulty
	}{
		{"mines equal cells", core.Difficulty{Rows: 3, Cols: 3, MineCount: 9}},
		{"mines exceed cells", core.Difficulty{Rows: 2, Cols: 2, MineCount: 5}},
		{"zero rows", core.Difficulty{Rows: 0, Cols: 5, MineCount: 1}},
		{"negative mines", core.Difficulty{Rows: 3, Cols: 3, MineCount: -1}},
		{"power tiles overflow", core.Difficulty{Rows: 2, Cols: 2, MineCount: 2, QuestionCount: 2, SurpriseCount: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := core.NewSeededGenerator(1).Generate(tc.d)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
		})
	}
}

func TestGenerateFullMinusOne(t *testing.T) {
	d := core.Difficulty{Rows: 3, Cols: 3, MineCount: 8}
	b, err := core.NewSeededGenerator(3).Generate(d)
	require.NoError(t, err)
	assert.Equal(t, 8, b.CountKind(core.KindMine))
	assert.Equal(t, 1, b.SafeRemaining())
}

func TestPlaceMinesKeepsPowerTiles(t *testing.T) {
	b := buildBoard(t,
		"?..",
		"...",
		"..!",
	)
	gen := core.NewSeededGenerator(11)
	require.NoError(t, gen.PlaceMines(b, 7))
	core.ComputeAdjacency(b)

	assert.Equal(t, core.KindQuestion, cellAt(t, b, 0, 0).Kind())
	assert.Equal(t, core.KindSurprise, cellAt(t, b, 2, 2).Kind())
	assert.Equal(t, 7, b.MineCount())
	assertAdjacency(t, b)

	// No Empty cells are left.
	err := gen.PlaceMines(b, 1)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestPlaceSpecialsRejectsNonPower(t *testing.T) {
	b := buildBoard(t, "...")
	err := core.NewSeededGenerator(1).PlaceSpecials(b, core.KindMine, 1)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestDifficultyValidate(t *testing.T) {
	for _, d := range core.Presets() {
		assert.NoError(t, d.Validate(), d.Name)
	}

	crowded := core.Easy
	crowded.QuestionCount = 80
	assert.ErrorIs(t, crowded.Validate(), core.ErrInvalidConfiguration)
}

// assertAdjacency checks every non-mine cell against a brute-force count.
func assertAdjacency(t *testing.T, b *core.Board) {
	t.Helper()
	for _, p := range b.Positions() {
		c, err := b.Cell(p)
		require.NoError(t, err)
		if c.IsMine() {
			continue
		}
		want := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n, err := b.Cell(p.Add(dr, dc))
				if err != nil {
					continue
				}
				if n.IsMine() {
					want++
				}
			}
		}
		assert.Equal(t, want, c.AdjacentMines(), "adjacency at %v", p)
	}
}
