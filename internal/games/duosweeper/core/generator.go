package core

import (
	"fmt"
	"math/rand"
)

// Generator builds boards. All randomness comes from the injected source, so
// a fixed seed yields the same layout.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a generator with its own source seeded by seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Generate builds a board for d: all cells Empty, exactly d.MineCount mines,
// adjacency counts computed. Power tiles are left to PlaceSpecials.
func (g *Generator) Generate(d Difficulty) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	b, err := NewBoard(d.Rows, d.Cols)
	if err != nil {
		return nil, err
	}
	if err := g.PlaceMines(b, d.MineCount); err != nil {
		return nil, err
	}
	ComputeAdjacency(b)
	return b, nil
}

// PlaceMines puts count mines on cells that are still Empty. Picks are uniform
// over the whole grid; a pick that lands on a mine or a power tile is retried.
func (g *Generator) PlaceMines(b *Board, count int) error {
	if free := b.countRaw(KindEmpty); count > free || count >= len(b.cells) {
		return fmt.Errorf("%w: %d mines but %d free cells", ErrInvalidConfiguration, count, free)
	}
	for placed := 0; placed < count; {
		p := P(g.rng.Intn(b.rows), g.rng.Intn(b.cols))
		c := b.at(p)
		if c.kind != KindEmpty {
			continue
		}
		c.kind = KindMine
		b.mineCount++
		placed++
	}
	return nil
}

// PlaceSpecials turns count random Empty cells into kind (Question or Surprise).
// Adjacency counts already computed are kept.
func (g *Generator) PlaceSpecials(b *Board, kind Kind, count int) error {
	if !kind.IsPower() {
		return fmt.Errorf("%w: %v is not a power tile", ErrInvalidConfiguration, kind)
	}
	free := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c.kind == KindEmpty && !c.revealed {
			free = append(free, i)
		}
	}
	if count > len(free) {
		return fmt.Errorf("%w: %d %v tiles but %d free cells", ErrInvalidConfiguration, count, kind, len(free))
	}
	g.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	for _, i := range free[:count] {
		b.cells[i].kind = kind
	}
	return nil
}

// ComputeAdjacency stores, for every non-mine cell, the number of mines among
// its up to eight neighbours. Cell kinds are not touched.
func ComputeAdjacency(b *Board) {
	for i := range b.cells {
		c := &b.cells[i]
		if c.kind == KindMine {
			c.adjacent = 0
			continue
		}
		n := 0
		for _, q := range b.Neighbors(b.pos(i)) {
			if b.at(q).kind == KindMine {
				n++
			}
		}
		c.adjacent = n
	}
}

// countRaw counts cells by stored kind (Number is never stored).
func (b *Board) countRaw(k Kind) int {
	n := 0
	for _, c := range b.cells {
		if c.kind == k {
			n++
		}
	}
	return n
}
