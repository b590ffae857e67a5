package core

import "fmt"

// Board is a fixed rows×cols grid of cells.
// Cells are stored in row-major order: index = row*cols + col.
type Board struct {
	rows      int
	cols      int
	mineCount int
	revealed  int
	cells     []Cell
}

// NewBoard creates a board with every cell Empty and hidden.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return b.mineCount }

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int { return b.revealed }

// SafeRemaining returns the number of hidden non-mine cells.
func (b *Board) SafeRemaining() int {
	return len(b.cells) - b.mineCount - b.safeRevealed()
}

// Cleared returns true once every non-mine cell has been revealed.
func (b *Board) Cleared() bool {
	return b.SafeRemaining() == 0
}

// InBounds returns true if the position lies on the grid.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p Pos) (Cell, error) {
	if !b.InBounds(p) {
		return Cell{}, b.outOfBounds(p)
	}
	return b.cells[b.index(p)], nil
}

// Seed sets the kind of a cell during match setup. It fails once play has
// started. Callers must run ComputeAdjacency after seeding mines.
func (b *Board) Seed(p Pos, k Kind) error {
	if !b.InBounds(p) {
		return b.outOfBounds(p)
	}
	if b.revealed > 0 {
		return fmt.Errorf("%w: board already in play", ErrInvalidConfiguration)
	}
	if k == KindNumber {
		k = KindEmpty
	}
	c := &b.cells[b.index(p)]
	if c.kind == KindMine {
		b.mineCount--
	}
	if k == KindMine {
		b.mineCount++
	}
	c.kind = k
	return nil
}

// Neighbors returns the in-bounds positions surrounding p.
func (b *Board) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d[0], d[1])
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// CountKind returns the number of cells whose Kind() equals k.
func (b *Board) CountKind(k Kind) int {
	n := 0
	for _, c := range b.cells {
		if c.Kind() == k {
			n++
		}
	}
	return n
}

// Positions returns every position on the board in row-major order.
func (b *Board) Positions() []Pos {
	out := make([]Pos, 0, len(b.cells))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			out = append(out, P(r, c))
		}
	}
	return out
}

// index converts a position to a flat array index.
func (b *Board) index(p Pos) int {
	return p.Row*b.cols + p.Col
}

// pos converts a flat array index back to a position.
func (b *Board) pos(i int) Pos {
	return P(i/b.cols, i%b.cols)
}

func (b *Board) at(p Pos) *Cell {
	return &b.cells[b.index(p)]
}

func (b *Board) revealAt(p Pos) {
	c := b.at(p)
	if c.revealed {
		return
	}
	c.reveal()
	b.revealed++
}

func (b *Board) safeRevealed() int {
	n := 0
	for _, c := range b.cells {
		if c.revealed && c.kind != KindMine {
			n++
		}
	}
	return n
}

func (b *Board) outOfBounds(p Pos) error {
	return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.rows, b.cols)
}
