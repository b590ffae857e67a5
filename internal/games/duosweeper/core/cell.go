package core

// Kind is the type of a cell, fixed at generation time.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumber
	KindMine
	KindQuestion
	KindSurprise
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindNumber:
		return "Number"
	case KindMine:
		return "Mine"
	case KindQuestion:
		return "Question"
	case KindSurprise:
		return "Surprise"
	default:
		return "Unknown"
	}
}

// IsPower returns true for Question and Surprise tiles.
func (k Kind) IsPower() bool {
	return k == KindQuestion || k == KindSurprise
}

// Cell is a single grid unit. Cells are handed out by value; all mutation
// goes through Board-level operations.
type Cell struct {
	kind      Kind
	revealed  bool
	flagged   bool
	adjacent  int
	powerUsed bool
}

// Kind returns the cell kind. Empty cells with neighbouring mines report
// KindNumber.
func (c Cell) Kind() Kind {
	if c.kind == KindEmpty && c.adjacent > 0 {
		return KindNumber
	}
	return c.kind
}

// Revealed returns true once the cell has been opened.
func (c Cell) Revealed() bool { return c.revealed }

// Flagged returns true while the cell carries a flag.
func (c Cell) Flagged() bool { return c.flagged }

// AdjacentMines returns the number of mines among the cell's neighbours.
// Meaningless for mines.
func (c Cell) AdjacentMines() int { return c.adjacent }

// PowerUsed returns true once a power tile has been activated.
func (c Cell) PowerUsed() bool { return c.powerUsed }

// IsMine returns true if the cell holds a mine.
func (c Cell) IsMine() bool { return c.kind == KindMine }

// floods reports whether the cascade continues through this cell.
func (c Cell) floods() bool {
	return c.kind == KindEmpty && c.adjacent == 0
}

// reveal opens the cell and drops any flag.
func (c *Cell) reveal() {
	c.revealed = true
	c.flagged = false
}
