package core

// RevealResult describes what a single OpenCell call did.
type RevealResult struct {
	Kind     Kind  // Kind of the opened cell
	Revealed []Pos // Every cell revealed by this call, opened cell first
}

// Changed returns true if the call revealed anything.
func (r RevealResult) Changed() bool {
	return len(r.Revealed) > 0
}

// HitMine returns true if the opened cell was a mine.
func (r RevealResult) HitMine() bool {
	return r.Changed() && r.Kind == KindMine
}

// OpenCell reveals the cell at p and applies its economy effect:
// a mine costs one life; any other cell scores one point. Opening an Empty
// cell with no neighbouring mines floods the surrounding safe region.
// Hidden flagged cells and revealed cells are left alone.
func OpenCell(b *Board, p Pos, e *Economy) (RevealResult, error) {
	if !b.InBounds(p) {
		return RevealResult{}, b.outOfBounds(p)
	}
	c := b.at(p)
	if c.revealed || c.flagged {
		return RevealResult{}, nil
	}

	b.revealAt(p)
	res := RevealResult{Kind: c.Kind(), Revealed: []Pos{p}}

	if c.kind == KindMine {
		e.DecreaseLives()
		return res, nil
	}

	e.UpdateScore(1)
	if c.floods() {
		res.Revealed = append(res.Revealed, cascade(b, p)...)
	}
	return res, nil
}

// cascade floods outward from origin using an explicit stack of cell indices.
// Every non-mine, unflagged, hidden neighbour is revealed; the flood only
// continues through cells that are Empty with zero adjacent mines.
// Flooded cells do not score.
func cascade(b *Board, origin Pos) []Pos {
	var opened []Pos
	stack := []int{b.index(origin)}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range b.Neighbors(b.pos(i)) {
			nc := b.at(n)
			if nc.revealed || nc.flagged || nc.kind == KindMine {
				continue
			}
			b.revealAt(n)
			opened = append(opened, n)
			if nc.floods() {
				stack = append(stack, b.index(n))
			}
		}
	}
	return opened
}

// ToggleFlag flips the flag on a hidden cell. It returns whether anything
// changed; revealed cells cannot be flagged.
func ToggleFlag(b *Board, p Pos) (bool, error) {
	if !b.InBounds(p) {
		return false, b.outOfBounds(p)
	}
	c := b.at(p)
	if c.revealed {
		return false, nil
	}
	c.flagged = !c.flagged
	return true, nil
}
