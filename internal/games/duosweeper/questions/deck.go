package questions

import "math/rand"

// Deck draws questions from a bank without repetition. Once every question
// has been drawn the deck reshuffles.
type Deck struct {
	bank  *Bank
	rng   *rand.Rand
	order []int
	next  int
}

// NewDeck creates a shuffled deck over bank.
func NewDeck(bank *Bank, rng *rand.Rand) *Deck {
	d := &Deck{bank: bank, rng: rng}
	d.shuffle()
	return d
}

// Draw returns the next question.
func (d *Deck) Draw() (Question, error) {
	if d.bank == nil || d.bank.Len() == 0 {
		return Question{}, ErrEmptyBank
	}
	if d.next >= len(d.order) {
		d.shuffle()
	}
	q := d.bank.At(d.order[d.next])
	d.next++
	return q, nil
}

// Remaining returns how many questions are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.order) - d.next
}

func (d *Deck) shuffle() {
	n := 0
	if d.bank != nil {
		n = d.bank.Len()
	}
	d.order = d.rng.Perm(n)
	d.next = 0
}
