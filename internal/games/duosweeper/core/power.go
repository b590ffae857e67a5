package core

// Effect is the economy outcome of activating a power tile.
type Effect interface {
	// Kind returns the tile kind the effect belongs to.
	Kind() Kind
	// Apply charges and settles the effect. It must not mutate e on error.
	Apply(e *Economy) error
}

// SurpriseEffect settles a Surprise tile; Good is the result of a 50/50 draw.
type SurpriseEffect struct {
	Good bool
}

// Kind returns KindSurprise.
func (SurpriseEffect) Kind() Kind { return KindSurprise }

// Apply delegates to Economy.ApplySurprise.
func (s SurpriseEffect) Apply(e *Economy) error {
	return e.ApplySurprise(s.Good)
}

// QuestionEffect settles an answered Question tile: the power cost is paid,
// then the outcome of the answer is applied.
type QuestionEffect struct {
	Lives int
	Score int
}

// Kind returns KindQuestion.
func (QuestionEffect) Kind() Kind { return KindQuestion }

// Apply pays for the activation and applies the answer's outcome.
func (q QuestionEffect) Apply(e *Economy) error {
	if err := e.PayForPower(); err != nil {
		return err
	}
	e.ApplyEffect(q.Lives, q.Score)
	return nil
}

// CanActivateSpecial returns true if p holds a revealed, unused power tile.
// Out-of-bounds positions are never activatable.
func CanActivateSpecial(b *Board, p Pos) bool {
	if !b.InBounds(p) {
		return false
	}
	c := b.at(p)
	return c.revealed && c.kind.IsPower() && !c.powerUsed
}

// Activate settles effect for the power tile at p and marks the tile used.
// It returns false without touching the economy when the tile is not
// activatable or the effect belongs to the other tile kind. If the effect
// fails (e.g. ErrInsufficientFunds) the tile stays unused.
func Activate(b *Board, p Pos, e *Economy, effect Effect) (bool, error) {
	if !b.InBounds(p) {
		return false, b.outOfBounds(p)
	}
	if !CanActivateSpecial(b, p) || effect == nil || effect.Kind() != b.at(p).kind {
		return false, nil
	}
	if err := effect.Apply(e); err != nil {
		return false, err
	}
	markSpecialUsed(b, p)
	return true, nil
}

func markSpecialUsed(b *Board, p Pos) {
	b.at(p).powerUsed = true
}
