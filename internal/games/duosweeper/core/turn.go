package core

import "fmt"

// Player identifies one side of a match.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Phase is the turn coordinator state.
type Phase int

const (
	PhasePlayer1Active Phase = iota
	PhasePlayer2Active
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (ph Phase) String() string {
	switch ph {
	case PhasePlayer1Active:
		return "Player1Active"
	case PhasePlayer2Active:
		return "Player2Active"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Outcome is how a finished match ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the label written to match history.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "in progress"
	}
}

// Coordinator owns the two boards and the single economy of a match and
// grants write access to one board at a time.
type Coordinator struct {
	economy *Economy
	boards  [2]*Board
	phase   Phase
	outcome Outcome
	turns   int
}

// NewCoordinator starts a match with Player1 active.
func NewCoordinator(e *Economy, board1, board2 *Board) *Coordinator {
	return &Coordinator{
		economy: e,
		boards:  [2]*Board{board1, board2},
		phase:   PhasePlayer1Active,
	}
}

// Phase returns the current coordinator state.
func (c *Coordinator) Phase() Phase { return c.phase }

// Outcome returns how the match ended, or OutcomeNone while it runs.
func (c *Coordinator) Outcome() Outcome { return c.outcome }

// GameOver returns true once the match has ended.
func (c *Coordinator) GameOver() bool { return c.phase == PhaseGameOver }

// Turns returns the number of turns completed so far.
func (c *Coordinator) Turns() int { return c.turns }

// Active returns the player allowed to act, or 0 after game over.
func (c *Coordinator) Active() Player {
	switch c.phase {
	case PhasePlayer1Active:
		return Player1
	case PhasePlayer2Active:
		return Player2
	default:
		return 0
	}
}

// Board returns a player's board. Callers must not mutate it directly.
func (c *Coordinator) Board(p Player) *Board {
	if p != Player1 && p != Player2 {
		return nil
	}
	return c.boards[p-1]
}

// Economy returns the shared economy for read access.
func (c *Coordinator) Economy() *Economy { return c.economy }

// Open opens a cell on p's board.
func (c *Coordinator) Open(p Player, pos Pos) (RevealResult, error) {
	b, err := c.admit(p)
	if err != nil {
		return RevealResult{}, err
	}
	res, err := OpenCell(b, pos, c.economy)
	if err != nil {
		return res, err
	}
	c.settle(res.Changed())
	return res, nil
}

// ToggleFlag toggles a flag on p's board.
func (c *Coordinator) ToggleFlag(p Player, pos Pos) (bool, error) {
	b, err := c.admit(p)
	if err != nil {
		return false, err
	}
	changed, err := ToggleFlag(b, pos)
	if err != nil {
		return false, err
	}
	c.settle(changed)
	return changed, nil
}

// Activate activates a power tile on p's board. A failed activation keeps
// the turn with p.
func (c *Coordinator) Activate(p Player, pos Pos, effect Effect) (bool, error) {
	b, err := c.admit(p)
	if err != nil {
		return false, err
	}
	used, err := Activate(b, pos, c.economy, effect)
	if err != nil {
		return false, err
	}
	c.settle(used)
	return used, nil
}

// CanActivate reports whether p may activate the tile at pos right now.
func (c *Coordinator) CanActivate(p Player, pos Pos) bool {
	b, err := c.admit(p)
	if err != nil {
		return false
	}
	return CanActivateSpecial(b, pos)
}

// admit returns p's board if p may mutate it.
func (c *Coordinator) admit(p Player) (*Board, error) {
	if c.phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	if p != Player1 && p != Player2 {
		return nil, fmt.Errorf("core: unknown player %d", p)
	}
	if p != c.Active() {
		return nil, fmt.Errorf("%w: %v is active", ErrNotYourTurn, c.Active())
	}
	return c.boards[p-1], nil
}

// settle ends the turn after an accepted operation that changed state.
func (c *Coordinator) settle(changed bool) {
	if !changed {
		return
	}
	c.turns++
	switch {
	case c.economy.IsOutOfLives():
		c.finish(OutcomeLost)
	case c.boards[0].Cleared() || c.boards[1].Cleared():
		c.finish(OutcomeWon)
	case c.phase == PhasePlayer1Active:
		c.phase = PhasePlayer2Active
	default:
		c.phase = PhasePlayer1Active
	}
}

func (c *Coordinator) finish(o Outcome) {
	c.phase = PhaseGameOver
	c.outcome = o
}
