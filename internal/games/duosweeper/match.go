// Package duosweeper sets up and runs a two-board minesweeper match: board
// generation for both players, Surprise draws, the Question prompt/answer
// flow and the match result handed to the history writer.
package duosweeper

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/questions"
)

var (
	// ErrQuestionPending is returned for board moves while a question waits.
	ErrQuestionPending = errors.New("duosweeper: a question is waiting for an answer")
	// ErrNoQuestionPending is returned when answering with nothing asked.
	ErrNoQuestionPending = errors.New("duosweeper: no question is pending")
	// ErrInvalidAnswer is returned for an option index outside 0..3.
	ErrInvalidAnswer = errors.New("duosweeper: answer out of range")
)

// Options configures a match. Zero values pick defaults.
type Options struct {
	Seed    int64 // 0 = time-based
	Bank    *questions.Bank
	Rewards RewardTable
	Logger  *log.Logger
	History HistoryWriter
	Host    string
	Now     func() time.Time
}

func (o Options) withDefaults() (Options, error) {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Seed == 0 {
		o.Seed = o.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Rewards == nil {
		o.Rewards = DefaultRewards()
	}
	if o.Host == "" {
		o.Host = "local"
	}
	if o.Bank == nil {
		bank, err := questions.Default()
		if err != nil {
			return o, err
		}
		o.Bank = bank
	}
	return o, nil
}

// PendingQuestion is a Question tile waiting for its player's answer.
type PendingQuestion struct {
	Player   core.Player
	Pos      core.Pos
	Question questions.Question
}

// Activation reports what ActivatePower did.
type Activation struct {
	Kind     core.Kind
	Used     bool                // the tile was consumed
	Good     bool                // surprise draw result
	Question *questions.Question // set when a question now awaits an answer
}

// Answer reports the outcome of a question.
type Answer struct {
	Correct      bool
	CorrectIndex int
	Reward       Reward
}

// Match is one game of two boards sharing an economy. A Match is not safe
// for concurrent use; each TUI program owns its match.
type Match struct {
	id        string
	opts      Options
	diff      core.Difficulty
	coord     *core.Coordinator
	rng       *rand.Rand
	deck      *questions.Deck
	pending   *PendingQuestion
	logger    *log.Logger
	startedAt time.Time
	endedAt   time.Time
	recorded  bool
}

// NewMatch generates two boards for d, seeds their power tiles and starts
// the match with Player 1 to move.
func NewMatch(d core.Difficulty, opts Options) (*Match, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	gen := core.NewGenerator(rng)

	var boards [2]*core.Board
	for i := range boards {
		b, err := gen.Generate(d)
		if err != nil {
			return nil, err
		}
		if err := gen.PlaceSpecials(b, core.KindQuestion, d.QuestionCount); err != nil {
			return nil, err
		}
		if err := gen.PlaceSpecials(b, core.KindSurprise, d.SurpriseCount); err != nil {
			return nil, err
		}
		boards[i] = b
	}

	return newMatch(d, boards[0], boards[1], rng, opts), nil
}

// NewMatchWithBoards starts a match on prepared boards.
func NewMatchWithBoards(d core.Difficulty, board1, board2 *core.Board, opts Options) (*Match, error) {
	if board1 == nil || board2 == nil {
		return nil, fmt.Errorf("%w: both boards are required", core.ErrInvalidConfiguration)
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return newMatch(d, board1, board2, rand.New(rand.NewSource(opts.Seed)), opts), nil
}

func newMatch(d core.Difficulty, b1, b2 *core.Board, rng *rand.Rand, opts Options) *Match {
	m := &Match{
		id:        uuid.NewString(),
		opts:      opts,
		diff:      d,
		coord:     core.NewCoordinator(core.NewEconomy(d), b1, b2),
		rng:       rng,
		deck:      questions.NewDeck(opts.Bank, rng),
		logger:    opts.Logger,
		startedAt: opts.Now(),
	}
	m.logger.Info("match started",
		"match", m.id,
		"difficulty", d.Name,
		"seed", opts.Seed,
		"host", opts.Host,
	)
	return m
}

// Rematch starts a fresh match with the same difficulty and options.
func (m *Match) Rematch() (*Match, error) {
	opts := m.opts
	opts.Seed = m.rng.Int63()
	return NewMatch(m.diff, opts)
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Difficulty returns the preset the match was built from.
func (m *Match) Difficulty() core.Difficulty { return m.diff }

// Seed returns the RNG seed the match was built from.
func (m *Match) Seed() int64 { return m.opts.Seed }

// Active returns the player to move, or 0 after game over.
func (m *Match) Active() core.Player { return m.coord.Active() }

// Phase returns the turn phase.
func (m *Match) Phase() core.Phase { return m.coord.Phase() }

// GameOver returns true once the match has ended.
func (m *Match) GameOver() bool { return m.coord.GameOver() }

// Outcome returns how the match ended.
func (m *Match) Outcome() core.Outcome { return m.coord.Outcome() }

// Score returns the shared score.
func (m *Match) Score() int { return m.coord.Economy().Score() }

// Lives returns the shared life pool.
func (m *Match) Lives() int { return m.coord.Economy().Lives() }

// CanPayForPower reports whether the score covers an activation.
func (m *Match) CanPayForPower() bool { return m.coord.Economy().CanPayForPower() }

// Turns returns the number of completed turns.
func (m *Match) Turns() int { return m.coord.Turns() }

// Board returns a player's board for rendering.
func (m *Match) Board(p core.Player) *core.Board { return m.coord.Board(p) }

// CanActivate reports whether p may activate the tile at pos now.
func (m *Match) CanActivate(p core.Player, pos core.Pos) bool {
	return m.pending == nil && m.coord.CanActivate(p, pos)
}

// Pending returns the question awaiting an answer, if any.
func (m *Match) Pending() (PendingQuestion, bool) {
	if m.pending == nil {
		return PendingQuestion{}, false
	}
	return *m.pending, true
}

// Elapsed returns the match duration so far, frozen at game over.
func (m *Match) Elapsed() time.Duration {
	if !m.endedAt.IsZero() {
		return m.endedAt.Sub(m.startedAt)
	}
	return m.opts.Now().Sub(m.startedAt)
}

// Open opens a cell on p's board.
func (m *Match) Open(p core.Player, pos core.Pos) (core.RevealResult, error) {
	if m.pending != nil {
		return core.RevealResult{}, ErrQuestionPending
	}
	res, err := m.coord.Open(p, pos)
	if err != nil {
		return res, err
	}
	if res.HitMine() {
		m.logger.Debug("mine hit", "match", m.id, "player", p, "pos", pos, "lives", m.Lives())
	}
	m.afterMove()
	return res, nil
}

// ToggleFlag toggles a flag on p's board.
func (m *Match) ToggleFlag(p core.Player, pos core.Pos) (bool, error) {
	if m.pending != nil {
		return false, ErrQuestionPending
	}
	changed, err := m.coord.ToggleFlag(p, pos)
	if err != nil {
		return false, err
	}
	m.afterMove()
	return changed, nil
}

// ActivatePower is the second click on a revealed power tile. A Surprise is
// settled immediately by a fair coin. A Question is drawn from the deck and
// left pending until Answer; the cost is only charged once it is answered.
// Activating anything else is a no-op.
func (m *Match) ActivatePower(p core.Player, pos core.Pos) (Activation, error) {
	if m.pending != nil {
		return Activation{}, ErrQuestionPending
	}
	if m.coord.GameOver() {
		return Activation{}, core.ErrGameOver
	}
	if p != m.coord.Active() {
		return Activation{}, fmt.Errorf("%w: %v is active", core.ErrNotYourTurn, m.coord.Active())
	}
	b := m.coord.Board(p)
	cell, err := b.Cell(pos)
	if err != nil {
		return Activation{}, err
	}
	act := Activation{Kind: cell.Kind()}
	if !core.CanActivateSpecial(b, pos) {
		return act, nil
	}

	switch act.Kind {
	case core.KindSurprise:
		act.Good = m.rng.Intn(2) == 0
		used, err := m.coord.Activate(p, pos, core.SurpriseEffect{Good: act.Good})
		if err != nil {
			return act, err
		}
		act.Used = used
		m.logger.Debug("surprise activated",
			"match", m.id, "player", p, "pos", pos, "good", act.Good,
			"score", m.Score(), "lives", m.Lives())
		m.afterMove()

	case core.KindQuestion:
		econ := m.coord.Economy()
		if !econ.CanPayForPower() {
			return act, fmt.Errorf("%w: score %d, cost %d", core.ErrInsufficientFunds, econ.Score(), m.diff.PowerCost)
		}
		q, err := m.deck.Draw()
		if err != nil {
			return act, err
		}
		m.pending = &PendingQuestion{Player: p, Pos: pos, Question: q}
		act.Question = &q
		m.logger.Debug("question asked", "match", m.id, "player", p, "pos", pos, "question", q.ID)
	}
	return act, nil
}

// Answer settles the pending question with the chosen option (0-based).
func (m *Match) Answer(p core.Player, choice int) (Answer, error) {
	if m.pending == nil {
		return Answer{}, ErrNoQuestionPending
	}
	pq := *m.pending
	if p != pq.Player {
		return Answer{}, fmt.Errorf("%w: question belongs to %v", core.ErrNotYourTurn, pq.Player)
	}
	if choice < 0 || choice >= questions.OptionCount {
		return Answer{}, fmt.Errorf("%w: %d", ErrInvalidAnswer, choice)
	}

	m.pending = nil
	ans := Answer{
		Correct:      pq.Question.IsCorrect(choice),
		CorrectIndex: pq.Question.Correct,
	}
	ans.Reward = m.opts.Rewards.For(pq.Question.Difficulty, ans.Correct)

	effect := core.QuestionEffect{Lives: ans.Reward.Lives, Score: ans.Reward.Score}
	if _, err := m.coord.Activate(pq.Player, pq.Pos, effect); err != nil {
		return Answer{}, err
	}
	m.logger.Debug("question answered",
		"match", m.id, "player", p, "question", pq.Question.ID, "correct", ans.Correct,
		"score", m.Score(), "lives", m.Lives())
	m.afterMove()
	return ans, nil
}

// DismissQuestion drops the pending question without charging for it.
// The tile stays usable and the turn does not change.
func (m *Match) DismissQuestion() error {
	if m.pending == nil {
		return ErrNoQuestionPending
	}
	m.pending = nil
	return nil
}

// Result summarizes the match for the history writer.
func (m *Match) Result() Result {
	return Result{
		MatchID:    m.id,
		Host:       m.opts.Host,
		Difficulty: m.diff.Name,
		Outcome:    m.coord.Outcome().String(),
		Score:      m.Score(),
		Lives:      m.Lives(),
		Turns:      m.coord.Turns(),
		Revealed1:  m.coord.Board(core.Player1).RevealedCount(),
		Revealed2:  m.coord.Board(core.Player2).RevealedCount(),
		Duration:   m.Elapsed(),
		EndedAt:    m.endedAt,
	}
}

// afterMove records the match once it is over.
func (m *Match) afterMove() {
	if !m.coord.GameOver() || m.recorded {
		return
	}
	m.recorded = true
	m.endedAt = m.opts.Now()

	res := m.Result()
	m.logger.Info("match finished",
		"match", m.id,
		"outcome", res.Outcome,
		"score", res.Score,
		"turns", res.Turns,
		"duration", res.Duration.Round(time.Second),
	)
	if m.opts.History == nil {
		return
	}
	if err := m.opts.History.SaveMatchResult(res); err != nil {
		m.logger.Error("cannot save match", "match", m.id, "error", err)
	}
}
