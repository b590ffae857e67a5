package duosweeper

import (
	"time"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

// Result is the summary of a finished match handed to the history writer.
type Result struct {
	MatchID    string
	Host       string // who hosted the match: local user or SSH login
	Difficulty string
	Outcome    string // "won" or "lost"
	Score      int
	Lives      int
	Turns      int
	Revealed1  int
	Revealed2  int
	Duration   time.Duration
	EndedAt    time.Time
}

// Won returns true if the match ended with a cleared board.
func (r Result) Won() bool {
	return r.Outcome == core.OutcomeWon.String()
}

// HistoryWriter persists finished matches.
type HistoryWriter interface {
	SaveMatchResult(Result) error
}
