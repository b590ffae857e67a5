// Package tui provides the Bubble Tea front end for duosweeper: the
// difficulty menu, the hot-seat match screen, the history browser and the
// SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is how often the match clock is redrawn.
const clockInterval = time.Second

// ClockMsg refreshes the elapsed time of one match.
type ClockMsg struct {
	MatchID string
	Time    time.Time
}

// clockCmd returns a Bubble Tea command that sends a clock message for matchID.
// Messages for a match that is no longer on screen are dropped by the receiver,
// which ends that match's tick chain.
func clockCmd(matchID string) tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return ClockMsg{MatchID: matchID, Time: t}
	})
}
