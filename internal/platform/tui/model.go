package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

// statusKind selects the style of the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusGood
	statusBad
)

// MatchModel is the Bubble Tea model for a hot-seat match.
// Both players share the keyboard; input always goes to the active board.
type MatchModel struct {
	match      *duosweeper.Match
	cursors    [2]core.Pos // indexed by player-1
	keys       MatchKeyMap
	help       help.Model
	status     string
	statusKind statusKind
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewMatchModel creates a match screen for m.
func NewMatchModel(m *duosweeper.Match, width, height int) MatchModel {
	h := help.New()
	h.Width = width

	return MatchModel{
		match:   m,
		cursors: centerCursors(m),
		keys:    DefaultMatchKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		status:  fmt.Sprintf("%s starts. Open a cell on your board.", m.Active()),
	}
}

func centerCursors(m *duosweeper.Match) [2]core.Pos {
	d := m.Difficulty()
	mid := core.P(d.Rows/2, d.Cols/2)
	return [2]core.Pos{mid, mid}
}

// Cursor returns the cursor position on p's board.
func (m MatchModel) Cursor(p core.Player) core.Pos {
	return m.cursors[p-1]
}

// Init starts the match clock.
func (m MatchModel) Init() tea.Cmd {
	return clockCmd(m.match.ID())
}

// Update handles messages for the match screen.
func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		if msg.MatchID != m.match.ID() || m.quitting || m.backToMenu {
			return m, nil
		}
		return m, clockCmd(m.match.ID())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m MatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if _, ok := m.match.Pending(); ok {
		return m.handleQuestionKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.match.GameOver() {
		if key.Matches(msg, m.keys.Restart) {
			return m.rematch()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Flag):
		m.flag()
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	}

	return m, nil
}

// handleQuestionKey accepts only an answer or a dismissal while a question waits.
func (m MatchModel) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Answer):
		choice := int(msg.String()[0] - '1')
		pq, _ := m.match.Pending()
		ans, err := m.match.Answer(pq.Player, choice)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		if ans.Correct {
			m.setStatus(statusGood, "Correct! %s", formatReward(ans.Reward))
		} else {
			m.setStatus(statusBad, "Wrong, the answer was %q. %s",
				pq.Question.Options[ans.CorrectIndex], formatReward(ans.Reward))
		}
		m.announceEnd()

	case key.Matches(msg, m.keys.Dismiss):
		if err := m.match.DismissQuestion(); err != nil {
			m.setError(err)
			return m, nil
		}
		m.setStatus(statusInfo, "Question skipped. Still %s's turn.", m.match.Active())
	}
	return m, nil
}

func (m *MatchModel) moveCursor(dr, dc int) {
	p := m.match.Active()
	b := m.match.Board(p)
	next := m.cursors[p-1].Add(dr, dc)
	if b.InBounds(next) {
		m.cursors[p-1] = next
	}
}

func (m *MatchModel) open() {
	p := m.match.Active()
	res, err := m.match.Open(p, m.Cursor(p))
	if err != nil {
		m.setError(err)
		return
	}
	switch {
	case !res.Changed():
		m.setStatus(statusInfo, "Nothing to open there.")
	case res.HitMine():
		m.setStatus(statusBad, "%s hit a mine! -1 life.", p)
	case len(res.Revealed) > 1:
		m.setStatus(statusInfo, "%s cleared %d cells.", p, len(res.Revealed))
	case res.Kind.IsPower():
		m.setStatus(statusInfo, "%s found a %s tile. Press a on it to use it.", p, res.Kind)
	default:
		m.setStatus(statusInfo, "%s opened a cell.", p)
	}
	m.announceEnd()
}

func (m *MatchModel) flag() {
	p := m.match.Active()
	changed, err := m.match.ToggleFlag(p, m.Cursor(p))
	if err != nil {
		m.setError(err)
		return
	}
	if !changed {
		m.setStatus(statusInfo, "Revealed cells cannot be flagged.")
		return
	}
	m.setStatus(statusInfo, "%s toggled a flag. %s to move.", p, m.match.Active())
}

func (m *MatchModel) activate() {
	p := m.match.Active()
	act, err := m.match.ActivatePower(p, m.Cursor(p))
	if err != nil {
		m.setError(err)
		return
	}
	switch {
	case act.Question != nil:
		m.setStatus(statusInfo, "%s, answer with 1-4.", p)
	case act.Used && act.Kind == core.KindSurprise && act.Good:
		m.setStatus(statusGood, "Surprise! Good luck for %s.", p)
	case act.Used && act.Kind == core.KindSurprise:
		m.setStatus(statusBad, "Surprise! Bad luck for %s.", p)
	default:
		m.setStatus(statusInfo, "Nothing to activate there.")
	}
	m.announceEnd()
}

func (m MatchModel) rematch() (tea.Model, tea.Cmd) {
	next, err := m.match.Rematch()
	if err != nil {
		m.setError(err)
		return m, nil
	}
	nm := NewMatchModel(next, m.width, m.height)
	nm.help.ShowAll = m.help.ShowAll
	return nm, nm.Init()
}

// announceEnd replaces the status line once the match is over.
func (m *MatchModel) announceEnd() {
	if !m.match.GameOver() {
		return
	}
	if m.match.Outcome() == core.OutcomeWon {
		m.setStatus(statusGood, "Board cleared! You won with %d points.", m.match.Score())
		return
	}
	m.setStatus(statusBad, "Out of lives. Final score %d.", m.match.Score())
}

func (m *MatchModel) setStatus(kind statusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

func (m *MatchModel) setError(err error) {
	switch {
	case errors.Is(err, core.ErrInsufficientFunds):
		m.setStatus(statusBad, "Not enough points: a power costs %d.", m.match.Difficulty().PowerCost)
	case errors.Is(err, core.ErrGameOver):
		m.setStatus(statusInfo, "The match is over.")
	default:
		m.setStatus(statusBad, "%v", err)
	}
}

// formatReward renders a reward like "+1 life, +6 points".
func formatReward(r duosweeper.Reward) string {
	var parts []string
	switch {
	case r.Lives == 1 || r.Lives == -1:
		parts = append(parts, fmt.Sprintf("%+d life", r.Lives))
	case r.Lives != 0:
		parts = append(parts, fmt.Sprintf("%+d lives", r.Lives))
	}
	if r.Score != 0 {
		parts = append(parts, fmt.Sprintf("%+d points", r.Score))
	}
	if len(parts) == 0 {
		return "No change."
	}
	return strings.Join(parts, ", ") + "."
}

// View renders the match screen.
func (m MatchModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerBlock(m.renderHUD(), m.width))
	b.WriteString("\n\n")

	if pq, ok := m.match.Pending(); ok {
		b.WriteString(centerBlock(m.renderQuestion(pq), m.width))
	} else {
		b.WriteString(centerBlock(m.renderBoards(), m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerBlock(m.renderStatus(), m.width))
	b.WriteString("\n")
	b.WriteString(centerBlock(theme.HUDControls.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m MatchModel) renderBoards() string {
	over := m.match.GameOver()
	active := m.match.Active()
	view := func(p core.Player) string {
		return renderBoard(boardView{
			board:    m.match.Board(p),
			title:    p.String(),
			cursor:   m.Cursor(p),
			active:   !over && p == active,
			revealed: over,
		})
	}
	return joinBoards(view(core.Player1), view(core.Player2), m.width)
}

func (m MatchModel) renderHUD() string {
	sep := theme.HUDSeparator.Render("  |  ")
	d := m.match.Difficulty()

	turn := m.match.Active().String()
	if m.match.GameOver() {
		turn = strings.ToUpper(m.match.Outcome().String())
	}

	power := fmt.Sprintf("%d", d.PowerCost)
	if m.match.CanPayForPower() {
		power += " ready"
	}

	fields := []string{
		theme.HUDTitle.Render("DUOSWEEPER") + " " + theme.HUDControls.Render(d.Name),
		"Score " + theme.HUDValue.Render(fmt.Sprintf("%d", m.match.Score())),
		"Lives " + theme.HUDValue.Render(fmt.Sprintf("%d/%d", m.match.Lives(), core.MaxLives)),
		"Power " + theme.HUDValue.Render(power),
		"Turn " + theme.HUDValue.Render(turn),
		theme.HUDValue.Render(formatElapsed(m.match.Elapsed())),
	}
	return strings.Join(fields, sep)
}

func (m MatchModel) renderQuestion(pq duosweeper.PendingQuestion) string {
	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render(fmt.Sprintf("QUESTION for %s  (%s)", pq.Player, pq.Question.Difficulty)))
	b.WriteString("\n\n")

	width := 56
	if m.width > 0 && m.width-10 < width {
		width = max(m.width-10, 20)
	}
	b.WriteString(theme.OverlayText.Width(width).Render(pq.Question.Text))
	b.WriteString("\n\n")
	for i, opt := range pq.Question.Options {
		b.WriteString(theme.OverlayOption.Render(fmt.Sprintf("%d) %s", i+1, opt)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.HUDControls.Render("1-4 answer  |  esc skip (no cost, turn stays)"))
	return theme.OverlayBorder.Render(b.String())
}

func (m MatchModel) renderStatus() string {
	style := theme.StatusInfo
	switch m.statusKind {
	case statusGood:
		style = theme.StatusGood
	case statusBad:
		style = theme.StatusBad
	}
	line := style.Render(m.status)
	if m.match.GameOver() {
		line += "\n" + theme.HUDControls.Render("r rematch  |  b menu  |  q quit")
	}
	return lipgloss.JoinVertical(lipgloss.Center, line)
}

// formatElapsed renders a duration as mm:ss.
func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Match returns the match being played.
func (m MatchModel) Match() *duosweeper.Match {
	return m.match
}

// IsQuitting returns true if user requested to quit entirely.
func (m MatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m MatchModel) BackToMenu() bool {
	return m.backToMenu
}
