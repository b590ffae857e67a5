package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper"
	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
	"github.com/vovakirdan/duosweeper/internal/storage"
)

// SessionConfig describes one player session, local or over SSH.
type SessionConfig struct {
	Difficulties []core.Difficulty

	// Match is the template for every match of the session.
	// Its Seed only applies to the first match; History is filled from Store.
	Match duosweeper.Options

	// Store may be nil; matches are then played without history.
	Store *storage.Store

	// Start skips the menu and opens a match at this difficulty.
	Start *core.Difficulty

	Width  int
	Height int
}

type screen int

const (
	screenMenu screen = iota
	screenMatch
	screenHistory
)

// SessionModel manages the full session flow: menu -> match -> menu, plus
// the history screen. This is the top-level model for local and SSH play.
type SessionModel struct {
	cfg      SessionConfig
	screen   screen
	menu     MenuModel
	match    MatchModel
	history  HistoryModel
	err      error // last failure to start a match
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if len(cfg.Difficulties) == 0 {
		cfg.Difficulties = core.Presets()
	}
	if cfg.Store != nil {
		cfg.Match.History = cfg.Store
	}

	m := SessionModel{cfg: cfg}
	m.menu = NewMenuModel(cfg.Difficulties, cfg.Store, cfg.Width, cfg.Height)
	if cfg.Start != nil {
		m.startMatch(*cfg.Start)
	}
	return m
}

// startMatch opens a match screen, or stays on the menu with an error.
func (m *SessionModel) startMatch(d core.Difficulty) tea.Cmd {
	mt, err := duosweeper.NewMatch(d, m.cfg.Match)
	if err != nil {
		m.err = err
		m.screen = screenMenu
		return nil
	}
	// Later matches use fresh seeds
	m.cfg.Match.Seed = 0

	m.err = nil
	m.match = NewMatchModel(mt, m.cfg.Width, m.cfg.Height)
	m.screen = screenMatch
	return m.match.Init()
}

func (m *SessionModel) openMenu() tea.Cmd {
	m.menu = NewMenuModel(m.cfg.Difficulties, m.cfg.Store, m.cfg.Width, m.cfg.Height)
	m.screen = screenMenu
	return m.menu.Init()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenMatch {
		return m.match.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Width = wsm.Width
		m.cfg.Height = wsm.Height
	}

	switch m.screen {
	case screenMatch:
		return m.updateMatch(msg)
	case screenHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() != nil:
		d := *m.menu.Selected()
		m.menu.selected = nil
		return m, m.startMatch(d)

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.cfg.Store, m.cfg.Difficulties, m.cfg.Width, m.cfg.Height)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	return m, cmd
}

// updateMatch handles updates when a match is on screen.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.match.Update(msg)
	if matchModel, ok := newModel.(MatchModel); ok {
		m.match = matchModel
	}

	if m.match.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.match.BackToMenu() {
		return m, m.openMenu()
	}

	return m, cmd
}

// updateHistory handles updates when the history screen is open.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		return m, m.openMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenMatch:
		return m.match.View()
	case screenHistory:
		return m.history.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(theme.StatusBad.Render("Cannot start match: "+m.err.Error()), m.cfg.Width)
	}
	return view
}

// RunSession runs a local session in the terminal.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunHistory runs the history screen on its own.
func RunHistory(store *storage.Store, difficulties []core.Difficulty, width, height int) error {
	model := NewHistoryModel(store, difficulties, width, height)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
