package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
	"github.com/vovakirdan/duosweeper/internal/storage"
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items       []core.Difficulty
	best        map[string]int // high score per difficulty name
	cursor      int
	width       int
	height      int
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    *core.Difficulty // Set when user picks a difficulty
	openHistory bool             // True if user asked for match history
}

// NewMenuModel creates a new menu model.
// store may be nil, in which case no high scores are shown.
func NewMenuModel(difficulties []core.Difficulty, store *storage.Store, width, height int) MenuModel {
	best := make(map[string]int, len(difficulties))
	if store != nil {
		for _, d := range difficulties {
			if score, err := store.HighScore(d.Name); err == nil && score > 0 {
				best[d.Name] = score
			}
		}
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  difficulties,
		best:   best,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerBlock(theme.MenuTitle.Render("  D U O S W E E P E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerBlock(theme.MenuDescription.Render("Two boards, one pool of lives. Pick a difficulty."), m.width))
	b.WriteString("\n\n")

	for i, d := range m.items {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%-8s", cursor, d.Name)) + "  " +
			theme.MenuDescription.Render(describe(d))
		if score, ok := m.best[d.Name]; ok {
			line += theme.HUDValue.Render(fmt.Sprintf("  best %d", score))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerBlock(theme.HUDControls.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// describe summarizes a difficulty on one line.
func describe(d core.Difficulty) string {
	return fmt.Sprintf("%dx%d, %d mines, %d ?, %d !, %d lives, power %d",
		d.Rows, d.Cols, d.MineCount, d.QuestionCount, d.SurpriseCount, d.StartingLives, d.PowerCost)
}

// Selected returns the selected difficulty, or nil if none selected.
func (m MenuModel) Selected() *core.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// centerText centers styled text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
