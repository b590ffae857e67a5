package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/core"
)

// boardView describes how one board is drawn.
type boardView struct {
	board    *core.Board
	title    string
	cursor   core.Pos
	active   bool // board belongs to the player to move
	revealed bool // show hidden mines (game over)
}

// cellGlyph returns the glyph and style for a single cell.
func cellGlyph(c core.Cell, showMines bool) (string, lipgloss.Style) {
	if !c.Revealed() {
		switch {
		case c.Flagged():
			return "F", theme.Flag
		case showMines && c.IsMine():
			return "*", theme.Mine
		default:
			return "·", theme.Hidden
		}
	}

	switch c.Kind() {
	case core.KindMine:
		return "*", theme.MineHit
	case core.KindNumber:
		n := c.AdjacentMines()
		return strconv.Itoa(n), theme.Numbers[n]
	case core.KindQuestion:
		if c.PowerUsed() {
			return "?", theme.PowerUsed
		}
		return "?", theme.Question
	case core.KindSurprise:
		if c.PowerUsed() {
			return "!", theme.PowerUsed
		}
		return "!", theme.Surprise
	default:
		return " ", theme.Empty
	}
}

// renderGrid draws the cells of a board, two columns per cell.
func renderGrid(v boardView) string {
	b := v.board
	var sb strings.Builder
	sb.Grow(b.Rows() * (b.Cols()*2 + 1) * 4)

	for r := range b.Rows() {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := range b.Cols() {
			p := core.P(r, c)
			cell, err := b.Cell(p)
			if err != nil {
				continue
			}
			glyph, style := cellGlyph(cell, v.revealed)
			if v.active && p == v.cursor {
				style = theme.Cursor.Inherit(style)
			}
			if c > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(style.Render(glyph))
		}
	}
	return sb.String()
}

// renderBoard draws a framed board with its title line.
func renderBoard(v boardView) string {
	titleStyle := theme.BoardTitle
	frame := theme.BoardIdle
	title := v.title
	if v.active {
		titleStyle = theme.BoardTitleActive
		frame = theme.BoardActive
		title = "> " + title
	}

	safe := v.board.Rows()*v.board.Cols() - v.board.MineCount()
	progress := strconv.Itoa(v.board.RevealedCount()) + "/" + strconv.Itoa(safe)

	header := titleStyle.Render(title) + "  " + theme.HUDControls.Render(progress)
	return lipgloss.JoinVertical(lipgloss.Center, header, frame.Render(renderGrid(v)))
}

// joinBoards places two rendered boards side by side, or stacked when the
// terminal is too narrow.
func joinBoards(left, right string, width int) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Center, left, right)
	}
	return row
}

// centerBlock centers a multi-line block horizontally within width.
func centerBlock(block string, width int) string {
	if width <= 0 || lipgloss.Width(block) >= width {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
