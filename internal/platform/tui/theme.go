package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles for the match, menu and history screens.
type Theme struct {
	// Cell styles
	Hidden    lipgloss.Style
	Flag      lipgloss.Style
	Empty     lipgloss.Style
	Mine      lipgloss.Style
	MineHit   lipgloss.Style // mine revealed by a player
	Question  lipgloss.Style
	Surprise  lipgloss.Style
	PowerUsed lipgloss.Style
	Numbers   [9]lipgloss.Style // indexed by adjacent mine count
	Cursor    lipgloss.Style

	// Board frames
	BoardActive      lipgloss.Style
	BoardIdle        lipgloss.Style
	BoardTitle       lipgloss.Style
	BoardTitleActive lipgloss.Style

	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDControls  lipgloss.Style
	StatusGood   lipgloss.Style
	StatusBad    lipgloss.Style
	StatusInfo   lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
	OverlayOption lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Theme{
		Hidden:    fg("240"),
		Flag:      fg("208").Bold(true),
		Empty:     fg("236"),
		Mine:      fg("88"),
		MineHit:   fg("15").Background(lipgloss.Color("124")).Bold(true),
		Question:  fg("51").Bold(true),
		Surprise:  fg("205").Bold(true),
		PowerUsed: fg("242"),
		Numbers: [9]lipgloss.Style{
			fg("236"),
			fg("39"),  // 1 blue
			fg("46"),  // 2 green
			fg("196"), // 3 red
			fg("63"),  // 4 purple
			fg("130"), // 5 brown
			fg("44"),  // 6 teal
			fg("252"), // 7
			fg("245"), // 8
		},
		Cursor: lipgloss.NewStyle().Reverse(true),

		BoardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		BoardIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		BoardTitle:       fg("245"),
		BoardTitleActive: fg("226").Bold(true),

		HUDTitle:     fg("51").Bold(true),
		HUDValue:     fg("255"),
		HUDSeparator: fg("240"),
		HUDControls:  fg("241"),
		StatusGood:   fg("46"),
		StatusBad:    fg("196"),
		StatusInfo:   fg("250"),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("51")).
			Padding(1, 2),
		OverlayTitle:  fg("226").Bold(true),
		OverlayText:   fg("255"),
		OverlayOption: fg("252"),

		MenuTitle:       fg("51").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),
	}
}

// MonochromeTheme returns a theme without colors for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	plain := lipgloss.NewStyle()
	for i := range theme.Numbers {
		theme.Numbers[i] = plain
	}
	theme.Hidden = plain.Faint(true)
	theme.Flag = plain.Bold(true)
	theme.Mine = plain
	theme.MineHit = plain.Reverse(true).Bold(true)
	theme.Question = plain.Bold(true)
	theme.Surprise = plain.Bold(true)
	theme.PowerUsed = plain.Faint(true)
	theme.BoardActive = theme.BoardActive.BorderForeground(lipgloss.NoColor{}).BorderStyle(lipgloss.ThickBorder())
	theme.BoardIdle = theme.BoardIdle.BorderForeground(lipgloss.NoColor{})
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// ThemeByName returns a theme by name: "default" or "mono".
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return Theme{}, false
}
