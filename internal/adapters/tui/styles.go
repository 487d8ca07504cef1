package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	givenStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	entryStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("39"))

	cursorStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("220")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	conflictStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("196")).
			Foreground(lipgloss.Color("15"))

	conflictCursorStyle = lipgloss.NewStyle().
				PaddingLeft(1).PaddingRight(1).
				Background(lipgloss.Color("160")).
				Foreground(lipgloss.Color("15")).
				Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Margin(1, 0, 0, 0)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	winBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("220"))

	winTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true).
			Align(lipgloss.Center)
)

// styleCell picks the style for one cell from its flags.
func styleCell(isConflict, isCursor, isGiven bool) lipgloss.Style {
	switch {
	case isConflict && isCursor:
		return conflictCursorStyle
	case isConflict:
		return conflictStyle
	case isCursor:
		return cursorStyle
	case isGiven:
		return givenStyle
	default:
		return entryStyle
	}
}

// boxSeparatorRow draws the horizontal rule between 3x3 bands.
func boxSeparatorRow(rowWidth int) string {
	seg := strings.Repeat("─", rowWidth/3)
	return seg + "┼" + seg + "┼" + seg
}
