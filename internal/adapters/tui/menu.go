package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/usecase"
)

// MenuModel is the difficulty picker shown before and between games.
type MenuModel struct {
	svc     *usecase.Service
	choices []string
	cursor  int
	width   int
	height  int
}

func NewMenu(svc *usecase.Service, width, height int) MenuModel {
	return MenuModel{
		svc:     svc,
		choices: []string{"Easy", "Medium", "Hard", "Quit"},
		width:   width,
		height:  height,
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.choices)-1 {
				return m, tea.Quit
			}
			game := NewGameModel(m.svc, m.width, m.height, domain.Difficulty(m.cursor))
			return game, game.Init()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))

	s := titleStyle.Render("SUDOKU") + "\n\n"
	s += "Select difficulty:\n"
	for i, choice := range m.choices {
		cursor := "  "
		label := choice
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(choice)
		}
		s += fmt.Sprintf("%s%s\n", cursor, label)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("220")).
		Padding(1, 6).
		Render(s)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
