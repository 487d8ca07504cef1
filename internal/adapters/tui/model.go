package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/session"
	"svw.info/playsudoku/internal/usecase"
)

// tickMsg drives the session clock once per second.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// gameReadyMsg delivers the generated session; generation runs in a command
// so the UI can show a busy line while the generator works.
type gameReadyMsg struct {
	sess *session.Session
	err  error
}

// GameModel renders one session and translates key presses into engine
// operations. The engine itself knows nothing about the terminal.
type GameModel struct {
	svc        *usecase.Service
	sess       *session.Session
	keys       KeyMap
	cursor     domain.CellCoord
	difficulty domain.Difficulty
	width      int
	height     int
	status     string
	err        error
}

func NewGameModel(svc *usecase.Service, width, height int, difficulty domain.Difficulty) GameModel {
	return GameModel{
		svc:        svc,
		keys:       Keys,
		difficulty: difficulty,
		width:      width,
		height:     height,
	}
}

func (m GameModel) Init() tea.Cmd {
	svc, diff := m.svc, m.difficulty
	generate := func() tea.Msg {
		sess, _, err := svc.NewGame(context.Background(), time.Now().UnixNano(), diff)
		return gameReadyMsg{sess: sess, err: err}
	}
	return tea.Batch(generate, tickCmd())
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		m.sess = msg.sess
		m.err = msg.err
		return m, nil

	case tickMsg:
		if m.sess != nil {
			m.sess.Tick()
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.sess == nil {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Row = (m.cursor.Row - 1 + domain.Size) % domain.Size
	case key.Matches(msg, m.keys.Down):
		m.cursor.Row = (m.cursor.Row + 1) % domain.Size
	case key.Matches(msg, m.keys.Left):
		m.cursor.Col = (m.cursor.Col - 1 + domain.Size) % domain.Size
	case key.Matches(msg, m.keys.Right):
		m.cursor.Col = (m.cursor.Col + 1) % domain.Size

	case key.Matches(msg, m.keys.Number):
		if !m.sess.IsGiven(m.cursor) {
			m.sess.Select(m.cursor)
			m.sess.Place(msg.String()[0] - '0')
		}
	case key.Matches(msg, m.keys.Clear):
		if !m.sess.IsGiven(m.cursor) {
			m.sess.Select(m.cursor)
			m.sess.Clear()
		}
	case key.Matches(msg, m.keys.Check):
		m.sess.Check()
		if !m.sess.Completed() && m.sess.Conflicts().Empty() {
			m.status = "No conflicts so far."
		}
	case key.Matches(msg, m.keys.Hint):
		if m.sess.CanHint() {
			m.sess.Hint()
			if sel := m.sess.Selected(); sel != nil {
				m.cursor = *sel
			}
		} else {
			m.status = "No hint available."
		}
	case key.Matches(msg, m.keys.AutoSolve):
		m.sess.AutoSolve()
	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
	case key.Matches(msg, m.keys.Menu):
		return NewMenu(m.svc, m.width, m.height), nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m GameModel) View() string {
	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"could not start game: "+m.err.Error())
	}
	if m.sess == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			statusStyle.Render("Generating puzzle..."))
	}
	if m.sess.Completed() {
		return m.renderWin()
	}

	board := m.renderBoard()
	info := m.renderInfo()
	parts := []string{board, info}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(m.status))
	}
	main := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, main)
}

func (m GameModel) renderBoard() string {
	conflicts := m.sess.Conflicts()
	puzzle := m.sess.Puzzle()
	working := m.sess.Working()

	var sb strings.Builder
	rowWidth := 0
	for r := 0; r < domain.Size; r++ {
		var row strings.Builder
		for c := 0; c < domain.Size; c++ {
			cell := " "
			if v := working[r][c]; v != 0 {
				cell = fmt.Sprintf("%d", v)
			}
			pos := domain.CellCoord{Row: r, Col: c}
			st := styleCell(
				conflicts.HasCoord(pos),
				m.cursor == pos,
				puzzle[r][c] != 0,
			)
			row.WriteString(st.Render(cell))
			if c == 2 || c == 5 {
				row.WriteString("│")
			}
		}
		line := row.String()
		rowWidth, _ = lipgloss.Size(line)
		sb.WriteString(line)
		sb.WriteString("\n")
		if r == 2 || r == 5 {
			sb.WriteString(boxSeparatorRow(rowWidth))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m GameModel) renderInfo() string {
	elapsed := m.sess.Elapsed()
	info := fmt.Sprintf("Sudoku — %s\n", m.sess.Difficulty())
	info += fmt.Sprintf("Time %02d:%02d   Mistakes %d   Hints %d\n",
		elapsed/60, elapsed%60, m.sess.Mistakes(), m.sess.HintsUsed())
	info += fmt.Sprintf("Cells left %d   Done %d%%\n",
		m.sess.CellsRemaining(), m.sess.CompletionPercent())
	info += "\narrows move • 1-9 place • 0 clear • c check • i hint\n"
	info += "a reveal • r reset • m menu • q quit"
	return infoStyle.Render(info)
}

func (m GameModel) renderWin() string {
	elapsed := m.sess.Elapsed()
	msg := fmt.Sprintf("%s\n\nTime %02d:%02d   Mistakes %d   Hints %d\n\nPress 'm' for menu or 'q' to quit",
		winTitleStyle.Render("Solved!"),
		elapsed/60, elapsed%60, m.sess.Mistakes(), m.sess.HintsUsed())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		winBoxStyle.Render(msg))
}
