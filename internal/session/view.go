package session

import "svw.info/playsudoku/internal/domain"

// View is the render-ready projection of a session, the full state a
// presentation layer needs. It carries no behavior and is safe to serialize.
type View struct {
	Working           domain.Grid         `json:"working"`
	Puzzle            domain.Grid         `json:"puzzle"`
	Conflicts         []domain.CellCoord  `json:"conflicts,omitempty"`
	Selected          *domain.CellCoord   `json:"selected,omitempty"`
	Difficulty        string              `json:"difficulty"`
	Completed         bool                `json:"completed"`
	Mistakes          int                 `json:"mistakes"`
	HintsUsed         int                 `json:"hintsUsed"`
	Elapsed           int                 `json:"elapsed"`
	TimerRunning      bool                `json:"timerRunning"`
	CellsRemaining    int                 `json:"cellsRemaining"`
	CompletionPercent int                 `json:"completionPercent"`
	CanHint           bool                `json:"canHint"`
}

// View snapshots the current state for rendering.
func (s *Session) View() View {
	return View{
		Working:           s.working,
		Puzzle:            s.game.Puzzle,
		Conflicts:         s.conflicts.Cells(),
		Selected:          s.Selected(),
		Difficulty:        s.game.Difficulty.String(),
		Completed:         s.completed,
		Mistakes:          s.mistakes,
		HintsUsed:         s.hintsUsed,
		Elapsed:           s.elapsed,
		TimerRunning:      s.timerRunning,
		CellsRemaining:    s.CellsRemaining(),
		CompletionPercent: s.CompletionPercent(),
		CanHint:           s.CanHint(),
	}
}
