package session

import (
	"math"
	"math/rand"
	"time"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/ports"
)

// Session owns one active game: the immutable solution/puzzle pair plus all
// mutable play state. Nothing else writes the working grid. Operations are
// not safe for concurrent use; callers serialize mutations (the adapters
// hold a per-session mutex).
type Session struct {
	game      *domain.Game
	working   domain.Grid
	conflicts domain.ConflictSet
	selected  *domain.CellCoord

	mistakes     int
	hintsUsed    int
	elapsed      int
	timerRunning bool
	completed    bool

	validator ports.Validator
	rng       *rand.Rand
}

// New starts play on game. The working grid begins as a copy of the puzzle
// and the timer starts immediately. rng drives hint cell selection only.
func New(game *domain.Game, v ports.Validator, rng *rand.Rand) *Session {
	return &Session{
		game:         game,
		working:      game.Puzzle,
		timerRunning: true,
		validator:    v,
		rng:          rng,
	}
}

// IsGiven reports whether the cell is a puzzle given and therefore immutable.
func (s *Session) IsGiven(pos domain.CellCoord) bool {
	return pos.InBounds() && s.game.Puzzle[pos.Row][pos.Col] != 0
}

// Select marks pos as the target for Place. Selecting a given cell or an
// out-of-bounds position is silently ignored.
func (s *Session) Select(pos domain.CellCoord) {
	if !pos.InBounds() || s.IsGiven(pos) {
		return
	}
	p := pos
	s.selected = &p
}

// Place writes digit (1..9) into the selected cell, or clears it when digit
// is 0. Ignored when no cell is selected, the cell is a given, or the digit
// is out of range. A concrete digit that differs from the solution counts as
// a mistake immediately, whether or not it produces a conflict.
func (s *Session) Place(digit uint8) {
	if s.selected == nil || digit > domain.Size {
		return
	}
	pos := *s.selected
	if s.IsGiven(pos) {
		return
	}
	s.working[pos.Row][pos.Col] = digit
	if digit != 0 && digit != s.game.Solution[pos.Row][pos.Col] {
		s.mistakes++
	}
	s.refresh()
}

// Clear removes the digit at the selected cell. Equivalent to Place(0).
func (s *Session) Clear() { s.Place(0) }

// Check recomputes conflicts and completion on demand, without a placement.
// Calling it twice in a row yields identical state.
func (s *Session) Check() { s.refresh() }

// Hint reveals the solution digit at one empty, non-given cell chosen
// uniformly at random, selects that cell, and increments the hint counter.
// No-op when the session is complete or no eligible cell exists. Cells the
// player filled (even wrongly) are not eligible.
func (s *Session) Hint() {
	if s.completed {
		return
	}
	var eligible []domain.CellCoord
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if s.game.Puzzle[r][c] == 0 && s.working[r][c] == 0 {
				eligible = append(eligible, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	if len(eligible) == 0 {
		return
	}
	pos := eligible[s.rng.Intn(len(eligible))]
	s.working[pos.Row][pos.Col] = s.game.Solution[pos.Row][pos.Col]
	s.selected = &pos
	s.hintsUsed++
	s.refresh()
}

// AutoSolve reveals the stored solution wholesale and ends the game. This is
// a distinct give-up action: neither mistakes nor hints are counted.
func (s *Session) AutoSolve() {
	s.working = s.game.Solution
	s.conflicts = domain.ConflictSet{}
	s.selected = nil
	s.completed = true
	s.timerRunning = false
}

// Reset restores the working grid to the puzzle and zeroes all counters.
// The solution/puzzle pair is kept; only NewGame replaces it.
func (s *Session) Reset() {
	s.working = s.game.Puzzle
	s.conflicts = domain.ConflictSet{}
	s.selected = nil
	s.mistakes = 0
	s.hintsUsed = 0
	s.elapsed = 0
	s.completed = false
	s.timerRunning = true
}

// Tick advances the elapsed-seconds counter. The engine never touches the
// wall clock; an external scheduler calls this once per second.
func (s *Session) Tick() {
	if s.timerRunning && !s.completed {
		s.elapsed++
	}
}

func (s *Session) refresh() {
	s.conflicts = s.validator.Conflicts(s.working)
	s.completed = s.working.CountEmpty() == 0 && s.conflicts.Empty()
	if s.completed {
		s.timerRunning = false
	}
}

// CellsRemaining counts empty cells in the working grid.
func (s *Session) CellsRemaining() int { return s.working.CountEmpty() }

// CompletionPercent is the filled share of the board, rounded to a whole
// percent.
func (s *Session) CompletionPercent() int {
	filled := domain.Cells - s.working.CountEmpty()
	return int(math.Round(100 * float64(filled) / float64(domain.Cells)))
}

// CanHint reports whether Hint would do anything.
func (s *Session) CanHint() bool {
	if s.completed {
		return false
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if s.game.Puzzle[r][c] == 0 && s.working[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// Completed reports whether the board is full and conflict-free.
func (s *Session) Completed() bool { return s.completed }

// Mistakes returns the running count of wrong placements.
func (s *Session) Mistakes() int { return s.mistakes }

// HintsUsed returns how many hints have been revealed.
func (s *Session) HintsUsed() int { return s.hintsUsed }

// Elapsed returns the played seconds.
func (s *Session) Elapsed() int { return s.elapsed }

// TimerRunning reports whether Tick currently advances the clock.
func (s *Session) TimerRunning() bool { return s.timerRunning }

// Working returns a copy of the working grid.
func (s *Session) Working() domain.Grid { return s.working }

// Puzzle returns a copy of the puzzle grid (to distinguish givens).
func (s *Session) Puzzle() domain.Grid { return s.game.Puzzle }

// Solution returns a copy of the stored solution.
func (s *Session) Solution() domain.Grid { return s.game.Solution }

// Conflicts returns the current conflict set.
func (s *Session) Conflicts() domain.ConflictSet { return s.conflicts }

// Selected returns the selected cell, or nil.
func (s *Session) Selected() *domain.CellCoord {
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

// Difficulty returns the game's difficulty preset.
func (s *Session) Difficulty() domain.Difficulty { return s.game.Difficulty }

// Snapshot captures the full session for persistence.
func (s *Session) Snapshot(id, name string) *domain.SavedGame {
	return &domain.SavedGame{
		ID:         id,
		Name:       name,
		Seed:       s.game.Seed,
		Difficulty: s.game.Difficulty,
		Solution:   s.game.Solution,
		Puzzle:     s.game.Puzzle,
		Working:    s.working,
		Mistakes:   s.mistakes,
		HintsUsed:  s.hintsUsed,
		Elapsed:    s.elapsed,
		Completed:  s.completed,
		CreatedAt:  time.Now().UnixNano(),
	}
}

// Restore rebuilds a session from a snapshot. Conflicts are recomputed
// rather than trusted from disk; the timer resumes unless the snapshot was
// already complete.
func Restore(saved *domain.SavedGame, v ports.Validator, rng *rand.Rand) *Session {
	s := &Session{
		game: &domain.Game{
			Seed:       saved.Seed,
			Difficulty: saved.Difficulty,
			Solution:   saved.Solution,
			Puzzle:     saved.Puzzle,
			CreatedAt:  saved.CreatedAt,
		},
		working:   saved.Working,
		mistakes:  saved.Mistakes,
		hintsUsed: saved.HintsUsed,
		elapsed:   saved.Elapsed,
		validator: v,
		rng:       rng,
	}
	s.refresh()
	s.timerRunning = !s.completed
	return s
}
