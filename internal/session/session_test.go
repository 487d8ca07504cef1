package session

import (
	"context"
	"math/rand"
	"testing"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/generator"
	"svw.info/playsudoku/internal/validator"
)

// fixtureSolution is a valid grid built from shifted rows; handy because the
// digit at any cell is known in closed form.
var fixtureSolution = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 3, 4, 5, 6, 7, 8, 9, 1},
	{5, 6, 7, 8, 9, 1, 2, 3, 4},
	{8, 9, 1, 2, 3, 4, 5, 6, 7},
	{3, 4, 5, 6, 7, 8, 9, 1, 2},
	{6, 7, 8, 9, 1, 2, 3, 4, 5},
	{9, 1, 2, 3, 4, 5, 6, 7, 8},
}

// newFixture starts a session whose puzzle is the fixture solution with the
// given cells blanked.
func newFixture(t *testing.T, blanks ...domain.CellCoord) *Session {
	t.Helper()
	puzzle := fixtureSolution
	for _, b := range blanks {
		puzzle[b.Row][b.Col] = 0
	}
	game := &domain.Game{
		Seed:       1,
		Difficulty: domain.Easy,
		Solution:   fixtureSolution,
		Puzzle:     puzzle,
	}
	return New(game, validator.New(), rand.New(rand.NewSource(1)))
}

func TestNewGameEasyHas41Givens(t *testing.T) {
	game, _, err := generator.NewRandomized().Generate(context.Background(), 42, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s := New(game, validator.New(), rand.New(rand.NewSource(42)))
	if got := s.CellsRemaining(); got != 40 {
		t.Fatalf("easy game has %d empty cells, want 40", got)
	}
	if !s.TimerRunning() {
		t.Fatal("timer not running after new game")
	}
	if s.Completed() || s.Mistakes() != 0 || s.HintsUsed() != 0 || s.Elapsed() != 0 {
		t.Fatal("fresh session carries state")
	}
}

func TestSelectGivenIsIgnored(t *testing.T) {
	s := newFixture(t, domain.CellCoord{Row: 0, Col: 0})
	s.Select(domain.CellCoord{Row: 5, Col: 5}) // a given
	if s.Selected() != nil {
		t.Fatal("selecting a given cell should be a no-op")
	}
	s.Select(domain.CellCoord{Row: 0, Col: 0})
	if sel := s.Selected(); sel == nil || *sel != (domain.CellCoord{Row: 0, Col: 0}) {
		t.Fatalf("empty cell not selectable, got %v", sel)
	}
}

func TestPlaceWithoutSelectionIsIgnored(t *testing.T) {
	s := newFixture(t, domain.CellCoord{Row: 0, Col: 0})
	s.Place(5)
	if s.Working() != s.Puzzle() {
		t.Fatal("place without selection mutated the board")
	}
	if s.Mistakes() != 0 {
		t.Fatal("place without selection counted a mistake")
	}
}

func TestPlaceCorrectLastCellCompletes(t *testing.T) {
	blank := domain.CellCoord{Row: 4, Col: 4}
	s := newFixture(t, blank)
	s.Select(blank)
	s.Place(fixtureSolution[4][4])
	if !s.Completed() {
		t.Fatal("session not completed after filling the last cell correctly")
	}
	if s.TimerRunning() {
		t.Fatal("timer still running after completion")
	}
	if !s.Conflicts().Empty() {
		t.Fatalf("completed board has conflicts: %v", s.Conflicts().Cells())
	}
	before := s.Elapsed()
	s.Tick()
	if s.Elapsed() != before {
		t.Fatal("tick advanced the clock after completion")
	}
}

func TestPlaceWrongCollidingDigit(t *testing.T) {
	blank := domain.CellCoord{Row: 0, Col: 0}
	s := newFixture(t, blank)
	s.Select(blank)
	s.Place(9) // row 0 already holds 9 at (0,8)
	if s.Mistakes() != 1 {
		t.Fatalf("mistakes = %d, want 1", s.Mistakes())
	}
	conf := s.Conflicts()
	if !conf.HasCoord(blank) || !conf.HasCoord(domain.CellCoord{Row: 0, Col: 8}) {
		t.Fatalf("conflict set %v should hold both colliding cells", conf.Cells())
	}
	if s.Completed() {
		t.Fatal("conflicting full board marked complete")
	}
}

// A wrong digit with no visible duplicate counts a mistake but produces no
// conflict: blanking every 2 in sight of (0,0) lets a wrong 2 sit clean.
func TestPlaceWrongNonCollidingDigit(t *testing.T) {
	s := newFixture(t,
		domain.CellCoord{Row: 0, Col: 0}, // solution 1
		domain.CellCoord{Row: 0, Col: 1}, // the 2 in row 0 / box 0
		domain.CellCoord{Row: 3, Col: 0}, // the 2 in col 0
	)
	s.Select(domain.CellCoord{Row: 0, Col: 0})
	s.Place(2)
	if s.Mistakes() != 1 {
		t.Fatalf("mistakes = %d, want 1", s.Mistakes())
	}
	if !s.Conflicts().Empty() {
		t.Fatalf("unexpected conflicts: %v", s.Conflicts().Cells())
	}
}

func TestClearRemovesDigitWithoutMistake(t *testing.T) {
	blank := domain.CellCoord{Row: 0, Col: 0}
	s := newFixture(t, blank)
	s.Select(blank)
	s.Place(9)
	s.Clear()
	if got := s.Working()[0][0]; got != 0 {
		t.Fatalf("cell holds %d after clear", got)
	}
	if !s.Conflicts().Empty() {
		t.Fatalf("conflicts survive clear: %v", s.Conflicts().Cells())
	}
	if s.Mistakes() != 1 {
		t.Fatalf("clear changed mistake count: %d", s.Mistakes())
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	blank := domain.CellCoord{Row: 0, Col: 0}
	s := newFixture(t, blank)
	s.Select(blank)
	s.Place(9)
	s.Check()
	first := s.View()
	s.Check()
	second := s.View()
	if first.Completed != second.Completed || len(first.Conflicts) != len(second.Conflicts) {
		t.Fatal("back-to-back checks disagree")
	}
}

func TestHintFillsLastCell(t *testing.T) {
	blank := domain.CellCoord{Row: 7, Col: 2}
	s := newFixture(t, blank)
	s.Hint()
	if got := s.Working()[7][2]; got != fixtureSolution[7][2] {
		t.Fatalf("hint wrote %d, want %d", got, fixtureSolution[7][2])
	}
	if s.HintsUsed() != 1 {
		t.Fatalf("hintsUsed = %d, want 1", s.HintsUsed())
	}
	if sel := s.Selected(); sel == nil || *sel != blank {
		t.Fatalf("hint should select the revealed cell, got %v", sel)
	}
	if !s.Completed() {
		t.Fatal("hint on the last empty cell should complete the session")
	}
}

func TestHintIgnoresPlayerFilledCells(t *testing.T) {
	blank := domain.CellCoord{Row: 0, Col: 0}
	s := newFixture(t, blank)
	s.Select(blank)
	s.Place(9) // wrong, but the cell is now occupied
	if s.CanHint() {
		t.Fatal("CanHint true with no empty non-given cell")
	}
	s.Hint()
	if s.HintsUsed() != 0 {
		t.Fatal("hint fired with no eligible cell")
	}
	if got := s.Working()[0][0]; got != 9 {
		t.Fatalf("hint overwrote a player cell: %d", got)
	}
}

func TestHintIgnoredAfterCompletion(t *testing.T) {
	s := newFixture(t)
	s.Check() // full fixture board, no blanks: complete
	if !s.Completed() {
		t.Fatal("fixture board should be complete")
	}
	s.Hint()
	if s.HintsUsed() != 0 {
		t.Fatal("hint fired on a completed session")
	}
}

func TestAutoSolveRevealsSolution(t *testing.T) {
	s := newFixture(t,
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 8, Col: 8},
	)
	s.Select(domain.CellCoord{Row: 0, Col: 0})
	s.Place(9) // one mistake on the books
	s.AutoSolve()
	if s.Working() != fixtureSolution {
		t.Fatal("working grid != solution after auto-solve")
	}
	if !s.Conflicts().Empty() || !s.Completed() {
		t.Fatal("auto-solve left conflicts or incomplete state")
	}
	if s.Selected() != nil {
		t.Fatal("auto-solve kept a selection")
	}
	if s.TimerRunning() {
		t.Fatal("timer running after auto-solve")
	}
	if s.Mistakes() != 1 || s.HintsUsed() != 0 {
		t.Fatal("auto-solve changed mistake or hint counters")
	}
}

func TestResetRestoresPuzzle(t *testing.T) {
	blanks := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 1, Col: 1}}
	s := newFixture(t, blanks...)
	s.Select(blanks[0])
	s.Place(9)
	s.Hint()
	s.Tick()
	s.Reset()
	if s.Working() != s.Puzzle() {
		t.Fatal("working grid != puzzle after reset")
	}
	if s.Mistakes() != 0 || s.HintsUsed() != 0 || s.Elapsed() != 0 {
		t.Fatal("counters survived reset")
	}
	if s.Completed() || !s.TimerRunning() {
		t.Fatal("reset should restart an incomplete game")
	}
	if s.Selected() != nil {
		t.Fatal("selection survived reset")
	}
}

func TestTickCountsOnlyWhileRunning(t *testing.T) {
	s := newFixture(t, domain.CellCoord{Row: 0, Col: 0})
	s.Tick()
	s.Tick()
	if s.Elapsed() != 2 {
		t.Fatalf("elapsed = %d, want 2", s.Elapsed())
	}
	s.AutoSolve()
	s.Tick()
	if s.Elapsed() != 2 {
		t.Fatalf("elapsed advanced after completion: %d", s.Elapsed())
	}
}

func TestDerivedMetrics(t *testing.T) {
	s := newFixture(t,
		domain.CellCoord{Row: 0, Col: 0},
		domain.CellCoord{Row: 1, Col: 1},
	)
	if got := s.CellsRemaining(); got != 2 {
		t.Fatalf("cellsRemaining = %d, want 2", got)
	}
	// 79 of 81 filled rounds to 98%
	if got := s.CompletionPercent(); got != 98 {
		t.Fatalf("completionPercent = %d, want 98", got)
	}
	if !s.CanHint() {
		t.Fatal("CanHint false with empty non-given cells")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	blanks := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 2, Col: 3}}
	s := newFixture(t, blanks...)
	s.Select(blanks[0])
	s.Place(9)
	s.Tick()
	s.Tick()

	saved := s.Snapshot("test-id", "halfway")
	restored := Restore(saved, validator.New(), rand.New(rand.NewSource(saved.Seed)))

	if restored.Working() != s.Working() {
		t.Fatal("working grid lost in round trip")
	}
	if restored.Mistakes() != 1 || restored.Elapsed() != 2 {
		t.Fatalf("counters lost: mistakes=%d elapsed=%d", restored.Mistakes(), restored.Elapsed())
	}
	if restored.Conflicts() != s.Conflicts() {
		t.Fatal("conflicts not recomputed on restore")
	}
	if !restored.TimerRunning() {
		t.Fatal("restored incomplete session should have a running timer")
	}
}
