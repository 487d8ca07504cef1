package solver

import "svw.info/playsudoku/internal/domain"

// Backtracking is a straightforward recursive solver over a value grid.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < domain.Size; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
