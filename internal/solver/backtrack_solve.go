package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/ports"
)

// ErrUnsolvable covers boards with no completion and canceled contexts.
var ErrUnsolvable = errors.New("solver: unsolvable or canceled")

// Solve returns a completion of g using first-candidate-first backtracking.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	grid := g
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= domain.Size; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
