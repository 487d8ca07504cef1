package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/ports"
)

// ErrBadDifficulty rejects difficulty values outside the defined presets.
// The fill algorithm is only proven for the fixed 9x9/1..9 shape, so anything
// that would change the removal model fails fast instead of producing a
// malformed puzzle.
var ErrBadDifficulty = errors.New("generator: unknown difficulty")

// Randomized produces solution/puzzle pairs by shuffle-then-scan backtracking.
// All randomness comes from a rand.Rand seeded per call, so generation is
// reproducible from the seed alone.
type Randomized struct{}

// NewRandomized returns a generator with no shared state.
func NewRandomized() *Randomized { return &Randomized{} }

// Generate fills a full solution, then derives the puzzle by clearing the
// difficulty's preset number of cells at shuffled positions. No uniqueness
// check is performed on the result; a derived puzzle may admit completions
// other than the stored solution.
func (g *Randomized) Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Game, ports.Stats, error) {
	start := time.Now()
	if !difficulty.Known() {
		return nil, ports.Stats{}, ErrBadDifficulty
	}
	rng := rand.New(rand.NewSource(seed))

	var solution domain.Grid
	nodes := fill(ctx, rng, &solution, 0)
	if ctx.Err() != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
	}

	puzzle := Derive(rng, solution, difficulty.CellsRemoved())

	game := &domain.Game{
		Seed:       seed,
		Difficulty: difficulty,
		Solution:   solution,
		Puzzle:     puzzle,
		CreatedAt:  time.Now().UnixNano(),
	}
	return game, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Derive copies solution and clears min(cellsToRemove, 81) cells at positions
// drawn from a full shuffle. Counts outside [0,81] are clamped.
func Derive(rng *rand.Rand, solution domain.Grid, cellsToRemove int) domain.Grid {
	if cellsToRemove < 0 {
		cellsToRemove = 0
	}
	if cellsToRemove > domain.Cells {
		cellsToRemove = domain.Cells
	}
	positions := make([]int, domain.Cells)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	puzzle := solution
	for _, idx := range positions[:cellsToRemove] {
		puzzle[idx/domain.Size][idx%domain.Size] = 0
	}
	return puzzle
}

// fill assigns cells in row-major order starting at flat index idx, trying
// the digits 1..9 in a fresh random order at every cell. The per-cell shuffle
// is what varies grids between seeds; the scan order itself is fixed.
// Returns the number of candidate attempts for stats.
func fill(ctx context.Context, rng *rand.Rand, grid *domain.Grid, idx int) int {
	nodes := 0
	var dfs func(int) bool
	dfs = func(i int) bool {
		if ctx.Err() != nil {
			return false
		}
		if i == domain.Cells {
			return true
		}
		r, c := i/domain.Size, i%domain.Size
		if grid[r][c] != 0 {
			return dfs(i + 1)
		}
		var digits [domain.Size]uint8
		for d := range digits {
			digits[d] = uint8(d + 1)
		}
		rng.Shuffle(domain.Size, func(a, b int) {
			digits[a], digits[b] = digits[b], digits[a]
		})
		for _, v := range digits {
			nodes++
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(i + 1) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	dfs(idx)
	return nodes
}

// allowed checks the row, column, and 3x3 box for v.
func allowed(g *domain.Grid, r, c int, v uint8) bool {
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
