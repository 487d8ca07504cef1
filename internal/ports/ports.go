package ports

import (
	"context"
	"time"

	"svw.info/playsudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator produces a solution/puzzle pair for a difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Game, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Conflicts(g domain.Grid) domain.ConflictSet
}

// SessionStore persists and retrieves session snapshots as JSON.
type SessionStore interface {
	Save(ctx context.Context, s *domain.SavedGame) error
	Load(ctx context.Context, id string) (*domain.SavedGame, error)
	List(ctx context.Context) ([]domain.SavedGameMeta, error)
}
