package usecase

import (
	"context"
	"errors"
	"math/rand"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/ports"
	"svw.info/playsudoku/internal/session"
)

// Service wires the engine's providers for the adapters.
type Service struct {
	Generator ports.Generator
	Solver    ports.Solver
	Validator ports.Validator
	Store     ports.SessionStore
}

func NewService(g ports.Generator, s ports.Solver, v ports.Validator, st ports.SessionStore) *Service {
	return &Service{Generator: g, Solver: s, Validator: v, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGame generates a fresh solution/puzzle pair and starts a session on it.
// The session's hint randomness is derived from the same seed, so a game is
// fully reproducible from (seed, difficulty).
func (u *Service) NewGame(ctx context.Context, seed int64, d domain.Difficulty) (*session.Session, ports.Stats, error) {
	if u.Generator == nil || u.Validator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	game, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return nil, st, err
	}
	return session.New(game, u.Validator, rand.New(rand.NewSource(seed))), st, nil
}

// Solve completes an arbitrary board, independent of any session.
func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// Unique reports whether a board admits exactly one completion.
func (u *Service) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

// Persistence

func (u *Service) SaveSession(ctx context.Context, s *domain.SavedGame) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Save(ctx, s)
}

// LoadSession restores a saved snapshot into a live session.
func (u *Service) LoadSession(ctx context.Context, id string) (*session.Session, error) {
	if u.Store == nil || u.Validator == nil {
		return nil, errNotConfigured
	}
	saved, err := u.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Restore(saved, u.Validator, rand.New(rand.NewSource(saved.Seed))), nil
}

func (u *Service) ListSessions(ctx context.Context) ([]domain.SavedGameMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}
