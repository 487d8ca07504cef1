package httpadapter

import (
	"context"
	"math/rand"
	"testing"

	"svw.info/playsudoku/internal/domain"
	"svw.info/playsudoku/internal/generator"
	"svw.info/playsudoku/internal/session"
	"svw.info/playsudoku/internal/validator"
)

func newManagedSession(t *testing.T) (*Manager, string) {
	t.Helper()
	game, _, err := generator.NewRandomized().Generate(context.Background(), 5, domain.Easy)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m := NewManager()
	id := m.Add(session.New(game, validator.New(), rand.New(rand.NewSource(5))))
	return m, id
}

func TestManagerDoAndViewOf(t *testing.T) {
	m, id := newManagedSession(t)

	v, ok := m.ViewOf(id)
	if !ok {
		t.Fatal("ViewOf unknown for fresh session")
	}
	if v.CellsRemaining != 40 {
		t.Fatalf("cellsRemaining = %d, want 40", v.CellsRemaining)
	}

	v, ok = m.Do(id, func(s *session.Session) { s.AutoSolve() })
	if !ok || !v.Completed {
		t.Fatalf("Do(autosolve): ok=%v view=%+v", ok, v)
	}

	if _, ok := m.Do("missing", nil); ok {
		t.Fatal("Do succeeded for unknown ID")
	}
}

func TestManagerBroadcastsToSubscribers(t *testing.T) {
	m, id := newManagedSession(t)

	views, cancel, ok := m.Subscribe(id)
	if !ok {
		t.Fatal("Subscribe failed")
	}
	defer cancel()

	// initial view arrives on subscribe
	first := <-views
	if first.Completed {
		t.Fatal("fresh session reported complete")
	}

	m.Do(id, func(s *session.Session) { s.AutoSolve() })
	second := <-views
	if !second.Completed {
		t.Fatal("mutation view not broadcast")
	}
}

func TestManagerTickAdvancesSessions(t *testing.T) {
	m, id := newManagedSession(t)

	m.tickAll()
	m.tickAll()
	v, _ := m.ViewOf(id)
	if v.Elapsed != 2 {
		t.Fatalf("elapsed = %d, want 2", v.Elapsed)
	}

	m.Do(id, func(s *session.Session) { s.AutoSolve() })
	m.tickAll()
	v, _ = m.ViewOf(id)
	if v.Elapsed != 2 {
		t.Fatalf("elapsed advanced after completion: %d", v.Elapsed)
	}
}
