package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/playsudoku/internal/domain"
)

func testSave(id string, d domain.Difficulty) *domain.SavedGame {
	var solution domain.Grid
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			solution[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	puzzle := solution
	puzzle[0][0] = 0
	return &domain.SavedGame{
		ID:         id,
		Name:       "test",
		Seed:       7,
		Difficulty: d,
		Solution:   solution,
		Puzzle:     puzzle,
		Working:    puzzle,
		Mistakes:   2,
		Elapsed:    30,
		CreatedAt:  123,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	in := testSave("abc", domain.Hard)
	if err := fs.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := fs.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.ID != in.ID || out.Solution != in.Solution || out.Working != in.Working ||
		out.Mistakes != in.Mistakes || out.Elapsed != in.Elapsed || out.Difficulty != in.Difficulty {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.SavedGame{}); err == nil {
		t.Fatal("save without ID succeeded")
	}
}

func TestLoadUnknownID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if _, err := fs.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestListAcrossDifficulties(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()
	for i, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard} {
		if err := fs.Save(ctx, testSave(string(rune('a'+i)), d)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("listed %d saves, want 3", len(metas))
	}
}
