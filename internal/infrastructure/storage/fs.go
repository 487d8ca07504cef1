package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/playsudoku/internal/domain"
)

// FS stores session snapshots as one JSON file per save, bucketed by
// difficulty under the base directory.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func diffDir(d domain.Difficulty) string {
	switch d {
	case domain.Easy:
		return "easy"
	case domain.Hard:
		return "hard"
	default:
		return "medium"
	}
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, saved *domain.SavedGame) error {
	if saved == nil || saved.ID == "" {
		return errors.New("invalid save: missing ID")
	}
	target := s.pathFor(saved.ID, saved.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(saved)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.SavedGame, error) {
	var data []byte
	for _, sub := range []string{"easy", "medium", "hard"} {
		path := filepath.Join(s.dir, sub, strings.TrimSpace(id)+".json")
		b, err := os.ReadFile(path)
		if err == nil {
			data = b
			break
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.SavedGame
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SavedGameMeta, error) {
	var out []domain.SavedGameMeta
	for _, sub := range []string{"easy", "medium", "hard"} {
		ents, err := os.ReadDir(filepath.Join(s.dir, sub))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, sub, e.Name()))
			if err != nil {
				continue
			}
			var saved domain.SavedGame
			if err := json.Unmarshal(data, &saved); err != nil || saved.ID == "" {
				continue
			}
			out = append(out, domain.SavedGameMeta{
				ID:         saved.ID,
				Name:       saved.Name,
				Difficulty: saved.Difficulty,
				Elapsed:    saved.Elapsed,
				CreatedAt:  saved.CreatedAt,
			})
		}
	}
	return out, nil
}
