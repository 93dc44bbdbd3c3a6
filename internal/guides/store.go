package guides

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
)

// Store persists tagged guides. Tagging happens at insert time; readers get
// back whatever categories were attached then. ListGuides with limit <= 0
// returns the full set.
type Store interface {
	PutGuide(ctx context.Context, g Guide) error
	ListGuides(ctx context.Context, gradeLevel string, limit int) ([]Guide, error)
}

type memoryStore struct {
	mu     sync.RWMutex
	guides []Guide
}

func NewInMemoryStore() Store { return &memoryStore{} }

func (m *memoryStore) PutGuide(_ context.Context, g Guide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.guides = append(m.guides, g)
	return nil
}

func (m *memoryStore) ListGuides(_ context.Context, gradeLevel string, limit int) ([]Guide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Guide{}
	for _, g := range m.guides {
		if gradeLevel != "" && g.GradeLevel != gradeLevel {
			continue
		}
		out = append(out, g)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type SQLStore struct{ db *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) PutGuide(ctx context.Context, g Guide) error {
	cats, err := json.Marshal(g.Categories)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO guides (id, title, content, grade_level, categories_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, content=EXCLUDED.content,
		   grade_level=EXCLUDED.grade_level, categories_json=EXCLUDED.categories_json`,
		g.ID, g.Title, g.Content, g.GradeLevel, string(cats), g.CreatedAt)
	return err
}

// ListGuides returns guides newest first. limit <= 0 means no cap, so ranking
// callers see the whole pool before relevance sorting.
func (s *SQLStore) ListGuides(ctx context.Context, gradeLevel string, limit int) ([]Guide, error) {
	q := `SELECT id, title, content, grade_level, categories_json, created_at FROM guides`
	args := []any{}
	if gradeLevel != "" {
		q += ` WHERE grade_level=$1`
		args = append(args, gradeLevel)
	}
	q += ` ORDER BY created_at DESC`
	if limit > 0 {
		q += fmt.Sprintf(` LIMIT %d`, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Guide{}
	for rows.Next() {
		var g Guide
		var cats string
		if err := rows.Scan(&g.ID, &g.Title, &g.Content, &g.GradeLevel, &cats, &g.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cats), &g.Categories); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
