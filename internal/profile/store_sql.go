package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// SaveProfile upserts the full profile row in one statement, so concurrent
// readers see either the old profile or the new one, never a mix.
func (s *SQLStore) SaveProfile(ctx context.Context, p StudentProfile) error {
	scores, err := json.Marshal(p.CategoryScores)
	if err != nil {
		return err
	}
	buckets, err := json.Marshal(p.AssignedBuckets)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (student_id, category_scores_json, primary_category, secondary_category, buckets_json, computed_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (student_id) DO UPDATE SET
		   category_scores_json=EXCLUDED.category_scores_json,
		   primary_category=EXCLUDED.primary_category,
		   secondary_category=EXCLUDED.secondary_category,
		   buckets_json=EXCLUDED.buckets_json,
		   computed_at=EXCLUDED.computed_at`,
		p.StudentID, string(scores), string(p.PrimaryCategory), string(p.SecondaryCategory), string(buckets), p.ComputedAt)
	return err
}

func (s *SQLStore) GetProfile(ctx context.Context, studentID string) (StudentProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT student_id, category_scores_json, primary_category, secondary_category, buckets_json, computed_at
		 FROM profiles WHERE student_id=$1`, studentID)
	return scanProfile(row)
}

func (s *SQLStore) BucketMembers(ctx context.Context, c Category, threshold int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT student_id, category_scores_json FROM profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var id, scoresJSON string
		if err := rows.Scan(&id, &scoresJSON); err != nil {
			return nil, err
		}
		var scores map[Category]int
		if err := json.Unmarshal([]byte(scoresJSON), &scores); err != nil {
			return nil, err
		}
		if scores[c] >= threshold {
			out = append(out, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (StudentProfile, error) {
	var p StudentProfile
	var scoresJSON, bucketsJSON, primary, secondary string
	err := row.Scan(&p.StudentID, &scoresJSON, &primary, &secondary, &bucketsJSON, &p.ComputedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return StudentProfile{}, ErrNotFound
	}
	if err != nil {
		return StudentProfile{}, err
	}
	if err := json.Unmarshal([]byte(scoresJSON), &p.CategoryScores); err != nil {
		return StudentProfile{}, err
	}
	if err := json.Unmarshal([]byte(bucketsJSON), &p.AssignedBuckets); err != nil {
		return StudentProfile{}, err
	}
	p.PrimaryCategory = Category(primary)
	p.SecondaryCategory = Category(secondary)
	return p, nil
}
