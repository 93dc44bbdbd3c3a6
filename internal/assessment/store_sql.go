package assessment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) SaveCognitiveSession(ctx context.Context, responses []profile.RawCognitiveResponse) (err error) {
	if len(responses) == 0 {
		return errors.New("empty session")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	for _, r := range responses {
		rev := 0
		if r.ReverseScored {
			rev = 1
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO cognitive_responses (student_id, session_id, domain, value, reverse_scored, respondent_role, submitted_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			r.StudentID, r.SessionID, string(r.Domain), r.Value, rev, string(r.Respondent), r.SubmittedAt)
		if err != nil {
			return err
		}
	}
	return err
}

func (s *SQLStore) LatestCognitiveSession(ctx context.Context, studentID string) ([]profile.RawCognitiveResponse, error) {
	var sessionID string
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id FROM cognitive_responses WHERE student_id=$1 ORDER BY submitted_at DESC LIMIT 1`,
		studentID).Scan(&sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, session_id, domain, value, reverse_scored, respondent_role, submitted_at
		 FROM cognitive_responses WHERE student_id=$1 AND session_id=$2`,
		studentID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []profile.RawCognitiveResponse
	for rows.Next() {
		var r profile.RawCognitiveResponse
		var domain, role string
		var rev int
		if err := rows.Scan(&r.StudentID, &r.SessionID, &domain, &r.Value, &rev, &role, &r.SubmittedAt); err != nil {
			return nil, err
		}
		r.Domain = profile.Domain(domain)
		r.Respondent = profile.RespondentRole(role)
		r.ReverseScored = rev != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) SaveAcademicResult(ctx context.Context, r profile.AcademicResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO academic_results (student_id, score, total_questions, time_taken_sec, completed_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		r.StudentID, r.Score, r.TotalQuestions, r.TimeTakenSec, r.CompletedAt)
	return err
}

func (s *SQLStore) LatestAcademicResult(ctx context.Context, studentID string) (*profile.AcademicResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT student_id, score, total_questions, time_taken_sec, completed_at
		 FROM academic_results WHERE student_id=$1 ORDER BY completed_at DESC LIMIT 1`,
		studentID)
	var r profile.AcademicResult
	err := row.Scan(&r.StudentID, &r.Score, &r.TotalQuestions, &r.TimeTakenSec, &r.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLStore) ListAcademicResults(ctx context.Context, studentID string, limit int) ([]profile.AcademicResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT student_id, score, total_questions, time_taken_sec, completed_at
		 FROM academic_results WHERE student_id=$1 ORDER BY completed_at DESC LIMIT $2`,
		studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []profile.AcademicResult{}
	for rows.Next() {
		var r profile.AcademicResult
		if err := rows.Scan(&r.StudentID, &r.Score, &r.TotalQuestions, &r.TimeTakenSec, &r.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
