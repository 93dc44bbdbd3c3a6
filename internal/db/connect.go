package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:learnsight.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/learnsight?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL,              -- student|guardian|teacher|admin
  created_at INTEGER NOT NULL
);

-- Immutable capture rows; never updated or deleted. Only the latest session
-- per student participates in scoring.
CREATE TABLE IF NOT EXISTS cognitive_responses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  student_id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  domain TEXT NOT NULL,
  value INTEGER NOT NULL,          -- raw Likert 1..5
  reverse_scored INTEGER NOT NULL DEFAULT 0,
  respondent_role TEXT NOT NULL,   -- self|guardian
  submitted_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cognitive_student ON cognitive_responses(student_id, submitted_at);

-- Attempt history is retained; only the latest attempt drives scoring.
CREATE TABLE IF NOT EXISTS academic_results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  student_id TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  time_taken_sec INTEGER NOT NULL,
  completed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_academic_student ON academic_results(student_id, completed_at);

-- One row per student, fully overwritten on every recomputation.
CREATE TABLE IF NOT EXISTS profiles (
  student_id TEXT PRIMARY KEY,
  category_scores_json TEXT NOT NULL,
  primary_category TEXT NOT NULL,
  secondary_category TEXT NOT NULL DEFAULT '',
  buckets_json TEXT NOT NULL,
  computed_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS guides (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  grade_level TEXT NOT NULL DEFAULT '',
  categories_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  "offset" INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,                        -- e.g., ProfileRecomputed
  key TEXT NOT NULL,                        -- natural key: student id
  data TEXT NOT NULL,                       -- JSON payload
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS cognitive_responses (
  id BIGSERIAL PRIMARY KEY,
  student_id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  domain TEXT NOT NULL,
  value INTEGER NOT NULL,
  reverse_scored INTEGER NOT NULL DEFAULT 0,
  respondent_role TEXT NOT NULL,
  submitted_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cognitive_student ON cognitive_responses(student_id, submitted_at);

CREATE TABLE IF NOT EXISTS academic_results (
  id BIGSERIAL PRIMARY KEY,
  student_id TEXT NOT NULL,
  score INTEGER NOT NULL,
  total_questions INTEGER NOT NULL,
  time_taken_sec INTEGER NOT NULL,
  completed_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_academic_student ON academic_results(student_id, completed_at);

CREATE TABLE IF NOT EXISTS profiles (
  student_id TEXT PRIMARY KEY,
  category_scores_json TEXT NOT NULL,
  primary_category TEXT NOT NULL,
  secondary_category TEXT NOT NULL DEFAULT '',
  buckets_json TEXT NOT NULL,
  computed_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS guides (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  content TEXT NOT NULL,
  grade_level TEXT NOT NULL DEFAULT '',
  categories_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  "offset" BIGSERIAL PRIMARY KEY,
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
