package syncx

import (
	"context"
	"database/sql"
	"time"
)

// Event types appended by the engine.
const (
	TypeCognitiveSubmitted = "CognitiveSubmitted"
	TypeAcademicSubmitted  = "AcademicSubmitted"
	TypeProfileRecomputed  = "ProfileRecomputed"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string // natural key: student id
	DataJSON  string
	CreatedAt int64
}

// Appender is the write side of the event log. The orchestrator treats it as
// best-effort audit trail, not as the source of truth.
type Appender interface {
	Append(ctx context.Context, e Event) error
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}
