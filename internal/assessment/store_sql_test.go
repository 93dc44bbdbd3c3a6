package assessment_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/learnsight/learnsight-engine/internal/assessment"
	"github.com/learnsight/learnsight-engine/internal/profile"
)

/* ---------------- stub driver whose transactions refuse to commit ---------------- */

var errCommitRefused = errors.New("commit refused")

type failCommitDriver struct{}

func (failCommitDriver) Open(string) (driver.Conn, error) { return &failCommitConn{}, nil }

type failCommitConn struct{}

func (*failCommitConn) Prepare(string) (driver.Stmt, error) { return &noopStmt{}, nil }
func (*failCommitConn) Close() error                        { return nil }
func (*failCommitConn) Begin() (driver.Tx, error)           { return failCommitTx{}, nil }

type noopStmt struct{}

func (*noopStmt) Close() error  { return nil }
func (*noopStmt) NumInput() int { return -1 }
func (*noopStmt) Exec([]driver.Value) (driver.Result, error) {
	return driver.RowsAffected(1), nil
}
func (*noopStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("query not supported")
}

type failCommitTx struct{}

func (failCommitTx) Commit() error   { return errCommitRefused }
func (failCommitTx) Rollback() error { return nil }

func init() {
	sql.Register("failcommit", failCommitDriver{})
}

func TestSQLStore_SaveCognitiveSessionSurfacesCommitFailure(t *testing.T) {
	db, err := sql.Open("failcommit", "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	st := assessment.NewSQLStore(db)
	rows := []profile.RawCognitiveResponse{
		{StudentID: "s1", SessionID: "sess-1", Domain: profile.DomainProcessingSpeed,
			Value: 3, Respondent: profile.RoleSelf, SubmittedAt: 100},
	}
	// Every insert succeeds, only the commit fails; the caller must still see
	// the error, or the submission is reported saved when nothing persisted.
	err = st.SaveCognitiveSession(context.Background(), rows)
	if err == nil {
		t.Fatalf("expected commit failure to surface")
	}
	if !strings.Contains(err.Error(), "commit refused") {
		t.Fatalf("expected commit error, got %v", err)
	}
}
