package assessment

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

// ErrNotFound is returned when a student has no recorded data of the
// requested kind.
var ErrNotFound = errors.New("assessment not found")

// Store persists captured assessment facts. Rows are append-only: history is
// retained, and the scoring engine reads only the latest session/attempt.
type Store interface {
	SaveCognitiveSession(ctx context.Context, responses []profile.RawCognitiveResponse) error
	LatestCognitiveSession(ctx context.Context, studentID string) ([]profile.RawCognitiveResponse, error)
	SaveAcademicResult(ctx context.Context, r profile.AcademicResult) error
	LatestAcademicResult(ctx context.Context, studentID string) (*profile.AcademicResult, error)
	ListAcademicResults(ctx context.Context, studentID string, limit int) ([]profile.AcademicResult, error)
}

type memoryStore struct {
	mu        sync.RWMutex
	cognitive map[string][]profile.RawCognitiveResponse // studentID -> all rows
	academic  map[string][]profile.AcademicResult       // studentID -> all attempts
}

func NewInMemoryStore() Store {
	return &memoryStore{
		cognitive: map[string][]profile.RawCognitiveResponse{},
		academic:  map[string][]profile.AcademicResult{},
	}
}

func (m *memoryStore) SaveCognitiveSession(_ context.Context, responses []profile.RawCognitiveResponse) error {
	if len(responses) == 0 {
		return errors.New("empty session")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sid := responses[0].StudentID
	m.cognitive[sid] = append(m.cognitive[sid], responses...)
	return nil
}

func (m *memoryStore) LatestCognitiveSession(_ context.Context, studentID string) ([]profile.RawCognitiveResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := m.cognitive[studentID]
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	// latest session = the one whose rows were submitted most recently
	latest := rows[0]
	for _, r := range rows {
		if r.SubmittedAt > latest.SubmittedAt {
			latest = r
		}
	}
	var out []profile.RawCognitiveResponse
	for _, r := range rows {
		if r.SessionID == latest.SessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryStore) SaveAcademicResult(_ context.Context, r profile.AcademicResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.academic[r.StudentID] = append(m.academic[r.StudentID], r)
	return nil
}

func (m *memoryStore) LatestAcademicResult(_ context.Context, studentID string) (*profile.AcademicResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	attempts := m.academic[studentID]
	if len(attempts) == 0 {
		return nil, ErrNotFound
	}
	best := attempts[0]
	for _, a := range attempts {
		if a.CompletedAt > best.CompletedAt {
			best = a
		}
	}
	return &best, nil
}

func (m *memoryStore) ListAcademicResults(_ context.Context, studentID string, limit int) ([]profile.AcademicResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	attempts := append([]profile.AcademicResult(nil), m.academic[studentID]...)
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].CompletedAt > attempts[j].CompletedAt })
	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}
	return attempts, nil
}
