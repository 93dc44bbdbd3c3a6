package profile

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when no profile has been computed for a student.
var ErrNotFound = errors.New("profile not found")

// Store persists computed profiles. SaveProfile replaces the whole row;
// readers never observe a partially written profile.
type Store interface {
	SaveProfile(ctx context.Context, p StudentProfile) error
	GetProfile(ctx context.Context, studentID string) (StudentProfile, error)
	BucketMembers(ctx context.Context, c Category, threshold int) ([]string, error)
}

type memoryStore struct {
	mu       sync.RWMutex
	profiles map[string]StudentProfile
}

func NewInMemoryStore() Store {
	return &memoryStore{profiles: map[string]StudentProfile{}}
}

func (m *memoryStore) SaveProfile(_ context.Context, p StudentProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.StudentID] = p
	return nil
}

func (m *memoryStore) GetProfile(_ context.Context, studentID string) (StudentProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[studentID]
	if !ok {
		return StudentProfile{}, ErrNotFound
	}
	return p, nil
}

func (m *memoryStore) BucketMembers(_ context.Context, c Category, threshold int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []string{}
	for id, p := range m.profiles {
		if p.CategoryScores[c] >= threshold {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}
