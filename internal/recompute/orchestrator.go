package recompute

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/learnsight/learnsight-engine/internal/assessment"
	"github.com/learnsight/learnsight-engine/internal/profile"
	syncx "github.com/learnsight/learnsight-engine/internal/sync"
)

// Event names the submission kind that triggered a recomputation.
type Event string

const (
	EventCognitiveSubmitted Event = "cognitive_submitted"
	EventAcademicSubmitted  Event = "academic_submitted"
)

// Error is a retryable recomputation failure. The previous profile is left
// untouched; callers should retry the recompute call, not the submission.
type Error struct {
	StudentID string
	Event     Event
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("recompute failed for student %s on %s: %v", e.StudentID, e.Event, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Orchestrator reacts to assessment submissions and rebuilds the student's
// profile from the latest state of both inputs. Both event types converge on
// the same path, so arrival order cannot change the final profile.
type Orchestrator struct {
	assessments assessment.Store
	profiles    profile.Store
	calc        *profile.Calculator
	threshold   int
	events      syncx.Appender // optional audit trail
	now         func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per-student serialization
}

func New(assessments assessment.Store, profiles profile.Store, calc *profile.Calculator, threshold int, events syncx.Appender, now func() time.Time) *Orchestrator {
	if threshold <= 0 {
		threshold = profile.DefaultBucketThreshold
	}
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		assessments: assessments,
		profiles:    profiles,
		calc:        calc,
		threshold:   threshold,
		events:      events,
		now:         now,
		locks:       map[string]*sync.Mutex{},
	}
}

// OnCognitiveSubmission recomputes after a full questionnaire session lands.
func (o *Orchestrator) OnCognitiveSubmission(ctx context.Context, studentID string) (profile.StudentProfile, error) {
	return o.recompute(ctx, studentID, EventCognitiveSubmitted)
}

// OnAcademicSubmission recomputes after an academic attempt lands.
func (o *Orchestrator) OnAcademicSubmission(ctx context.Context, studentID string) (profile.StudentProfile, error) {
	return o.recompute(ctx, studentID, EventAcademicSubmitted)
}

func (o *Orchestrator) studentLock(studentID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.locks[studentID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[studentID] = l
	}
	return l
}

// recompute runs the full pipeline under the student's lock. Reads through
// the profile store never block on this lock; they see the prior profile
// until SaveProfile swaps in the new row.
func (o *Orchestrator) recompute(ctx context.Context, studentID string, ev Event) (profile.StudentProfile, error) {
	lock := o.studentLock(studentID)
	lock.Lock()
	defer lock.Unlock()

	p, err := o.build(ctx, studentID)
	if err != nil {
		return profile.StudentProfile{}, &Error{StudentID: studentID, Event: ev, Err: err}
	}
	if err := o.profiles.SaveProfile(ctx, p); err != nil {
		return profile.StudentProfile{}, &Error{StudentID: studentID, Event: ev, Err: err}
	}
	if o.events != nil {
		data, _ := json.Marshal(map[string]any{"event": string(ev), "primary": p.PrimaryCategory})
		_ = o.events.Append(ctx, syncx.Event{
			SiteID: "local", Type: syncx.TypeProfileRecomputed, Key: studentID, DataJSON: string(data),
		})
	}
	return p, nil
}

func (o *Orchestrator) build(ctx context.Context, studentID string) (profile.StudentProfile, error) {
	var domains profile.DomainScores
	responses, err := o.assessments.LatestCognitiveSession(ctx, studentID)
	switch {
	case err == nil:
		domains, err = profile.Aggregate(responses)
		if err != nil {
			return profile.StudentProfile{}, err
		}
	case errors.Is(err, assessment.ErrNotFound):
		// no cognitive evidence yet
	default:
		return profile.StudentProfile{}, err
	}

	var signals *profile.AcademicSignals
	latest, err := o.assessments.LatestAcademicResult(ctx, studentID)
	switch {
	case err == nil:
		s, err := profile.Normalize(*latest)
		if err != nil {
			return profile.StudentProfile{}, err
		}
		signals = &s
	case errors.Is(err, assessment.ErrNotFound):
		// no academic evidence yet
	default:
		return profile.StudentProfile{}, err
	}

	scores := o.calc.Scores(domains, signals)
	assigned := profile.AssignBuckets(scores, o.threshold)
	buckets := assigned.Buckets
	if buckets == nil {
		buckets = []profile.Category{}
	}
	return profile.StudentProfile{
		StudentID:         studentID,
		CategoryScores:    scores,
		PrimaryCategory:   assigned.Primary,
		SecondaryCategory: assigned.Secondary,
		AssignedBuckets:   buckets,
		ComputedAt:        o.now().Unix(),
	}, nil
}
