package profile

// RespondentRole identifies who answered a cognitive question.
type RespondentRole string

const (
	RoleSelf     RespondentRole = "self"
	RoleGuardian RespondentRole = "guardian"
)

// RawCognitiveResponse is one Likert answer (1..5) for one question. Rows are
// immutable once captured and are kept for history; only the latest session
// participates in scoring.
type RawCognitiveResponse struct {
	StudentID     string         `json:"student_id"`
	SessionID     string         `json:"session_id"`
	Domain        Domain         `json:"domain"`
	Value         int            `json:"value"` // raw Likert 1..5
	ReverseScored bool           `json:"reverse_scored"`
	Respondent    RespondentRole `json:"respondent_role"`
	SubmittedAt   int64          `json:"submitted_at"`
}

// Effective returns the value used for averaging: reverse-scored items flip
// around the scale midpoint (6 - raw).
func (r RawCognitiveResponse) Effective() float64 {
	if r.ReverseScored {
		return float64(6 - r.Value)
	}
	return float64(r.Value)
}

// AcademicResult is one completed academic test attempt.
type AcademicResult struct {
	StudentID      string `json:"student_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	TimeTakenSec   int    `json:"time_taken_seconds"`
	CompletedAt    int64  `json:"completed_at"`
}

// AcademicSignals is the normalized view of the latest attempt that category
// rules consume. Banding happens inside the rules, not here, so different
// rules can use different time bands.
type AcademicSignals struct {
	Percentage   float64 `json:"percentage"`
	TimeTakenSec int     `json:"time_taken_seconds"`
}

// StudentProfile is the persisted classification for one learner. It is
// always a pure function of the latest cognitive session and latest academic
// attempt; recomputation overwrites the whole row.
type StudentProfile struct {
	StudentID         string           `json:"student_id"`
	CategoryScores    map[Category]int `json:"category_scores"`
	PrimaryCategory   Category         `json:"primary_category"`
	SecondaryCategory Category         `json:"secondary_category,omitempty"`
	AssignedBuckets   []Category       `json:"assigned_buckets"`
	ComputedAt        int64            `json:"last_computed_at"`
}

// InBucket reports whether the profile was assigned to the given category.
func (p StudentProfile) InBucket(c Category) bool {
	for _, b := range p.AssignedBuckets {
		if b == c {
			return true
		}
	}
	return false
}

// RadarPoint is one axis of a radar/chart payload. Consumers must not assume
// a fixed axis count; the category set is configuration, not UI contract.
type RadarPoint struct {
	Label string `json:"category_label"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

// RadarSeries renders category scores as an ordered chart payload using the
// canonical category order.
func (p StudentProfile) RadarSeries() []RadarPoint {
	out := make([]RadarPoint, 0, len(Categories()))
	for _, c := range Categories() {
		out = append(out, RadarPoint{Label: c.Label(), Value: p.CategoryScores[c], Max: 100})
	}
	return out
}
