package assessment

import (
	"github.com/learnsight/learnsight-engine/internal/profile"
)

// CognitiveItem is one answered questionnaire item inside a submission batch.
type CognitiveItem struct {
	Domain        string `json:"domain"`
	Value         int    `json:"value"`
	ReverseScored bool   `json:"reverse_scored"`
	Respondent    string `json:"respondent_role"` // self|guardian
}

// CognitiveSubmission is one completed questionnaire batch for a student.
// Self and guardian answers may share a session by reusing the session id.
type CognitiveSubmission struct {
	StudentID string          `json:"student_id"`
	SessionID string          `json:"session_id,omitempty"`
	Items     []CognitiveItem `json:"responses"`
}

// AcademicSubmission is one completed academic test attempt.
type AcademicSubmission struct {
	StudentID      string `json:"student_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	TimeTakenSec   int    `json:"time_taken_seconds"`
}

// Validate rejects malformed cognitive batches at the capture boundary so
// bad rows never reach the scoring engine.
func (s CognitiveSubmission) Validate() error {
	if s.StudentID == "" {
		return &profile.ValidationError{Field: "student_id", Msg: "required"}
	}
	if len(s.Items) == 0 {
		return &profile.ValidationError{Field: "responses", Msg: "at least one response required"}
	}
	for _, it := range s.Items {
		if _, err := profile.ParseDomain(it.Domain); err != nil {
			return err
		}
		if it.Value < 1 || it.Value > 5 {
			return &profile.ValidationError{Field: "value", Msg: "likert value out of range 1..5"}
		}
		switch profile.RespondentRole(it.Respondent) {
		case profile.RoleSelf, profile.RoleGuardian:
		default:
			return &profile.ValidationError{Field: "respondent_role", Msg: "must be self or guardian"}
		}
	}
	return nil
}

// Validate rejects malformed academic attempts at the capture boundary.
func (s AcademicSubmission) Validate() error {
	if s.StudentID == "" {
		return &profile.ValidationError{Field: "student_id", Msg: "required"}
	}
	if s.TotalQuestions <= 0 {
		return &profile.ValidationError{Field: "total_questions", Msg: "must be positive"}
	}
	if s.Score < 0 || s.Score > s.TotalQuestions {
		return &profile.ValidationError{Field: "score", Msg: "must be between 0 and total_questions"}
	}
	if s.TimeTakenSec < 0 {
		return &profile.ValidationError{Field: "time_taken_seconds", Msg: "must be non-negative"}
	}
	return nil
}
