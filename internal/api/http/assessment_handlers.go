package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/learnsight/learnsight-engine/internal/assessment"
	"github.com/learnsight/learnsight-engine/internal/profile"
	"github.com/learnsight/learnsight-engine/internal/recompute"
	syncx "github.com/learnsight/learnsight-engine/internal/sync"

	"github.com/google/uuid"
)

// SubmitCognitiveHandler records one completed questionnaire session and
// recomputes the student's profile. The capture row is persisted even when
// recomputation fails; the caller retries the recompute, not the submission.
func SubmitCognitiveHandler(store assessment.Store, orch *recompute.Orchestrator, events syncx.Appender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub assessment.CognitiveSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := sub.Validate(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if sub.SessionID == "" {
			sub.SessionID = uuid.NewString()
		}
		now := time.Now().Unix()
		rows := make([]profile.RawCognitiveResponse, 0, len(sub.Items))
		for _, it := range sub.Items {
			rows = append(rows, profile.RawCognitiveResponse{
				StudentID:     sub.StudentID,
				SessionID:     sub.SessionID,
				Domain:        profile.Domain(it.Domain),
				Value:         it.Value,
				ReverseScored: it.ReverseScored,
				Respondent:    profile.RespondentRole(it.Respondent),
				SubmittedAt:   now,
			})
		}
		if err := store.SaveCognitiveSession(r.Context(), rows); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		appendEvent(r, events, syncx.TypeCognitiveSubmitted, sub.StudentID, map[string]any{
			"session_id": sub.SessionID, "responses": len(rows),
		})
		p, err := orch.OnCognitiveSubmission(r.Context(), sub.StudentID)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// SubmitAcademicHandler records one completed test attempt and recomputes.
func SubmitAcademicHandler(store assessment.Store, orch *recompute.Orchestrator, events syncx.Appender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub assessment.AcademicSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := sub.Validate(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		result := profile.AcademicResult{
			StudentID:      sub.StudentID,
			Score:          sub.Score,
			TotalQuestions: sub.TotalQuestions,
			TimeTakenSec:   sub.TimeTakenSec,
			CompletedAt:    time.Now().Unix(),
		}
		if err := store.SaveAcademicResult(r.Context(), result); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		appendEvent(r, events, syncx.TypeAcademicSubmitted, sub.StudentID, map[string]any{
			"score": sub.Score, "total_questions": sub.TotalQuestions,
		})
		p, err := orch.OnAcademicSubmission(r.Context(), sub.StudentID)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// appendEvent records a capture event in the audit log. Best effort: a full
// event log must not fail the submission.
func appendEvent(r *http.Request, events syncx.Appender, typ, key string, data map[string]any) {
	if events == nil {
		return
	}
	b, _ := json.Marshal(data)
	_ = events.Append(r.Context(), syncx.Event{SiteID: "local", Type: typ, Key: key, DataJSON: string(b)})
}

// statusForError maps engine errors to HTTP codes: malformed input is the
// caller's fault, anything else is retryable.
func statusForError(err error) int {
	var ve *profile.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
