package assessment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/learnsight/learnsight-engine/internal/assessment"
	"github.com/learnsight/learnsight-engine/internal/profile"
)

func TestCognitiveSubmission_Validate(t *testing.T) {
	valid := assessment.CognitiveSubmission{
		StudentID: "s1",
		Items: []assessment.CognitiveItem{
			{Domain: "processing_speed", Value: 3, Respondent: "self"},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		sub  assessment.CognitiveSubmission
	}{
		{"missing student", assessment.CognitiveSubmission{Items: valid.Items}},
		{"empty batch", assessment.CognitiveSubmission{StudentID: "s1"}},
		{"unknown domain", assessment.CognitiveSubmission{StudentID: "s1",
			Items: []assessment.CognitiveItem{{Domain: "charisma", Value: 3, Respondent: "self"}}}},
		{"value too high", assessment.CognitiveSubmission{StudentID: "s1",
			Items: []assessment.CognitiveItem{{Domain: "processing_speed", Value: 6, Respondent: "self"}}}},
		{"value too low", assessment.CognitiveSubmission{StudentID: "s1",
			Items: []assessment.CognitiveItem{{Domain: "processing_speed", Value: 0, Respondent: "self"}}}},
		{"bad respondent", assessment.CognitiveSubmission{StudentID: "s1",
			Items: []assessment.CognitiveItem{{Domain: "processing_speed", Value: 3, Respondent: "teacher"}}}},
	}
	for _, tc := range cases {
		if err := tc.sub.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestAcademicSubmission_Validate(t *testing.T) {
	valid := assessment.AcademicSubmission{StudentID: "s1", Score: 17, TotalQuestions: 20, TimeTakenSec: 480}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		sub  assessment.AcademicSubmission
	}{
		{"missing student", assessment.AcademicSubmission{Score: 1, TotalQuestions: 10}},
		{"zero total", assessment.AcademicSubmission{StudentID: "s1", TotalQuestions: 0}},
		{"score past total", assessment.AcademicSubmission{StudentID: "s1", Score: 11, TotalQuestions: 10}},
		{"negative score", assessment.AcademicSubmission{StudentID: "s1", Score: -1, TotalQuestions: 10}},
		{"negative time", assessment.AcademicSubmission{StudentID: "s1", Score: 5, TotalQuestions: 10, TimeTakenSec: -1}},
	}
	for _, tc := range cases {
		if err := tc.sub.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestMemoryStore_LatestCognitiveSession(t *testing.T) {
	ctx := context.Background()
	st := assessment.NewInMemoryStore()

	session := func(sid string, at int64, values ...int) []profile.RawCognitiveResponse {
		rows := make([]profile.RawCognitiveResponse, 0, len(values))
		for _, v := range values {
			rows = append(rows, profile.RawCognitiveResponse{
				StudentID: "s1", SessionID: sid,
				Domain: profile.DomainProcessingSpeed, Value: v,
				Respondent: profile.RoleSelf, SubmittedAt: at,
			})
		}
		return rows
	}

	if _, err := st.LatestCognitiveSession(ctx, "s1"); !errors.Is(err, assessment.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.SaveCognitiveSession(ctx, session("sess-old", 100, 1, 2)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.SaveCognitiveSession(ctx, session("sess-new", 200, 4, 5)); err != nil {
		t.Fatalf("save: %v", err)
	}

	rows, err := st.LatestCognitiveSession(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows from the newest session, got %d", len(rows))
	}
	for _, r := range rows {
		if r.SessionID != "sess-new" {
			t.Fatalf("expected rows from sess-new only, got %s", r.SessionID)
		}
	}
}

func TestMemoryStore_AcademicHistory(t *testing.T) {
	ctx := context.Background()
	st := assessment.NewInMemoryStore()

	if _, err := st.LatestAcademicResult(ctx, "s1"); !errors.Is(err, assessment.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	for i, at := range []int64{100, 300, 200} {
		err := st.SaveAcademicResult(ctx, profile.AcademicResult{
			StudentID: "s1", Score: i, TotalQuestions: 10, CompletedAt: at,
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	latest, err := st.LatestAcademicResult(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.CompletedAt != 300 {
		t.Fatalf("expected latest attempt at 300, got %d", latest.CompletedAt)
	}

	list, err := st.ListAcademicResults(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected limit 2, got %d", len(list))
	}
	if list[0].CompletedAt != 300 || list[1].CompletedAt != 200 {
		t.Fatalf("expected newest-first ordering, got %v", list)
	}
}
