package profile_test

import (
	"math"
	"testing"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

func resp(d profile.Domain, value int, reverse bool, role profile.RespondentRole) profile.RawCognitiveResponse {
	return profile.RawCognitiveResponse{
		StudentID:     "s1",
		SessionID:     "sess-1",
		Domain:        d,
		Value:         value,
		ReverseScored: reverse,
		Respondent:    role,
	}
}

func TestAggregate_ReverseScoring(t *testing.T) {
	got, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.DomainProcessingSpeed, 2, true, profile.RoleSelf),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[profile.DomainProcessingSpeed] != 4.0 {
		t.Fatalf("expected reverse-scored 2 to become 4, got %v", got[profile.DomainProcessingSpeed])
	}
}

func TestAggregate_PoolsSelfAndGuardian(t *testing.T) {
	got, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.DomainProcessingSpeed, 4, false, profile.RoleSelf),
		resp(profile.DomainProcessingSpeed, 2, false, profile.RoleGuardian),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[profile.DomainProcessingSpeed] != 3.0 {
		t.Fatalf("expected pooled average 3.0, got %v", got[profile.DomainProcessingSpeed])
	}
}

func TestAggregate_MixedReverseInOneDomain(t *testing.T) {
	got, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.DomainWorkingMemory, 1, true, profile.RoleSelf),  // -> 5
		resp(profile.DomainWorkingMemory, 3, false, profile.RoleSelf), // -> 3
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got[profile.DomainWorkingMemory]-4.0) > 1e-9 {
		t.Fatalf("expected 4.0, got %v", got[profile.DomainWorkingMemory])
	}
}

func TestAggregate_AbsentDomainsStayAbsent(t *testing.T) {
	got, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.DomainMotivation, 5, false, profile.RoleSelf),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one domain, got %d", len(got))
	}
	if _, ok := got[profile.DomainProcessingSpeed]; ok {
		t.Fatalf("processing_speed should be absent, not zero")
	}
}

func TestAggregate_RejectsOutOfRange(t *testing.T) {
	_, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.DomainMotivation, 6, false, profile.RoleSelf),
	})
	if err == nil {
		t.Fatalf("expected error for likert value 6")
	}
}

func TestAggregate_RejectsUnknownDomain(t *testing.T) {
	_, err := profile.Aggregate([]profile.RawCognitiveResponse{
		resp(profile.Domain("telepathy"), 3, false, profile.RoleSelf),
	})
	if err == nil {
		t.Fatalf("expected error for unknown domain")
	}
}

func TestNormalize_Percentage(t *testing.T) {
	got, err := profile.Normalize(profile.AcademicResult{
		StudentID: "s1", Score: 17, TotalQuestions: 20, TimeTakenSec: 480,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Percentage != 85.0 {
		t.Fatalf("expected 85.0, got %v", got.Percentage)
	}
	if got.TimeTakenSec != 480 {
		t.Fatalf("expected time 480, got %d", got.TimeTakenSec)
	}
}

func TestNormalize_RejectsZeroTotal(t *testing.T) {
	_, err := profile.Normalize(profile.AcademicResult{StudentID: "s1", Score: 5, TotalQuestions: 0})
	if err == nil {
		t.Fatalf("expected error for total_questions 0")
	}
}

func TestNormalize_RejectsNegatives(t *testing.T) {
	if _, err := profile.Normalize(profile.AcademicResult{Score: -1, TotalQuestions: 10}); err == nil {
		t.Fatalf("expected error for negative score")
	}
	if _, err := profile.Normalize(profile.AcademicResult{Score: 1, TotalQuestions: 10, TimeTakenSec: -5}); err == nil {
		t.Fatalf("expected error for negative time")
	}
}
