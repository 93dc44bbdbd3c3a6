package profile_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

func TestAssignBuckets_Membership(t *testing.T) {
	scores := map[profile.Category]int{
		profile.CategorySlowProcessing:  70,
		profile.CategoryFastProcessor:   40,
		profile.CategoryNeedsRepetition: 65,
		profile.CategoryLogicalLearner:  59,
		profile.CategoryVisualLearner:   60,
	}
	a := profile.AssignBuckets(scores, profile.DefaultBucketThreshold)

	want := []profile.Category{
		profile.CategorySlowProcessing,
		profile.CategoryNeedsRepetition,
		profile.CategoryVisualLearner,
	}
	if !reflect.DeepEqual(a.Buckets, want) {
		t.Fatalf("expected buckets %v, got %v", want, a.Buckets)
	}
	if a.Primary != profile.CategorySlowProcessing {
		t.Fatalf("expected primary slow_processing, got %s", a.Primary)
	}
	if a.Secondary != profile.CategoryNeedsRepetition {
		t.Fatalf("expected secondary needs_repetition, got %s", a.Secondary)
	}
}

func TestAssignBuckets_TieBreaksOnCanonicalOrder(t *testing.T) {
	scores := map[profile.Category]int{
		profile.CategoryHighEnergy:     70,
		profile.CategoryFastProcessor:  70,
		profile.CategorySlowProcessing: 70,
	}
	a := profile.AssignBuckets(scores, 60)
	if a.Primary != profile.CategorySlowProcessing {
		t.Fatalf("tie should break to the earlier canonical category, got %s", a.Primary)
	}
	if a.Secondary != profile.CategoryFastProcessor {
		t.Fatalf("expected secondary fast_processor, got %s", a.Secondary)
	}
}

func TestAssignBuckets_AllBelowThreshold(t *testing.T) {
	scores := map[profile.Category]int{
		profile.CategorySlowProcessing: 30,
		profile.CategoryHighEnergy:     55,
	}
	a := profile.AssignBuckets(scores, 60)
	if len(a.Buckets) != 0 {
		t.Fatalf("expected no buckets, got %v", a.Buckets)
	}
	// Primary/secondary ranking is independent of bucket membership.
	if a.Primary != profile.CategoryHighEnergy {
		t.Fatalf("expected primary high_energy, got %s", a.Primary)
	}
}

func TestAssignBuckets_CustomThreshold(t *testing.T) {
	scores := map[profile.Category]int{
		profile.CategorySlowProcessing: 75,
		profile.CategoryVisualLearner:  85,
	}
	a := profile.AssignBuckets(scores, 80)
	if !reflect.DeepEqual(a.Buckets, []profile.Category{profile.CategoryVisualLearner}) {
		t.Fatalf("expected only visual_learner at threshold 80, got %v", a.Buckets)
	}
}

func TestMemoryStore_SaveGetAndBuckets(t *testing.T) {
	ctx := context.Background()
	st := profile.NewInMemoryStore()

	if _, err := st.GetProfile(ctx, "nobody"); !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	save := func(id string, visual int) {
		t.Helper()
		err := st.SaveProfile(ctx, profile.StudentProfile{
			StudentID:      id,
			CategoryScores: map[profile.Category]int{profile.CategoryVisualLearner: visual},
		})
		if err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	save("stu-b", 70)
	save("stu-a", 90)
	save("stu-c", 40)

	p, err := st.GetProfile(ctx, "stu-a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.CategoryScores[profile.CategoryVisualLearner] != 90 {
		t.Fatalf("expected 90, got %d", p.CategoryScores[profile.CategoryVisualLearner])
	}

	members, err := st.BucketMembers(ctx, profile.CategoryVisualLearner, 60)
	if err != nil {
		t.Fatalf("bucket members: %v", err)
	}
	if !reflect.DeepEqual(members, []string{"stu-a", "stu-b"}) {
		t.Fatalf("expected sorted members [stu-a stu-b], got %v", members)
	}
}

func TestRadarSeries_CanonicalOrder(t *testing.T) {
	p := profile.StudentProfile{
		StudentID: "s1",
		CategoryScores: map[profile.Category]int{
			profile.CategorySlowProcessing: 67,
			profile.CategoryVisualLearner:  88,
		},
	}
	series := p.RadarSeries()
	if len(series) != len(profile.Categories()) {
		t.Fatalf("expected %d axes, got %d", len(profile.Categories()), len(series))
	}
	if series[0].Label != "Slow Processing" || series[0].Value != 67 {
		t.Fatalf("unexpected first axis: %+v", series[0])
	}
	for _, pt := range series {
		if pt.Max != 100 {
			t.Fatalf("expected max 100 on every axis, got %+v", pt)
		}
	}
}
