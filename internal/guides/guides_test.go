package guides_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/learnsight/learnsight-engine/internal/guides"
	"github.com/learnsight/learnsight-engine/internal/profile"
)

func TestDetectCategories(t *testing.T) {
	cases := []struct {
		text string
		want []profile.Category
	}{
		{
			"Use color-coded diagrams to explain fractions",
			[]profile.Category{profile.CategoryVisualLearner},
		},
		{
			"Break down problems step-by-step and review often",
			[]profile.Category{profile.CategorySlowProcessing, profile.CategoryNeedsRepetition},
		},
		{
			"Hands-on activities with movement breaks",
			[]profile.Category{profile.CategoryHighEnergy},
		},
		{
			"Encourage the student and praise small wins",
			[]profile.Category{profile.CategoryLowConfidence},
		},
		{"Plain lecture notes", nil},
	}
	for _, tc := range cases {
		got := guides.DetectCategories(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.text, tc.want, got)
		}
	}
}

func TestRank_RelevanceTiers(t *testing.T) {
	p := profile.StudentProfile{
		StudentID:         "s1",
		PrimaryCategory:   profile.CategoryVisualLearner,
		SecondaryCategory: profile.CategorySlowProcessing,
		AssignedBuckets: []profile.Category{
			profile.CategorySlowProcessing,
			profile.CategoryVisualLearner,
			profile.CategoryHighEnergy,
		},
	}
	list := []guides.Guide{
		{ID: "g-none", Categories: []profile.Category{profile.CategoryLogicalLearner}},
		{ID: "g-bucket", Categories: []profile.Category{profile.CategoryHighEnergy}},
		{ID: "g-secondary", Categories: []profile.Category{profile.CategorySlowProcessing}},
		{ID: "g-primary", Categories: []profile.Category{profile.CategoryVisualLearner}},
	}

	ranked := guides.Rank(p, list)
	var order []string
	for _, r := range ranked {
		order = append(order, r.Guide.ID)
	}
	want := []string{"g-primary", "g-secondary", "g-bucket", "g-none"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	if ranked[0].Relevance != 3 || ranked[3].Relevance != 0 {
		t.Fatalf("unexpected relevance values: %+v", ranked)
	}
}

func TestListGuides_ZeroLimitReturnsAll(t *testing.T) {
	ctx := context.Background()
	st := guides.NewInMemoryStore()
	for i := 0; i < 60; i++ {
		err := st.PutGuide(ctx, guides.Guide{ID: fmt.Sprintf("g-%d", i), Title: "t", Content: "c"})
		if err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	all, err := st.ListGuides(ctx, "", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 60 {
		t.Fatalf("limit 0 should return every guide, got %d", len(all))
	}

	capped, err := st.ListGuides(ctx, "", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(capped) != 10 {
		t.Fatalf("expected explicit limit 10, got %d", len(capped))
	}
}

func TestRank_StableForEqualRelevance(t *testing.T) {
	p := profile.StudentProfile{
		StudentID:       "s1",
		PrimaryCategory: profile.CategoryVisualLearner,
	}
	list := []guides.Guide{
		{ID: "first", Categories: []profile.Category{profile.CategoryVisualLearner}},
		{ID: "second", Categories: []profile.Category{profile.CategoryVisualLearner}},
	}
	ranked := guides.Rank(p, list)
	if ranked[0].Guide.ID != "first" || ranked[1].Guide.ID != "second" {
		t.Fatalf("equal relevance should keep input order, got %+v", ranked)
	}
}
