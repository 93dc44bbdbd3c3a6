package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/learnsight/learnsight-engine/internal/assessment"
	authmw "github.com/learnsight/learnsight-engine/internal/auth/middleware"
	"github.com/learnsight/learnsight-engine/internal/profile"
	"github.com/learnsight/learnsight-engine/internal/rbac"

	"github.com/go-chi/chi/v5"
)

// scopeStudentID forces callers without profile:view-all onto their own
// profile, mirroring the own-vs-all scoping used elsewhere.
func scopeStudentID(r *http.Request) string {
	id := chi.URLParam(r, "studentID")
	if !rbac.HasPerm(r, "profile:view-all") {
		return authmw.SubjectFromContext(r.Context())
	}
	return id
}

// GetProfileHandler serves the persisted classification. A student with no
// evidence at all gets a balanced baseline profile, not an error.
func GetProfileHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := scopeStudentID(r)
		p, err := store.GetProfile(r.Context(), id)
		if errors.Is(err, profile.ErrNotFound) {
			p = baselineProfile(id)
		} else if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(p)
	}
}

// GetRadarHandler serves the chart payload consumers render directly.
func GetRadarHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := scopeStudentID(r)
		p, err := store.GetProfile(r.Context(), id)
		if errors.Is(err, profile.ErrNotFound) {
			p = baselineProfile(id)
		} else if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(p.RadarSeries())
	}
}

// GetBucketMembersHandler lists students whose score for a category meets
// the threshold (default 60).
func GetBucketMembersHandler(store profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := profile.ParseCategory(chi.URLParam(r, "category"))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		threshold := profile.DefaultBucketThreshold
		if t := r.URL.Query().Get("threshold"); t != "" {
			n, err := strconv.Atoi(t)
			if err != nil || n < 0 || n > 100 {
				http.Error(w, "threshold must be 0..100", 400)
				return
			}
			threshold = n
		}
		members, err := store.BucketMembers(r.Context(), cat, threshold)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"category":  cat,
			"threshold": threshold,
			"students":  members,
		})
	}
}

// ListAttemptsHandler serves the academic attempt history, newest first.
// Older attempts never affect the current profile; they exist for trends.
func ListAttemptsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := scopeStudentID(r)
		limit := 50
		if l := r.URL.Query().Get("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil && n > 0 {
				limit = n
			}
		}
		attempts, err := store.ListAcademicResults(r.Context(), id, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(attempts)
	}
}

// baselineProfile is the displayable "no data yet" state: every category at
// the baseline, no buckets.
func baselineProfile(studentID string) profile.StudentProfile {
	scores := map[profile.Category]int{}
	for _, c := range profile.Categories() {
		scores[c] = profile.BaselineScore
	}
	assigned := profile.AssignBuckets(scores, profile.DefaultBucketThreshold)
	return profile.StudentProfile{
		StudentID:         studentID,
		CategoryScores:    scores,
		PrimaryCategory:   assigned.Primary,
		SecondaryCategory: assigned.Secondary,
		AssignedBuckets:   []profile.Category{},
	}
}
