package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/learnsight/learnsight-engine/internal/guides"
	"github.com/learnsight/learnsight-engine/internal/profile"

	"github.com/google/uuid"
)

// PutGuideHandler stores one teaching-guide chunk. Untagged guides are
// auto-tagged from their text so they participate in ranking.
func PutGuideHandler(store guides.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g guides.Guide
		if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if g.Title == "" || g.Content == "" {
			http.Error(w, "title and content required", 400)
			return
		}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		if g.CreatedAt == 0 {
			g.CreatedAt = time.Now().Unix()
		}
		if len(g.Categories) == 0 {
			g.Categories = guides.DetectCategories(g.Title + " " + g.Content)
		}
		if err := store.PutGuide(r.Context(), g); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(g)
	}
}

// GetGuidesForStudentHandler returns guides ranked against the student's
// profile: primary-category matches first, then secondary, then other
// assigned buckets.
func GetGuidesForStudentHandler(gstore guides.Store, pstore profile.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := scopeStudentID(r)
		p, err := pstore.GetProfile(r.Context(), id)
		if errors.Is(err, profile.ErrNotFound) {
			p = baselineProfile(id)
		} else if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		limit := 10
		if l := r.URL.Query().Get("limit"); l != "" {
			if n, err := strconv.Atoi(l); err == nil && n > 0 {
				limit = n
			}
		}
		list, err := gstore.ListGuides(r.Context(), r.URL.Query().Get("grade"), 0)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		ranked := guides.Rank(p, list)
		if len(ranked) > limit {
			ranked = ranked[:limit]
		}
		_ = json.NewEncoder(w).Encode(ranked)
	}
}
