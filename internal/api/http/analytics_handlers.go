package http

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

type domainStat struct {
	Domain  string  `json:"domain"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Average float64 `json:"average_score"`
	Min     float64 `json:"min_score"`
	Max     float64 `json:"max_score"`
}

// GetDomainDistributionHandler aggregates effective Likert values per domain
// across all captured responses, for class-wide radar views. Reverse scoring
// is applied row by row before aggregating.
func GetDomainDistributionHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.QueryContext(r.Context(),
			`SELECT domain, value, reverse_scored FROM cognitive_responses`)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		defer rows.Close()

		stats := map[profile.Domain]*domainStat{}
		for rows.Next() {
			var domain string
			var value, rev int
			if err := rows.Scan(&domain, &value, &rev); err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			eff := float64(value)
			if rev != 0 {
				eff = float64(6 - value)
			}
			d := profile.Domain(domain)
			s, ok := stats[d]
			if !ok {
				s = &domainStat{Domain: domain, Min: eff, Max: eff}
				stats[d] = s
			}
			s.Count++
			s.Average += eff // running sum; divided below
			if eff < s.Min {
				s.Min = eff
			}
			if eff > s.Max {
				s.Max = eff
			}
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		out := []domainStat{}
		for _, d := range profile.Domains() {
			s, ok := stats[d]
			if !ok {
				continue
			}
			s.Average = s.Average / float64(s.Count)
			s.Label = d.Label()
			out = append(out, *s)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"domains":         out,
			"total_responses": totalCount(out),
		})
	}
}

func totalCount(stats []domainStat) int {
	n := 0
	for _, s := range stats {
		n += s.Count
	}
	return n
}
