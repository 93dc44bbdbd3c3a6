package guides

import (
	"sort"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

// Relevance tiers. The engine only supplies category membership facts; this
// ranking lives on the consumer side of that contract.
const (
	relevanceNone      = 0
	relevanceBucket    = 1
	relevanceSecondary = 2
	relevancePrimary   = 3
)

// RankedGuide pairs a guide with its relevance to one student profile.
type RankedGuide struct {
	Guide     Guide `json:"guide"`
	Relevance int   `json:"relevance"`
}

// Rank orders guides by how well their category tags match the profile:
// primary-category match first, then secondary, then any other assigned
// bucket, then untagged/unmatched. Sorting is stable so equally relevant
// guides keep their input order.
func Rank(p profile.StudentProfile, list []Guide) []RankedGuide {
	out := make([]RankedGuide, 0, len(list))
	for _, g := range list {
		out = append(out, RankedGuide{Guide: g, Relevance: relevance(p, g)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Relevance > out[j].Relevance })
	return out
}

func relevance(p profile.StudentProfile, g Guide) int {
	best := relevanceNone
	for _, c := range g.Categories {
		switch {
		case c == p.PrimaryCategory:
			return relevancePrimary
		case c == p.SecondaryCategory && best < relevanceSecondary:
			best = relevanceSecondary
		case p.InBucket(c) && best < relevanceBucket:
			best = relevanceBucket
		}
	}
	return best
}
