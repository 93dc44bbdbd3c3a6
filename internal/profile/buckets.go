package profile

// DefaultBucketThreshold is the score at or above which a learner joins a
// category bucket.
const DefaultBucketThreshold = 60

// BucketAssignment is the thresholded view of a score map. Membership is
// non-exclusive: a learner can sit in zero, one, or many buckets.
type BucketAssignment struct {
	Buckets   []Category
	Primary   Category
	Secondary Category
}

// AssignBuckets thresholds category scores and ranks the top two categories.
// Ties are broken by canonical category order, never by map iteration, so the
// result is deterministic for identical inputs. Buckets come back in
// canonical order for the same reason.
func AssignBuckets(scores map[Category]int, threshold int) BucketAssignment {
	var a BucketAssignment
	bestScore, secondScore := -1, -1
	for _, c := range Categories() {
		s, ok := scores[c]
		if !ok {
			continue
		}
		if s >= threshold {
			a.Buckets = append(a.Buckets, c)
		}
		switch {
		case s > bestScore:
			secondScore, a.Secondary = bestScore, a.Primary
			bestScore, a.Primary = s, c
		case s > secondScore:
			secondScore, a.Secondary = s, c
		}
	}
	return a
}
