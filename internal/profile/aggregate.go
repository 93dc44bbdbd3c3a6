package profile

// Aggregate reduces one session's raw Likert responses to per-domain
// averages. Self and guardian answers are pooled with equal weight; reverse
// scoring is applied before averaging. Domains with zero responses are absent
// from the result, which downstream rules treat as "no cognitive evidence".
//
// Pure function: callers pass the latest completed session's responses only.
func Aggregate(responses []RawCognitiveResponse) (DomainScores, error) {
	sums := map[Domain]float64{}
	counts := map[Domain]int{}
	for _, r := range responses {
		if r.Value < 1 || r.Value > 5 {
			return nil, &ValidationError{Field: "value", Msg: "likert value out of range 1..5"}
		}
		if _, err := ParseDomain(string(r.Domain)); err != nil {
			return nil, err
		}
		sums[r.Domain] += r.Effective()
		counts[r.Domain]++
	}
	out := make(DomainScores, len(sums))
	for d, sum := range sums {
		out[d] = sum / float64(counts[d])
	}
	return out, nil
}
