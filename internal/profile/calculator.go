package profile

import (
	"fmt"
	"math"
)

const (
	// BaselineScore is used when a learner has no usable evidence for a
	// category (or no evidence at all). 50 renders as a balanced profile and
	// stays below the default bucket threshold.
	BaselineScore = 50

	DefaultCognitiveWeight = 0.6
	DefaultAcademicWeight  = 0.4
)

// Weights is the global combination policy for categories that have both a
// cognitive and an academic sub-score. Weights apply to every category alike.
type Weights struct {
	Cognitive float64
	Academic  float64
}

func DefaultWeights() Weights {
	return Weights{Cognitive: DefaultCognitiveWeight, Academic: DefaultAcademicWeight}
}

// Validate checks the weights sum to 1.0 within a small tolerance.
func (w Weights) Validate() error {
	if w.Cognitive < 0 || w.Academic < 0 {
		return &ConfigError{Msg: "weights must be non-negative"}
	}
	if s := w.Cognitive + w.Academic; math.Abs(s-1.0) > 0.001 {
		return &ConfigError{Msg: fmt.Sprintf("weights sum to %.4f, must sum to 1.0", s)}
	}
	return nil
}

// Calculator evaluates the rule table against whatever evidence is available
// and produces one bounded [0,100] score per category.
type Calculator struct {
	weights Weights
}

// NewCalculator validates the weights and the rule table up front so that a
// misconfigured deployment fails at startup, not per request.
func NewCalculator(w Weights) (*Calculator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := validateRuleTable(); err != nil {
		return nil, err
	}
	return &Calculator{weights: w}, nil
}

// Scores computes the category score map. domains may be empty (no cognitive
// evidence) and academic may be nil (no attempt yet); with neither, every
// category gets the baseline. Sub-scores are rounded to whole numbers before
// weighting so results reproduce exactly across runs.
func (c *Calculator) Scores(domains DomainScores, academic *AcademicSignals) map[Category]int {
	out := make(map[Category]int, len(ruleTable))
	if len(domains) == 0 && academic == nil {
		for _, r := range ruleTable {
			out[r.category] = BaselineScore
		}
		return out
	}
	for _, r := range ruleTable {
		cog, cogOK := 0.0, false
		if r.cognitive != nil {
			cog, cogOK = r.cognitive(domains)
		}
		acad, acadOK := 0.0, false
		if r.academic != nil && academic != nil {
			acad, acadOK = r.academic(*academic)
		}
		switch {
		case cogOK && acadOK:
			combined := float64(round(cog))*c.weights.Cognitive + float64(round(acad))*c.weights.Academic
			out[r.category] = clamp(round(combined))
		case cogOK:
			out[r.category] = clamp(round(cog))
		case acadOK:
			out[r.category] = clamp(round(acad))
		default:
			out[r.category] = BaselineScore
		}
	}
	return out
}

func round(v float64) int { return int(math.Round(v)) }

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
