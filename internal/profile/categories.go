package profile

import (
	"fmt"
	"strings"
)

// Category is one learning-style label, scored 0..100.
type Category string

const (
	CategorySlowProcessing  Category = "slow_processing"
	CategoryFastProcessor   Category = "fast_processor"
	CategoryNeedsRepetition Category = "needs_repetition"
	CategoryLogicalLearner  Category = "logical_learner"
	CategoryVisualLearner   Category = "visual_learner"
	CategoryLowConfidence   Category = "sensitive_low_confidence"
	CategoryDistracted      Category = "easily_distracted"
	CategoryHighEnergy      Category = "high_energy"
)

// Categories returns the fixed category set in canonical order. The order is
// load-bearing: it is the tie-break for primary/secondary selection and the
// display order for radar payloads.
func Categories() []Category {
	return []Category{
		CategorySlowProcessing,
		CategoryFastProcessor,
		CategoryNeedsRepetition,
		CategoryLogicalLearner,
		CategoryVisualLearner,
		CategoryLowConfidence,
		CategoryDistracted,
		CategoryHighEnergy,
	}
}

// ParseCategory validates a wire-level category string.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "category", Msg: fmt.Sprintf("unknown category %q", s)}
}

// Label converts a category id to a human-readable chart label,
// e.g. "slow_processing" -> "Slow Processing".
func (c Category) Label() string {
	parts := strings.Split(string(c), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
