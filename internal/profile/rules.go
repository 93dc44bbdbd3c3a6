package profile

import "math"

// categoryRule pairs a category with its two optional sub-scorers. A
// sub-scorer returns ok=false when the signal it needs is absent or its
// trigger condition does not hold; that is different from scoring zero.
//
// Branch chains are evaluated top to bottom; the first matching condition
// wins. Keeping the rules as a table means new categories are additive and
// each rule is testable on its own.
type categoryRule struct {
	category  Category
	domains   []Domain
	cognitive func(d DomainScores) (float64, bool)
	academic  func(a AcademicSignals) (float64, bool)
}

// ruleTable is the fixed scoring rule set. Table order is the canonical
// category order used for tie-breaking.
var ruleTable = []categoryRule{
	{
		category: CategorySlowProcessing,
		domains:  []Domain{DomainProcessingSpeed},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainProcessingSpeed)
			if !ok {
				return 0, false
			}
			switch {
			case v < 2.5:
				return ((2.5-v)/1.5)*50 + 50, true
			case v > 3.5:
				return ((5.0 - v) / 1.5) * 30, true
			default:
				return 40, true
			}
		},
		academic: func(a AcademicSignals) (float64, bool) {
			if a.TimeTakenSec > 600 {
				return math.Min(100, 100-float64(a.TimeTakenSec-600)/10), true
			}
			return 0, false
		},
	},
	{
		category: CategoryFastProcessor,
		domains:  []Domain{DomainProcessingSpeed},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainProcessingSpeed)
			if !ok {
				return 0, false
			}
			switch {
			case v > 4.0:
				return ((v-3.0)/2.0)*50 + 50, true
			case v < 2.5:
				return (v / 2.5) * 30, true
			default:
				return 40, true
			}
		},
		academic: func(a AcademicSignals) (float64, bool) {
			if a.Percentage >= 80 && a.TimeTakenSec < 300 {
				return a.Percentage, true
			}
			return 0, false
		},
	},
	{
		category: CategoryNeedsRepetition,
		domains:  []Domain{DomainWorkingMemory},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainWorkingMemory)
			if !ok {
				return 0, false
			}
			switch {
			case v < 2.5:
				return ((2.5-v)/1.5)*50 + 50, true
			case v > 3.5:
				return ((5.0 - v) / 1.5) * 30, true
			default:
				return 40, true
			}
		},
		academic: func(a AcademicSignals) (float64, bool) {
			if a.Percentage >= 40 && a.Percentage < 70 {
				return 100 - a.Percentage, true
			}
			return 0, false
		},
	},
	{
		category: CategoryLogicalLearner,
		domains:  []Domain{DomainLearningStyle, DomainProcessingSpeed},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainLearningStyle)
			if !ok {
				return 0, false
			}
			// learning_style routes to exactly one of logical/visual based on
			// processing speed; a missing processing_speed fails the condition.
			ps, psOK := d.get(DomainProcessingSpeed)
			switch {
			case v > 4.0 && psOK && ps >= 4.0:
				return ((v-3.0)/2.0)*50 + 50, true
			case v >= 3.0:
				return (v / 5.0) * 60, true
			default:
				return (v / 5.0) * 40, true
			}
		},
		academic: func(a AcademicSignals) (float64, bool) {
			if a.Percentage >= 70 {
				return a.Percentage, true
			}
			return 0, false
		},
	},
	{
		category: CategoryVisualLearner,
		domains:  []Domain{DomainLearningStyle, DomainProcessingSpeed},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainLearningStyle)
			if !ok {
				return 0, false
			}
			ps, psOK := d.get(DomainProcessingSpeed)
			switch {
			case v > 4.0 && psOK && ps < 3.5:
				return ((v-3.0)/2.0)*50 + 50, true
			case v >= 3.0:
				return (v / 5.0) * 60, true
			default:
				return (v / 5.0) * 40, true
			}
		},
		academic: func(a AcademicSignals) (float64, bool) {
			if a.Percentage >= 60 {
				return 60, true
			}
			return 0, false
		},
	},
	{
		category: CategoryLowConfidence,
		domains:  []Domain{DomainSelfEfficacy},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainSelfEfficacy)
			if !ok {
				return 0, false
			}
			switch {
			case v < 2.5:
				return ((2.5-v)/1.5)*50 + 50, true
			case v > 3.5:
				return ((5.0 - v) / 1.5) * 30, true
			default:
				return 40, true
			}
		},
	},
	{
		category: CategoryDistracted,
		domains:  []Domain{DomainAttentionFocus, DomainMotivation},
		cognitive: func(d DomainScores) (float64, bool) {
			v, ok := d.get(DomainAttentionFocus)
			if !ok {
				return 0, false
			}
			mot, motOK := d.get(DomainMotivation)
			switch {
			case v < 2.5 && motOK && mot < 3.5:
				return ((2.5-v)/1.5)*50 + 50, true
			case v < 2.5:
				return ((2.5-v)/1.5)*40 + 40, true
			case v > 3.5:
				return ((5.0 - v) / 1.5) * 30, true
			default:
				return 40, true
			}
		},
	},
	{
		category: CategoryHighEnergy,
		domains:  []Domain{DomainMotivation, DomainAttentionFocus},
		cognitive: func(d DomainScores) (float64, bool) {
			mot, ok := d.get(DomainMotivation)
			if !ok {
				return 0, false
			}
			att, attOK := d.get(DomainAttentionFocus)
			switch {
			case attOK && att < 2.5 && mot > 3.5:
				return ((mot-2.0)/3.0)*40 + 50, true
			case mot > 4.0:
				return ((mot-3.0)/2.0)*30 + 40, true
			default:
				return (mot / 5.0) * 50, true
			}
		},
	},
}

// validateRuleTable cross-checks the table against the fixed enumerations.
// A mismatch is a deployment error, not a per-request one.
func validateRuleTable() error {
	known := map[Domain]bool{}
	for _, d := range Domains() {
		known[d] = true
	}
	seen := map[Category]bool{}
	for _, r := range ruleTable {
		if _, err := ParseCategory(string(r.category)); err != nil {
			return &ConfigError{Msg: "rule table references unknown category " + string(r.category)}
		}
		if seen[r.category] {
			return &ConfigError{Msg: "duplicate rule for category " + string(r.category)}
		}
		seen[r.category] = true
		for _, d := range r.domains {
			if !known[d] {
				return &ConfigError{Msg: "rule table references unknown domain " + string(d)}
			}
		}
	}
	for _, c := range Categories() {
		if !seen[c] {
			return &ConfigError{Msg: "no rule defined for category " + string(c)}
		}
	}
	return nil
}
