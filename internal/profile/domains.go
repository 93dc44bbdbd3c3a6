package profile

import "fmt"

// Domain is one cognitive dimension measured by the Likert questionnaire.
// Every domain value lives on a 1..5 scale.
type Domain string

const (
	DomainProcessingSpeed Domain = "processing_speed"
	DomainWorkingMemory   Domain = "working_memory"
	DomainAttentionFocus  Domain = "attention_focus"
	DomainLearningStyle   Domain = "learning_style"
	DomainSelfEfficacy    Domain = "self_efficacy"
	DomainMotivation      Domain = "motivation_engagement"
)

// Domains lists every known domain.
func Domains() []Domain {
	return []Domain{
		DomainProcessingSpeed,
		DomainWorkingMemory,
		DomainAttentionFocus,
		DomainLearningStyle,
		DomainSelfEfficacy,
		DomainMotivation,
	}
}

// ParseDomain validates a wire-level domain string.
func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", &ValidationError{Field: "domain", Msg: fmt.Sprintf("unknown domain %q", s)}
}

// Label converts a domain id to a human-readable chart label.
func (d Domain) Label() string {
	return Category(d).Label()
}

// DomainScores maps each domain with at least one response to its pooled
// average. Absent keys mean "no cognitive evidence", not zero.
type DomainScores map[Domain]float64

func (d DomainScores) get(k Domain) (float64, bool) {
	v, ok := d[k]
	return v, ok
}
