package guides

import (
	"strings"

	"github.com/learnsight/learnsight-engine/internal/profile"
)

// Guide is one teaching-guide chunk, tagged with the learning-style
// categories its strategies apply to.
type Guide struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	GradeLevel string             `json:"grade_level,omitempty"`
	Categories []profile.Category `json:"applicable_categories"`
	CreatedAt  int64              `json:"created_at"`
}

// categoryPatterns maps each category to keyword cues that mark a guide as
// applicable. Matching is case-insensitive substring search over the text.
var categoryPatterns = map[profile.Category][]string{
	profile.CategoryVisualLearner:   {"visual", "diagram", "chart", "color-coded", "picture", "graphic"},
	profile.CategorySlowProcessing:  {"extra time", "step-by-step", "slow down", "break down", "pacing"},
	profile.CategoryFastProcessor:   {"advanced", "challenge", "enrichment", "accelerate", "extension"},
	profile.CategoryNeedsRepetition: {"repeat", "practice multiple", "review", "reinforce", "drill"},
	profile.CategoryHighEnergy:      {"hands-on", "movement", "kinesthetic", "active", "physical"},
	profile.CategoryDistracted:      {"distraction", "focus", "attention", "quiet", "structured environment"},
	profile.CategoryLowConfidence:   {"encourage", "confidence", "praise", "reassure", "self-esteem"},
	profile.CategoryLogicalLearner:  {"logical", "sequence", "problem-solving", "reasoning", "pattern"},
}

// DetectCategories tags guide text with every category whose keyword cues
// appear in it. Returns categories in canonical order.
func DetectCategories(text string) []profile.Category {
	low := strings.ToLower(text)
	var out []profile.Category
	for _, c := range profile.Categories() {
		for _, kw := range categoryPatterns[c] {
			if strings.Contains(low, kw) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
