package types

// InsightFragment is a pre-written, observational piece of insight text that
// applies when a category score falls inside [MinScore, MaxScore]. Fragments
// are curated content, not generated.
type InsightFragment struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
	MinScore float64  `json:"minScore"`
	MaxScore float64  `json:"maxScore"`
}

// Matches reports whether the fragment applies to the given category score.
func (f InsightFragment) Matches(score float64) bool {
	return score >= f.MinScore && score <= f.MaxScore
}

// InsightCard is one assembled insight shown to the user.
type InsightCard struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}
