// Package types provides type definitions for structured data used throughout the wellspring system.
package types

// Category identifies which dimension of the stress profile a question feeds.
type Category string

// Question categories.
const (
	CategoryCognitive Category = "cognitive"
	CategoryStress    Category = "stress"
	CategoryBehavior  Category = "behavior"
)

// AssessmentQuestion is a single question from a question bank. Question banks
// are static configuration, loaded once and never mutated.
type AssessmentQuestion struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// AssessmentAnswer is one user response on the 1-5 scale. Answers are
// conceptually a mapping keyed by question ID: a later answer for the same
// question replaces the earlier one.
type AssessmentAnswer struct {
	QuestionID string `json:"questionId"`
	Score      int    `json:"score"` // 1-5
}

// StressProfile summarizes an assessment as four scores in [0,5], each rounded
// to two decimal places. Overall is always the unweighted mean of the other
// three, including any zero-valued empty category.
type StressProfile struct {
	Cognitive float64 `json:"cognitive"`
	Stress    float64 `json:"stress"`
	Behavior  float64 `json:"behavior"`
	Overall   float64 `json:"overall"`
}

// Vector returns the three active dimensions in (stress, cognitive, behavior)
// order, the same order catalog emotional profiles use. Overall is excluded
// from similarity math.
func (p StressProfile) Vector() [3]float64 {
	return [3]float64{p.Stress, p.Cognitive, p.Behavior}
}
