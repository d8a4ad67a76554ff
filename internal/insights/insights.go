// Package insights assembles pre-written insight cards from a stress
// profile. Assembly is retrieval only; no text is generated.
package insights

import "github.com/maya/wellspring/internal/types"

// maxPerCategory caps how many matching fragments a category contributes.
const maxPerCategory = 2

// fragments is the curated fragment library. Each applies within a score
// band on its category.
var fragments = []types.InsightFragment{
	{ID: "c1", Category: types.CategoryCognitive, Text: "You tend to internalize pressure rather than externalizing it.", MinScore: 3.5, MaxScore: 5},
	{ID: "c2", Category: types.CategoryCognitive, Text: "You appear to process stress through comparison with others.", MinScore: 3, MaxScore: 5},
	{ID: "c3", Category: types.CategoryCognitive, Text: "You seem most affected by uncertainty about outcomes.", MinScore: 3.5, MaxScore: 5},
	{ID: "c4", Category: types.CategoryCognitive, Text: "Your thought patterns suggest a preference for clarity and structure.", MinScore: 1, MaxScore: 3},
	{ID: "c5", Category: types.CategoryCognitive, Text: "You show a tendency to reflect deeply before taking action.", MinScore: 2, MaxScore: 4},

	{ID: "s1", Category: types.CategoryStress, Text: "Deadlines without clarity appear to be a significant stressor.", MinScore: 3.5, MaxScore: 5},
	{ID: "s2", Category: types.CategoryStress, Text: "Responsibility accumulation seems to weigh on you more than individual tasks.", MinScore: 3, MaxScore: 5},
	{ID: "s3", Category: types.CategoryStress, Text: "Your stress response appears to be activated by external expectations.", MinScore: 3, MaxScore: 5},
	{ID: "s4", Category: types.CategoryStress, Text: "You seem to manage day-to-day pressures with relative steadiness.", MinScore: 1, MaxScore: 2.5},
	{ID: "s5", Category: types.CategoryStress, Text: "Social comparison may be amplifying your stress levels.", MinScore: 3, MaxScore: 5},

	{ID: "b1", Category: types.CategoryBehavior, Text: "You may lean toward avoidance when feeling overwhelmed.", MinScore: 3.5, MaxScore: 5},
	{ID: "b2", Category: types.CategoryBehavior, Text: "High self-expectations appear to shape your daily decisions.", MinScore: 3, MaxScore: 5},
	{ID: "b3", Category: types.CategoryBehavior, Text: "Self-care tends to decrease as your stress increases.", MinScore: 3.5, MaxScore: 5},
	{ID: "b4", Category: types.CategoryBehavior, Text: "You seem to maintain consistent routines even under pressure.", MinScore: 1, MaxScore: 2.5},
	{ID: "b5", Category: types.CategoryBehavior, Text: "Your approach suggests a pattern of pushing through rather than pausing.", MinScore: 2.5, MaxScore: 4.5},
}

// Assemble selects up to two matching fragments per category in library
// order, then guarantees at least one card per category by falling back to
// the category's first fragment when no band matched.
func Assemble(profile types.StressProfile) []types.InsightCard {
	cards := make([]types.InsightCard, 0, 3*maxPerCategory)
	cards = append(cards, matching(types.CategoryCognitive, profile.Cognitive)...)
	cards = append(cards, matching(types.CategoryStress, profile.Stress)...)
	cards = append(cards, matching(types.CategoryBehavior, profile.Behavior)...)

	for _, cat := range []types.Category{types.CategoryCognitive, types.CategoryStress, types.CategoryBehavior} {
		if !hasCategory(cards, cat) {
			if f, ok := firstInCategory(cat); ok {
				cards = append(cards, types.InsightCard{Category: cat, Text: f.Text})
			}
		}
	}

	return cards
}

func matching(cat types.Category, score float64) []types.InsightCard {
	cards := make([]types.InsightCard, 0, maxPerCategory)
	for _, f := range fragments {
		if f.Category != cat || !f.Matches(score) {
			continue
		}
		cards = append(cards, types.InsightCard{Category: cat, Text: f.Text})
		if len(cards) == maxPerCategory {
			break
		}
	}
	return cards
}

func hasCategory(cards []types.InsightCard, cat types.Category) bool {
	for _, c := range cards {
		if c.Category == cat {
			return true
		}
	}
	return false
}

func firstInCategory(cat types.Category) (types.InsightFragment, bool) {
	for _, f := range fragments {
		if f.Category == cat {
			return f, true
		}
	}
	return types.InsightFragment{}, false
}
