package catalog

import "github.com/maya/wellspring/internal/types"

// stateWeights is the hand-tuned mapping from onboarding mood to scoring
// preferences. Weight triples sum to 1.0.
var stateWeights = map[types.Mood]types.StateWeights{
	types.MoodOverwhelmed: {
		StressWeight:     0.4,
		CognitiveWeight:  0.3,
		BehaviorWeight:   0.3,
		PreferredEnergy:  []int{1, 2},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Self-Help", "Memoir/Psychology"},
		MusicMoods:       []string{"calming", "peaceful", "meditative"},
	},
	types.MoodAnxious: {
		StressWeight:     0.5,
		CognitiveWeight:  0.3,
		BehaviorWeight:   0.2,
		PreferredEnergy:  []int{1, 2},
		PreferredValence: []int{3, 4, 5},
		BookGenres:       []string{"Self-Help", "Psychology"},
		MusicMoods:       []string{"calming", "peaceful", "uplifting"},
	},
	types.MoodLonely: {
		StressWeight:     0.2,
		CognitiveWeight:  0.4,
		BehaviorWeight:   0.4,
		PreferredEnergy:  []int{2, 3},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Memoir/Psychology", "Fiction/Philosophy"},
		MusicMoods:       []string{"vulnerable", "contemplative", "peaceful"},
	},
	types.MoodBurnedOut: {
		StressWeight:     0.4,
		CognitiveWeight:  0.2,
		BehaviorWeight:   0.4,
		PreferredEnergy:  []int{1, 2},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Self-Help", "Psychology/Health"},
		MusicMoods:       []string{"calming", "meditative", "peaceful"},
	},
	types.MoodConfused: {
		StressWeight:     0.3,
		CognitiveWeight:  0.4,
		BehaviorWeight:   0.3,
		PreferredEnergy:  []int{2, 3},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Self-Help", "Fiction/Philosophy"},
		MusicMoods:       []string{"contemplative", "reflective", "peaceful"},
	},
	types.MoodHopeful: {
		StressWeight:     0.2,
		CognitiveWeight:  0.3,
		BehaviorWeight:   0.5,
		PreferredEnergy:  []int{2, 3, 4},
		PreferredValence: []int{4, 5},
		BookGenres:       []string{"Self-Help", "Memoir/Self-Help"},
		MusicMoods:       []string{"uplifting", "empowering", "peaceful"},
	},
	types.MoodExhausted: {
		StressWeight:     0.4,
		CognitiveWeight:  0.2,
		BehaviorWeight:   0.4,
		PreferredEnergy:  []int{1, 2},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Psychology/Health", "Self-Help"},
		MusicMoods:       []string{"calming", "meditative", "peaceful"},
	},
	types.MoodFrustrated: {
		StressWeight:     0.3,
		CognitiveWeight:  0.4,
		BehaviorWeight:   0.3,
		PreferredEnergy:  []int{2, 3},
		PreferredValence: []int{3, 4},
		BookGenres:       []string{"Self-Help", "Memoir/Self-Help"},
		MusicMoods:       []string{"empowering", "uplifting", "contemplative"},
	},
	types.MoodPeaceful: {
		StressWeight:     0.2,
		CognitiveWeight:  0.3,
		BehaviorWeight:   0.5,
		PreferredEnergy:  []int{1, 2, 3},
		PreferredValence: []int{4, 5},
		BookGenres:       []string{"Spirituality/Mindfulness", "Fiction/Philosophy"},
		MusicMoods:       []string{"peaceful", "serene", "meditative"},
	},
	types.MoodJustChecking: {
		StressWeight:     0.25,
		CognitiveWeight:  0.35,
		BehaviorWeight:   0.4,
		PreferredEnergy:  []int{2, 3},
		PreferredValence: []int{3, 4, 5},
		BookGenres:       []string{"Self-Help", "Psychology"},
		MusicMoods:       []string{"peaceful", "contemplative", "uplifting"},
	},
}

// WeightsFor looks up the scoring weights for a mood. The second return is
// false for MoodUnknown, in which case the engine switches to its unweighted
// similarity fallback.
func WeightsFor(m types.Mood) (types.StateWeights, bool) {
	w, ok := stateWeights[m]
	return w, ok
}
