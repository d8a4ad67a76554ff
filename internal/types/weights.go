package types

// StateWeights configures how a recognized mood shapes recommendation scoring:
// the weight triple emphasizes the dimensions most diagnostic for that mood
// (summing ~1.0), and the preference sets drive the content and energy/valence
// match scores. Static lookup data keyed by the same tags as question banks.
type StateWeights struct {
	StressWeight     float64  `json:"stressWeight"`
	CognitiveWeight  float64  `json:"cognitiveWeight"`
	BehaviorWeight   float64  `json:"behaviorWeight"`
	PreferredEnergy  []int    `json:"preferredEnergyLevel"`
	PreferredValence []int    `json:"preferredValence"`
	BookGenres       []string `json:"bookGenrePreference"`
	MusicMoods       []string `json:"musicMoodPreference"`
}

// PrefersEnergy reports whether the energy level is in the preferred set.
func (w StateWeights) PrefersEnergy(level int) bool {
	return containsInt(w.PreferredEnergy, level)
}

// PrefersValence reports whether the valence is in the preferred set.
func (w StateWeights) PrefersValence(v int) bool {
	return containsInt(w.PreferredValence, v)
}

// PrefersGenre reports whether the book genre is in the preferred set.
func (w StateWeights) PrefersGenre(genre string) bool {
	return containsString(w.BookGenres, genre)
}

// PrefersMusicMood reports whether the track mood is in the preferred set.
func (w StateWeights) PrefersMusicMood(mood string) bool {
	return containsString(w.MusicMoods, mood)
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
