package types

// EmotionalProfile is the hand-authored (stress, cognitive, behavior)
// signature assigned to each catalog entry, on the same 0-5 scale as the
// user's stress profile.
type EmotionalProfile struct {
	Stress    float64 `json:"stress" validate:"gte=0,lte=5"`
	Cognitive float64 `json:"cognitive" validate:"gte=0,lte=5"`
	Behavior  float64 `json:"behavior" validate:"gte=0,lte=5"`
}

// Vector returns the profile in (stress, cognitive, behavior) order.
func (p EmotionalProfile) Vector() [3]float64 {
	return [3]float64{p.Stress, p.Cognitive, p.Behavior}
}

// Book is a static catalog entry. Catalogs are read-only inputs to the
// recommendation engine and are never mutated by it.
type Book struct {
	ID               string           `json:"id" validate:"required"`
	Title            string           `json:"title" validate:"required"`
	Author           string           `json:"author"`
	Genre            string           `json:"genre" validate:"required"`
	Tags             []string         `json:"tags"`
	Description      string           `json:"description"`
	EmotionalProfile EmotionalProfile `json:"emotionalProfile"`
	TargetMoods      []string         `json:"targetMoods"`
}

// TargetsMood reports whether the book was curated for the given mood.
func (b Book) TargetsMood(m Mood) bool {
	for _, t := range b.TargetMoods {
		if t == string(m) {
			return true
		}
	}
	return false
}

// Track is a static music catalog entry. Energy and valence are integer 1-5
// ratings used by the energy/valence match score.
type Track struct {
	ID               string           `json:"id" validate:"required"`
	Title            string           `json:"title" validate:"required"`
	Artist           string           `json:"artist"`
	Genre            string           `json:"genre" validate:"required"`
	Mood             string           `json:"mood" validate:"required"`
	Tags             []string         `json:"tags"`
	Duration         string           `json:"duration"`
	EmotionalProfile EmotionalProfile `json:"emotionalProfile"`
	EnergyLevel      int              `json:"energyLevel" validate:"gte=1,lte=5"`
	Valence          int              `json:"valence" validate:"gte=1,lte=5"`
}

// ScoredBook pairs a book with its composite recommendation score.
type ScoredBook struct {
	Book
	Score float64 `json:"score"`
}

// ScoredTrack pairs a track with its composite recommendation score.
type ScoredTrack struct {
	Track
	Score float64 `json:"score"`
}

// Recommendation is the bundle returned to the caller: at most three books,
// at most four tracks, no duplicate IDs within a list, plus a 0-100 confidence
// score. Produced fresh on each invocation with no persisted identity.
type Recommendation struct {
	Books           []ScoredBook  `json:"books"`
	Music           []ScoredTrack `json:"music"`
	ConfidenceScore float64       `json:"confidenceScore"`
}
