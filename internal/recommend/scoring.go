package recommend

import (
	"sort"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/types"
)

// Composite score weights. Books blend profile similarity, genre match, and
// target-mood match; music swaps the mood bonus for an energy/valence match.
const (
	bookSimilarityWeight = 0.4
	bookContentWeight    = 0.3
	bookTargetMoodWeight = 0.3

	musicSimilarityWeight    = 0.35
	musicEnergyValenceWeight = 0.35
	musicContentWeight       = 0.3
)

// Fallback constants for degraded inputs. An unknown mood scores every
// content and energy/valence factor at the neutral 0.5; a known mood scores
// non-matching items at 0.3 and books outside their target moods at 0.4.
const (
	neutralScore        = 0.5
	contentMissScore    = 0.3
	targetMoodMissScore = 0.4
)

// bookContentScore scores genre preference match for a recognized mood.
func bookContentScore(genre string, mood types.Mood) float64 {
	w, ok := catalog.WeightsFor(mood)
	if !ok {
		return neutralScore
	}
	if w.PrefersGenre(genre) {
		return 1.0
	}
	return contentMissScore
}

// musicContentScore scores mood-tag preference match for a recognized mood.
func musicContentScore(trackMood string, mood types.Mood) float64 {
	w, ok := catalog.WeightsFor(mood)
	if !ok {
		return neutralScore
	}
	if w.PrefersMusicMood(trackMood) {
		return 1.0
	}
	return contentMissScore
}

// energyValenceScore averages the energy and valence membership checks, each
// contributing 1.0 on a match and 0.3 otherwise.
func energyValenceScore(t types.Track, mood types.Mood) float64 {
	w, ok := catalog.WeightsFor(mood)
	if !ok {
		return neutralScore
	}

	energy := contentMissScore
	if w.PrefersEnergy(t.EnergyLevel) {
		energy = 1.0
	}
	valence := contentMissScore
	if w.PrefersValence(t.Valence) {
		valence = 1.0
	}
	return (energy + valence) / 2
}

// targetMoodScore rewards books curated for the user's mood.
func targetMoodScore(b types.Book, mood types.Mood) float64 {
	if mood.Known() && b.TargetsMood(mood) {
		return 1.0
	}
	return targetMoodMissScore
}

// scoreBooks computes the composite score for every book and returns the
// list sorted by descending score. The sort is stable so equal scores keep
// catalog order.
func scoreBooks(books []types.Book, profile types.StressProfile, mood types.Mood) []types.ScoredBook {
	scored := make([]types.ScoredBook, 0, len(books))
	for _, b := range books {
		score := profileSimilarity(profile, b.EmotionalProfile, mood)*bookSimilarityWeight +
			bookContentScore(b.Genre, mood)*bookContentWeight +
			targetMoodScore(b, mood)*bookTargetMoodWeight
		scored = append(scored, types.ScoredBook{Book: b, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// scoreTracks computes the composite score for every track and returns the
// list sorted by descending score.
func scoreTracks(tracks []types.Track, profile types.StressProfile, mood types.Mood) []types.ScoredTrack {
	scored := make([]types.ScoredTrack, 0, len(tracks))
	for _, t := range tracks {
		score := profileSimilarity(profile, t.EmotionalProfile, mood)*musicSimilarityWeight +
			energyValenceScore(t, mood)*musicEnergyValenceWeight +
			musicContentScore(t.Mood, mood)*musicContentWeight
		scored = append(scored, types.ScoredTrack{Track: t, Score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
