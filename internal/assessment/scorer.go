// Package assessment converts raw questionnaire answers into a stress profile.
package assessment

import (
	"math"

	"github.com/maya/wellspring/internal/types"
)

// Score computes a stress profile from answers against the question set that
// was actually presented to the user. It is a pure function: duplicate answers
// for the same question ID reduce to the last one, answers whose question ID is
// not in the set are silently dropped, and an empty category contributes a zero
// sub-score. Overall is the unweighted mean of the three sub-scores, zero
// buckets included. It never fails.
func Score(answers []types.AssessmentAnswer, questions []types.AssessmentQuestion) types.StressProfile {
	categoryByID := make(map[string]types.Category, len(questions))
	for _, q := range questions {
		categoryByID[q.ID] = q.Category
	}

	buckets := make(map[types.Category][]float64, 3)
	for _, a := range dedupeAnswers(answers) {
		category, ok := categoryByID[a.QuestionID]
		if !ok {
			// Answer from a stale or foreign question set.
			continue
		}
		buckets[category] = append(buckets[category], float64(a.Score))
	}

	cognitive := mean(buckets[types.CategoryCognitive])
	stress := mean(buckets[types.CategoryStress])
	behavior := mean(buckets[types.CategoryBehavior])
	overall := (cognitive + stress + behavior) / 3

	return types.StressProfile{
		Cognitive: round2(cognitive),
		Stress:    round2(stress),
		Behavior:  round2(behavior),
		Overall:   round2(overall),
	}
}

// dedupeAnswers reduces answers to at most one per question ID, last write
// wins, preserving the order in which question IDs first appeared.
func dedupeAnswers(answers []types.AssessmentAnswer) []types.AssessmentAnswer {
	index := make(map[string]int, len(answers))
	deduped := make([]types.AssessmentAnswer, 0, len(answers))
	for _, a := range answers {
		if i, seen := index[a.QuestionID]; seen {
			deduped[i] = a
			continue
		}
		index[a.QuestionID] = len(deduped)
		deduped = append(deduped, a)
	}
	return deduped
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// round2 rounds to two decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
