package recommend

import (
	"math"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/types"
)

// Confidence factor weights: answer completeness and answer consistency
// dominate, mood clarity contributes the rest.
const (
	completenessWeight = 0.4
	consistencyWeight  = 0.4
	clarityWeight      = 0.2

	fullSessionAnswers = 8
)

// confidence estimates how much to trust the recommendation set, on a 0-100
// scale. Completeness saturates at a full session of answers. Consistency is
// derived from score variance: uniform answers give 1, variance of 2 or more
// gives 0. An empty answer list carries no evidence of inconsistency, so
// consistency stays at 1 while completeness is 0. Clarity is 1 for a
// recognized mood and 0.5 otherwise.
func confidence(answers []types.AssessmentAnswer, mood types.Mood) float64 {
	completeness := math.Min(float64(len(answers))/fullSessionAnswers, 1)

	consistency := 1.0
	if len(answers) > 0 {
		consistency = math.Max(0, 1-scoreVariance(answers)/2)
	}

	clarity := 0.5
	if _, ok := catalog.WeightsFor(mood); ok {
		clarity = 1.0
	}

	return (completeness*completenessWeight + consistency*consistencyWeight + clarity*clarityWeight) * 100
}

func scoreVariance(answers []types.AssessmentAnswer) float64 {
	mean := 0.0
	for _, a := range answers {
		mean += float64(a.Score)
	}
	mean /= float64(len(answers))

	variance := 0.0
	for _, a := range answers {
		d := float64(a.Score) - mean
		variance += d * d
	}
	return variance / float64(len(answers))
}
