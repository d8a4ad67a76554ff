package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maya/wellspring/internal/types"
)

func answersWithScores(scores ...int) []types.AssessmentAnswer {
	answers := make([]types.AssessmentAnswer, 0, len(scores))
	for i, s := range scores {
		answers = append(answers, types.AssessmentAnswer{QuestionID: string(rune('a' + i)), Score: s})
	}
	return answers
}

func TestConfidence_FullConsistentSession(t *testing.T) {
	got := confidence(answersWithScores(3, 3, 3, 3, 3, 3, 3, 3), types.MoodAnxious)

	// completeness 1, consistency 1, clarity 1.
	assert.InDelta(t, 100.0, got, 1e-9)
}

func TestConfidence_EmptyAnswers(t *testing.T) {
	got := confidence(nil, types.MoodAnxious)

	// completeness 0, consistency stays 1, clarity 1.
	assert.InDelta(t, 60.0, got, 1e-9)
}

func TestConfidence_UnknownMoodHalvesClarity(t *testing.T) {
	known := confidence(answersWithScores(3, 3, 3, 3, 3, 3, 3, 3), types.MoodAnxious)
	unknown := confidence(answersWithScores(3, 3, 3, 3, 3, 3, 3, 3), types.MoodUnknown)

	assert.InDelta(t, known-10, unknown, 1e-9)
}

func TestConfidence_HighVarianceFloorsConsistency(t *testing.T) {
	// Alternating 1s and 5s: variance 4, consistency clamped to 0.
	got := confidence(answersWithScores(1, 5, 1, 5, 1, 5, 1, 5), types.MoodAnxious)

	assert.InDelta(t, 60.0, got, 1e-9)
}

func TestConfidence_CompletenessSaturates(t *testing.T) {
	eight := confidence(answersWithScores(3, 3, 3, 3, 3, 3, 3, 3), types.MoodAnxious)
	twelve := confidence(answersWithScores(3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3), types.MoodAnxious)

	assert.InDelta(t, eight, twelve, 1e-9)
}

func TestConfidence_InRange(t *testing.T) {
	cases := [][]types.AssessmentAnswer{
		nil,
		answersWithScores(1),
		answersWithScores(1, 5),
		answersWithScores(2, 4, 3, 5, 1),
	}
	for _, answers := range cases {
		for _, mood := range append([]types.Mood{types.MoodUnknown}, types.AllMoods...) {
			got := confidence(answers, mood)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		}
	}
}
