package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maya/wellspring/internal/types"
)

func TestPrintStressProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.StressProfile{
		Cognitive: 4.2,
		Stress:    4.5,
		Behavior:  3.8,
		Overall:   4.17,
	}

	p.PrintStressProfile(profile, types.MoodAnxious)
	output := buf.String()

	assert.Contains(t, output, "STRESS PROFILE")
	assert.Contains(t, output, "anxious")
	assert.Contains(t, output, "4.50")
	assert.Contains(t, output, "4.20")
	assert.Contains(t, output, "3.80")
	assert.Contains(t, output, "4.17")
}

func TestPrintStressProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStressProfile(nil, types.MoodAnxious)

	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.Recommendation{
		Books: []types.ScoredBook{
			{Book: types.Book{Title: "The Calm Mind", Genre: "Self-Help"}, Score: 0.82},
		},
		Music: []types.ScoredTrack{
			{Track: types.Track{Title: "Ocean Waves", Mood: "calming"}, Score: 0.77},
		},
		ConfidenceScore: 84,
	}

	p.PrintRecommendations(rec)
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "The Calm Mind")
	assert.Contains(t, output, "0.82")
	assert.Contains(t, output, "Ocean Waves")
	assert.Contains(t, output, "0.77")
	assert.Contains(t, output, "84/100")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)
	p.PrintRecommendations(&types.Recommendation{})

	assert.Empty(t, buf.String())
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	cards := []types.InsightCard{
		{Category: types.CategoryStress, Text: "Your stress levels look elevated."},
		{Category: types.CategoryBehavior, Text: "Daily routines seem disrupted."},
	}

	p.PrintInsights(cards)
	output := buf.String()

	assert.Contains(t, output, "INSIGHTS")
	assert.Contains(t, output, "2 insight cards")
	assert.Contains(t, output, "stress")
	assert.Contains(t, output, "behavior")
}

func TestPrintInsights_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInsights(nil)

	assert.Empty(t, buf.String())
}

func TestScoreBar_Bounds(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", scoreBar(0))
	assert.Equal(t, "██████████", scoreBar(5))
	assert.Equal(t, "██████████", scoreBar(7.5))
	assert.Equal(t, "░░░░░░░░░░", scoreBar(-1))
}
