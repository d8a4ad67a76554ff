package assessment

import (
	"testing"

	"github.com/maya/wellspring/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBank_EveryMoodHasSixteenQuestions(t *testing.T) {
	for _, mood := range types.AllMoods {
		bank := Bank(mood)
		assert.Len(t, bank, 16, "bank for %q", mood)

		seen := make(map[string]bool, len(bank))
		for _, q := range bank {
			assert.False(t, seen[q.ID], "duplicate question ID %q in %q bank", q.ID, mood)
			seen[q.ID] = true
			assert.Contains(t, []types.Category{
				types.CategoryCognitive,
				types.CategoryStress,
				types.CategoryBehavior,
			}, q.Category)
		}
	}
}

func TestBank_UnknownMoodFallsBack(t *testing.T) {
	bank := Bank(types.MoodUnknown)

	assert.Len(t, bank, SessionSize)
	assert.Equal(t, "q1", bank[0].ID)

	assert.Equal(t, bank, Bank(types.ParseMood("not-a-mood")))
}

func TestDraw_SessionSizeAndMembership(t *testing.T) {
	bank := Bank(types.MoodPeaceful)
	inBank := make(map[string]bool, len(bank))
	for _, q := range bank {
		inBank[q.ID] = true
	}

	session := Draw(types.MoodPeaceful)

	assert.Len(t, session, SessionSize)
	seen := make(map[string]bool, len(session))
	for _, q := range session {
		assert.True(t, inBank[q.ID], "drawn question %q not in bank", q.ID)
		assert.False(t, seen[q.ID], "question %q drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestDraw_FallbackReturnedWhole(t *testing.T) {
	assert.Equal(t, fallbackQuestions, Draw(types.MoodUnknown))
}
