package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/wellspring/internal/types"
)

func traitsOfBook(b types.ScoredBook) itemTraits {
	return itemTraits{genre: b.Genre, tags: b.Tags}
}

func book(id, genre string, tags ...string) types.ScoredBook {
	return types.ScoredBook{Book: types.Book{ID: id, Genre: genre, Tags: tags}}
}

func TestDiversify_ShortListReturnedWhole(t *testing.T) {
	items := []types.ScoredBook{
		book("a", "Self-Help", "x"),
		book("b", "Self-Help", "x"),
	}

	assert.Equal(t, items, diversify(items, traitsOfBook, 3))
}

func TestDiversify_TopItemAlwaysTaken(t *testing.T) {
	items := []types.ScoredBook{
		book("a", "Self-Help", "x", "y"),
		book("b", "Psychology", "p", "q"),
		book("c", "Fiction", "r", "s"),
		book("d", "Memoir", "t", "u"),
	}

	got := diversify(items, traitsOfBook, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
}

func TestDiversify_RejectsNearDuplicates(t *testing.T) {
	items := []types.ScoredBook{
		book("a", "Self-Help", "stress", "anxiety"),
		// Same genre and both tags shared: filtered out.
		book("b", "Self-Help", "stress", "anxiety"),
		// Same tags but different genre: allowed.
		book("c", "Psychology", "stress", "anxiety"),
		// Same genre but disjoint tags: allowed.
		book("d", "Self-Help", "sleep", "habits"),
	}

	got := diversify(items, traitsOfBook, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "d", got[2].ID)
}

func TestDiversify_BackfillsInScoreOrder(t *testing.T) {
	// Top four entries share all tags and the genre, so the filter accepts
	// only the first; backfill must top up to the cap in score order.
	items := []types.ScoredBook{
		book("a", "Self-Help", "stress", "anxiety"),
		book("b", "Self-Help", "stress", "anxiety"),
		book("c", "Self-Help", "stress", "anxiety"),
		book("d", "Self-Help", "stress", "anxiety"),
		book("e", "Self-Help", "stress", "anxiety"),
	}

	got := diversify(items, traitsOfBook, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestDiversify_NoTagsFallsBackToGroupCheck(t *testing.T) {
	items := []types.ScoredBook{
		book("a", "Self-Help", "stress"),
		// No tags and same genre: cannot demonstrate diversity, filtered.
		book("b", "Self-Help"),
		// No tags but different genre: accepted.
		book("c", "Psychology"),
		book("d", "Memoir", "grief"),
	}

	got := diversify(items, traitsOfBook, 3)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "d", got[2].ID)
}

func TestDiversify_MusicMatchesOnMoodToo(t *testing.T) {
	traits := func(tr types.ScoredTrack) itemTraits {
		return itemTraits{genre: tr.Genre, mood: tr.Mood, tags: tr.Tags}
	}
	track := func(id, genre, mood string, tags ...string) types.ScoredTrack {
		return types.ScoredTrack{Track: types.Track{ID: id, Genre: genre, Mood: mood, Tags: tags}}
	}

	items := []types.ScoredTrack{
		track("a", "Ambient", "calming", "sleep", "calm"),
		// Different genre but same mood and full tag overlap: filtered.
		track("b", "Classical", "calming", "sleep", "calm"),
		track("c", "Rock", "uplifting", "energy"),
		track("d", "Soul", "peaceful", "soothing"),
		track("e", "Pop", "vulnerable", "emotional"),
	}

	got := diversify(items, traits, 4)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"a", "c", "d", "e"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}
