package recommend

import (
	"golang.org/x/sync/errgroup"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/types"
)

// Short-list caps.
const (
	MaxBooks  = 3
	MaxTracks = 4
)

// Engine ranks a fixed catalog against user profiles. It holds no per-user
// state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine returns an engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Generate produces the recommendation bundle for one assessment: up to
// MaxBooks books and MaxTracks tracks, each scored, sorted, and
// diversity-filtered, plus a 0-100 confidence score. It never fails; unknown
// moods and empty inputs degrade to the documented fallback constants.
func (e *Engine) Generate(answers []types.AssessmentAnswer, profile types.StressProfile, mood types.Mood) types.Recommendation {
	var rec types.Recommendation

	// Book and track ranking are independent; run them in parallel.
	var g errgroup.Group
	g.Go(func() error {
		rec.Books = e.Books(profile, mood)
		return nil
	})
	g.Go(func() error {
		rec.Music = e.Music(profile, mood)
		return nil
	})

	rec.ConfidenceScore = confidence(answers, mood)

	// Neither branch returns an error.
	_ = g.Wait()

	return rec
}

// Books returns the diversified book short-list for a profile and mood.
func (e *Engine) Books(profile types.StressProfile, mood types.Mood) []types.ScoredBook {
	scored := scoreBooks(e.catalog.Books, profile, mood)
	return diversify(scored, func(b types.ScoredBook) itemTraits {
		return itemTraits{genre: b.Genre, tags: b.Tags}
	}, MaxBooks)
}

// Music returns the diversified track short-list for a profile and mood.
func (e *Engine) Music(profile types.StressProfile, mood types.Mood) []types.ScoredTrack {
	scored := scoreTracks(e.catalog.Music, profile, mood)
	return diversify(scored, func(t types.ScoredTrack) itemTraits {
		return itemTraits{genre: t.Genre, mood: t.Mood, tags: t.Tags}
	}, MaxTracks)
}
