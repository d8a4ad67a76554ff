// Package recommend ranks the book and music catalogs against a user's
// stress profile and produces diversity-constrained short-lists with a
// confidence estimate.
package recommend

import (
	"math"

	"github.com/maya/wellspring/internal/catalog"
	"github.com/maya/wellspring/internal/types"
)

// maxProfileDistance is the greatest possible euclidean distance between two
// profile vectors, three dimensions each spanning 0..5.
var maxProfileDistance = math.Sqrt(3 * 25)

func cosineSimilarity(a, b [3]float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func euclideanSimilarity(a, b [3]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return 1 - math.Sqrt(sum)/maxProfileDistance
}

// profileSimilarity compares the user's profile vector to an item's
// emotional signature. With a recognized mood the vectors are scaled
// component-wise by that mood's weights and compared by cosine similarity;
// otherwise it degrades to normalized euclidean similarity on the raw
// vectors.
func profileSimilarity(user types.StressProfile, item types.EmotionalProfile, mood types.Mood) float64 {
	userVec := user.Vector()
	itemVec := item.Vector()

	w, ok := catalog.WeightsFor(mood)
	if !ok {
		return euclideanSimilarity(userVec, itemVec)
	}

	weights := [3]float64{w.StressWeight, w.CognitiveWeight, w.BehaviorWeight}
	for i := range weights {
		userVec[i] *= weights[i]
		itemVec[i] *= weights[i]
	}
	return cosineSimilarity(userVec, itemVec)
}
