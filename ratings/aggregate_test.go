package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmark/advisor-review-api/models"
)

func scoresFor(values [6]int) map[models.RatingCategory]int {
	m := make(map[models.RatingCategory]int, 6)
	for i, cat := range models.RatingCategories {
		m[cat] = values[i]
	}
	return m
}

func TestComputeNoReviews(t *testing.T) {
	agg := Compute(nil)

	assert.Zero(t, agg.Overall)
	assert.Equal(t, 0, agg.TotalReviews)
	for _, cat := range models.RatingCategories {
		assert.Zero(t, agg.Categories[cat])
	}
	for star := 1; star <= 5; star++ {
		assert.Zero(t, agg.Distribution[star])
	}
}

func TestComputeSinglePerfectReview(t *testing.T) {
	agg := Compute([]ReviewScores{
		{ReviewID: 1, Scores: scoresFor([6]int{5, 5, 5, 5, 5, 5})},
	})

	assert.Equal(t, 5.0, agg.Overall)
	assert.Equal(t, 1, agg.TotalReviews)
	for _, cat := range models.RatingCategories {
		assert.Equal(t, 5.0, agg.Categories[cat])
	}
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, agg.Distribution)
}

func TestComputeOverallIsMeanOfCategoryMeans(t *testing.T) {
	// Two skewed reviews where the mean of category means (3.5833.. -> 3.6)
	// differs from the mean of the star-rounded per-review overalls (3.5).
	agg := Compute([]ReviewScores{
		{ReviewID: 1, Scores: scoresFor([6]int{3, 3, 3, 3, 3, 2})}, // overall 2.83 -> 3 stars
		{ReviewID: 2, Scores: scoresFor([6]int{5, 5, 5, 4, 4, 3})}, // overall 4.33 -> 4 stars
	})

	require.Equal(t, 2, agg.TotalReviews)
	assert.Equal(t, 3.6, agg.Overall)
	assert.NotEqual(t, 3.5, agg.Overall, "must not average the per-review overalls")

	assert.Equal(t, 4.0, agg.Categories[models.CategoryAccuracy])
	assert.Equal(t, 3.5, agg.Categories[models.CategoryAvailability])
	assert.Equal(t, 2.5, agg.Categories[models.CategoryClarity])

	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 0}, agg.Distribution)
}

func TestComputeSkipsIncompleteRatingSets(t *testing.T) {
	partial := scoresFor([6]int{1, 1, 1, 1, 1, 1})
	delete(partial, models.CategoryClarity)

	agg := Compute([]ReviewScores{
		{ReviewID: 1, Scores: scoresFor([6]int{4, 4, 4, 4, 4, 4})},
		{ReviewID: 2, Scores: partial},
	})

	assert.Equal(t, 1, agg.TotalReviews)
	assert.Equal(t, 4.0, agg.Overall)
	assert.Equal(t, 0, agg.Distribution[1])
	assert.Equal(t, 1, agg.Distribution[4])
}

func TestReviewOverall(t *testing.T) {
	assert.Equal(t, 4.3, ReviewOverall(scoresFor([6]int{5, 5, 5, 4, 4, 3})))
	assert.Equal(t, 0.0, ReviewOverall(nil))
}

func TestRound1HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.3, Round1(2.25))
	assert.Equal(t, 4.5, Round1(4.45))
	assert.Equal(t, 3.1, Round1(3.14))
	assert.Equal(t, 5.0, Round1(5.0))
}
