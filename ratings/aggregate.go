package ratings

import (
	"math"

	"github.com/campusmark/advisor-review-api/models"
)

// ReviewScores carries one approved review's six category scores into the
// aggregator.
type ReviewScores struct {
	ReviewID uint
	Scores   map[models.RatingCategory]int
}

// Aggregate is the advisor-level rating summary. It is derived on every
// read from the approved reviews and never persisted, so it cannot go stale
// against the underlying data.
type Aggregate struct {
	Overall      float64                           `json:"overall"`
	Categories   map[models.RatingCategory]float64 `json:"categories"`
	TotalReviews int                               `json:"total_reviews"`
	Distribution map[int]int                       `json:"distribution"` // star (1-5) -> review count
}

// Compute recomputes an advisor's aggregate from scratch. Reviews without a
// complete set of six category scores are skipped rather than poisoning the
// averages. The advisor overall is the mean of the six category means — not
// the mean of per-review overalls, which differs once per-review values are
// rounded. Zero qualifying reviews yields an all-zero aggregate.
func Compute(reviews []ReviewScores) Aggregate {
	agg := Aggregate{
		Categories:   make(map[models.RatingCategory]float64, len(models.RatingCategories)),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	for _, cat := range models.RatingCategories {
		agg.Categories[cat] = 0
	}

	sums := make(map[models.RatingCategory]int, len(models.RatingCategories))
	qualified := 0

	for _, review := range reviews {
		if len(review.Scores) != len(models.RatingCategories) {
			continue
		}
		complete := true
		total := 0
		for _, cat := range models.RatingCategories {
			score, ok := review.Scores[cat]
			if !ok {
				complete = false
				break
			}
			total += score
		}
		if !complete {
			continue
		}

		qualified++
		for _, cat := range models.RatingCategories {
			sums[cat] += review.Scores[cat]
		}

		overall := float64(total) / float64(len(models.RatingCategories))
		agg.Distribution[starBucket(overall)]++
	}

	agg.TotalReviews = qualified
	if qualified == 0 {
		return agg
	}

	var meanSum float64
	for _, cat := range models.RatingCategories {
		mean := float64(sums[cat]) / float64(qualified)
		agg.Categories[cat] = Round1(mean)
		meanSum += mean
	}
	agg.Overall = Round1(meanSum / float64(len(models.RatingCategories)))
	return agg
}

// ReviewOverall is a review's own published score: the mean of its six
// category scores rounded to one decimal.
func ReviewOverall(scores map[models.RatingCategory]int) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return Round1(float64(total) / float64(len(scores)))
}

// Round1 rounds half away from zero to one decimal place. Every published
// score uses this single rounding rule.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// starBucket rounds a review overall to the nearest whole star, clamped to
// the 1-5 histogram range.
func starBucket(overall float64) int {
	star := int(math.Round(overall))
	if star < 1 {
		star = 1
	}
	if star > 5 {
		star = 5
	}
	return star
}
