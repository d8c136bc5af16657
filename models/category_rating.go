package models

import (
	"gorm.io/gorm"
)

type RatingCategory string

const (
	CategoryAccuracy       RatingCategory = "accuracy"
	CategoryResponsiveness RatingCategory = "responsiveness"
	CategoryHelpfulness    RatingCategory = "helpfulness"
	CategoryAvailability   RatingCategory = "availability"
	CategoryAdvocacy       RatingCategory = "advocacy"
	CategoryClarity        RatingCategory = "clarity"
)

// RatingCategories lists every category a complete review must score.
var RatingCategories = []RatingCategory{
	CategoryAccuracy,
	CategoryResponsiveness,
	CategoryHelpfulness,
	CategoryAvailability,
	CategoryAdvocacy,
	CategoryClarity,
}

// CategoryRating holds one of the six per-category scores of a review.
// A review is only usable for aggregation when all six rows exist; they are
// written in the same transaction as the review itself.
type CategoryRating struct {
	gorm.Model
	ReviewID uint           `json:"review_id" gorm:"not null;uniqueIndex:idx_review_category"`
	Category RatingCategory `json:"category" gorm:"size:20;not null;uniqueIndex:idx_review_category"`
	Score    int            `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
}
