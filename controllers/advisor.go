package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmark/advisor-review-api/db"
	"github.com/campusmark/advisor-review-api/models"
	"github.com/campusmark/advisor-review-api/ratings"
)

// GetAdvisorRatings recomputes the advisor's aggregate from the approved
// reviews on every call. Nothing is cached, so the numbers can never drift
// from the per-review data underneath them.
func GetAdvisorRatings(c *fiber.Ctx) error {
	var advisor models.Advisor
	if err := db.DB.First(&advisor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Advisor not found",
		})
	}

	var reviews []models.Review
	if err := db.DB.Preload("Ratings").
		Where("advisor_id = ? AND status = ?", advisor.ID, models.StatusApproved).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	scores := make([]ratings.ReviewScores, 0, len(reviews))
	for _, review := range reviews {
		m := make(map[models.RatingCategory]int, len(review.Ratings))
		for _, rating := range review.Ratings {
			m[rating.Category] = rating.Score
		}
		scores = append(scores, ratings.ReviewScores{ReviewID: review.ID, Scores: m})
	}

	return c.JSON(fiber.Map{
		"advisor_id": advisor.ID,
		"ratings":    ratings.Compute(scores),
	})
}

// GetAdvisorReviews returns the advisor's approved reviews, newest first.
// Submitter identity is never exposed; reviews are published anonymously.
func GetAdvisorReviews(c *fiber.Ctx) error {
	var advisor models.Advisor
	if err := db.DB.First(&advisor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Advisor not found",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.Preload("Ratings").
		Where("advisor_id = ? AND status = ?", advisor.ID, models.StatusApproved).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	var count int64
	db.DB.Model(&models.Review{}).
		Where("advisor_id = ? AND status = ?", advisor.ID, models.StatusApproved).
		Count(&count)

	items := make([]fiber.Map, 0, len(reviews))
	for _, review := range reviews {
		scores := make(map[models.RatingCategory]int, len(review.Ratings))
		for _, rating := range review.Ratings {
			scores[rating.Category] = rating.Score
		}

		var tags []string
		if review.Tags != "" {
			tags = strings.Split(review.Tags, ",")
		}

		items = append(items, fiber.Map{
			"id":            review.ID,
			"text":          review.Text,
			"meeting_type":  review.MeetingType,
			"timeframe":     review.Timeframe,
			"tags":          tags,
			"is_verified":   review.IsVerified,
			"helpful_count": review.HelpfulCount,
			"overall":       ratings.ReviewOverall(scores),
			"ratings":       scores,
			"created_at":    review.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"reviews": items,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}
