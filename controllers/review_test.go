package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmark/advisor-review-api/models"
	"github.com/campusmark/advisor-review-api/utils"
)

func validSubmitRequest() *SubmitReviewRequest {
	return &SubmitReviewRequest{
		AdvisorID: 1,
		Text: "My advisor consistently gave accurate degree planning guidance " +
			"and responded to every email within a day.",
		Ratings: RatingsInput{
			Accuracy:       5,
			Responsiveness: 4,
			Helpfulness:    5,
			Availability:   3,
			Advocacy:       4,
			Clarity:        5,
		},
		MeetingType: "in_person",
		Timeframe:   "last_6_months",
	}
}

func TestSubmitReviewRequestValid(t *testing.T) {
	assert.NoError(t, utils.Validate.Struct(validSubmitRequest()))
}

func TestSubmitReviewRequestTextLength(t *testing.T) {
	req := validSubmitRequest()
	req.Text = "too short"
	assert.Error(t, utils.Validate.Struct(req))

	req.Text = strings.Repeat("a", 2001)
	assert.Error(t, utils.Validate.Struct(req))
}

func TestSubmitReviewRequestRatingRange(t *testing.T) {
	req := validSubmitRequest()
	req.Ratings.Clarity = 6
	assert.Error(t, utils.Validate.Struct(req))

	req.Ratings.Clarity = 0
	assert.Error(t, utils.Validate.Struct(req))
}

func TestSubmitReviewRequestEnums(t *testing.T) {
	req := validSubmitRequest()
	req.MeetingType = "carrier_pigeon"
	assert.Error(t, utils.Validate.Struct(req))

	req = validSubmitRequest()
	req.Timeframe = "decades_ago"
	assert.Error(t, utils.Validate.Struct(req))
}

func TestSubmitReviewRequestTags(t *testing.T) {
	req := validSubmitRequest()
	req.Tags = []string{"helpful", "responsive", "knows requirements"}
	assert.NoError(t, utils.Validate.Struct(req))

	req.Tags = []string{"a", "b", "c", "d", "e", "f"}
	assert.Error(t, utils.Validate.Struct(req), "six tags exceed the limit")
}

func TestSubmitReviewRequestVerificationEmail(t *testing.T) {
	req := validSubmitRequest()
	req.VerificationEmail = "student@college.edu"
	assert.NoError(t, utils.Validate.Struct(req))

	req.VerificationEmail = "student@gmail.com"
	assert.Error(t, utils.Validate.Struct(req), "only .edu addresses can verify")

	req.VerificationEmail = "not-an-email"
	assert.Error(t, utils.Validate.Struct(req))
}

func TestReportReviewRequestReasons(t *testing.T) {
	for _, reason := range []string{"doxxing", "hate_speech", "off_topic", "spam", "other"} {
		req := &ReportReviewRequest{Reason: reason}
		assert.NoError(t, utils.Validate.Struct(req), "reason %s should be accepted", reason)
	}

	assert.Error(t, utils.Validate.Struct(&ReportReviewRequest{Reason: "disagree"}))
	assert.Error(t, utils.Validate.Struct(&ReportReviewRequest{}))

	long := &ReportReviewRequest{Reason: "spam", Details: strings.Repeat("x", 501)}
	assert.Error(t, utils.Validate.Struct(long))
}

func TestRatingsInputRowsCoverAllCategories(t *testing.T) {
	rows := validSubmitRequest().Ratings.rows(7)
	require.Len(t, rows, len(models.RatingCategories))

	seen := make(map[models.RatingCategory]bool)
	for _, row := range rows {
		assert.Equal(t, uint(7), row.ReviewID)
		assert.GreaterOrEqual(t, row.Score, 1)
		assert.LessOrEqual(t, row.Score, 5)
		seen[row.Category] = true
	}
	for _, cat := range models.RatingCategories {
		assert.True(t, seen[cat], "missing category %s", cat)
	}
}
