package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusmark/advisor-review-api/db"
	"github.com/campusmark/advisor-review-api/models"
	"github.com/campusmark/advisor-review-api/moderation"
	"github.com/campusmark/advisor-review-api/ratelimit"
	"github.com/campusmark/advisor-review-api/redis"
	"github.com/campusmark/advisor-review-api/utils"
)

// Abuse budgets for the anonymous write paths. The limiter itself is
// policy-agnostic; the numbers live here at the call site.
const (
	submitIPLimit          = 3
	submitFingerprintLimit = 5
	reportIPLimit          = 5
	reportFingerprintLimit = 10
	abuseWindow            = 24 * time.Hour
)

type RatingsInput struct {
	Accuracy       int `json:"accuracy" validate:"required,min=1,max=5"`
	Responsiveness int `json:"responsiveness" validate:"required,min=1,max=5"`
	Helpfulness    int `json:"helpfulness" validate:"required,min=1,max=5"`
	Availability   int `json:"availability" validate:"required,min=1,max=5"`
	Advocacy       int `json:"advocacy" validate:"required,min=1,max=5"`
	Clarity        int `json:"clarity" validate:"required,min=1,max=5"`
}

func (r RatingsInput) rows(reviewID uint) []models.CategoryRating {
	return []models.CategoryRating{
		{ReviewID: reviewID, Category: models.CategoryAccuracy, Score: r.Accuracy},
		{ReviewID: reviewID, Category: models.CategoryResponsiveness, Score: r.Responsiveness},
		{ReviewID: reviewID, Category: models.CategoryHelpfulness, Score: r.Helpfulness},
		{ReviewID: reviewID, Category: models.CategoryAvailability, Score: r.Availability},
		{ReviewID: reviewID, Category: models.CategoryAdvocacy, Score: r.Advocacy},
		{ReviewID: reviewID, Category: models.CategoryClarity, Score: r.Clarity},
	}
}

type SubmitReviewRequest struct {
	AdvisorID         uint         `json:"advisor_id" validate:"required"`
	Text              string       `json:"text" validate:"required,min=50,max=2000"`
	Ratings           RatingsInput `json:"ratings" validate:"required"`
	MeetingType       string       `json:"meeting_type" validate:"required,oneof=in_person virtual email mixed"`
	Timeframe         string       `json:"timeframe" validate:"required,oneof=last_6_months 6_12_months 1_2_years 2_plus_years"`
	Tags              []string     `json:"tags" validate:"omitempty,max=5,dive,min=1,max=40"`
	VerificationEmail string       `json:"verification_email" validate:"omitempty,email,endswith=.edu"`
	CaptchaToken      string       `json:"captcha_token"`
}

// SubmitReview runs the full intake pipeline: captcha, rate limits,
// validation, spam detection, content analysis, sanitization, then an
// atomic write of the review with its six category ratings.
func SubmitReview(c *fiber.Ctx) error {
	req := new(SubmitReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// CAPTCHA runs before the rest of the pipeline and fails closed.
	if err := utils.VerifyCaptcha(req.CaptchaToken); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Captcha verification failed",
		})
	}

	ip := utils.ClientIP(c)
	fingerprint := utils.Fingerprint(ip, c.Get("User-Agent"), c.Get("Accept-Language"))

	userID, authenticated := c.Locals("userID").(uint)
	if authenticated {
		result := ratelimit.Default.Check(fmt.Sprintf("submit:user:%d", userID), submitFingerprintLimit, abuseWindow)
		if !result.Allowed {
			return utils.RateLimited(c, result.ResetAt)
		}
	} else {
		// Both anonymous budgets must pass. Checking both up front keeps the
		// counters moving together, so a rejection on one key still burns
		// the window on the other.
		ipResult := ratelimit.Default.Check("submit:ip:"+ip, submitIPLimit, abuseWindow)
		fpResult := ratelimit.Default.Check("submit:fp:"+fingerprint, submitFingerprintLimit, abuseWindow)
		if !ipResult.Allowed {
			return utils.RateLimited(c, ipResult.ResetAt)
		}
		if !fpResult.Allowed {
			return utils.RateLimited(c, fpResult.ResetAt)
		}
	}

	if err := utils.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": utils.FormatValidationErrors(err),
		})
	}

	var advisor models.Advisor
	if err := db.DB.First(&advisor, req.AdvisorID).Error; err != nil || !advisor.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Advisor not found",
		})
	}

	spam := moderation.DetectSpam(req.Text)
	if spam.IsSpam {
		// The only path where a bad-faith submission leaves no record.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "Submission rejected",
			"reasons": spam.Reasons,
		})
	}

	analysis := moderation.Analyze(req.Text, moderation.AnalyzeOptions{AllowSafeURLs: true})

	status := models.StatusPending
	if moderation.NeedsReview(analysis, spam) {
		status = models.StatusFlagged
	}

	review := models.Review{
		AdvisorID:   advisor.ID,
		Text:        analysis.SanitizedText,
		MeetingType: models.MeetingType(req.MeetingType),
		Timeframe:   models.Timeframe(req.Timeframe),
		Tags:        strings.Join(req.Tags, ","),
		Status:      status,
		SubmitterIP: ip,
		Fingerprint: fingerprint,
	}
	if authenticated {
		review.AuthorID = &userID
		// Set once from the author's verified-student flag; never recomputed.
		verified, _ := c.Locals("isVerifiedStudent").(bool)
		review.IsVerified = verified
	}

	var verification *models.EmailVerification
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		ratingRows := req.Ratings.rows(review.ID)
		if err := tx.Create(&ratingRows).Error; err != nil {
			return err
		}
		if req.VerificationEmail != "" && !authenticated {
			verification = &models.EmailVerification{
				ReviewID: review.ID,
				Email:    req.VerificationEmail,
				Token:    utils.GenerateVerificationToken(),
			}
			if err := tx.Create(verification).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	// Token storage and email delivery happen after the commit; losing them
	// costs the submitter a badge, not the review.
	if verification != nil {
		if err := redis.SetVerificationToken(verification.Token, review.ID, 24*time.Hour); err != nil {
			log.Printf("Failed to store verification token for review %d: %v", review.ID, err)
		} else if err := utils.SendVerificationEmail(verification.Email, verification.Token); err != nil {
			log.Printf("Failed to send verification email for review %d: %v", review.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"review_id": review.ID,
		"status":    review.Status,
	})
}

type ReportReviewRequest struct {
	Reason  string `json:"reason" validate:"required,oneof=doxxing hate_speech off_topic spam other"`
	Details string `json:"details" validate:"omitempty,max=500"`
}

// ReportReview files a report against a published review. Reaching the
// pending-report threshold flags the review automatically; that is the only
// non-moderator status transition after submission.
func ReportReview(c *fiber.Ctx) error {
	reviewID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	req := new(ReportReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if err := utils.Validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": utils.FormatValidationErrors(err),
		})
	}

	ip := utils.ClientIP(c)
	fingerprint := utils.Fingerprint(ip, c.Get("User-Agent"), c.Get("Accept-Language"))

	ipResult := ratelimit.Default.Check("report:ip:"+ip, reportIPLimit, abuseWindow)
	fpResult := ratelimit.Default.Check("report:fp:"+fingerprint, reportFingerprintLimit, abuseWindow)
	if !ipResult.Allowed {
		return utils.RateLimited(c, ipResult.ResetAt)
	}
	if !fpResult.Allowed {
		return utils.RateLimited(c, fpResult.ResetAt)
	}

	var review models.Review
	if err := db.DB.First(&review, reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	if !review.Reportable() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This review is already under moderation or has been removed",
		})
	}

	report := models.ReviewReport{
		ReviewID:    review.ID,
		ReporterIP:  ip,
		Fingerprint: fingerprint,
		Reason:      models.ReportReason(req.Reason),
		Details:     req.Details,
		Status:      models.ReportPending,
	}
	if reporterID, ok := c.Locals("userID").(uint); ok {
		report.ReporterID = &reporterID
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		var pending int64
		if err := tx.Model(&models.ReviewReport{}).
			Where("review_id = ? AND status = ?", review.ID, models.ReportPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if int(pending) >= moderation.AutoFlagReportCount {
			// Conditional on the current status so two racing reports
			// produce exactly one transition to flagged.
			return tx.Model(&models.Review{}).
				Where("id = ? AND status IN ?", review.ID,
					[]models.ReviewStatus{models.StatusPending, models.StatusApproved}).
				Update("status", models.StatusFlagged).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating report for review %d: %v", review.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report_id": report.ID,
	})
}

// VoteHelpful records one helpful vote per identity per review. Uniqueness
// is enforced by the vote table's composite index, not a read-then-write
// check, so concurrent duplicates lose at the database.
func VoteHelpful(c *fiber.Ctx) error {
	reviewID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review ID",
		})
	}

	var review models.Review
	if err := db.DB.First(&review, reviewID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}
	if review.Status != models.StatusApproved {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Only approved reviews can be voted on",
		})
	}

	ip := utils.ClientIP(c)
	vote := models.ReviewVote{
		ReviewID:  review.ID,
		IPAddress: ip,
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		vote.UserID = &userID
		vote.VoterKey = models.VoterKeyForUser(userID)
	} else {
		vote.VoterKey = models.VoterKeyForIP(ip)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).
			Where("id = ?", review.ID).
			Update("helpful_count", gorm.Expr("helpful_count + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "You have already voted on this review",
			})
		}
		log.Printf("Error recording vote for review %d: %v", review.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record vote",
		})
	}

	var updated models.Review
	if err := db.DB.Select("helpful_count").First(&updated, review.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch vote count",
		})
	}
	return c.JSON(fiber.Map{
		"helpful_count": updated.HelpfulCount,
	})
}

// errDomainMismatch means the verified address is a real .edu mailbox but
// not at the reviewed advisor's university.
var errDomainMismatch = errors.New("email domain does not match the advisor's university")

// VerifyEmail consumes a verification token from the link mailed at
// submission time. The badge is only granted when the verified address
// belongs to the advisor's university domain; a student at one school
// cannot verify a review of an advisor at another.
func VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")

	reviewID, err := redis.ConsumeVerificationToken(token)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Verification link is invalid or has expired",
		})
	}

	now := time.Now()
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var verification models.EmailVerification
		if err := tx.Where("token = ? AND review_id = ? AND verified = ?", token, reviewID, false).
			First(&verification).Error; err != nil {
			return fmt.Errorf("verification record not found for review %d: %w", reviewID, err)
		}

		var university models.University
		if err := tx.Model(&models.University{}).
			Joins("JOIN departments ON departments.university_id = universities.id").
			Joins("JOIN advisors ON advisors.department_id = departments.id").
			Joins("JOIN reviews ON reviews.advisor_id = advisors.id").
			Where("reviews.id = ?", reviewID).
			First(&university).Error; err != nil {
			return err
		}
		if !university.MatchesEmail(verification.Email) {
			return errDomainMismatch
		}

		if err := tx.Model(&verification).
			Updates(map[string]interface{}{"verified": true, "verified_at": now}).Error; err != nil {
			return err
		}
		// Only anonymous reviews earn the badge here; authenticated authors
		// carried their verified-student flag at creation time.
		return tx.Model(&models.Review{}).
			Where("id = ? AND author_id IS NULL", reviewID).
			Update("is_verified", true).Error
	})
	if err != nil {
		if errors.Is(err, errDomainMismatch) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "This email address does not belong to the advisor's university",
			})
		}
		log.Printf("Error verifying email for review %d: %v", reviewID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Verification link is invalid or has expired",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Email verified. Your review will show a verified badge once approved.",
	})
}
