package admin

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/campusmark/advisor-review-api/db"
	"github.com/campusmark/advisor-review-api/models"
	"github.com/campusmark/advisor-review-api/utils"
)

// ListReviews is the moderation queue: reviews in the requested status with
// the advisor, department and university names denormalized in, plus each
// review's pending report count.
func ListReviews(c *fiber.Ctx) error {
	statusFilter := models.ReviewStatus(c.Query("status", string(models.StatusPending)))
	switch statusFilter {
	case models.StatusPending, models.StatusApproved, models.StatusRejected, models.StatusFlagged:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status filter",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	type queueItem struct {
		ID             uint                `json:"id"`
		Text           string              `json:"text"`
		Status         models.ReviewStatus `json:"status"`
		IsVerified     bool                `json:"is_verified"`
		HelpfulCount   int                 `json:"helpful_count"`
		CreatedAt      time.Time           `json:"created_at"`
		AdvisorName    string              `json:"advisor_name"`
		DepartmentName string              `json:"department_name"`
		UniversityName string              `json:"university_name"`
		PendingReports int64               `json:"pending_reports"`
	}

	var items []queueItem
	err := db.DB.Table("reviews").
		Select(`reviews.id, reviews.text, reviews.status, reviews.is_verified,
			reviews.helpful_count, reviews.created_at,
			advisors.name AS advisor_name,
			departments.name AS department_name,
			universities.name AS university_name,
			(SELECT COUNT(*) FROM review_reports
				WHERE review_reports.review_id = reviews.id
				AND review_reports.status = 'pending'
				AND review_reports.deleted_at IS NULL) AS pending_reports`).
		Joins("JOIN advisors ON advisors.id = reviews.advisor_id").
		Joins("JOIN departments ON departments.id = advisors.department_id").
		Joins("JOIN universities ON universities.id = departments.university_id").
		Where("reviews.deleted_at IS NULL AND reviews.status = ?", statusFilter).
		Order("reviews.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(&items).Error
	if err != nil {
		log.Printf("Error fetching moderation queue: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	var total int64
	db.DB.Model(&models.Review{}).Where("status = ?", statusFilter).Count(&total)

	return c.JSON(fiber.Map{
		"reviews": items,
		"total":   total,
		"page":    page,
		"limit":   limit,
		"pages":   (int(total) + limit - 1) / limit,
	})
}

// ListReports returns the pending report queue with the reported review.
func ListReports(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var reports []models.ReviewReport
	if err := db.DB.Preload("Review").
		Where("status = ?", models.ReportPending).
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reports",
		})
	}

	var total int64
	db.DB.Model(&models.ReviewReport{}).Where("status = ?", models.ReportPending).Count(&total)

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// ApproveReview publishes a pending or flagged review.
func ApproveReview(c *fiber.Ctx) error {
	return transitionReview(c, models.StatusApproved, models.ActionApprove, "")
}

type RejectReviewRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=1000"`
}

// RejectReview rejects a review with a human-entered justification. The
// reason is mandatory; it is the moderator's explanation, not the spam
// detector's.
func RejectReview(c *fiber.Ctx) error {
	req := new(RejectReviewRequest)
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
	return transitionReview(c, models.StatusRejected, models.ActionReject, req.Reason)
}

// transitionReview performs a moderator status change and its audit record
// as one transaction. A concurrent transition by another moderator surfaces
// as a 409, never a silent overwrite.
func transitionReview(c *fiber.Ctx, newStatus models.ReviewStatus, action, reason string) error {
	moderatorID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var review models.Review
	if err := db.DB.First(&review, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := review.UpdateStatus(tx, newStatus, moderatorID); err != nil {
			return err
		}
		return tx.Create(&models.ModerationAction{
			ModeratorID: moderatorID,
			ReviewID:    review.ID,
			Action:      action,
			Reason:      reason,
			IPAddress:   utils.ClientIP(c),
		}).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Invalid transition: " + err.Error(),
			})
		}
		log.Printf("Error moderating review %d: %v", review.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update review",
		})
	}

	return c.JSON(fiber.Map{
		"review_id": review.ID,
		"status":    review.Status,
	})
}

// DismissReports resolves every pending report on a review without touching
// the review itself. The dismissal still leaves an audit record.
func DismissReports(c *fiber.Ctx) error {
	moderatorID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var review models.Review
	if err := db.DB.First(&review, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	var resolved int64
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ReviewReport{}).
			Where("review_id = ? AND status = ?", review.ID, models.ReportPending).
			Updates(map[string]interface{}{
				"status":      models.ReportResolved,
				"resolved_by": moderatorID,
				"resolved_at": time.Now(),
				"resolution":  "dismissed",
			})
		if res.Error != nil {
			return res.Error
		}
		resolved = res.RowsAffected

		return tx.Create(&models.ModerationAction{
			ModeratorID: moderatorID,
			ReviewID:    review.ID,
			Action:      models.ActionDismissReports,
			IPAddress:   utils.ClientIP(c),
		}).Error
	})
	if err != nil {
		log.Printf("Error dismissing reports for review %d: %v", review.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to dismiss reports",
		})
	}

	return c.JSON(fiber.Map{
		"review_id": review.ID,
		"resolved":  resolved,
	})
}

type RemoveForReportsRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

// RemoveForReports composes a rejection with bulk report resolution as one
// atomic operation: the review goes to rejected, every pending report is
// resolved, and the action is audited. A partial update here would be a
// correctness bug, so all three writes share a transaction.
func RemoveForReports(c *fiber.Ctx) error {
	moderatorID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	// The reason is optional here, so an empty body is fine.
	req := new(RemoveForReportsRequest)
	_ = c.BodyParser(req)

	var review models.Review
	if err := db.DB.First(&review, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Review not found",
		})
	}

	now := time.Now()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Review{}).
			Where("id = ? AND status <> ?", review.ID, models.StatusRejected).
			Updates(map[string]interface{}{
				"status":      models.StatusRejected,
				"reviewed_at": now,
				"reviewed_by": moderatorID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrInvalidTransition
		}

		if err := tx.Model(&models.ReviewReport{}).
			Where("review_id = ? AND status = ?", review.ID, models.ReportPending).
			Updates(map[string]interface{}{
				"status":      models.ReportResolved,
				"resolved_by": moderatorID,
				"resolved_at": now,
				"resolution":  "removed",
			}).Error; err != nil {
			return err
		}

		return tx.Create(&models.ModerationAction{
			ModeratorID: moderatorID,
			ReviewID:    review.ID,
			Action:      models.ActionRemoveForReports,
			Reason:      req.Reason,
			IPAddress:   utils.ClientIP(c),
		}).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Review is already rejected",
			})
		}
		log.Printf("Error removing review %d for reports: %v", review.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove review",
		})
	}

	return c.JSON(fiber.Map{
		"review_id": review.ID,
		"status":    models.StatusRejected,
	})
}
