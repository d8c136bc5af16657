package cron

import (
	"fmt"
	"log"
	"os"

	"github.com/campusmark/advisor-review-api/db"
	"github.com/campusmark/advisor-review-api/models"
	"github.com/campusmark/advisor-review-api/ratelimit"
	"github.com/campusmark/advisor-review-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for background
// maintenance: reaping expired rate-limit windows and the daily moderation
// digest.
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()

	// Stale rate-limit entries only matter for memory, not correctness, so
	// a 10 minute sweep is plenty.
	_, err := c.AddFunc("*/10 * * * *", reapRateLimits)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	_, err = c.AddFunc("0 8 * * *", sendModerationDigest)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
}

// reapRateLimits drops expired rate-limit windows so the counter map does
// not grow without bound.
func reapRateLimits() {
	removed := ratelimit.Default.Reap()
	if removed > 0 {
		log.Printf("Reaped %d expired rate-limit entries", removed)
	}
}

// sendModerationDigest mails moderators a summary of the queue every morning.
func sendModerationDigest() {
	recipient := os.Getenv("MODERATION_DIGEST_EMAIL")
	if recipient == "" {
		return
	}

	var pendingReviews, flaggedReviews, pendingReports int64
	if err := db.DB.Model(&models.Review{}).Where("status = ?", models.StatusPending).Count(&pendingReviews).Error; err != nil {
		log.Printf("Error counting pending reviews for digest: %v", err)
		return
	}
	db.DB.Model(&models.Review{}).Where("status = ?", models.StatusFlagged).Count(&flaggedReviews)
	db.DB.Model(&models.ReviewReport{}).Where("status = ?", models.ReportPending).Count(&pendingReports)

	if pendingReviews == 0 && flaggedReviews == 0 && pendingReports == 0 {
		return
	}

	subject := "Moderation queue digest"
	body := fmt.Sprintf(`
		<p>Good morning,</p>
		<p>The moderation queue currently holds:</p>
		<ul>
			<li><strong>Pending reviews:</strong> %d</li>
			<li><strong>Flagged reviews:</strong> %d</li>
			<li><strong>Pending reports:</strong> %d</li>
		</ul>
		<p>Flagged reviews carry an automated signal and should be looked at first.</p>
	`, pendingReviews, flaggedReviews, pendingReports)

	if err := utils.SendEmail(recipient, subject, body); err != nil {
		log.Printf("Failed to send moderation digest: %v", err)
		return
	}
	log.Printf("Sent moderation digest to %s", recipient)
}
