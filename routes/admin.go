package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmark/advisor-review-api/controllers/admin"
	"github.com/campusmark/advisor-review-api/middleware"
)

// SetupAdminRoutes configures the moderation routes. Every route requires a
// moderator or admin token.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected(), middleware.RequireModerator())

	adminGroup.Get("/reviews", admin.ListReviews)
	adminGroup.Get("/reports", admin.ListReports)
	adminGroup.Post("/reviews/:id/approve", admin.ApproveReview)
	adminGroup.Post("/reviews/:id/reject", admin.RejectReview)
	adminGroup.Post("/reviews/:id/dismiss-reports", admin.DismissReports)
	adminGroup.Post("/reviews/:id/remove", admin.RemoveForReports)
}
