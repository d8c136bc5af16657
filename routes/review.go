package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmark/advisor-review-api/controllers"
	"github.com/campusmark/advisor-review-api/middleware"
)

// SetupReviewRoutes configures the public review intake routes. Submission,
// reporting and voting accept both anonymous and authenticated traffic;
// OptionalAuth attaches identity when a token is present.
func SetupReviewRoutes(app *fiber.App) {
	reviews := app.Group("/reviews", middleware.OptionalAuth())

	reviews.Post("/", controllers.SubmitReview)
	reviews.Post("/:id/report", controllers.ReportReview)
	reviews.Post("/:id/vote", controllers.VoteHelpful)
	reviews.Get("/verify/:token", controllers.VerifyEmail)
}
