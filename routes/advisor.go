package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmark/advisor-review-api/controllers"
	"github.com/campusmark/advisor-review-api/middleware"
)

// SetupAdvisorRoutes configures the public advisor read routes.
func SetupAdvisorRoutes(app *fiber.App) {
	advisors := app.Group("/advisors", middleware.ReadLimiter())

	advisors.Get("/:id/ratings", controllers.GetAdvisorRatings)
	advisors.Get("/:id/reviews", controllers.GetAdvisorReviews)
}
