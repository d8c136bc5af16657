package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmark/advisor-review-api/controllers"
	"github.com/campusmark/advisor-review-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
}
