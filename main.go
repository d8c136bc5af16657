package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/campusmark/advisor-review-api/cron"

	"github.com/campusmark/advisor-review-api/db"

	"github.com/campusmark/advisor-review-api/redis"

	"github.com/campusmark/advisor-review-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Advisor Review API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupReviewRoutes(app)
	routes.SetupAdvisorRoutes(app)
	routes.SetupAdminRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
