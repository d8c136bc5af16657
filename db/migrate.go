package db

import (
	"fmt"
	"log"

	"github.com/campusmark/advisor-review-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.University{},
		&models.Department{},
		&models.Advisor{},
		&models.Review{},
		&models.CategoryRating{},
		&models.ReviewVote{},
		&models.ReviewReport{},
		&models.ModerationAction{},
		&models.EmailVerification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
