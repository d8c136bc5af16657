package models

import (
	"time"

	"gorm.io/gorm"
)

// EmailVerification links an anonymous review to a .edu address the submitter
// offered as proof of enrollment. The token is mirrored in Redis with a TTL;
// this row stays behind as the durable audit record.
type EmailVerification struct {
	gorm.Model
	ReviewID   uint       `json:"review_id" gorm:"not null;index"`
	Email      string     `json:"email" gorm:"size:255;not null"`
	Token      string     `json:"-" gorm:"size:64;not null;uniqueIndex"`
	Verified   bool       `json:"verified" gorm:"default:false"`
	VerifiedAt *time.Time `json:"verified_at"`
}
