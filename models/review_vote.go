package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ReviewVote records one "helpful" vote. VoterKey is either "user:<id>" or
// "ip:<addr>"; the composite unique index is what actually enforces one vote
// per identity — two concurrent votes both pass any application-level
// existence check, so the constraint has to live in the database.
type ReviewVote struct {
	gorm.Model
	ReviewID  uint   `json:"review_id" gorm:"not null;uniqueIndex:idx_review_voter"`
	VoterKey  string `json:"voter_key" gorm:"size:80;not null;uniqueIndex:idx_review_voter"`
	UserID    *uint  `json:"user_id"`
	IPAddress string `json:"-" gorm:"size:64"`
}

// VoterKeyForUser builds the identity key for an authenticated voter.
func VoterKeyForUser(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// VoterKeyForIP builds the identity key for an anonymous voter.
func VoterKeyForIP(ip string) string {
	return "ip:" + ip
}
