package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidTransition is returned when a moderation action is attempted on
// a review whose current status does not permit it.
var ErrInvalidTransition = errors.New("invalid status transition")

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
	StatusFlagged  ReviewStatus = "flagged"
)

type MeetingType string

const (
	MeetingInPerson MeetingType = "in_person"
	MeetingVirtual  MeetingType = "virtual"
	MeetingEmail    MeetingType = "email"
	MeetingMixed    MeetingType = "mixed"
)

type Timeframe string

const (
	TimeframeLast6Months Timeframe = "last_6_months"
	Timeframe6To12Months Timeframe = "6_12_months"
	Timeframe1To2Years   Timeframe = "1_2_years"
	Timeframe2PlusYears  Timeframe = "2_plus_years"
)

type Review struct {
	gorm.Model
	AdvisorID    uint             `json:"advisor_id" gorm:"not null;index"`
	Advisor      Advisor          `json:"advisor,omitempty" gorm:"foreignKey:AdvisorID"`
	AuthorID     *uint            `json:"author_id"` // nil for anonymous submissions
	Author       *User            `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Text         string           `json:"text" gorm:"type:text;not null"`
	MeetingType  MeetingType      `json:"meeting_type" gorm:"size:20;not null"`
	Timeframe    Timeframe        `json:"timeframe" gorm:"size:20;not null"`
	Tags         string           `json:"tags"` // comma-joined, at most 5 entries
	Status       ReviewStatus     `json:"status" gorm:"size:16;not null;default:pending;index"`
	IsVerified   bool             `json:"is_verified" gorm:"default:false"`
	HelpfulCount int              `json:"helpful_count" gorm:"default:0"`
	ReviewedAt   *time.Time       `json:"reviewed_at"`
	ReviewedBy   *uint            `json:"reviewed_by"`
	SubmitterIP  string           `json:"-" gorm:"size:64"`
	Fingerprint  string           `json:"-" gorm:"size:16"`
	Ratings      []CategoryRating `json:"ratings,omitempty" gorm:"foreignKey:ReviewID"`
	Reports      []ReviewReport   `json:"reports,omitempty" gorm:"foreignKey:ReviewID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// Reportable reports whether the review accepts new abuse reports. Flagged
// reviews are already in the moderation queue and rejected ones are already
// down, so neither takes further reports.
func (r *Review) Reportable() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// CanTransition reports whether a moderator may move the review to newStatus.
// Rejected is terminal. Approved reviews can still be rejected, which is how
// report-driven removal takes down a published review.
func (r *Review) CanTransition(newStatus ReviewStatus) bool {
	switch r.Status {
	case StatusPending, StatusFlagged:
		return newStatus == StatusApproved || newStatus == StatusRejected
	case StatusApproved:
		return newStatus == StatusRejected
	default:
		return false
	}
}

// UpdateStatus performs a moderator transition. The UPDATE is conditioned on
// the status the caller loaded, so of two concurrent moderators acting on the
// same review exactly one wins and the loser gets an error instead of
// silently overwriting.
func (r *Review) UpdateStatus(tx *gorm.DB, newStatus ReviewStatus, moderatorID uint) error {
	if !r.CanTransition(newStatus) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, r.Status, newStatus)
	}

	now := time.Now()
	res := tx.Model(&Review{}).
		Where("id = ? AND status = ?", r.ID, r.Status).
		Updates(map[string]interface{}{
			"status":      newStatus,
			"reviewed_at": now,
			"reviewed_by": moderatorID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Someone else transitioned the review after we loaded it.
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, r.Status, newStatus)
	}

	r.Status = newStatus
	r.ReviewedAt = &now
	r.ReviewedBy = &moderatorID
	return nil
}
