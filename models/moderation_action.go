package models

import (
	"time"
)

// Moderator actions recorded by the audit trail.
const (
	ActionApprove          = "approve"
	ActionReject           = "reject"
	ActionDismissReports   = "dismiss_reports"
	ActionRemoveForReports = "remove_for_reports"
)

// ModerationAction is the audit record written alongside every moderator
// decision, including ones that leave the review itself untouched
// (dismissing reports still records who dismissed them and when).
type ModerationAction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ModeratorID uint      `json:"moderator_id" gorm:"not null;index"`
	ReviewID    uint      `json:"review_id" gorm:"not null;index"`
	Action      string    `json:"action" gorm:"size:32;index"`
	Reason      string    `json:"reason" gorm:"type:text"`
	IPAddress   string    `json:"ip_address" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
}
