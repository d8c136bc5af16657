package models

import (
	"time"

	"gorm.io/gorm"
)

type ReportReason string

const (
	ReasonDoxxing    ReportReason = "doxxing"
	ReasonHateSpeech ReportReason = "hate_speech"
	ReasonOffTopic   ReportReason = "off_topic"
	ReasonSpam       ReportReason = "spam"
	ReasonOther      ReportReason = "other"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportResolved ReportStatus = "resolved"
)

type ReviewReport struct {
	gorm.Model
	ReviewID    uint         `json:"review_id" gorm:"not null;index"`
	Review      Review       `json:"review,omitempty" gorm:"foreignKey:ReviewID"`
	ReporterID  *uint        `json:"reporter_id"` // nil for anonymous reports
	ReporterIP  string       `json:"-" gorm:"size:64"`
	Fingerprint string       `json:"-" gorm:"size:16"`
	Reason      ReportReason `json:"reason" gorm:"size:20;not null"`
	Details     string       `json:"details" gorm:"size:500"`
	Status      ReportStatus `json:"status" gorm:"size:16;not null;default:pending;index"`
	ResolvedBy  *uint        `json:"resolved_by"`
	ResolvedAt  *time.Time   `json:"resolved_at"`
	Resolution  string       `json:"resolution" gorm:"size:32"` // "dismissed" or "removed"
}
