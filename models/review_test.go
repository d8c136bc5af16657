package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewCanTransition(t *testing.T) {
	tests := []struct {
		from    ReviewStatus
		to      ReviewStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusFlagged, StatusApproved, true},
		{StatusFlagged, StatusRejected, true},
		{StatusApproved, StatusRejected, true}, // report-driven removal
		{StatusApproved, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, StatusFlagged, false}, // flagging is automatic, never a moderator action
	}

	for _, tt := range tests {
		review := Review{Status: tt.from}
		assert.Equal(t, tt.allowed, review.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestReviewReportable(t *testing.T) {
	tests := []struct {
		status     ReviewStatus
		reportable bool
	}{
		{StatusPending, true},
		{StatusApproved, true},
		{StatusFlagged, false}, // already queued for a moderator
		{StatusRejected, false},
	}
	for _, tt := range tests {
		review := Review{Status: tt.status}
		assert.Equal(t, tt.reportable, review.Reportable(), "status %s", tt.status)
	}
}

func TestVoterKeys(t *testing.T) {
	assert.Equal(t, "user:42", VoterKeyForUser(42))
	assert.Equal(t, "ip:203.0.113.9", VoterKeyForIP("203.0.113.9"))
	assert.NotEqual(t, VoterKeyForUser(42), VoterKeyForIP("42"))
}
