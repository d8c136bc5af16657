package moderation

import (
	"os"
	"strconv"
)

// Product policy thresholds. The defaults mirror long-standing platform
// policy and are deliberately configurable rather than derived.
var (
	// SpamRejectThreshold is the aggregate score at or above which a
	// submission is refused outright with no record created.
	SpamRejectThreshold = envFloat("SPAM_REJECT_THRESHOLD", 0.5)

	// FlagThreshold is the score above which a submission opens in the
	// flagged queue for human review instead of pending.
	FlagThreshold = envFloat("SPAM_FLAG_THRESHOLD", 0.3)

	// AutoFlagReportCount is the number of pending reports that
	// automatically flags a published review.
	AutoFlagReportCount = envInt("AUTO_FLAG_REPORT_COUNT", 3)
)

func envFloat(name string, fallback float64) float64 {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
