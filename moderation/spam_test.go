package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const cleanReview = "My advisor consistently gave accurate degree planning guidance, " +
	"responded to emails within a day, and advocated for me when a required " +
	"course filled up. Scheduling meetings was always straightforward."

func TestDetectSpamCleanReview(t *testing.T) {
	result := DetectSpam(cleanReview)

	assert.False(t, result.IsSpam)
	assert.Less(t, result.Score, FlagThreshold)
	assert.Empty(t, result.Reasons)
}

func TestDetectSpamRepeatedText(t *testing.T) {
	text := strings.Repeat("great advisor ", 30)
	result := DetectSpam(text)

	// Heavy repetition plus a tiny vocabulary clears the reject threshold.
	assert.True(t, result.IsSpam)
	assert.GreaterOrEqual(t, result.Score, SpamRejectThreshold)
	assert.Greater(t, result.Breakdown.RepetitionRatio, 0.5)
	assert.Less(t, result.Breakdown.UniqueWords, 10)
}

func TestDetectSpamThreatOverridesEverything(t *testing.T) {
	// A long, otherwise-clean review must not dilute the threat signal.
	text := cleanReview + " If you disagree with me I will come after you."
	result := DetectSpam(text)

	assert.True(t, result.IsSpam)
	assert.True(t, result.Breakdown.HasThreat)
	assert.Contains(t, result.Reasons, "threatening language")
}

func TestDetectSpamLinkFarm(t *testing.T) {
	text := cleanReview +
		" http://a.example.com http://b.example.com http://c.example.com http://d.example.com"
	result := DetectSpam(text)

	assert.Equal(t, 4, result.Breakdown.LinkCount)
	assert.Contains(t, result.Reasons, "too many links")
}

func TestDetectSpamThreeLinksIsNotFlagged(t *testing.T) {
	text := cleanReview + " http://a.example.com http://b.example.com http://c.example.com"
	result := DetectSpam(text)

	assert.NotContains(t, result.Reasons, "too many links")
}

func TestDetectSpamCharacterPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"char flood", cleanReview + " aaaaaaaaaa"},
		{"caps run", cleanReview + " ABSOLUTELYTERRIBLEADVISOR"},
		{"digit run", cleanReview + " 12345678901234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectSpam(tt.text)
			assert.True(t, result.Breakdown.PatternMatch)
			assert.Contains(t, result.Reasons, "suspicious character patterns")
		})
	}
}

func TestDetectSpamProfanityDensity(t *testing.T) {
	result := DetectSpam("shit advisor damn awful crap meetings")

	assert.Greater(t, result.Breakdown.ProfanityRatio, 0.3)
	assert.Contains(t, result.Reasons, "high profanity density")
}

func TestDetectSpamScoreCappedAtOne(t *testing.T) {
	text := strings.Repeat("fuck ", 40) + "kill you " +
		"http://a.com http://b.com http://c.com http://d.com AAAAAAAAAAAAAAAAAAAAAAAA"
	result := DetectSpam(text)

	assert.Equal(t, 1.0, result.Score)
	assert.True(t, result.IsSpam)
}

func TestDetectSpamFewUniqueWordsAloneIsNotSpam(t *testing.T) {
	// Short vocabulary without repetition scores the signal but stays under
	// the reject threshold; it only contributes to flagging.
	text := "My advisor answered each question patiently during registration week."
	result := DetectSpam(text)

	assert.Less(t, result.Breakdown.UniqueWords, 10)
	assert.Zero(t, result.Breakdown.RepetitionRatio)
	assert.InDelta(t, 0.2, result.Score, 1e-9)
	assert.False(t, result.IsSpam)
	assert.Equal(t, []string{"too few unique words"}, result.Reasons)
}

func TestDetectSpamEmptyText(t *testing.T) {
	result := DetectSpam("")

	assert.Zero(t, result.Breakdown.RepetitionRatio)
	assert.Less(t, result.Breakdown.UniqueWords, 10)
}
