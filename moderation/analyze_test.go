package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCleanText(t *testing.T) {
	analysis := Analyze(cleanReview, AnalyzeOptions{})

	assert.Empty(t, analysis.Flags)
	assert.False(t, analysis.HasThreats)
	assert.Equal(t, cleanReview, analysis.SanitizedText)
}

func TestAnalyzeFlagsContactInfo(t *testing.T) {
	analysis := Analyze("Just email her directly: jane@university.edu.", AnalyzeOptions{})

	assert.Contains(t, analysis.Flags, FlagContactInfo)
	assert.Contains(t, analysis.SanitizedText, "[email removed]")
}

func TestAnalyzeFlagsProfanity(t *testing.T) {
	analysis := Analyze("He was a shit advisor from the first meeting on.", AnalyzeOptions{})

	assert.Contains(t, analysis.Flags, FlagProfanity)
}

func TestAnalyzeFlagsMedicalInfo(t *testing.T) {
	analysis := Analyze("She told other students about my depression diagnosis.", AnalyzeOptions{})

	assert.Contains(t, analysis.Flags, FlagMedicalInfo)
}

func TestAnalyzeFlagsCrimeAccusation(t *testing.T) {
	analysis := Analyze("I am sure he stole funding from the lab budget.", AnalyzeOptions{})

	assert.Contains(t, analysis.Flags, FlagCrimeAccusation)
}

func TestAnalyzeFlagsThreats(t *testing.T) {
	analysis := Analyze("Keep this up and I will hurt you, professor.", AnalyzeOptions{})

	assert.Contains(t, analysis.Flags, FlagThreats)
	assert.True(t, analysis.HasThreats)
	assert.Contains(t, analysis.SanitizedText, "[removed]")
}

func TestFlagDescriptionsCoverAllKinds(t *testing.T) {
	flags := []Flag{FlagContactInfo, FlagProfanity, FlagMedicalInfo, FlagCrimeAccusation, FlagThreats}
	for _, f := range flags {
		assert.NotEqual(t, string(f), f.Description(), "flag %s needs a human description", f)
	}
}

func TestNeedsReview(t *testing.T) {
	clean := Analyze(cleanReview, AnalyzeOptions{})
	assert.False(t, NeedsReview(clean, DetectSpam(cleanReview)))

	// Any flag routes to a human even when the spam score is low.
	flagged := Analyze("Just email her directly: jane@university.edu, she is otherwise "+
		"responsive and handled my course planning questions well.", AnalyzeOptions{})
	assert.True(t, NeedsReview(flagged, SpamDetectionResult{Score: 0}))

	// A score at the threshold stays pending; above it gets flagged.
	assert.False(t, NeedsReview(clean, SpamDetectionResult{Score: FlagThreshold}))
	assert.True(t, NeedsReview(clean, SpamDetectionResult{Score: FlagThreshold + 0.01}))
}
