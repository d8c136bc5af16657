package moderation

import (
	"strings"
)

// SpamBreakdown carries the individual signals behind a spam score so
// moderators can see why a submission was refused. Never persisted.
type SpamBreakdown struct {
	RepetitionRatio float64 `json:"repetition_ratio"`
	LinkCount       int     `json:"link_count"`
	ProfanityRatio  float64 `json:"profanity_ratio"`
	PatternMatch    bool    `json:"pattern_match"`
	HasThreat       bool    `json:"has_threat"`
	UniqueWords     int     `json:"unique_words"`
}

type SpamDetectionResult struct {
	Score     float64       `json:"score"`
	IsSpam    bool          `json:"is_spam"`
	Reasons   []string      `json:"reasons"`
	Breakdown SpamBreakdown `json:"breakdown"`
}

// DetectSpam scores text with several independent additive signals, capped
// at 1.0. A threat keyword is terminal: it forces IsSpam regardless of the
// additive score, so threats cannot be diluted by otherwise-clean text.
func DetectSpam(text string) SpamDetectionResult {
	words := strings.Fields(strings.ToLower(text))
	total := len(words)

	uniqueSet := make(map[string]bool, total)
	profanityCount := 0
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"'()[]")
		uniqueSet[w] = true
		if profanityWords[w] {
			profanityCount++
		}
	}

	var result SpamDetectionResult
	result.Breakdown.UniqueWords = len(uniqueSet)

	if total > 0 {
		result.Breakdown.RepetitionRatio = 1 - float64(len(uniqueSet))/float64(total)
		result.Breakdown.ProfanityRatio = float64(profanityCount) / float64(total)
	}
	result.Breakdown.LinkCount = len(urlPattern.FindAllString(text, -1))
	result.Breakdown.PatternMatch = hasSpamPattern(text)
	result.Breakdown.HasThreat = ContainsThreat(text)

	score := 0.0
	if result.Breakdown.RepetitionRatio > 0.5 {
		score += 0.3
		result.Reasons = append(result.Reasons, "excessive repeated text")
	}
	if result.Breakdown.LinkCount > 3 {
		score += 0.2
		result.Reasons = append(result.Reasons, "too many links")
	}
	if result.Breakdown.ProfanityRatio > 0.3 {
		score += 0.3
		result.Reasons = append(result.Reasons, "high profanity density")
	}
	if result.Breakdown.PatternMatch {
		score += 0.2
		result.Reasons = append(result.Reasons, "suspicious character patterns")
	}
	if result.Breakdown.HasThreat {
		score += 1.0
		result.Reasons = append(result.Reasons, "threatening language")
	}
	if result.Breakdown.UniqueWords < 10 {
		score += 0.2
		result.Reasons = append(result.Reasons, "too few unique words")
	}

	if score > 1.0 {
		score = 1.0
	}
	result.Score = score
	result.IsSpam = score >= SpamRejectThreshold || result.Breakdown.HasThreat
	return result
}
