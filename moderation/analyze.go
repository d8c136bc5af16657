package moderation

import (
	"strings"
)

// Flag is a categorical signal raised on a single submission. The set is
// closed so new flag kinds get exhaustiveness checking instead of being
// threaded through the pipeline as free-form strings.
type Flag string

const (
	FlagContactInfo     Flag = "contact_info"
	FlagProfanity       Flag = "profanity"
	FlagMedicalInfo     Flag = "medical_info"
	FlagCrimeAccusation Flag = "crime_accusation"
	FlagThreats         Flag = "threats"
)

// Description renders the moderator-facing text for a flag.
func (f Flag) Description() string {
	switch f {
	case FlagContactInfo:
		return "contains contact information"
	case FlagProfanity:
		return "contains profanity"
	case FlagMedicalInfo:
		return "mentions medical information"
	case FlagCrimeAccusation:
		return "contains a crime accusation"
	case FlagThreats:
		return "contains threatening language"
	default:
		return string(f)
	}
}

type AnalyzeOptions struct {
	// AllowSafeURLs keeps links to allow-listed domains (.edu, scholar
	// profiles) instead of redacting every URL.
	AllowSafeURLs bool
}

type ContentAnalysis struct {
	Flags         []Flag `json:"flags"`
	SanitizedText string `json:"sanitized_text"`
	HasThreats    bool   `json:"has_threats"`
}

// Analyze raises content flags independently of the spam score and produces
// the sanitized text that is actually persisted.
func Analyze(text string, opts AnalyzeOptions) ContentAnalysis {
	lower := strings.ToLower(text)

	var flags []Flag
	if emailPattern.MatchString(text) || phonePattern.MatchString(text) {
		flags = append(flags, FlagContactInfo)
	}
	for _, w := range strings.Fields(lower) {
		if profanityWords[strings.Trim(w, ".,!?;:\"'()[]")] {
			flags = append(flags, FlagProfanity)
			break
		}
	}
	if containsAny(lower, medicalKeywords) {
		flags = append(flags, FlagMedicalInfo)
	}
	if containsAny(lower, crimeKeywords) {
		flags = append(flags, FlagCrimeAccusation)
	}

	hasThreats := ContainsThreat(text)
	if hasThreats {
		flags = append(flags, FlagThreats)
	}

	return ContentAnalysis{
		Flags:         flags,
		SanitizedText: Sanitize(text, opts),
		HasThreats:    hasThreats,
	}
}

// NeedsReview reports whether a submission must open in the flagged queue.
// Any content flag, or a spam score above the flag threshold, routes the
// review to a human; this is a lower bar than outright spam rejection.
func NeedsReview(analysis ContentAnalysis, spam SpamDetectionResult) bool {
	return len(analysis.Flags) > 0 || spam.Score > FlagThreshold
}
