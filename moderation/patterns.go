package moderation

import (
	"regexp"
	"strings"
)

// Compiled once at package init and reused for every call, so they are safe
// for concurrent use.
var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Matches common phone formats such as +1-555-123-4567, (555) 123-4567
	// and 555.123.4567 without swallowing short numbers like "100".
	phonePattern = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+)`)

	// Shouting and number-dump runs typical of low-effort spam.
	capsRunPattern  = regexp.MustCompile(`[A-Z]{20,}`)
	digitRunPattern = regexp.MustCompile(`\d{10,}`)
)

// threatKeywords force a spam verdict regardless of the additive score and
// are redacted from persisted text. Matching is case-insensitive substring.
var threatKeywords = []string{
	"kill you",
	"hurt you",
	"i know where you live",
	"watch your back",
	"you will regret",
	"make you pay",
	"come after you",
	"beat you up",
	"destroy your life",
	"end your career",
}

var threatPatterns = compileKeywordPatterns(threatKeywords)

func compileKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)))
	}
	return patterns
}

var profanityWords = map[string]bool{
	"ass": true, "asshole": true, "bastard": true, "bitch": true,
	"bullshit": true, "crap": true, "cunt": true, "damn": true,
	"dick": true, "douchebag": true, "fuck": true, "fucking": true,
	"jackass": true, "motherfucker": true, "piss": true, "prick": true,
	"shit": true, "shitty": true, "slut": true, "whore": true,
}

// Keywords suggesting the review discloses someone's health information.
var medicalKeywords = []string{
	"depression", "anxiety disorder", "adhd", "bipolar", "schizophrenia",
	"medication", "mental illness", "diagnosis", "suicidal", "rehab",
	"addiction", "disability",
}

// Keywords suggesting the review accuses someone of a crime.
var crimeKeywords = []string{
	"stole", "theft", "fraud", "embezzle", "assault", "harassed",
	"sexual harassment", "abuse", "criminal", "arrested", "bribe",
	"plagiarized",
}

// Domains exempt from URL redaction when the caller allows safe URLs.
var allowedURLDomains = []string{
	".edu",
	"scholar.google.com",
	"orcid.org",
	"linkedin.com",
}

// ContainsThreat reports whether text contains any threat keyword.
func ContainsThreat(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range threatKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// hasCharFlood returns true if text contains 6 or more consecutive identical
// characters. RE2 has no backreferences, so this is a linear scan.
func hasCharFlood(text string) bool {
	const threshold = 6

	count := 1
	prev := rune(-1)
	for _, r := range text {
		if r == prev {
			count++
			if count >= threshold {
				return true
			}
		} else {
			count = 1
			prev = r
		}
	}
	return false
}

// hasSpamPattern reports whether text matches any of the mechanical spam
// shapes: long identical-character runs, ALL-CAPS runs of 20+ letters, or
// digit runs of 10+.
func hasSpamPattern(text string) bool {
	return hasCharFlood(text) || capsRunPattern.MatchString(text) || digitRunPattern.MatchString(text)
}
