package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRedactsEmail(t *testing.T) {
	out := Sanitize("Reach him at john.doe@university.edu for details.", AnalyzeOptions{})

	assert.NotContains(t, out, "john.doe@university.edu")
	assert.Contains(t, out, "[email removed]")
}

func TestSanitizeRedactsPhone(t *testing.T) {
	tests := []string{
		"Call me at 555-123-4567 anytime.",
		"Call me at (555) 123-4567 anytime.",
		"Call me at +1 555 123 4567 anytime.",
	}
	for _, text := range tests {
		out := Sanitize(text, AnalyzeOptions{})
		assert.Contains(t, out, "[phone removed]", "input: %s", text)
		assert.NotContains(t, out, "123-4567")
	}
}

func TestSanitizeRedactsAllURLsByDefault(t *testing.T) {
	out := Sanitize("See https://ratemyadvisor.example.com/page for more.", AnalyzeOptions{})

	assert.NotContains(t, out, "ratemyadvisor.example.com")
	assert.Contains(t, out, "[link removed]")
}

func TestSanitizeKeepsAllowListedURLs(t *testing.T) {
	text := "Her page is https://advising.stanford.edu/profile but avoid http://spam.example.com/x."
	out := Sanitize(text, AnalyzeOptions{AllowSafeURLs: true})

	assert.Contains(t, out, "https://advising.stanford.edu/profile")
	assert.NotContains(t, out, "spam.example.com")
	assert.Contains(t, out, "[link removed]")
}

func TestSanitizeRedactsThreatPhrases(t *testing.T) {
	out := Sanitize("Listen, I will make you pay for this grade.", AnalyzeOptions{})

	assert.NotContains(t, out, "make you pay")
	assert.Contains(t, out, "[removed]")
}

func TestSanitizeLeavesCleanTextUntouched(t *testing.T) {
	texts := []string{
		"My advisor was patient and explained the degree requirements clearly.",
		"Meetings started on time and notes always followed the next day.",
		"She pushed back on my course plan but was right in the end.",
	}
	for _, text := range texts {
		assert.Equal(t, text, Sanitize(text, AnalyzeOptions{}))
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	texts := []string{
		"Reach him at john.doe@university.edu or 555-123-4567.",
		"See https://spam.example.com and watch your back, kid.",
		"Totally clean review text with nothing to redact at all.",
		"Email a@b.edu, phone (555) 123-4567, link www.example.com, and I will hurt you.",
	}
	for _, text := range texts {
		once := Sanitize(text, AnalyzeOptions{})
		twice := Sanitize(once, AnalyzeOptions{})
		assert.Equal(t, once, twice, "input: %s", text)
	}
}
