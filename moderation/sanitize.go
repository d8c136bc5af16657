package moderation

import (
	"strings"
)

const (
	emailPlaceholder  = "[email removed]"
	phonePlaceholder  = "[phone removed]"
	linkPlaceholder   = "[link removed]"
	threatPlaceholder = "[removed]"
)

// Sanitize redacts contact info, URLs, and threat phrases, in that order.
// Matches are replaced with bracketed placeholders rather than deleted, so
// the review stays readable and moderators can see something was removed.
// Sanitize is idempotent: running it on its own output is a no-op.
func Sanitize(text string, opts AnalyzeOptions) string {
	out := emailPattern.ReplaceAllString(text, emailPlaceholder)
	out = phonePattern.ReplaceAllString(out, phonePlaceholder)

	out = urlPattern.ReplaceAllStringFunc(out, func(match string) string {
		if opts.AllowSafeURLs && isAllowedURL(match) {
			return match
		}
		return linkPlaceholder
	})

	for _, pattern := range threatPatterns {
		out = pattern.ReplaceAllString(out, threatPlaceholder)
	}
	return out
}

func isAllowedURL(rawURL string) bool {
	host := strings.ToLower(rawURL)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "www.")
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}

	for _, domain := range allowedURLDomains {
		if strings.HasSuffix(host, domain) || host == strings.TrimPrefix(domain, ".") {
			return true
		}
	}
	return false
}
