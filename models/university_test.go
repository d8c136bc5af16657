package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversityMatchesEmail(t *testing.T) {
	stanford := University{Domain: "stanford.edu"}

	tests := []struct {
		email   string
		matches bool
	}{
		{"student@stanford.edu", true},
		{"student@cs.stanford.edu", true}, // department subdomains count
		{"Student@STANFORD.EDU", true},
		{"student@otherschool.edu", false},
		{"student@notstanford.edu", false}, // suffix must be a full label
		{"student@stanford.edu.evil.com", false},
		{"not-an-email", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.matches, stanford.MatchesEmail(tt.email), "email: %q", tt.email)
	}

	empty := University{}
	assert.False(t, empty.MatchesEmail("student@stanford.edu"))
}
