package utils

import (
	"github.com/google/uuid"
)

// GenerateVerificationToken returns an unguessable token for email
// verification links.
func GenerateVerificationToken() string {
	return uuid.NewString()
}
