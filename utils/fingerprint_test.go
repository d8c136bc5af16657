package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint("203.0.113.9", "Mozilla/5.0", "en-US")
	b := Fingerprint("203.0.113.9", "Mozilla/5.0", "en-US")
	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestFingerprintChangesWithAnyInput(t *testing.T) {
	base := Fingerprint("203.0.113.9", "Mozilla/5.0", "en-US")

	assert.NotEqual(t, base, Fingerprint("203.0.113.10", "Mozilla/5.0", "en-US"))
	assert.NotEqual(t, base, Fingerprint("203.0.113.9", "curl/8.0", "en-US"))
	assert.NotEqual(t, base, Fingerprint("203.0.113.9", "Mozilla/5.0", "de-DE"))
}
