package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint derives a stable pseudo-identity from connection metadata for
// requests without an authenticated user. It catches abusers who rotate IPs
// through proxies but keep the same browser; it is a weak secondary signal
// only — two users behind one proxy with identical headers collide, and
// switching browsers changes it. Never treat it as proof of identity.
//
// Deterministic: the same inputs always produce the same 16-character value,
// which is what makes it usable as a rate-limit bucket key.
func Fingerprint(ip, userAgent, acceptLanguage string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent + "|" + acceptLanguage))
	return hex.EncodeToString(sum[:])[:16]
}
