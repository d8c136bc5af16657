package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientIP returns the requester's address, preferring the first entry of
// X-Forwarded-For when the service sits behind a proxy.
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.Index(forwarded, ","); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	return c.IP()
}
