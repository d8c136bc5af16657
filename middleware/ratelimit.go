package middleware

import (
	"time"

	"github.com/campusmark/advisor-review-api/ratelimit"
	"github.com/campusmark/advisor-review-api/utils"
	"github.com/gofiber/fiber/v2"
)

// ReadLimiter caps general read endpoints at 100 requests per minute per IP.
// Write paths carry their own tighter per-IP and per-fingerprint budgets at
// the call sites.
func ReadLimiter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := ratelimit.Default.Check("read:ip:"+utils.ClientIP(c), 100, time.Minute)
		if !result.Allowed {
			return utils.RateLimited(c, result.ResetAt)
		}
		return c.Next()
	}
}
