package utils

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON error body for responses that carry more than a
// bare message.
type ErrorResponse struct {
	Error   string    `json:"error"`
	ResetAt time.Time `json:"reset_at"`
}

// RateLimited writes a 429 with the window reset time so clients know when
// to retry. Hitting a limit is expected behavior, not abuse to log.
func RateLimited(c *fiber.Ctx, resetAt time.Time) error {
	retryAfter := int(time.Until(resetAt).Seconds()) + 1
	if retryAfter < 1 {
		retryAfter = 1
	}
	c.Set("Retry-After", strconv.Itoa(retryAfter))
	return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
		Error:   "Too many requests",
		ResetAt: resetAt,
	})
}
