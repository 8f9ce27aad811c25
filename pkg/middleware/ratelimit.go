package middleware

import (
	"strconv"

	"campuschat/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateLimit gates requests through a shared sliding-window limiter keyed by
// client IP and reports the window state in response headers.
func RateLimit(limiter *ratelimit.Limiter, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info := limiter.Check(c.IP())

		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))

		if !info.Allowed {
			retryAfter := int(info.RetryAfter.Seconds()) + 1
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			logger.Warn("Rate limit exceeded", zap.String("ip", c.IP()))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please slow down",
			})
		}

		return c.Next()
	}
}
