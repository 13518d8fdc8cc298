package middleware

import (
	"github.com/labstack/echo/v4"

	"laptek/internal/infrastructure/ratelimit"
	"laptek/pkg/errors"
	"laptek/pkg/logger"
	"laptek/pkg/response"
)

// RateLimit applies the limiter's policy for action per caller. Callers are
// keyed by uid when authenticated, otherwise by client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get(ContextUID).(string)
			if !ok || caller == "" {
				caller = "ip:" + c.RealIP()
			}

			allowed, wait := limiter.Allow(caller, action)
			if !allowed {
				logger.Warn("RATE LIMIT: %s blocked on %s (retry in %v)", caller, action, wait)
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded", wait))
			}

			return next(c)
		}
	}
}
