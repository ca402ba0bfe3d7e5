package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/ratelimit"
)

// RateLimit limits requests per client IP within scope. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, scope string, timeProvider coreport.TimeProvider, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key, timeProvider.Now())
		if err != nil {
			logger.Warn("Rate limiter unavailable", map[string]any{
				"scope":      scope,
				"error":      err.Error(),
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			abortWithError(c, errs.ErrRateLimited)
			return
		}
		c.Next()
	}
}
