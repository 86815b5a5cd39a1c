package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-market/internal/api/shared/errors"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/metrics"
	"github.com/feral-file/ff-market/internal/ratelimit"
)

// RateLimit rejects callers that exceed their budget with 429.
// Authenticated callers are keyed by subject, everyone else by client IP.
// Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if subject := c.GetString(string(AUTH_SUBJECT_KEY)); subject != "" {
			key = "sub:" + subject
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			if !errors.Is(err, ratelimit.ErrClosed) {
				logger.WarnCtx(c.Request.Context(), "Rate limiter failed, allowing request", zap.String("key", key), zap.Error(err))
			}
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if decision.Allowed {
			c.Next()
			return
		}

		backend := "local"
		if decision.Distributed {
			backend = "redis"
		}
		metrics.RateLimitedRequests.WithLabelValues(c.FullPath(), backend).Inc()

		retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.Response{
			Error: apierrors.NewRateLimitedError("Too many requests"),
		})
	}
}
