package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-market/internal/api/middleware"
	"github.com/feral-file/ff-market/internal/logger"
	"github.com/feral-file/ff-market/internal/mocks"
	"github.com/feral-file/ff-market/internal/ratelimit"
)

func setupRateLimitRouter(t *testing.T, limiter ratelimit.Limiter, subject string) *gin.Engine {
	t.Helper()
	_ = logger.Initialize(logger.Config{Debug: false})
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if subject != "" {
		router.Use(func(c *gin.Context) {
			c.Set(string(middleware.AUTH_SUBJECT_KEY), subject)
		})
	}
	router.Use(middleware.RateLimit(limiter))
	router.POST("/listings/:id/buy", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doBuy(router *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/listings/1/buy", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "ip:10.0.0.7").Return(ratelimit.Decision{Allowed: true, Remaining: 4}, nil)

		w := doBuy(setupRateLimitRouter(t, limiter, ""))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("keyed by subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), "sub:collector-1").Return(ratelimit.Decision{Allowed: true}, nil)

		w := doBuy(setupRateLimitRouter(t, limiter, "collector-1"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{RetryAfter: 1500 * time.Millisecond, Distributed: true}, nil)

		w := doBuy(setupRateLimitRouter(t, limiter, ""))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), `"code":"rate_limited"`)
	})

	t.Run("sub-second retry rounds up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{}, nil)

		w := doBuy(setupRateLimitRouter(t, limiter, ""))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("limiter error fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		limiter := mocks.NewMockRateLimiter(ctrl)
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Decision{}, errors.New("boom"))

		w := doBuy(setupRateLimitRouter(t, limiter, ""))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
