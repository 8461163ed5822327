//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	keys    []string
	allowed bool
	retry   time.Duration
	err     error
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.retry, f.err
}

func newRateLimitedRouter(limiter middleware.RateLimiter, identity *profile.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", func(c *gin.Context) {
		if identity != nil {
			middleware.SetIdentity(c, *identity)
		}
		c.Next()
	}, middleware.RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("allowed requests pass through keyed by caller", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: true}
		r := newRateLimitedRouter(limiter, &profile.Identity{ExternalID: "ext-1"})

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/bookings", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, []string{"user:ext-1"}, limiter.keys)
	})

	t.Run("anonymous callers are keyed by ip", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: true}
		r := newRateLimitedRouter(limiter, nil)

		httptest.PerformRequest(t, r, http.MethodPost, "/bookings", nil, "")
		assert.Len(t, limiter.keys, 1)
		assert.Contains(t, limiter.keys[0], "ip:")
	})

	t.Run("rejected requests get 429 with Retry-After", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: false, retry: 1500 * time.Millisecond}
		r := newRateLimitedRouter(limiter, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/bookings", nil, "")
		httptest.AssertErrorCode(t, rec, http.StatusTooManyRequests, httperr.CodeRateLimited, "")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "2"})
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		r := newRateLimitedRouter(limiter, nil)

		rec := httptest.PerformRequest(t, r, http.MethodPost, "/bookings", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
