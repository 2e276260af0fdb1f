package middleware

import (
	"net/http"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/models"
	"github.com/gin-gonic/gin"
)

// RateLimiter throttles per-IP, per-method, per-endpoint using Redis
// counters. When Redis is absent or failing the limiter fails open: a
// read-only dashboard should stay reachable even with the throttle down.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		endpoint := c.FullPath() // /api/v1/dashboard/analytics/kpis etc.
		method := c.Request.Method

		key := "rl:" + ip + ":" + method + ":" + endpoint
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			// fail open on Redis errors
			c.Next()
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
			resetAt := time.Now().Add(window)
			config.RedisClient.Set(config.Ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
