package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ConsultBI/Dashboard-ConsultBI-Ventas/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func setupLimitedRouter(t *testing.T, maxRequests int) *gin.Engine {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	config.RedisClient = redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { config.RedisClient = nil })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimiter(maxRequests, time.Minute))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupLimitedRouter(t, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupLimitedRouter(t, 2)

	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after exceeding the limit, got %d", last)
	}
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	config.RedisClient = nil

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimiter(1, time.Minute))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("limiter must fail open without Redis, got %d", w.Code)
		}
	}
}
