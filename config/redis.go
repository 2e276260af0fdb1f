package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the client used by the rate limiter. The dashboard can
// run without Redis (the limiter fails open), so a connection failure logs
// instead of aborting startup.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, rate limiting disabled: %v", err)
		return
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, rate limiting disabled: %v", err)
		RedisClient = nil
		return
	}
	fmt.Println("✅ Connected to Redis:", res)
}
