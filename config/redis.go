package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials Redis and returns whether the connection is usable.
// Carts fall back to in-memory storage when it is not, so a missing Redis
// degrades the deployment instead of blocking startup.
func ConnectRedis() bool {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL: %v", err)
		return false
	}

	RedisClient = redis.NewClient(opt)

	res, err := RedisClient.Ping(Ctx).Result()
	if err != nil {
		log.Printf("⚠️  failed to connect to Redis, carts will run in memory mode: %v", err)
		RedisClient = nil
		return false
	}
	log.Println("✅ Connected to Redis:", res)
	return true
}
