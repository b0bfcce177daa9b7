package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient stays nil when Redis is unreachable or unconfigured; rate
// limiting is disabled in that case.
var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("❌ Redis connection failed: %v. Rate limiting disabled.", err)
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected")
}
