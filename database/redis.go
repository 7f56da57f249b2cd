package database

import (
	"context"
	"log"

	"hotel_booking/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis kết nối redis cho pub/sub booking feed
func InitRedis() {
	addr := config.ConfigDefault("REDIS_ADDR", "localhost:6379")
	Redis = redis.NewClient(&redis.Options{Addr: addr})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		// server vẫn chạy được, chỉ mất live feed
		log.Printf("redis not reachable at %s: %v", addr, err)
	}
}
