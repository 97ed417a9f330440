package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis menyiapkan klien Redis untuk cache ringkasan laporan.
// Redis opsional; kalau tidak ada, controller jatuh ke query langsung.
func ConnectRedis() {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak tersedia (%s): %v — cache dimatikan", addr, err)
		Redis = nil
		return
	}
	log.Println("✅ Redis connected:", addr)
}

func RedisHealthy(ctx context.Context) bool {
	if Redis == nil {
		return false
	}
	return Redis.Ping(ctx).Err() == nil
}
