package session

import (
	"context"
	"log"
	"time"

	"hotel_gateway/config"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis connection used for session/intent persistence
// and refresh-event pub/sub. Returns nil when REDIS_ADDR is not configured,
// in which case the store runs memory-only.
func Connect() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("session: REDIS_ADDR not set, running memory-only")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("session: redis unreachable at %s: %v", addr, err)
	}
	return client
}
