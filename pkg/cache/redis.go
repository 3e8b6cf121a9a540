package cache

import (
	"context"
	"time"

	"rail-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis creates a Redis client for response caching. Returns nil when
// no address is configured or the server is unreachable; callers degrade
// to pass-through behavior.
func InitRedis(config utils.RedisConfig) *redis.Client {
	if config.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
