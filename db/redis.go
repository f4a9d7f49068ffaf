package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const replyKeyPrefix = "chatbot:reply:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// ReplyCache stores recent replies keyed by message hash so repeated
// questions skip the full oracle chain.
type ReplyCache struct {
	client *redis.Client
}

func NewReplyCache() *ReplyCache {
	return &ReplyCache{client: Redis}
}

// CachedReply returns the cached reply for a key, or "" when the key is
// absent or expired.
func (c *ReplyCache) CachedReply(key string) (string, error) {
	val, err := c.client.Get(Ctx, replyKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *ReplyCache) CacheReply(key, reply string, ttl time.Duration) error {
	return c.client.Set(Ctx, replyKeyPrefix+key, reply, ttl).Err()
}
