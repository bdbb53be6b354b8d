package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dda-estates/realestate-backend/utils"
)

// RedisStore satisfies Store for deployments that want cache entries to
// survive restarts. Store errors are logged and treated as misses so a Redis
// outage degrades to recomputation instead of failing requests.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.Logger.Errorf("Redis GET error for key %s: %v", key, err)
		return nil, false
	}
	return val, true
}

func (r *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := r.client.Set(ctx, key, val, ttl).Err(); err != nil {
		utils.Logger.Errorf("Redis SET error for key %s: %v", key, err)
	}
}

// DeletePrefix walks the keyspace with SCAN and deletes matches in a single
// pipeline, keeping invalidation wholesale like the memory store.
func (r *RedisStore) DeletePrefix(ctx context.Context, prefix string) {
	pattern := prefix + "*"
	var keysToDelete []string
	var cursor uint64

	for {
		batch, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			utils.Logger.Errorf("Redis SCAN error for pattern %s: %v", pattern, err)
			return
		}
		keysToDelete = append(keysToDelete, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := r.client.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		utils.Logger.Errorf("Error deleting %d cache keys matching %s: %v", len(keysToDelete), pattern, err)
	}
}
