package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepo caches assembled report payloads under short TTLs. The cache is
// best-effort: callers treat every error as a miss.
type RedisRepo interface {
	SaveReport(ctx context.Context, key string, report any, ttl time.Duration) error
	FindReport(ctx context.Context, key string, dest any) (bool, error)
}

type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepo {
	return &RedisRepository{client: client}
}

func reportKey(key string) string {
	return "report:" + key
}

func (r *RedisRepository) SaveReport(ctx context.Context, key string, report any, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report %q: %w", key, err)
	}

	_, err = r.client.Set(ctx, reportKey(key), data, ttl).Result()
	return err
}

// FindReport unmarshals a cached report into dest. The second return value
// is false on a miss.
func (r *RedisRepository) FindReport(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, reportKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached report %q: %w", key, err)
	}
	return true, nil
}
