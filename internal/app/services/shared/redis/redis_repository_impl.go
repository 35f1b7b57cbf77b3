package redis

import (
	"context"
	"errors"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

// Set stores strings and byte slices as they are and JSON encodes anything else.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	var payload interface{}
	switch v := value.(type) {
	case string, []byte:
		payload = v
	default:
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		payload = jsonValue
	}

	err := r.client.Set(ctx, key, payload, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) PushToList(ctx context.Context, key string, values ...interface{}) error {
	err := r.client.RPush(ctx, key, values...).Err()
	if err != nil {
		return exceptions.ErrRedisPushToList(err)
	}
	return nil
}

// PopList reads and deletes the whole list in one MULTI/EXEC so a push racing
// the read either lands in the result or survives for the next call.
func (r *redisRepository) PopList(ctx context.Context, key string) ([]string, error) {
	var lrange *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, exceptions.ErrRedisPopList(err, key)
	}
	return lrange.Val(), nil
}

// Expire keeps millisecond precision.
func (r *redisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	err := r.client.PExpire(ctx, key, exp).Err()
	if err != nil {
		return exceptions.ErrRedisExpire(err, key)
	}
	return nil
}
