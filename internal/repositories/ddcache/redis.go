package ddcache

import (
	"context"
	stderrors "errors"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
	redisclient "github.com/KirkDiggler/custom-lobby/internal/redis"
)

const (
	// Key pattern: ddcache:{hash}
	keyPrefix = "ddcache:"
	scanCount = 100
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a repository storing documents as plain Redis strings
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func buildKey(key CacheKey) string {
	return keyPrefix + key.Hash()
}

// Get retrieves the document for input.Key
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if len(input.Key) == 0 {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	data, err := r.client.Get(ctx, buildKey(input.Key)).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("no cached document for %s", input.Key)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get cached document from Redis")
	}

	return &GetOutput{Data: data}, nil
}

// Put stores the document without expiry
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Key) == 0 {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	if err := r.client.Set(ctx, buildKey(input.Key), input.Data, 0).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store cached document in Redis")
	}

	return &PutOutput{}, nil
}

// Clear deletes every ddcache key
func (r *redisRepository) Clear(ctx context.Context) (*ClearOutput, error) {
	removed := 0
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()

	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanCount {
			n, err := r.client.Del(ctx, batch...).Result()
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete cached documents")
			}
			removed += int(n)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan cached documents")
	}

	if len(batch) > 0 {
		n, err := r.client.Del(ctx, batch...).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete cached documents")
		}
		removed += int(n)
	}

	return &ClearOutput{Removed: removed}, nil
}
