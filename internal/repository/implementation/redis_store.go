package implementation

import (
	"context"
	"errors"

	"postboard/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) contract.BlobStore {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Put(ctx context.Context, key string, data []byte) error {
	// No TTL: the blob is the durable state, not a cache.
	return s.rdb.Set(ctx, key, data, 0).Err()
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}
