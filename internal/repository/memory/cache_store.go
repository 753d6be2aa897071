package memory

import (
	"context"

	"postboard/internal/repository/contract"

	gocache "github.com/patrickmn/go-cache"
)

type cacheStore struct {
	c *gocache.Cache
}

// NewCacheStore creates an in-process blob store. Entries never expire;
// state lives as long as the process. Used as the default test double
// and for throwaway runs.
func NewCacheStore() contract.BlobStore {
	return &cacheStore{c: gocache.New(gocache.NoExpiration, 0)}
}

func (s *cacheStore) Put(_ context.Context, key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.c.Set(key, cp, gocache.NoExpiration)
	return nil
}

func (s *cacheStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, contract.ErrKeyNotFound
	}
	return v.([]byte), nil
}
