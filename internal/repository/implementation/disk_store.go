package implementation

import (
	"context"
	"os"

	"postboard/internal/repository/contract"

	"github.com/peterbourgon/diskv/v3"
)

type diskStore struct {
	d *diskv.Diskv
}

// NewDiskStore creates a disk-backed blob store rooted at basePath.
func NewDiskStore(basePath string) contract.BlobStore {
	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *diskStore) Put(_ context.Context, key string, data []byte) error {
	return s.d.Write(key, data)
}

func (s *diskStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}
