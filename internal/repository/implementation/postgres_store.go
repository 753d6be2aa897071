package implementation

import (
	"context"
	"errors"

	"postboard/internal/model"
	"postboard/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore keeps the blob in a single-row jsonb table, upserted
// on every write.
func NewPostgresStore(db *gorm.DB) (contract.BlobStore, error) {
	if err := db.AutoMigrate(&model.KvBlob{}); err != nil {
		return nil, err
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Put(ctx context.Context, key string, data []byte) error {
	blob := model.KvBlob{
		Key:   key,
		Value: datatypes.JSON(data),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&blob).Error
}

func (s *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob model.KvBlob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.ErrKeyNotFound
		}
		return nil, err
	}
	return []byte(blob.Value), nil
}
