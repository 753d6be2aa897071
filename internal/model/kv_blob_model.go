package model

import (
	"time"

	"gorm.io/datatypes"
)

// KvBlob is the single-row table backing the Postgres blob store.
type KvBlob struct {
	Key       string         `gorm:"type:varchar(255);primaryKey"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (KvBlob) TableName() string {
	return "kv_blobs"
}
