package model

import (
	"time"
)

// PostRecord is the persisted shape of a post inside the store blob.
// Timestamps marshal as RFC3339 so the blob stays ISO-parseable.
type PostRecord struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
