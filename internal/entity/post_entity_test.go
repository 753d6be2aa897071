package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPost(t *testing.T) {
	p := NewPost(1, "Title", "Body", []string{"x", "y"})

	assert.Equal(t, int64(1), p.Id)
	assert.Equal(t, "Title", p.Title)
	assert.Equal(t, "Body", p.Content)
	assert.Equal(t, []string{"x", "y"}, p.Tags)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestUpdateBumpsUpdatedAt(t *testing.T) {
	p := NewPost(1, "Title", "Body", nil)
	created := p.CreatedAt

	time.Sleep(5 * time.Millisecond)
	p.Update("New title", "New body", []string{"z"})

	assert.Equal(t, "New title", p.Title)
	assert.Equal(t, "New body", p.Content)
	assert.Equal(t, []string{"z"}, p.Tags)
	assert.Equal(t, created, p.CreatedAt)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
}

func TestFormattedUpdatedAt(t *testing.T) {
	p := NewPost(1, "Title", "Body", nil)
	p.UpdatedAt = time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "7 March 2026, 09:05", p.FormattedUpdatedAt())
}

func TestHasTag(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		tag  string
		want bool
	}{
		{name: "present", tags: []string{"go", "notes"}, tag: "go", want: true},
		{name: "absent", tags: []string{"go", "notes"}, tag: "rust", want: false},
		{name: "exact match only", tags: []string{"golang"}, tag: "go", want: false},
		{name: "no tags", tags: nil, tag: "go", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPost(1, "Title", "Body", tt.tags)
			assert.Equal(t, tt.want, p.HasTag(tt.tag))
		})
	}
}
