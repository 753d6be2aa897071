package entity

import (
	"time"
)

// UpdatedAtLayout is the long display format for a post's last-update time.
// Fixed to the English convention: day, full month name, year, 24h clock.
const UpdatedAtLayout = "2 January 2006, 15:04"

type Post struct {
	Id        int64
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPost(id int64, title, content string, tags []string) *Post {
	now := time.Now()
	return &Post{
		Id:        id,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Update replaces the editable fields and bumps UpdatedAt.
// Validation (non-empty title/content) is the caller's job.
func (p *Post) Update(title, content string, tags []string) {
	p.Title = title
	p.Content = content
	p.Tags = tags
	p.UpdatedAt = time.Now()
}

func (p *Post) FormattedUpdatedAt() string {
	return p.UpdatedAt.Format(UpdatedAtLayout)
}

// HasTag reports whether the post carries the exact tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
