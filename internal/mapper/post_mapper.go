package mapper

import (
	"postboard/internal/entity"
	"postboard/internal/model"
)

type PostMapper struct{}

func NewPostMapper() *PostMapper {
	return &PostMapper{}
}

func (m *PostMapper) ToEntity(r *model.PostRecord) *entity.Post {
	if r == nil {
		return nil
	}

	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Post{
		Id:        r.Id,
		Title:     r.Title,
		Content:   r.Content,
		Tags:      tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *PostMapper) ToRecord(p *entity.Post) *model.PostRecord {
	if p == nil {
		return nil
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.PostRecord{
		Id:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PostMapper) ToEntities(records []*model.PostRecord) []*entity.Post {
	entities := make([]*entity.Post, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *PostMapper) ToRecords(posts []*entity.Post) []*model.PostRecord {
	records := make([]*model.PostRecord, len(posts))
	for i, p := range posts {
		records[i] = m.ToRecord(p)
	}
	return records
}
