package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"postboard/internal/dto"
	"postboard/internal/entity"
	"postboard/internal/mapper"
	"postboard/internal/model"
	"postboard/internal/pkg/logger"
	"postboard/internal/repository/contract"
	"postboard/pkg/events"
)

// StoreKey is the single fixed key holding the whole serialized collection.
const StoreKey = "postboard:posts"

type IPostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*entity.Post, error)
	Update(ctx context.Context, req *dto.UpdatePostRequest) (*entity.Post, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, tag string) ([]*entity.Post, error)
	Tags(ctx context.Context) ([]string, error)
}

type postService struct {
	store     contract.BlobStore
	mapper    *mapper.PostMapper
	logger    logger.ILogger
	publisher IPublisherService

	// Single writer: every mutation serializes here, matching the
	// one-UI-thread model of the original surface.
	mu     sync.Mutex
	posts  []*entity.Post
	nextId int64
}

// NewPostService restores the collection from the store and becomes its
// single writer. A missing key means a fresh collection; a corrupt blob is
// logged and treated as empty so the rendering path never breaks on startup.
func NewPostService(
	store contract.BlobStore,
	log logger.ILogger,
	publisher IPublisherService,
) (IPostService, error) {
	s := &postService{
		store:     store,
		mapper:    mapper.NewPostMapper(),
		logger:    log,
		publisher: publisher,
		posts:     []*entity.Post{},
		nextId:    time.Now().UnixMilli(),
	}

	if err := s.restore(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *postService) restore(ctx context.Context) error {
	data, err := s.store.Get(ctx, StoreKey)
	if err != nil {
		if errors.Is(err, contract.ErrKeyNotFound) {
			return nil
		}
		return err
	}

	var records []*model.PostRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("PostService", "Stored collection is unreadable, starting empty", map[string]interface{}{
			"error": err.Error(),
			"key":   StoreKey,
		})
		return nil
	}

	// A null inside the array survives unmarshalling as a nil record;
	// drop it rather than let it reach the sort and render paths.
	kept := records[:0]
	for _, r := range records {
		if r != nil {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(records) {
		s.logger.Warn("PostService", "Stored collection has invalid records, skipping them", map[string]interface{}{
			"skipped": len(records) - len(kept),
			"key":     StoreKey,
		})
	}

	s.posts = s.mapper.ToEntities(kept)
	for _, p := range s.posts {
		// Ids are never reused, even across restarts.
		if p.Id >= s.nextId {
			s.nextId = p.Id + 1
		}
	}
	s.sortLocked()
	return nil
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := entity.NewPost(s.nextId, req.Title, req.Content, normalizeTags(req.Tags))
	s.nextId++

	s.posts = append(s.posts, post)
	s.sortLocked()

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypePostCreated, post)
	return post, nil
}

func (s *postService) Update(ctx context.Context, req *dto.UpdatePostRequest) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(req.Id)
	if post == nil {
		return nil, nil // Not found: no mutation, no persistence
	}

	post.Update(req.Title, req.Content, normalizeTags(req.Tags))
	s.sortLocked()

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypePostUpdated, post)
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed *entity.Post
	for i, p := range s.posts {
		if p.Id == id {
			removed = p
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}

	// An unknown id is accepted silently; the state is persisted either way.
	if err := s.persistLocked(ctx); err != nil {
		return err
	}

	if removed != nil {
		s.publishEvent(ctx, events.TypePostDeleted, removed)
	}
	return nil
}

func (s *postService) Get(_ context.Context, id int64) (*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(id), nil
}

func (s *postService) List(_ context.Context, tag string) ([]*entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entity.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if tag == "" || p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *postService) Tags(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	tags := []string{}
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (s *postService) findLocked(id int64) *entity.Post {
	for _, p := range s.posts {
		if p.Id == id {
			return p
		}
	}
	return nil
}

// sortLocked keeps the most recently touched post first. Ties fall back to
// the higher (younger) id so the order stays deterministic.
func (s *postService) sortLocked() {
	sort.SliceStable(s.posts, func(i, j int) bool {
		a, b := s.posts[i], s.posts[j]
		if a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.Id > b.Id
		}
		return a.UpdatedAt.After(b.UpdatedAt)
	})
}

func (s *postService) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.mapper.ToRecords(s.posts))
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, StoreKey, data); err != nil {
		s.logger.Error("PostService", "Failed to persist collection", map[string]interface{}{
			"error": err.Error(),
			"key":   StoreKey,
		})
		return err
	}
	return nil
}

// publishEvent notifies the bus after a successful mutation. The event feed
// is auxiliary; failures are logged, never surfaced to the caller.
func (s *postService) publishEvent(ctx context.Context, eventType string, post *entity.Post) {
	if s.publisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"post_id": post.Id,
			"title":   post.Title,
		},
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("PostService", "Failed to publish post event", map[string]interface{}{
			"error": err.Error(),
			"type":  eventType,
		})
	}
}

// normalizeTags keeps entry order and duplicates, only trimming is done at
// the controllers; a nil slice becomes an empty one for stable JSON shape.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
