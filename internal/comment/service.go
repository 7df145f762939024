package comment

import (
	"context"
	"errors"
	"fmt"

	"threaddit/internal/post"
)

var (
	ErrTextRequired = errors.New("comment text is required")
	ErrPostNotFound = errors.New("post not found")
)

// Store is the persistence contract the service depends on
type Store interface {
	Create(ctx context.Context, userID, postID int64, text string) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
}

// PostStore resolves the post a comment belongs to
type PostStore interface {
	GetByID(ctx context.Context, id int64) (*post.Post, error)
}

// Service handles comment business logic
type Service struct {
	store Store
	posts PostStore
}

func NewService(store Store, posts PostStore) *Service {
	return &Service{store: store, posts: posts}
}

// Create validates and persists a new comment on a post
func (s *Service) Create(ctx context.Context, userID, postID int64, text string) (*Comment, error) {
	if text == "" {
		return nil, ErrTextRequired
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to resolve post: %w", err)
	}

	return s.store.Create(ctx, userID, postID, text)
}

// ListByPost returns the comments on one post
func (s *Service) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	return s.store.ListByPost(ctx, postID)
}
