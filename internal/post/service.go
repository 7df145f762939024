package post

import (
	"context"
	"errors"
	"fmt"

	"threaddit/internal/subreddit"
)

var (
	ErrPostNameRequired  = errors.New("post name is required")
	ErrSubredditNotFound = errors.New("subreddit not found")
)

// Store is the persistence contract the service depends on
type Store interface {
	Create(ctx context.Context, userID, subredditID int64, postName string, url, description *string) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListBySubreddit(ctx context.Context, subredditID int64) ([]*Post, error)
}

// SubredditStore resolves the community a post is created in
type SubredditStore interface {
	GetByID(ctx context.Context, id int64) (*subreddit.Subreddit, error)
}

// Service handles post business logic
type Service struct {
	store      Store
	subreddits SubredditStore
}

func NewService(store Store, subreddits SubredditStore) *Service {
	return &Service{store: store, subreddits: subreddits}
}

// Create validates and persists a new post in a community
func (s *Service) Create(ctx context.Context, userID, subredditID int64, postName string, url, description *string) (*Post, error) {
	if postName == "" {
		return nil, ErrPostNameRequired
	}

	if _, err := s.subreddits.GetByID(ctx, subredditID); err != nil {
		if errors.Is(err, subreddit.ErrNotFound) {
			return nil, ErrSubredditNotFound
		}
		return nil, fmt.Errorf("failed to resolve subreddit: %w", err)
	}

	return s.store.Create(ctx, userID, subredditID, postName, url, description)
}

// Get returns a single post by ID
func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.store.GetByID(ctx, id)
}

// List returns all posts
func (s *Service) List(ctx context.Context) ([]*Post, error) {
	return s.store.List(ctx)
}

// ListBySubreddit returns the posts of one community
func (s *Service) ListBySubreddit(ctx context.Context, subredditID int64) ([]*Post, error) {
	return s.store.ListBySubreddit(ctx, subredditID)
}
