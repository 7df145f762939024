package subreddit

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNameRequired        = errors.New("community name is required")
	ErrDescriptionRequired = errors.New("community description is required")
)

// Store is the persistence contract the service depends on
type Store interface {
	Create(ctx context.Context, userID int64, name, description string) (*Subreddit, error)
	GetByID(ctx context.Context, id int64) (*Subreddit, error)
	List(ctx context.Context) ([]*Subreddit, error)
}

// Service handles community business logic
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates and persists a new community for the given user
func (s *Service) Create(ctx context.Context, userID int64, name, description string) (*Subreddit, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	created, err := s.store.Create(ctx, userID, name, description)
	if err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create subreddit: %w", err)
	}

	return created, nil
}

// Get returns a single community by ID
func (s *Service) Get(ctx context.Context, id int64) (*Subreddit, error) {
	return s.store.GetByID(ctx, id)
}

// List returns all communities
func (s *Service) List(ctx context.Context) ([]*Subreddit, error) {
	return s.store.List(ctx)
}
