package vote

import (
	"context"
	"errors"
)

// Vote directions as stored in vote_type
const (
	Upvote   = 1
	Downvote = -1
)

var ErrInvalidVoteType = errors.New("vote type must be 1 or -1")

// Store is the persistence contract the service depends on
type Store interface {
	CastVote(ctx context.Context, userID, postID int64, voteType int) error
}

// Service handles vote business logic
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Cast records a vote for the authenticated user on a post
func (s *Service) Cast(ctx context.Context, userID, postID int64, voteType int) error {
	if voteType != Upvote && voteType != Downvote {
		return ErrInvalidVoteType
	}

	return s.store.CastVote(ctx, userID, postID, voteType)
}
