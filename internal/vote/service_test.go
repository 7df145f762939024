package vote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type castCall struct {
	userID   int64
	postID   int64
	voteType int
}

type fakeStore struct {
	calls []castCall
	err   error
}

func (s *fakeStore) CastVote(_ context.Context, userID, postID int64, voteType int) error {
	s.calls = append(s.calls, castCall{userID: userID, postID: postID, voteType: voteType})
	return s.err
}

func TestCast(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.Cast(ctx, 5, 9, Upvote))
	require.NoError(t, svc.Cast(ctx, 5, 9, Downvote))

	require.Len(t, store.calls, 2)
	assert.Equal(t, castCall{userID: 5, postID: 9, voteType: 1}, store.calls[0])
	assert.Equal(t, castCall{userID: 5, postID: 9, voteType: -1}, store.calls[1])
}

func TestCast_InvalidVoteType(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	for _, voteType := range []int{0, 2, -2, 100} {
		err := svc.Cast(context.Background(), 5, 9, voteType)
		assert.ErrorIs(t, err, ErrInvalidVoteType)
	}
	assert.Empty(t, store.calls, "invalid votes must not reach the store")
}

func TestCast_AlreadyVoted(t *testing.T) {
	store := &fakeStore{err: ErrAlreadyVoted}
	svc := NewService(store)

	err := svc.Cast(context.Background(), 5, 9, Upvote)
	assert.ErrorIs(t, err, ErrAlreadyVoted)
}
