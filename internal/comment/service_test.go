package comment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threaddit/internal/post"
)

type fakeStore struct {
	comments []*Comment
	nextID   int64
}

func (s *fakeStore) Create(_ context.Context, userID, postID int64, text string) (*Comment, error) {
	s.nextID++
	c := &Comment{
		ID:        s.nextID,
		Text:      text,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.comments = append(s.comments, c)
	return c, nil
}

func (s *fakeStore) ListByPost(_ context.Context, postID int64) ([]*Comment, error) {
	var result []*Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}

type fakePostStore struct {
	existing map[int64]*post.Post
}

func (s *fakePostStore) GetByID(_ context.Context, id int64) (*post.Post, error) {
	p, ok := s.existing[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	return p, nil
}

func newTestService() *Service {
	posts := &fakePostStore{existing: map[int64]*post.Post{
		1: {ID: 1, PostName: "hello"},
	}}
	return NewService(&fakeStore{}, posts)
}

func TestCreate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 5, 1, "nice post")
	require.NoError(t, err)
	assert.Equal(t, "nice post", created.Text)
	assert.Equal(t, int64(5), created.UserID)
	assert.Equal(t, int64(1), created.PostID)
}

func TestCreate_TextRequired(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), 5, 1, "")
	assert.ErrorIs(t, err, ErrTextRequired)
}

func TestCreate_PostMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), 5, 99, "lost comment")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListByPost(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 5, 1, "first")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 6, 1, "second")
	require.NoError(t, err)

	comments, err := svc.ListByPost(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
}
