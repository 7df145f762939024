package post

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threaddit/internal/subreddit"
)

type fakeStore struct {
	posts  map[int64]*Post
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{posts: make(map[int64]*Post)}
}

func (s *fakeStore) Create(_ context.Context, userID, subredditID int64, postName string, url, description *string) (*Post, error) {
	s.nextID++
	p := &Post{
		ID:          s.nextID,
		PostName:    postName,
		URL:         url,
		Description: description,
		UserID:      userID,
		SubredditID: subredditID,
		CreatedAt:   time.Now(),
	}
	s.posts[p.ID] = p
	return p, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) List(_ context.Context) ([]*Post, error) {
	posts := make([]*Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *fakeStore) ListBySubreddit(_ context.Context, subredditID int64) ([]*Post, error) {
	var posts []*Post
	for _, p := range s.posts {
		if p.SubredditID == subredditID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

type fakeSubredditStore struct {
	existing map[int64]*subreddit.Subreddit
}

func (s *fakeSubredditStore) GetByID(_ context.Context, id int64) (*subreddit.Subreddit, error) {
	sub, ok := s.existing[id]
	if !ok {
		return nil, subreddit.ErrNotFound
	}
	return sub, nil
}

func newTestService() *Service {
	subs := &fakeSubredditStore{existing: map[int64]*subreddit.Subreddit{
		1: {ID: 1, Name: "golang"},
	}}
	return NewService(newFakeStore(), subs)
}

func TestCreate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	url := "https://go.dev"
	created, err := svc.Create(ctx, 10, 1, "Go 1.25 released", &url, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go 1.25 released", created.PostName)
	assert.Equal(t, int64(10), created.UserID)
	assert.Equal(t, int64(1), created.SubredditID)
	require.NotNil(t, created.URL)
	assert.Equal(t, url, *created.URL)
	assert.Nil(t, created.Description)
	assert.Zero(t, created.VoteCount)
}

func TestCreate_NameRequired(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), 10, 1, "", nil, nil)
	assert.ErrorIs(t, err, ErrPostNameRequired)
}

func TestCreate_SubredditMissing(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), 10, 99, "orphan", nil, nil)
	assert.ErrorIs(t, err, ErrSubredditNotFound)
}

func TestListBySubreddit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 10, 1, "first", nil, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 11, 1, "second", nil, nil)
	require.NoError(t, err)

	posts, err := svc.ListBySubreddit(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	empty, err := svc.ListBySubreddit(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
