package subreddit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byName map[string]*Subreddit
	byID   map[int64]*Subreddit
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byName: make(map[string]*Subreddit),
		byID:   make(map[int64]*Subreddit),
	}
}

func (s *fakeStore) Create(_ context.Context, userID int64, name, description string) (*Subreddit, error) {
	if _, exists := s.byName[name]; exists {
		return nil, ErrDuplicateName
	}

	s.nextID++
	sub := &Subreddit{
		ID:          s.nextID,
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	s.byName[name] = sub
	s.byID[sub.ID] = sub
	return sub, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (*Subreddit, error) {
	sub, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sub, nil
}

func (s *fakeStore) List(_ context.Context) ([]*Subreddit, error) {
	subs := make([]*Subreddit, 0, len(s.byID))
	for _, sub := range s.byID {
		subs = append(subs, sub)
	}
	return subs, nil
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "golang", "All things Go")
	require.NoError(t, err)
	assert.Equal(t, "golang", created.Name)
	assert.Equal(t, int64(1), created.UserID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "", "desc")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(ctx, 1, "golang", "")
	assert.ErrorIs(t, err, ErrDescriptionRequired)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "golang", "first")
	require.NoError(t, err)

	_, err = svc.Create(ctx, 2, "golang", "second")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestList(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "golang", "Go")
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, "rust", "Rust")
	require.NoError(t, err)

	subs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}
