package post

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"threaddit/internal/database"
)

var ErrNotFound = errors.New("post not found")

// Repository handles post persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new post
func (r *Repository) Create(ctx context.Context, userID, subredditID int64, postName string, url, description *string) (*Post, error) {
	dbPost := &database.Post{
		PostName:    postName,
		URL:         url,
		Description: description,
		UserID:      userID,
		SubredditID: subredditID,
		CreatedAt:   time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(dbPost).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return mapDBPostToModel(dbPost), nil
}

// GetByID retrieves a post by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Post, error) {
	dbPost := new(database.Post)
	err := r.db.NewSelect().
		Model(dbPost).
		Where("p.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return mapDBPostToModel(dbPost), nil
}

// List returns all posts, newest first
func (r *Repository) List(ctx context.Context) ([]*Post, error) {
	var dbPosts []*database.Post
	err := r.db.NewSelect().
		Model(&dbPosts).
		OrderExpr("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return mapDBPostsToModels(dbPosts), nil
}

// ListBySubreddit returns all posts in a subreddit, newest first
func (r *Repository) ListBySubreddit(ctx context.Context, subredditID int64) ([]*Post, error) {
	var dbPosts []*database.Post
	err := r.db.NewSelect().
		Model(&dbPosts).
		Where("p.subreddit_id = ?", subredditID).
		OrderExpr("p.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by subreddit: %w", err)
	}

	return mapDBPostsToModels(dbPosts), nil
}

func mapDBPostsToModels(dbPosts []*database.Post) []*Post {
	posts := make([]*Post, 0, len(dbPosts))
	for _, dbPost := range dbPosts {
		posts = append(posts, mapDBPostToModel(dbPost))
	}
	return posts
}

func mapDBPostToModel(dbp *database.Post) *Post {
	return &Post{
		ID:          dbp.ID,
		PostName:    dbp.PostName,
		URL:         dbp.URL,
		Description: dbp.Description,
		VoteCount:   dbp.VoteCount,
		UserID:      dbp.UserID,
		SubredditID: dbp.SubredditID,
		CreatedAt:   dbp.CreatedAt,
	}
}
