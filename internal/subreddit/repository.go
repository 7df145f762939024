package subreddit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"threaddit/internal/database"
)

var (
	ErrNotFound      = errors.New("subreddit not found")
	ErrDuplicateName = errors.New("subreddit name already exists")
)

// Repository handles subreddit persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new subreddit owned by the given user
func (r *Repository) Create(ctx context.Context, userID int64, name, description string) (*Subreddit, error) {
	dbSubreddit := &database.Subreddit{
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(dbSubreddit).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create subreddit: %w", err)
	}

	return mapDBSubredditToModel(dbSubreddit, 0), nil
}

// GetByID retrieves a subreddit by ID, including its post count
func (r *Repository) GetByID(ctx context.Context, id int64) (*Subreddit, error) {
	dbSubreddit := new(database.Subreddit)
	err := r.db.NewSelect().
		Model(dbSubreddit).
		Where("s.id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subreddit: %w", err)
	}

	count, err := r.db.NewSelect().
		Model((*database.Post)(nil)).
		Where("subreddit_id = ?", id).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	return mapDBSubredditToModel(dbSubreddit, count), nil
}

// List returns all subreddits with their post counts, newest first
func (r *Repository) List(ctx context.Context) ([]*Subreddit, error) {
	var rows []struct {
		database.Subreddit
		PostCount int `bun:"post_count"`
	}

	err := r.db.NewSelect().
		Model((*database.Subreddit)(nil)).
		ColumnExpr("s.*").
		ColumnExpr("(SELECT count(*) FROM posts p WHERE p.subreddit_id = s.id) AS post_count").
		OrderExpr("s.created_at DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list subreddits: %w", err)
	}

	subreddits := make([]*Subreddit, 0, len(rows))
	for i := range rows {
		subreddits = append(subreddits, mapDBSubredditToModel(&rows[i].Subreddit, rows[i].PostCount))
	}

	return subreddits, nil
}

func mapDBSubredditToModel(dbs *database.Subreddit, postCount int) *Subreddit {
	return &Subreddit{
		ID:            dbs.ID,
		Name:          dbs.Name,
		Description:   dbs.Description,
		UserID:        dbs.UserID,
		NumberOfPosts: postCount,
		CreatedAt:     dbs.CreatedAt,
	}
}
