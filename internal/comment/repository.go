package comment

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"threaddit/internal/database"
)

// Repository handles comment persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new comment on a post
func (r *Repository) Create(ctx context.Context, userID, postID int64, text string) (*Comment, error) {
	dbComment := &database.Comment{
		Text:      text,
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(dbComment).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return mapDBCommentToModel(dbComment), nil
}

// ListByPost returns all comments on a post, oldest first
func (r *Repository) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	var dbComments []*database.Comment
	err := r.db.NewSelect().
		Model(&dbComments).
		Where("c.post_id = ?", postID).
		OrderExpr("c.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*Comment, 0, len(dbComments))
	for _, dbComment := range dbComments {
		comments = append(comments, mapDBCommentToModel(dbComment))
	}

	return comments, nil
}

func mapDBCommentToModel(dbc *database.Comment) *Comment {
	return &Comment{
		ID:        dbc.ID,
		Text:      dbc.Text,
		PostID:    dbc.PostID,
		UserID:    dbc.UserID,
		CreatedAt: dbc.CreatedAt,
	}
}
