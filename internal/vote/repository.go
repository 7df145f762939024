package vote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"threaddit/internal/database"
)

var (
	ErrAlreadyVoted = errors.New("already voted this way on this post")
	ErrPostNotFound = errors.New("post not found")
)

// Repository applies votes. A vote insert or direction switch and the
// corresponding post vote_count adjustment happen in one transaction.
type Repository struct {
	db *bun.DB
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// CastVote records the user's vote on a post and adjusts the post's
// vote_count. Repeating the same direction fails with ErrAlreadyVoted;
// switching direction moves the count by two.
func (r *Repository) CastVote(ctx context.Context, userID, postID int64, voteType int) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		dbPost := new(database.Post)
		err := tx.NewSelect().
			Model(dbPost).
			Where("p.id = ?", postID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPostNotFound
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		existing := new(database.Vote)
		err = tx.NewSelect().
			Model(existing).
			Where("v.post_id = ?", postID).
			Where("v.user_id = ?", userID).
			Scan(ctx)

		delta := voteType
		switch {
		case err == nil && existing.VoteType == voteType:
			return ErrAlreadyVoted
		case err == nil:
			// Direction switch: undo the previous vote and apply the new one
			delta = 2 * voteType
			if _, err := tx.NewUpdate().
				Model((*database.Vote)(nil)).
				Set("vote_type = ?", voteType).
				Where("id = ?", existing.ID).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to update vote: %w", err)
			}
		case errors.Is(err, sql.ErrNoRows):
			newVote := &database.Vote{
				VoteType: voteType,
				PostID:   postID,
				UserID:   userID,
			}
			if _, err := tx.NewInsert().
				Model(newVote).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert vote: %w", err)
			}
		default:
			return fmt.Errorf("failed to look up existing vote: %w", err)
		}

		if _, err := tx.NewUpdate().
			Model((*database.Post)(nil)).
			Set("vote_count = vote_count + ?", delta).
			Where("id = ?", postID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to adjust vote count: %w", err)
		}

		return nil
	})
}
