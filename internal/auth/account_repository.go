package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"threaddit/internal/user"
)

// AccountRepository coordinates the writes that must happen atomically when
// an account is created: the user row and its verification token land in a
// single transaction, so a notifier or process failure never leaves a user
// without a token row.
type AccountRepository struct {
	db *bun.DB
}

func NewAccountRepository(db *bun.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateWithVerificationToken inserts the user and its verification token in
// one transaction. Duplicate usernames surface as user.ErrDuplicateUsername.
func (r *AccountRepository) CreateWithVerificationToken(ctx context.Context, username, email, passwordHash, token string) (*user.User, error) {
	var created *user.User

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		newUser, err := user.NewRepository(tx).Create(ctx, username, email, passwordHash)
		if err != nil {
			return err
		}

		if err := NewTokenRepository(tx).Create(ctx, newUser.ID, token); err != nil {
			return err
		}

		created = newUser
		return nil
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return created, nil
}
