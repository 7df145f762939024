package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"threaddit/internal/database"
)

// VerificationToken links an opaque activation token to the user that must
// redeem it. Tokens are never expired or deleted; redeeming one twice is
// harmless because the enable update is idempotent.
type VerificationToken struct {
	ID        int64
	Token     string
	UserID    int64
	Username  string
	CreatedAt time.Time
}

// TokenRepository handles verification token persistence
type TokenRepository struct {
	db bun.IDB
}

func NewTokenRepository(db bun.IDB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Create persists a verification token for the given user
func (r *TokenRepository) Create(ctx context.Context, userID int64, token string) error {
	dbToken := &database.VerificationToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(dbToken).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}

	return nil
}

// FindByToken looks up a verification token together with the owning user's
// username
func (r *TokenRepository) FindByToken(ctx context.Context, token string) (*VerificationToken, error) {
	dbToken := new(database.VerificationToken)
	err := r.db.NewSelect().
		Model(dbToken).
		Relation("User").
		Where("vt.token = ?", token).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidVerificationToken
		}
		return nil, fmt.Errorf("failed to get verification token: %w", err)
	}

	model := &VerificationToken{
		ID:        dbToken.ID,
		Token:     dbToken.Token,
		UserID:    dbToken.UserID,
		CreatedAt: dbToken.CreatedAt,
	}
	if dbToken.User != nil {
		model.Username = dbToken.User.Username
	}

	return model, nil
}
