package user

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
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// Repository handles user data persistence. It accepts bun.IDB so the same
// code runs against a plain connection or inside a transaction.
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *Repository) WithTx(tx bun.Tx) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new user. The account starts disabled and stays that way
// until the verification token is redeemed.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	dbUser := &database.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Enabled:      false,
		CreatedAt:    time.Now(),
	}

	_, err := r.db.NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByUsername retrieves a user by username
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("username = ?", username).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	dbUser := new(database.User)
	err := r.db.NewSelect().
		Model(dbUser).
		Where("id = ?", id).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// Enable flips the user's enabled flag. The update matches regardless of the
// current flag value, so redeeming a verification token twice is harmless.
func (r *Repository) Enable(ctx context.Context, username string) error {
	result, err := r.db.NewUpdate().
		Model((*database.User)(nil)).
		Set("enabled = ?", true).
		Where("username = ?", username).
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("failed to enable user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:           dbu.ID,
		Username:     dbu.Username,
		Email:        dbu.Email,
		PasswordHash: dbu.PasswordHash,
		Enabled:      dbu.Enabled,
		CreatedAt:    dbu.CreatedAt,
	}
}
