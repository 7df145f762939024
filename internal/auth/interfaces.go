package auth

import (
	"context"
	"time"

	"threaddit/internal/user"
)

// AccountStore creates a user together with its first verification token in
// a single transaction.
type AccountStore interface {
	CreateWithVerificationToken(ctx context.Context, username, email, passwordHash, token string) (*user.User, error)
}

// UserStore is the subset of the user repository the auth flow needs
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Enable(ctx context.Context, username string) error
}

// VerificationTokenStore persists and resolves account activation tokens
type VerificationTokenStore interface {
	Create(ctx context.Context, userID int64, token string) error
	FindByToken(ctx context.Context, token string) (*VerificationToken, error)
}

// TokenService defines the interface for bearer token creation and validation.
// The default implementation is PasetoService (PASETO v4.local).
type TokenService interface {
	CreateToken(userID int64, username string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}

// EmailService defines the interface for email operations
type EmailService interface {
	SendVerificationEmail(ctx context.Context, toEmail, token string) error
}
