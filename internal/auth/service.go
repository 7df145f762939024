package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"threaddit/internal/logging"
	"threaddit/internal/user"
)

var (
	ErrUsernameRequired         = errors.New("username is required")
	ErrEmailRequired            = errors.New("email is required")
	ErrPasswordRequired         = errors.New("password is required")
	ErrInvalidEmailFormat       = errors.New("invalid email format")
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrAccountNotEnabled        = errors.New("account not activated, please check your inbox")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrUserNotFound             = errors.New("user referenced by token not found")
)

// AuthenticationResponse is returned from a successful login. It is never
// persisted; the bearer token alone carries the authenticated identity.
type AuthenticationResponse struct {
	AuthenticationToken string `json:"authenticationToken"`
	Username            string `json:"username"`
}

// Service handles the account lifecycle: signup, activation, login
type Service struct {
	accounts      AccountStore
	users         UserStore
	tokens        VerificationTokenStore
	tokenService  TokenService
	emailService  EmailService
	logger        *logging.Logger
	tokenDuration time.Duration
}

func NewService(
	accounts AccountStore,
	users UserStore,
	tokens VerificationTokenStore,
	tokenService TokenService,
	emailService EmailService,
	logger *logging.Logger,
	tokenDuration time.Duration,
) *Service {
	return &Service{
		accounts:      accounts,
		users:         users,
		tokens:        tokens,
		tokenService:  tokenService,
		emailService:  emailService,
		logger:        logger,
		tokenDuration: tokenDuration,
	}
}

// Signup creates a disabled user account, persists a verification token for
// it and sends the activation email. The user and token writes are atomic;
// the email is sent asynchronously and a failure only logs (the user can
// request a new activation email later).
func (s *Service) Signup(ctx context.Context, username, email, password string) (*user.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(email) > 254 {
		return nil, ErrInvalidEmailFormat
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmailFormat
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken := uuid.NewString()

	newUser, err := s.accounts.CreateWithVerificationToken(ctx, username, email, passwordHash, verificationToken)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return nil, user.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerificationEmailAsync(email, verificationToken)

	return newUser, nil
}

// VerifyAccount resolves a verification token and enables the referenced
// user. The token stays valid afterwards; replaying it has no further effect
// because the enable update is idempotent.
func (s *Service) VerifyAccount(ctx context.Context, token string) error {
	vt, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvalidVerificationToken) {
			return ErrInvalidVerificationToken
		}
		return fmt.Errorf("failed to find verification token: %w", err)
	}

	// Load the referenced user by username before enabling. The row should
	// always exist given the foreign key, but the path is kept explicit.
	if _, err := s.users.GetByUsername(ctx, vt.Username); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user %q: %w", vt.Username, err)
	}

	if err := s.users.Enable(ctx, vt.Username); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to enable user %q: %w", vt.Username, err)
	}

	return nil
}

// Login verifies the credentials and issues a bearer token with the
// username as subject. Disabled accounts cannot authenticate.
func (s *Service) Login(ctx context.Context, username, password string) (*AuthenticationResponse, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existingUser, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !verifyPassword(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if !existingUser.Enabled {
		return nil, ErrAccountNotEnabled
	}

	token, err := s.tokenService.CreateToken(existingUser.ID, existingUser.Username, s.tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthenticationResponse{
		AuthenticationToken: token,
		Username:            existingUser.Username,
	}, nil
}

// ResendVerification issues a fresh verification token for a still-disabled
// account and re-sends the activation email. Always returns nil so callers
// cannot probe which usernames exist.
func (s *Service) ResendVerification(ctx context.Context, username string) error {
	existingUser, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		s.logger.Warn("failed to get user for resend verification", "error", err)
		return nil
	}

	if existingUser.Enabled {
		return nil
	}

	token := uuid.NewString()
	if err := s.tokens.Create(ctx, existingUser.ID, token); err != nil {
		s.logger.Warn("failed to store verification token", "error", err)
		return nil
	}

	s.sendVerificationEmailAsync(existingUser.Email, token)

	return nil
}

func (s *Service) sendVerificationEmailAsync(email, token string) {
	go func() {
		// Fresh context: the request context is gone once the handler returns
		emailCtx := context.Background()
		if err := s.emailService.SendVerificationEmail(emailCtx, email, token); err != nil {
			s.logger.Warn("failed to send verification email", "email", email, "error", err)
		}
	}()
}
