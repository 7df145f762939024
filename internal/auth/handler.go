package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"threaddit/internal/httputil"
	"threaddit/internal/logging"
	"threaddit/internal/ratelimit"
	"threaddit/internal/user"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     *Service
	rateLimiter *ratelimit.Limiter
	logger      *logging.Logger
}

func NewHandler(service *Service, rateLimiter *ratelimit.Limiter, logger *logging.Logger) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResendVerificationRequest represents the resend verification request body
type ResendVerificationRequest struct {
	Username string `json:"username"`
}

// MessageResponse is a plain confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup handles user registration
// @Summary      Register a new user
// @Description  Create a disabled user account. An activation email with a verification link is sent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup credentials"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      409 {object} httputil.ErrorResponse "Username already exists"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "signup")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for signup", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid signup request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"username": req.Username})

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "signup"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	newUser, err := h.service.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateUsername):
			logger.Warn("signup failed: username already exists")
			httputil.RespondErrorWithCode(w, "username already exists", httputil.CodeUsernameTaken, http.StatusConflict)
		case errors.Is(err, ErrUsernameRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeUsernameRequired, http.StatusBadRequest)
		case errors.Is(err, ErrEmailRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeEmailRequired, http.StatusBadRequest)
		case errors.Is(err, ErrPasswordRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodePasswordRequired, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidEmailFormat):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
		default:
			logger.Error("signup failed: internal error", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	httputil.RespondJSON(w, MessageResponse{
		Message: "User registration successful. Please check your email to activate your account.",
	}, http.StatusOK)
}

// VerifyAccount handles account activation
// @Summary      Activate an account
// @Description  Redeem the verification token from the activation email and enable the account.
// @Tags         auth
// @Produce      json
// @Param        token path string true "Verification token"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid token"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/auth/accountVerification/{token} [get]
func (h *Handler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	token := chi.URLParam(r, "token")
	if token == "" {
		logger.Warn("account verification failed: token missing")
		httputil.RespondErrorWithCode(w, "verification token required", httputil.CodeInvalidToken, http.StatusBadRequest)
		return
	}

	err := h.service.VerifyAccount(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrInvalidVerificationToken) {
			logger.Warn("account verification failed: invalid token")
			httputil.RespondErrorWithCode(w, "invalid verification token", httputil.CodeVerificationFailed, http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("account verification failed: user missing")
			httputil.RespondErrorWithCode(w, "user for this token no longer exists", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("account verification failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to verify account", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("account activated successfully")

	httputil.RespondJSON(w, MessageResponse{Message: "Account activated successfully"}, http.StatusOK)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate with username and password and receive a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} AuthenticationResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid request body"
// @Failure      401 {object} httputil.ErrorResponse "Invalid credentials"
// @Failure      403 {object} httputil.ErrorResponse "Account not activated"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "login")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for login", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"username": req.Username})

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "login"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	resp, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Warn("login failed: invalid credentials")
			httputil.RespondErrorWithCode(w, "invalid username or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
			return
		}
		if errors.Is(err, ErrAccountNotEnabled) {
			logger.Warn("login failed: account not activated")
			httputil.RespondErrorWithCode(w, "account not activated, please check your inbox", httputil.CodeAccountNotEnabled, http.StatusForbidden)
			return
		}
		logger.Error("login failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in successfully")

	httputil.RespondJSON(w, resp, http.StatusOK)
}

// ResendVerification handles resending the activation email
// @Summary      Resend activation email
// @Description  Send a fresh activation email for a not-yet-activated account. Always returns success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ResendVerificationRequest true "Username"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid request body"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Router       /api/auth/resendVerification [post]
func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid resend verification request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "resend")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for resend", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "resend"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	// Always succeeds so usernames cannot be enumerated
	_ = h.service.ResendVerification(r.Context(), req.Username)

	httputil.RespondJSON(w, MessageResponse{
		Message: "If the account exists and is not activated yet, a new activation email has been sent.",
	}, http.StatusOK)
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr format is "IP:port", extract just the IP
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
