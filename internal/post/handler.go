package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"threaddit/internal/auth"
	"threaddit/internal/httputil"
	"threaddit/internal/logging"
)

// Handler contains HTTP handlers for post endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest represents the create post request body
type CreateRequest struct {
	PostName    string  `json:"post_name"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	SubredditID int64   `json:"subreddit_id"`
}

// Create handles post creation
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Post"
// @Success      201 {object} Post
// @Failure      400 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /api/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.SubredditID, req.PostName, req.URL, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNameRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeNameRequired, http.StatusBadRequest)
		case errors.Is(err, ErrSubredditNotFound):
			httputil.RespondErrorWithCode(w, "subreddit not found", httputil.CodeNotFound, http.StatusNotFound)
		default:
			logger.Error("failed to create post", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create post", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("post created", "post_id", created.ID)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// List handles listing all posts
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Post
// @Router       /api/posts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	posts, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("failed to list posts", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list posts", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, posts, http.StatusOK)
}

// Get handles fetching a single post
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {object} Post
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /api/posts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid post id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "post not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get post", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get post", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, found, http.StatusOK)
}

// ListBySubreddit handles listing the posts of one community
// @Summary      List posts by community
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Community ID"
// @Success      200 {array} Post
// @Router       /api/posts/by-subreddit/{id} [get]
func (h *Handler) ListBySubreddit(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid subreddit id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	posts, err := h.service.ListBySubreddit(r.Context(), id)
	if err != nil {
		logger.Error("failed to list posts by subreddit", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list posts", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, posts, http.StatusOK)
}
