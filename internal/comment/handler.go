package comment

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

// Handler contains HTTP handlers for comment endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest represents the create comment request body
type CreateRequest struct {
	Text   string `json:"text"`
	PostID int64  `json:"post_id"`
}

// Create handles comment creation
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Comment"
// @Success      201 {object} Comment
// @Failure      400 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /api/comments [post]
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

	created, err := h.service.Create(r.Context(), userID, req.PostID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrTextRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeTextRequired, http.StatusBadRequest)
		case errors.Is(err, ErrPostNotFound):
			httputil.RespondErrorWithCode(w, "post not found", httputil.CodeNotFound, http.StatusNotFound)
		default:
			logger.Error("failed to create comment", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create comment", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("comment created", "comment_id", created.ID, "post_id", created.PostID)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// ListByPost handles listing the comments on one post
// @Summary      List comments by post
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200 {array} Comment
// @Router       /api/comments/by-post/{id} [get]
func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid post id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	comments, err := h.service.ListByPost(r.Context(), id)
	if err != nil {
		logger.Error("failed to list comments", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list comments", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, comments, http.StatusOK)
}
