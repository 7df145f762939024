package subreddit

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

// Handler contains HTTP handlers for community endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest represents the create community request body
type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles community creation
// @Summary      Create a community
// @Tags         subreddit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Community"
// @Success      201 {object} Subreddit
// @Failure      400 {object} httputil.ErrorResponse
// @Failure      409 {object} httputil.ErrorResponse
// @Router       /api/subreddit [post]
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

	created, err := h.service.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrDescriptionRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeNameRequired, http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateName):
			httputil.RespondErrorWithCode(w, "community name already exists", httputil.CodeNameTaken, http.StatusConflict)
		default:
			logger.Error("failed to create subreddit", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create community", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("subreddit created", "subreddit_id", created.ID, "name", created.Name)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// List handles listing all communities
// @Summary      List communities
// @Tags         subreddit
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Subreddit
// @Router       /api/subreddit [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	subreddits, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("failed to list subreddits", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list communities", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, subreddits, http.StatusOK)
}

// Get handles fetching a single community
// @Summary      Get a community
// @Tags         subreddit
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Community ID"
// @Success      200 {object} Subreddit
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /api/subreddit/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid community id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "community not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get subreddit", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get community", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, found, http.StatusOK)
}
