package vote

import (
	"encoding/json"
	"errors"
	"net/http"

	"threaddit/internal/auth"
	"threaddit/internal/httputil"
	"threaddit/internal/logging"
)

// Handler contains HTTP handlers for vote endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CastRequest represents the vote request body
type CastRequest struct {
	PostID   int64 `json:"post_id"`
	VoteType int   `json:"vote_type"`
}

// Cast handles voting on a post
// @Summary      Vote on a post
// @Tags         votes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CastRequest true "Vote"
// @Success      200 {object} map[string]string
// @Failure      400 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Failure      409 {object} httputil.ErrorResponse
// @Router       /api/votes [post]
func (h *Handler) Cast(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req CastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	err := h.service.Cast(r.Context(), userID, req.PostID, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidVoteType):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidVote, http.StatusBadRequest)
		case errors.Is(err, ErrPostNotFound):
			httputil.RespondErrorWithCode(w, "post not found", httputil.CodeNotFound, http.StatusNotFound)
		case errors.Is(err, ErrAlreadyVoted):
			httputil.RespondErrorWithCode(w, "already voted this way on this post", httputil.CodeAlreadyVoted, http.StatusConflict)
		default:
			logger.Error("failed to cast vote", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to cast vote", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("vote cast", "post_id", req.PostID, "vote_type", req.VoteType)

	httputil.RespondJSON(w, map[string]string{"message": "vote recorded"}, http.StatusOK)
}
