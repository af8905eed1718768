package handler

import (
	"log/slog"
	"net/http"

	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
	"blogboard/internal/httputil"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService services.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService services.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments lists a post's top-level comments with one level of replies
// GET /api/posts/{id}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Post ID is required")
		return
	}

	query := r.URL.Query()
	page := repositories.PageRequest{
		Offset: atoiOrZero(query.Get("offset")),
		Limit:  atoiOrZero(query.Get("limit")),
	}

	comments, err := h.commentService.ListByPost(r.Context(), id, page)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comments)
}

// UpdateComment replaces a comment's content
// PUT /api/comments
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var cmd services.CommentUpdateCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.commentService.Update(r.Context(), &cmd)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comment)
}

// DeleteComment deletes a comment and its entire reply subtree
// DELETE /api/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Comment ID is required")
		return
	}

	if err := h.commentService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
