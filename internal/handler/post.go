package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
	"blogboard/internal/httputil"
)

// PostHandler handles post HTTP requests
type PostHandler struct {
	postService services.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService services.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// CreatePost creates a new post
// POST /api/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var cmd services.PostCreateCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.postService.Create(r.Context(), &cmd)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, view)
}

// GetPost retrieves a post by id
// GET /api/posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Post ID is required")
		return
	}

	view, err := h.postService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// ListPosts lists posts filtered by title substring
// GET /api/posts?title=&offset=&limit=&sort=
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := repositories.PageRequest{
		Offset: atoiOrZero(query.Get("offset")),
		Limit:  atoiOrZero(query.Get("limit")),
		Sort:   query.Get("sort"),
	}

	result, err := h.postService.List(r.Context(), page, query.Get("title"))
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// UpdatePost overwrites a post's title, content, tags and category
// PUT /api/posts
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var cmd services.PostUpdateCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.postService.Update(r.Context(), &cmd)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// DeletePost deletes a post and, by cascade, its comments and likes
// DELETE /api/posts/{id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Post ID is required")
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LikePost places a like for the (post, author) pair
// POST /api/posts/like
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	var cmd services.LikeCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.postService.Like(r.Context(), &cmd); err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"message": "Post liked"})
}

// UnlikePost removes the (post, author) like
// POST /api/posts/unlike
func (h *PostHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	var cmd services.LikeCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.postService.Unlike(r.Context(), &cmd); err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"message": "Post unliked"})
}

// AddComment creates a comment on a post
// POST /api/posts/{id}/comments
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Post ID is required")
		return
	}

	var cmd services.CommentCreateCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cmd.PostID = id

	comment, err := h.postService.AddComment(r.Context(), &cmd)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// HealthCheck is a simple health check endpoint
// GET /health
func (h *PostHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}

// atoiOrZero parses pagination numbers; malformed values fall back to zero
// and the repository applies its defaults
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
