package handler

import (
	"log/slog"
	"net/http"

	"blogboard/internal/domain/services"
	"blogboard/internal/httputil"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryService
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// CreateCategory creates a new category
// POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var cmd services.CategoryCreateCommand
	if err := httputil.ParseJSON(w, r, &cmd); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.categoryService.Create(r.Context(), &cmd)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, services.NewCategoryView(*category))
}

// GetCategory retrieves a category by case-insensitive name
// GET /api/categories/{name}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	category, err := h.categoryService.Get(r.Context(), name)
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, services.NewCategoryView(*category))
}

// ListCategories returns all categories
// GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		respondDomainError(w, h.logger, r, err)
		return
	}

	views := make([]services.CategoryView, len(categories))
	for i, category := range categories {
		views[i] = services.NewCategoryView(category)
	}

	httputil.RespondJSON(w, http.StatusOK, views)
}
