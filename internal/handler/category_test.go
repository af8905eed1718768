package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/services"
)

type stubCategoryService struct {
	category   *models.Category
	categories []models.Category
	err        error

	lastGetName string
}

func (s *stubCategoryService) Get(_ context.Context, name string) (*models.Category, error) {
	s.lastGetName = name
	return s.category, s.err
}

func (s *stubCategoryService) Create(context.Context, *services.CategoryCreateCommand) (*models.Category, error) {
	return s.category, s.err
}

func (s *stubCategoryService) List(context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func newCategoryRouter(h *CategoryHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/categories", h.CreateCategory)
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/categories/{name}", h.GetCategory)
	return mux
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	stub := &stubCategoryService{category: &models.Category{ID: "c1", Name: "Tech", Description: "tech stuff"}}
	mux := newCategoryRouter(NewCategoryHandler(stub, testLogger()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/Tech", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tech", stub.lastGetName)

	var view services.CategoryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "c1", view.ID)
	assert.Equal(t, "Tech", view.Name)
}

func TestCategoryHandler_GetCategoryNotFound(t *testing.T) {
	stub := &stubCategoryService{err: &domain.NotFoundError{Message: "Category not found"}}
	mux := newCategoryRouter(NewCategoryHandler(stub, testLogger()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories/Ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category not found")
}

func TestCategoryHandler_ListDoesNotShadowGet(t *testing.T) {
	stub := &stubCategoryService{categories: []models.Category{{ID: "c1", Name: "Tech"}}}
	mux := newCategoryRouter(NewCategoryHandler(stub, testLogger()))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, stub.lastGetName)

	var views []services.CategoryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Tech", views[0].Name)
}
