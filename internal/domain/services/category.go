package services

import (
	"context"

	"blogboard/internal/domain/models"
)

// CategoryService resolves category names and creates categories.
// Categories must pre-exist for posts; they are never auto-created.
type CategoryService interface {
	// Get finds a category by case-insensitive exact name
	Get(ctx context.Context, name string) (*models.Category, error)

	// Create persists a new category unless a case-insensitive name
	// collision exists
	Create(ctx context.Context, cmd *CategoryCreateCommand) (*models.Category, error)

	// List returns all categories
	List(ctx context.Context) ([]models.Category, error)
}

// CategoryCreateCommand carries the fields for creating a category
type CategoryCreateCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
