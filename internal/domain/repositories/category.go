package repositories

import (
	"context"

	"blogboard/internal/domain/models"
)

// CategoryRepository defines data access operations for categories
type CategoryRepository interface {
	// GetByName finds a category by case-insensitive exact name.
	// Returns (nil, nil) when no category matches.
	GetByName(ctx context.Context, name string) (*models.Category, error)

	// ExistsByName reports whether a case-insensitive name collision exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new category
	Create(ctx context.Context, category *models.Category) error

	// List returns all categories
	List(ctx context.Context) ([]models.Category, error)
}
