package repositories

import (
	"context"

	"blogboard/internal/domain/models"
)

// TagRepository defines data access operations for tags
type TagRepository interface {
	// GetByName finds a tag by exact (case-sensitive) name.
	// Returns (nil, nil) when no tag matches.
	GetByName(ctx context.Context, name string) (*models.Tag, error)

	// Create persists a new tag; the name carries a unique constraint
	Create(ctx context.Context, tag *models.Tag) error
}
