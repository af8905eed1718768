package repositories

import (
	"context"

	"blogboard/internal/domain/models"
)

// PageRequest carries pagination parameters. They are opaque to the core
// and passed through to the persistence layer unchanged.
type PageRequest struct {
	Offset int
	Limit  int
	Sort   string // column name with optional " desc" suffix
}

// PostRepository defines data access operations for the post aggregate.
// Reads return the aggregate with category, tags and likes populated;
// comments are fetched through CommentRepository.
type PostRepository interface {
	// Create persists a new post and its tag references
	Create(ctx context.Context, post *models.Post, tagIDs []string) error

	// GetByID retrieves a post with category, tags and likes loaded
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// Update overwrites title, content and category, replaces the tag set
	// and stamps updated_at
	Update(ctx context.Context, post *models.Post, tagIDs []string) error

	// Delete removes a post; comments and likes go with it by cascade
	Delete(ctx context.Context, id string) error

	// SearchByTitle lists posts whose title contains the filter as a
	// case-insensitive substring (empty filter matches all), with total count
	SearchByTitle(ctx context.Context, titleFilter string, page PageRequest) ([]models.Post, int, error)

	// InsertLike adds a like row; a duplicate (post, author) pair is a conflict
	InsertLike(ctx context.Context, like models.PostLike) error

	// DeleteLike removes the like with the given key
	DeleteLike(ctx context.Context, key models.LikeKey[string]) error
}
