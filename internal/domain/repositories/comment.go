package repositories

import (
	"context"

	"blogboard/internal/domain/models"
)

// CommentRepository defines data access operations for comments
type CommentRepository interface {
	// Create persists a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// GetByID retrieves a comment by ID
	GetByID(ctx context.Context, id string) (*models.Comment, error)

	// Update updates an existing comment
	Update(ctx context.Context, comment *models.Comment) error

	// DeleteSubtree deletes a comment and every comment in its reply subtree
	DeleteSubtree(ctx context.Context, id string) error

	// ListTopLevel lists a post's null-parent comments
	ListTopLevel(ctx context.Context, postID string, page PageRequest) ([]*models.Comment, error)

	// ListByParentIDs batch-loads replies for the given parent ids
	ListByParentIDs(ctx context.Context, parentIDs []string) (map[string][]*models.Comment, error)
}
