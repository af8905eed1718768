package services

import (
	"context"

	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// CommentService manages the per-post comment forest: creation with parent
// linkage, content replacement and cascading subtree deletion.
type CommentService interface {
	// Create builds a comment bound to the given post; a set parent id must
	// resolve to an existing comment
	Create(ctx context.Context, cmd *CommentCreateCommand, post *models.Post) (*models.Comment, error)

	// Update replaces the content of an existing comment
	Update(ctx context.Context, cmd *CommentUpdateCommand) (*models.Comment, error)

	// Delete removes a comment and its entire reply subtree
	Delete(ctx context.Context, id string) error

	// ListByPost returns a post's top-level comments with one level of
	// replies populated
	ListByPost(ctx context.Context, postID string, page repositories.PageRequest) ([]*models.Comment, error)
}

// CommentCreateCommand carries the fields for creating a comment
type CommentCreateCommand struct {
	PostID          string  `json:"post_id"`
	ParentCommentID *string `json:"parent_comment_id,omitempty"`
	AuthorID        string  `json:"author_id"`
	Content         string  `json:"content"`
}

// CommentUpdateCommand replaces a comment's content
type CommentUpdateCommand struct {
	CommentID  string `json:"comment_id"`
	NewContent string `json:"new_content"`
}
