package services

import (
	"context"

	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// PostService orchestrates creation, retrieval, update and deletion of the
// post aggregate, composing the tag resolver, category lookup, like ledger
// and comment tree manager.
type PostService interface {
	// Create resolves category and tags and persists a new post
	Create(ctx context.Context, cmd *PostCreateCommand) (*PostView, error)

	// Get fetches a post by id (comments omitted from the default read path)
	Get(ctx context.Context, id string) (*PostView, error)

	// List returns a page of posts whose title contains the filter,
	// case-insensitively; an empty filter matches all posts
	List(ctx context.Context, page repositories.PageRequest, titleFilter string) (*Page[PostView], error)

	// Update overwrites title/content and re-resolves tags and category.
	// Author id, creation timestamp and identity are never touched.
	Update(ctx context.Context, cmd *PostUpdateCommand) (*PostView, error)

	// Delete removes the post and, by cascade, its comments and likes
	Delete(ctx context.Context, id string) error

	// Like and Unlike delegate to the like ledger against the located post
	Like(ctx context.Context, cmd *LikeCommand) error
	Unlike(ctx context.Context, cmd *LikeCommand) error

	// AddComment resolves the target post and delegates to the comment service
	AddComment(ctx context.Context, cmd *CommentCreateCommand) (*models.Comment, error)
}

// PostCreateCommand carries the fields for creating a post
type PostCreateCommand struct {
	AuthorID     string   `json:"author_id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	TagNames     []string `json:"tags"`
	CategoryName string   `json:"category"`
}

// PostUpdateCommand carries the fields for a post update. Title and content
// are full-field overwrites, not a sparse merge.
type PostUpdateCommand struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	TagNames     []string `json:"tags"`
	CategoryName string   `json:"category"`
}

// LikeCommand identifies the (post, author) pair for like/unlike
type LikeCommand struct {
	PostID   string `json:"post_id"`
	AuthorID string `json:"author_id"`
}

// Page is a page of results with the total match count
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
