package services

import (
	"time"

	"blogboard/internal/domain/models"
)

// Views are read-only projections for external consumption. The derived
// fields are computed inline here, per entity, with no mapping framework.

// PostView projects a post. Likes is the count of like records, never the
// records themselves.
type PostView struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	AuthorID  string        `json:"author_id"`
	Likes     int           `json:"likes"`
	Tags      []TagView     `json:"tags,omitempty"`
	Category  *CategoryView `json:"category,omitempty"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
	IsUpdated bool          `json:"is_updated"`
}

// TagView flattens a tag to its public pair
type TagView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryView carries a category's public fields
type CategoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewPostView projects a post into its view representation
func NewPostView(post *models.Post) *PostView {
	view := &PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Likes:     len(post.Likes),
		CreatedAt: post.CreatedAt,
		IsUpdated: post.IsUpdated(),
	}
	for _, tag := range post.Tags {
		view.Tags = append(view.Tags, NewTagView(tag))
	}
	if post.Category != nil {
		cv := NewCategoryView(*post.Category)
		view.Category = &cv
	}
	return view
}

// NewTagView projects a tag into its (name, description) pair
func NewTagView(tag models.Tag) TagView {
	return TagView{Name: tag.Name, Description: tag.Description}
}

// NewCategoryView projects a category
func NewCategoryView(category models.Category) CategoryView {
	return CategoryView{ID: category.ID, Name: category.Name, Description: category.Description}
}
