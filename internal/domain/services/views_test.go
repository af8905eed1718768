package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogboard/internal/domain/models"
)

func TestNewPostView_CountsLikes(t *testing.T) {
	created := time.Now()
	post := &models.Post{
		ID:        "p1",
		Title:     "Title",
		Content:   "Content",
		AuthorID:  "a1",
		CreatedAt: &created,
		Likes: []models.PostLike{
			models.NewPostLike("p1", "u1"),
			models.NewPostLike("p1", "u2"),
		},
	}

	view := NewPostView(post)
	assert.Equal(t, 2, view.Likes)
	assert.False(t, view.IsUpdated)
	assert.Nil(t, view.Category)
	assert.Empty(t, view.Tags)
}

func TestNewPostView_ProjectsTagsAndCategory(t *testing.T) {
	post := &models.Post{
		ID: "p1",
		Tags: []models.Tag{
			{ID: "t1", Name: "go", Description: "description"},
			{ID: "t2", Name: "web", Description: "description"},
		},
		Category: &models.Category{ID: "c1", Name: "Tech", Description: "tech stuff"},
	}

	view := NewPostView(post)
	require.Len(t, view.Tags, 2)
	assert.Equal(t, TagView{Name: "go", Description: "description"}, view.Tags[0])
	require.NotNil(t, view.Category)
	assert.Equal(t, "Tech", view.Category.Name)
	assert.Equal(t, "c1", view.Category.ID)
}
