package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPost_IsUpdated(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)

	tests := []struct {
		name      string
		createdAt *time.Time
		updatedAt *time.Time
		want      bool
	}{
		{"both absent", nil, nil, false},
		{"only created", &created, nil, false},
		{"only updated", nil, &later, false},
		{"equal timestamps", &created, &created, false},
		{"updated after created", &created, &later, true},
		{"updated before created", &later, &created, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := &Post{CreatedAt: tt.createdAt, UpdatedAt: tt.updatedAt}
			assert.Equal(t, tt.want, post.IsUpdated())
		})
	}
}

func TestPost_LikeBy(t *testing.T) {
	post := &Post{
		ID: "post-1",
		Likes: []PostLike{
			NewPostLike("post-1", "alice"),
			NewPostLike("post-1", "bob"),
		},
	}

	like := post.LikeBy("bob")
	if assert.NotNil(t, like) {
		assert.Equal(t, "bob", like.Key.AuthorID)
		assert.Equal(t, "post-1", like.Key.SubjectID)
	}

	assert.Nil(t, post.LikeBy("carol"))
	assert.Nil(t, (&Post{}).LikeBy("alice"))
}
