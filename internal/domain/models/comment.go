package models

import "time"

// Comment belongs to a post and optionally to a parent comment, forming a
// forest rooted at null-parent comments. Parent linkage is by id, not by
// embedded object graph; replies are populated on demand.
type Comment struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	ParentID  *string    `json:"parent_id,omitempty"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`

	Replies []*Comment `json:"replies,omitempty"`
}
