package models

import "time"

// Post is the aggregate root: tags, category, likes and comments are
// created and mutated consistently through it.
type Post struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	AuthorID   string     `json:"author_id"` // opaque foreign id, not resolved here
	CategoryID *string    `json:"category_id,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`

	// Populated by the repository on read; nil when not loaded.
	Category *Category `json:"category,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
	Likes    []PostLike `json:"likes,omitempty"`
}

// IsUpdated reports whether the post was modified after creation.
// Both timestamps must be present and updated_at strictly after created_at;
// any other combination (both absent, one absent, equal) is not updated.
func (p *Post) IsUpdated() bool {
	if p.CreatedAt == nil || p.UpdatedAt == nil {
		return false
	}
	return p.UpdatedAt.After(*p.CreatedAt)
}

// LikeBy returns the like placed by the given author, or nil.
func (p *Post) LikeBy(authorID string) *PostLike {
	for i := range p.Likes {
		if p.Likes[i].Key.AuthorID == authorID {
			return &p.Likes[i]
		}
	}
	return nil
}
