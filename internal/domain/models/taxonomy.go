package models

// Tag is a shared label (many-to-many with posts). Tags are created lazily
// on first use and never deleted by post mutation. Name is unique and
// case-sensitive as stored.
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Category is referenced, never owned, by posts. Name is unique
// case-insensitively; categories are never auto-created.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
