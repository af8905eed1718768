package models

import "time"

// LikeKey is the composite identity shared by all like-able kinds:
// (subject id, author id). The pair is the de-duplication invariant — at
// most one like per (subject, author) may exist at any time.
type LikeKey[S comparable] struct {
	SubjectID S      `json:"subject_id"`
	AuthorID  string `json:"author_id"`
}

// PostLike is the post-flavored like. It has no attributes beyond its key
// and a creation timestamp; likes are created and destroyed through the
// like/unlike operations, never updated.
type PostLike struct {
	Key       LikeKey[string] `json:"key"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewPostLike builds a like keyed by (postID, authorID).
func NewPostLike(postID, authorID string) PostLike {
	return PostLike{Key: LikeKey[string]{SubjectID: postID, AuthorID: authorID}}
}
