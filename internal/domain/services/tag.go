package services

import (
	"context"

	"blogboard/internal/domain/models"
)

// TagResolver maps raw tag names to canonical tags, creating missing ones.
type TagResolver interface {
	// Resolve returns the tags for the given names in input order, creating
	// any that do not exist yet. A nil input returns nil — not an empty
	// slice; callers rely on the distinction.
	Resolve(ctx context.Context, names []string) ([]models.Tag, error)
}

// LikeLedger enforces at-most-one-like-per-(post, author) on a post's like
// collection. Both operations are idempotency-guarding, not idempotent:
// a repeated like or unlike is rejected rather than silently accepted.
type LikeLedger interface {
	Like(ctx context.Context, post *models.Post, authorID string) error
	Unlike(ctx context.Context, post *models.Post, authorID string) error
}
