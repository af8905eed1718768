package service

import (
	"context"
	"log/slog"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
)

type likeLedger struct {
	postRepo repositories.PostRepository
	logger   *slog.Logger
}

// NewLikeLedger creates a new like ledger
func NewLikeLedger(postRepo repositories.PostRepository, logger *slog.Logger) services.LikeLedger {
	return &likeLedger{
		postRepo: postRepo,
		logger:   logger,
	}
}

// Like appends a like keyed by (post id, author id) to the post's like
// collection. A repeated like is rejected, not absorbed. The caller runs
// this inside a transaction; the unique (post_id, author_id) key catches
// the concurrent duplicate the in-memory scan cannot see.
func (s *likeLedger) Like(ctx context.Context, post *models.Post, authorID string) error {
	if post.ID == "" {
		return &domain.ValidationError{Message: "Post must have an ID"}
	}

	if post.LikeBy(authorID) != nil {
		return &domain.ConflictError{
			Message:      "Already liked",
			ResourceType: "like",
			ResourceID:   post.ID,
		}
	}

	like := models.NewPostLike(post.ID, authorID)
	if err := s.postRepo.InsertLike(ctx, like); err != nil {
		return err
	}
	post.Likes = append(post.Likes, like)

	s.logger.Info("post liked", "post_id", post.ID, "author_id", authorID)

	return nil
}

// Unlike removes the author's like from the post's collection, leaving all
// other entries untouched. Unliking without a prior like is rejected.
func (s *likeLedger) Unlike(ctx context.Context, post *models.Post, authorID string) error {
	if post.ID == "" {
		return &domain.ValidationError{Message: "Post must have an ID"}
	}

	existing := post.LikeBy(authorID)
	if existing == nil {
		return &domain.ConflictError{
			Message:      "Already unliked or never liked",
			ResourceType: "like",
			ResourceID:   post.ID,
		}
	}

	if err := s.postRepo.DeleteLike(ctx, existing.Key); err != nil {
		return err
	}

	kept := post.Likes[:0]
	for _, like := range post.Likes {
		if like.Key.AuthorID != authorID {
			kept = append(kept, like)
		}
	}
	post.Likes = kept

	s.logger.Info("post unliked", "post_id", post.ID, "author_id", authorID)

	return nil
}
