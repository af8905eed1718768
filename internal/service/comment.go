package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogboard/internal/config"
	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
)

type commentService struct {
	commentRepo repositories.CommentRepository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repositories.CommentRepository, logger *slog.Logger) services.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Create builds a comment bound to the given post. When a parent comment id
// is set it must resolve; a dangling parent creates nothing.
func (s *commentService) Create(ctx context.Context, cmd *services.CommentCreateCommand, post *models.Post) (*models.Comment, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "comment create command is required"}
	}
	if err := s.validateCreateCommand(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	comment := &models.Comment{
		PostID:   post.ID,
		AuthorID: cmd.AuthorID,
		Content:  cmd.Content,
	}

	if cmd.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *cmd.ParentCommentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.NotFoundError{Message: "Parent comment not found"}
			}
			return nil, err
		}
		comment.ParentID = &parent.ID
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"id", comment.ID,
		"post_id", comment.PostID,
		"parent_id", comment.ParentID,
	)

	return comment, nil
}

// Update replaces the content of an existing comment; everything else is
// immutable after creation
func (s *commentService) Update(ctx context.Context, cmd *services.CommentUpdateCommand) (*models.Comment, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "comment update command is required"}
	}

	comment, err := s.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: "Comment not found"}
		}
		return nil, err
	}

	comment.Content = cmd.NewContent
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// Delete removes a comment and, transitively, every comment in its reply
// subtree
func (s *commentService) Delete(ctx context.Context, id string) error {
	if err := s.commentRepo.DeleteSubtree(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Message: "Comment not found"}
		}
		return err
	}

	s.logger.Info("comment subtree deleted", "id", id)

	return nil
}

// ListByPost returns a post's top-level comments with one level of replies
// populated via a batched parent-id fetch
func (s *commentService) ListByPost(ctx context.Context, postID string, page repositories.PageRequest) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListTopLevel(ctx, postID, page)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return comments, nil
	}

	parentIDs := make([]string, len(comments))
	for i, comment := range comments {
		parentIDs[i] = comment.ID
	}

	replies, err := s.commentRepo.ListByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		comment.Replies = replies[comment.ID]
	}

	return comments, nil
}

func (s *commentService) validateCreateCommand(cmd *services.CommentCreateCommand) error {
	return validation.ValidateStruct(cmd,
		validation.Field(&cmd.AuthorID, validation.Required),
		validation.Field(&cmd.Content,
			validation.Required,
			validation.Length(1, config.MaxCommentLength),
		),
	)
}
