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

type postService struct {
	postRepo   repositories.PostRepository
	categories services.CategoryService
	tags       services.TagResolver
	comments   services.CommentService
	likes      services.LikeLedger
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(
	postRepo repositories.PostRepository,
	categories services.CategoryService,
	tags services.TagResolver,
	comments services.CommentService,
	likes services.LikeLedger,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.PostService {
	return &postService{
		postRepo:   postRepo,
		categories: categories,
		tags:       tags,
		comments:   comments,
		likes:      likes,
		txManager:  txManager,
		logger:     logger,
	}
}

// Create resolves category and tags and persists a new post with empty
// comment and like collections
func (s *postService) Create(ctx context.Context, cmd *services.PostCreateCommand) (*services.PostView, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "post create command is required"}
	}
	if err := s.validateCreateCommand(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	category, err := s.categories.Get(ctx, cmd.CategoryName)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    cmd.Title,
		Content:  cmd.Content,
		AuthorID: cmd.AuthorID,
		Category: category,
	}
	post.CategoryID = &category.ID

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		tags, err := s.tags.Resolve(txCtx, cmd.TagNames)
		if err != nil {
			return err
		}
		post.Tags = tags
		return s.postRepo.Create(txCtx, post, tagIDs(tags))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"id", post.ID,
		"author_id", post.AuthorID,
		"category", category.Name,
		"tags", len(post.Tags),
	)

	return services.NewPostView(post), nil
}

// Get fetches a post by id. Comments are intentionally omitted from this
// read path; they are listed through the comment service.
func (s *postService) Get(ctx context.Context, id string) (*services.PostView, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return services.NewPostView(post), nil
}

// List returns a page of post views matched by case-insensitive substring
// title search; pagination parameters pass through unchanged
func (s *postService) List(ctx context.Context, page repositories.PageRequest, titleFilter string) (*services.Page[services.PostView], error) {
	posts, total, err := s.postRepo.SearchByTitle(ctx, titleFilter, page)
	if err != nil {
		return nil, err
	}

	items := make([]services.PostView, len(posts))
	for i := range posts {
		items[i] = *services.NewPostView(&posts[i])
	}

	return &services.Page[services.PostView]{
		Items:  items,
		Total:  total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}, nil
}

// Update overwrites title and content unconditionally and re-resolves tags
// and category exactly as in Create. Identity, author id and creation
// timestamp are never touched.
func (s *postService) Update(ctx context.Context, cmd *services.PostUpdateCommand) (*services.PostView, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "post update command is required"}
	}
	if err := s.validateUpdateCommand(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var post *models.Post
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		post, err = s.getPost(txCtx, cmd.ID)
		if err != nil {
			return err
		}

		category, err := s.categories.Get(txCtx, cmd.CategoryName)
		if err != nil {
			return err
		}
		tags, err := s.tags.Resolve(txCtx, cmd.TagNames)
		if err != nil {
			return err
		}

		post.Title = cmd.Title
		post.Content = cmd.Content
		post.Category = category
		post.CategoryID = &category.ID
		post.Tags = tags

		return s.postRepo.Update(txCtx, post, tagIDs(tags))
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("post updated", "id", post.ID)

	return services.NewPostView(post), nil
}

// Delete removes the post; comments and likes go with it by cascade.
// A missing id surfaces as the persistence layer's not-found, propagated
// rather than swallowed.
func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("post deleted", "id", id)

	return nil
}

// Like delegates to the like ledger against the located post. The lookup
// and the ledger mutation share one transaction.
func (s *postService) Like(ctx context.Context, cmd *services.LikeCommand) error {
	if err := s.validateLikeCommand(cmd); err != nil {
		return err
	}

	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		post, err := s.getPost(txCtx, cmd.PostID)
		if err != nil {
			return err
		}
		return s.likes.Like(txCtx, post, cmd.AuthorID)
	})
}

// Unlike delegates to the like ledger against the located post
func (s *postService) Unlike(ctx context.Context, cmd *services.LikeCommand) error {
	if err := s.validateLikeCommand(cmd); err != nil {
		return err
	}

	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		post, err := s.getPost(txCtx, cmd.PostID)
		if err != nil {
			return err
		}
		return s.likes.Unlike(txCtx, post, cmd.AuthorID)
	})
}

// AddComment resolves the target post and delegates to the comment service
func (s *postService) AddComment(ctx context.Context, cmd *services.CommentCreateCommand) (*models.Comment, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "comment create command is required"}
	}

	post, err := s.getPost(ctx, cmd.PostID)
	if err != nil {
		return nil, err
	}

	return s.comments.Create(ctx, cmd, post)
}

// getPost translates the repository's not-found into the contract message
func (s *postService) getPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Message: "Post not found"}
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) validateCreateCommand(cmd *services.PostCreateCommand) error {
	return validation.ValidateStruct(cmd,
		validation.Field(&cmd.AuthorID, validation.Required),
		validation.Field(&cmd.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&cmd.Content, validation.Length(0, config.MaxContentLength)),
	)
}

func (s *postService) validateUpdateCommand(cmd *services.PostUpdateCommand) error {
	return validation.ValidateStruct(cmd,
		validation.Field(&cmd.ID, validation.Required),
		validation.Field(&cmd.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&cmd.Content, validation.Length(0, config.MaxContentLength)),
	)
}

func (s *postService) validateLikeCommand(cmd *services.LikeCommand) error {
	if cmd == nil {
		return &domain.ValidationError{Message: "like command is required"}
	}
	err := validation.ValidateStruct(cmd,
		validation.Field(&cmd.PostID, validation.Required),
		validation.Field(&cmd.AuthorID, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// tagIDs projects resolved tags onto their ids for the join table
func tagIDs(tags []models.Tag) []string {
	if tags == nil {
		return nil
	}
	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids
}
