package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blogboard/internal/config"
	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepository, logger *slog.Logger) services.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Get finds a category by case-insensitive exact name. Categories are never
// auto-created on the post path.
func (s *categoryService) Get(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, &domain.NotFoundError{Message: "Category not found"}
	}
	return category, nil
}

// Create persists a new category unless the name collides case-insensitively
func (s *categoryService) Create(ctx context.Context, cmd *services.CategoryCreateCommand) (*models.Category, error) {
	if cmd == nil {
		return nil, &domain.ValidationError{Message: "category create command is required"}
	}
	if err := s.validateCreateCommand(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ConflictError{
			Message:      "Category name already exists",
			ResourceType: "category",
			ResourceID:   cmd.Name,
		}
	}

	category := &models.Category{
		Name:        cmd.Name,
		Description: cmd.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created", "id", category.ID, "name", category.Name)

	return category, nil
}

// List returns all categories
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) validateCreateCommand(cmd *services.CategoryCreateCommand) error {
	return validation.ValidateStruct(cmd,
		validation.Field(&cmd.Name,
			validation.Required,
			validation.Length(1, config.MaxCategoryNameLength),
		),
		validation.Field(&cmd.Description,
			validation.Length(0, config.MaxDescriptionLength),
		),
	)
}
