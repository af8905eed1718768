package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
	"blogboard/internal/domain/services"
)

// placeholderTagDescription is assigned to tags created lazily on first use.
const placeholderTagDescription = "description"

type tagResolver struct {
	tagRepo repositories.TagRepository
	logger  *slog.Logger
}

// NewTagResolver creates a new tag resolver
func NewTagResolver(tagRepo repositories.TagRepository, logger *slog.Logger) services.TagResolver {
	return &tagResolver{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

// Resolve maps raw tag names to canonical tags in input order, creating
// missing ones with a placeholder description. Nil input resolves to nil —
// the distinction from an empty slice is part of the contract.
func (s *tagResolver) Resolve(ctx context.Context, names []string) ([]models.Tag, error) {
	if names == nil {
		return nil, nil
	}

	resolved := make([]models.Tag, 0, len(names))
	seen := make(map[string]models.Tag, len(names))

	for _, name := range names {
		if tag, ok := seen[name]; ok {
			// Duplicate input names become repeated references to the
			// same stored tag.
			resolved = append(resolved, tag)
			continue
		}

		tag, err := s.resolveOne(ctx, name)
		if err != nil {
			return nil, err
		}

		seen[name] = *tag
		resolved = append(resolved, *tag)
	}

	return resolved, nil
}

// resolveOne finds a tag by exact name, creating it when absent. A lost
// creation race against the unique name constraint falls back to a second
// lookup.
func (s *tagResolver) resolveOne(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}

	created := &models.Tag{Name: name, Description: placeholderTagDescription}
	err = s.tagRepo.Create(ctx, created)
	if err == nil {
		s.logger.Info("tag created", "name", name, "id", created.ID)
		return created, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return nil, err
	}

	tag, lookupErr := s.tagRepo.GetByName(ctx, name)
	if lookupErr != nil {
		return nil, lookupErr
	}
	if tag == nil {
		return nil, fmt.Errorf("tag '%s' vanished after conflict: %w", name, err)
	}
	return tag, nil
}
