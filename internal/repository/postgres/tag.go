package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// PostgresTagRepository implements the TagRepository interface
type PostgresTagRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTagRepository creates a new tag repository
func NewTagRepository(config *RepositoryConfig) repositories.TagRepository {
	return &PostgresTagRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByName finds a tag by exact name. Returns (nil, nil) on no match.
func (r *PostgresTagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT id, name, description FROM %s WHERE name = $1
	`, r.tables.Tags)

	var tag models.Tag
	err := db.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name, &tag.Description)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil // Not found, not an error
		}
		return nil, fmt.Errorf("get tag by name: %w", err)
	}

	return &tag, nil
}

// Create persists a new tag. A concurrent create of the same name trips the
// unique constraint and is reported as a conflict; callers re-resolve.
func (r *PostgresTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (name, description) VALUES ($1, $2)
		RETURNING id
	`, r.tables.Tags)

	err := db.QueryRow(ctx, query, tag.Name, tag.Description).Scan(&tag.ID)
	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("tag '%s': %w", tag.Name, domain.ErrConflict)
		}
		return fmt.Errorf("create tag: %w", err)
	}

	return nil
}
