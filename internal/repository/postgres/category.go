package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// PostgresCategoryRepository implements the CategoryRepository interface
type PostgresCategoryRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &PostgresCategoryRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByName finds a category by case-insensitive exact name.
// Returns (nil, nil) on no match.
func (r *PostgresCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT id, name, description FROM %s WHERE lower(name) = lower($1)
	`, r.tables.Categories)

	var category models.Category
	err := db.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil // Not found, not an error
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}

	return &category, nil
}

// ExistsByName reports whether a case-insensitive name collision exists
func (r *PostgresCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT EXISTS (SELECT 1 FROM %s WHERE lower(name) = lower($1))
	`, r.tables.Categories)

	var exists bool
	if err := db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("category exists by name: %w", err)
	}

	return exists, nil
}

// Create persists a new category. The unique index on lower(name) backs the
// application-level existence check against concurrent creates.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (name, description) VALUES ($1, $2)
		RETURNING id
	`, r.tables.Categories)

	err := db.QueryRow(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "Category name already exists",
				ResourceType: "category",
				ResourceID:   category.Name,
			}
		}
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

// List returns all categories ordered by name
func (r *PostgresCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT id, name, description FROM %s ORDER BY name ASC
	`, r.tables.Categories)

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}
