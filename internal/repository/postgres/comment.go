package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new comment
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (post_id, parent_id, author_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Comments)

	err := db.QueryRow(ctx, query,
		comment.PostID,
		comment.ParentID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("comment parent or post: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT id, post_id, parent_id, author_id, content, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Comments)

	var comment models.Comment
	err := db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.ParentID,
		&comment.AuthorID,
		&comment.Content,
		&comment.CreatedAt,
	)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// Update rewrites a comment's content; post, parent and author are immutable
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		UPDATE %s SET content = $1 WHERE id = $2
	`, r.tables.Comments)

	result, err := db.Exec(ctx, query, comment.Content, comment.ID)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID, domain.ErrNotFound)
	}

	return nil
}

// DeleteSubtree deletes a comment and every comment in its reply subtree.
// The walk runs as a recursive CTE inside the database, so arbitrarily deep
// reply chains never grow the Go stack.
func (r *PostgresCommentRepository) DeleteSubtree(ctx context.Context, id string) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM %s WHERE id = $1
			UNION ALL
			SELECT c.id FROM %s c JOIN subtree s ON c.parent_id = s.id
		)
		DELETE FROM %s WHERE id IN (SELECT id FROM subtree)
	`, r.tables.Comments, r.tables.Comments, r.tables.Comments)

	result, err := db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete comment subtree: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListTopLevel lists a post's null-parent comments
func (r *PostgresCommentRepository) ListTopLevel(ctx context.Context, postID string, page repositories.PageRequest) ([]*models.Comment, error) {
	db := GetExecutor(ctx, r.pool)

	limit := page.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT id, post_id, parent_id, author_id, content, created_at
		FROM %s
		WHERE post_id = $1 AND parent_id IS NULL
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`, r.tables.Comments)

	rows, err := db.Query(ctx, query, postID, limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.ParentID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

// ListByParentIDs batch-loads replies for the given parent ids in one query
func (r *PostgresCommentRepository) ListByParentIDs(ctx context.Context, parentIDs []string) (map[string][]*models.Comment, error) {
	if len(parentIDs) == 0 {
		return map[string][]*models.Comment{}, nil
	}
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT id, post_id, parent_id, author_id, content, created_at
		FROM %s
		WHERE parent_id = ANY($1)
		ORDER BY parent_id, created_at ASC
	`, r.tables.Comments)

	rows, err := db.Query(ctx, query, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]*models.Comment, len(parentIDs))
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.ParentID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reply: %w", err)
		}
		if comment.ParentID != nil {
			result[*comment.ParentID] = append(result[*comment.ParentID], &comment)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate replies: %w", err)
	}

	return result, nil
}
