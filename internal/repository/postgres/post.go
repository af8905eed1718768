package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"blogboard/internal/domain"
	"blogboard/internal/domain/models"
	"blogboard/internal/domain/repositories"
)

// PostgresPostRepository implements the PostRepository interface
type PostgresPostRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPostRepository creates a new post repository
func NewPostRepository(config *RepositoryConfig) repositories.PostRepository {
	return &PostgresPostRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new post and its tag references. Runs against the
// context transaction when one is present so the row and its tag links
// commit together.
func (r *PostgresPostRepository) Create(ctx context.Context, post *models.Post, tagIDs []string) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (title, content, author_id, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.tables.Posts)

	err := db.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CategoryID,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("category %v: %w", post.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create post: %w", err)
	}

	return r.linkTags(ctx, post.ID, tagIDs)
}

// GetByID retrieves a post with category, tags and likes loaded
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.content, p.author_id, p.category_id,
		       p.created_at, p.updated_at,
		       c.id, c.name, c.description
		FROM %s p
		LEFT JOIN %s c ON c.id = p.category_id
		WHERE p.id = $1
	`, r.tables.Posts, r.tables.Categories)

	var post models.Post
	var catID, catName, catDescription *string
	err := db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CategoryID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&catID,
		&catName,
		&catDescription,
	)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if catID != nil {
		post.Category = &models.Category{ID: *catID, Name: *catName}
		if catDescription != nil {
			post.Category.Description = *catDescription
		}
	}

	if err := r.loadTags(ctx, []*models.Post{&post}); err != nil {
		return nil, err
	}
	if err := r.loadLikes(ctx, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update overwrites title, content and category, replaces the tag set and
// stamps updated_at
func (r *PostgresPostRepository) Update(ctx context.Context, post *models.Post, tagIDs []string) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, content = $2, category_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`, r.tables.Posts)

	err := db.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.CategoryID,
		post.ID,
	).Scan(&post.UpdatedAt)
	if err != nil {
		if isPgNoRowsError(err) {
			return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update post: %w", err)
	}

	unlink := fmt.Sprintf(`DELETE FROM %s WHERE post_id = $1`, r.tables.PostTags)
	if _, err := db.Exec(ctx, unlink, post.ID); err != nil {
		return fmt.Errorf("unlink post tags: %w", err)
	}

	return r.linkTags(ctx, post.ID, tagIDs)
}

// Delete removes a post. Comments and likes are removed by the ON DELETE
// CASCADE on their foreign keys.
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Posts)

	result, err := db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SearchByTitle lists posts whose title contains the filter as a
// case-insensitive substring, with the total match count
func (r *PostgresPostRepository) SearchByTitle(ctx context.Context, titleFilter string, page repositories.PageRequest) ([]models.Post, int, error) {
	db := GetExecutor(ctx, r.pool)

	countQuery := fmt.Sprintf(`
		SELECT count(*) FROM %s WHERE title ILIKE '%%' || $1 || '%%'
	`, r.tables.Posts)

	var total int
	if err := db.QueryRow(ctx, countQuery, titleFilter).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.content, p.author_id, p.category_id,
		       p.created_at, p.updated_at,
		       c.id, c.name, c.description
		FROM %s p
		LEFT JOIN %s c ON c.id = p.category_id
		WHERE p.title ILIKE '%%' || $1 || '%%'
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`, r.tables.Posts, r.tables.Categories, orderClause(page.Sort))

	limit := page.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(ctx, query, titleFilter, limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("search posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		var catID, catName, catDescription *string
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.AuthorID,
			&post.CategoryID,
			&post.CreatedAt,
			&post.UpdatedAt,
			&catID,
			&catName,
			&catDescription,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan post: %w", err)
		}
		if catID != nil {
			post.Category = &models.Category{ID: *catID, Name: *catName}
			if catDescription != nil {
				post.Category.Description = *catDescription
			}
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate posts: %w", err)
	}

	refs := make([]*models.Post, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	if err := r.loadTags(ctx, refs); err != nil {
		return nil, 0, err
	}
	for i := range posts {
		if err := r.loadLikes(ctx, &posts[i]); err != nil {
			return nil, 0, err
		}
	}

	return posts, total, nil
}

// InsertLike adds a like row. The composite primary key on
// (post_id, author_id) backs the at-most-one-like invariant, so a
// concurrent duplicate surfaces here as a unique violation.
func (r *PostgresPostRepository) InsertLike(ctx context.Context, like models.PostLike) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		INSERT INTO %s (post_id, author_id) VALUES ($1, $2)
	`, r.tables.PostLikes)

	_, err := db.Exec(ctx, query, like.Key.SubjectID, like.Key.AuthorID)
	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "Already liked",
				ResourceType: "like",
				ResourceID:   like.Key.SubjectID,
			}
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("post %s: %w", like.Key.SubjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert like: %w", err)
	}

	return nil
}

// DeleteLike removes the like with the given key
func (r *PostgresPostRepository) DeleteLike(ctx context.Context, key models.LikeKey[string]) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		DELETE FROM %s WHERE post_id = $1 AND author_id = $2
	`, r.tables.PostLikes)

	result, err := db.Exec(ctx, query, key.SubjectID, key.AuthorID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	if result.RowsAffected() == 0 {
		return &domain.ConflictError{
			Message:      "Already unliked or never liked",
			ResourceType: "like",
			ResourceID:   key.SubjectID,
		}
	}

	return nil
}

// linkTags inserts the post_tags rows for the given tag ids
func (r *PostgresPostRepository) linkTags(ctx context.Context, postID string, tagIDs []string) error {
	if len(tagIDs) == 0 {
		return nil
	}
	db := GetExecutor(ctx, r.pool)

	// Duplicate references in the input collapse onto the join table's
	// primary key; position preserves input order for reads.
	query := fmt.Sprintf(`
		INSERT INTO %s (post_id, tag_id, position)
		SELECT $1, t.id, t.ord
		FROM unnest($2::uuid[]) WITH ORDINALITY AS t(id, ord)
		ON CONFLICT (post_id, tag_id) DO NOTHING
	`, r.tables.PostTags)

	if _, err := db.Exec(ctx, query, postID, tagIDs); err != nil {
		return fmt.Errorf("link post tags: %w", err)
	}
	return nil
}

// loadTags populates Tags for the given posts with one query, preserving
// the order tags were attached in
func (r *PostgresPostRepository) loadTags(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	db := GetExecutor(ctx, r.pool)

	ids := make([]string, len(posts))
	byID := make(map[string]*models.Post, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	query := fmt.Sprintf(`
		SELECT pt.post_id, t.id, t.name, t.description
		FROM %s pt
		JOIN %s t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1)
		ORDER BY pt.position ASC
	`, r.tables.PostTags, r.tables.Tags)

	rows, err := db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var tag models.Tag
		if err := rows.Scan(&postID, &tag.ID, &tag.Name, &tag.Description); err != nil {
			return fmt.Errorf("scan post tag: %w", err)
		}
		if post, ok := byID[postID]; ok {
			post.Tags = append(post.Tags, tag)
		}
	}
	return rows.Err()
}

// loadLikes populates the Likes collection of a post
func (r *PostgresPostRepository) loadLikes(ctx context.Context, post *models.Post) error {
	db := GetExecutor(ctx, r.pool)

	query := fmt.Sprintf(`
		SELECT post_id, author_id, created_at
		FROM %s
		WHERE post_id = $1
		ORDER BY created_at ASC
	`, r.tables.PostLikes)

	rows, err := db.Query(ctx, query, post.ID)
	if err != nil {
		return fmt.Errorf("load post likes: %w", err)
	}
	defer rows.Close()

	post.Likes = nil
	for rows.Next() {
		var like models.PostLike
		if err := rows.Scan(&like.Key.SubjectID, &like.Key.AuthorID, &like.CreatedAt); err != nil {
			return fmt.Errorf("scan post like: %w", err)
		}
		post.Likes = append(post.Likes, like)
	}
	return rows.Err()
}

// orderClause whitelists the sort expression; pagination sort is opaque to
// the core but must not reach the SQL string unchecked
func orderClause(sort string) string {
	column := "created_at"
	direction := "DESC"

	fields := strings.Fields(strings.ToLower(sort))
	if len(fields) > 0 {
		switch fields[0] {
		case "title", "created_at", "updated_at", "author_id":
			column = fields[0]
		}
	}
	if len(fields) > 1 && fields[1] == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}
