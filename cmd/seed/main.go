package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"blogboard/internal/config"
	"blogboard/internal/domain/services"
	"blogboard/internal/repository/postgres"
	"blogboard/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureComment struct {
	Author  string           `yaml:"author"`
	Content string           `yaml:"content"`
	Replies []fixtureComment `yaml:"replies"`
}

type fixturePost struct {
	Author   string           `yaml:"author"`
	Title    string           `yaml:"title"`
	Content  string           `yaml:"content"`
	Category string           `yaml:"category"`
	Tags     []string         `yaml:"tags"`
	Likes    []string         `yaml:"likes"`
	Comments []fixtureComment `yaml:"comments"`
}

type fixtureCategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type fixtures struct {
	Categories []fixtureCategory `yaml:"categories"`
	Posts      []fixturePost     `yaml:"posts"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed fixtures (for use with shell scripts)")
	clearData := flag.Bool("clear-data", false, "Clear all rows (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *clearData {
		log.Printf("🧹 Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	// Exit early if schema-only mode
	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("🧹 Clearing existing rows...")
		if err := clearAllData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	// Parse embedded fixtures
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		log.Fatalf("Failed to parse fixtures: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	postRepo := postgres.NewPostRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	tagRepo := postgres.NewTagRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	tagResolver := service.NewTagResolver(tagRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	commentService := service.NewCommentService(commentRepo, logger)
	likeLedger := service.NewLikeLedger(postRepo, logger)
	postService := service.NewPostService(
		postRepo, categoryService, tagResolver, commentService, likeLedger, txManager, logger,
	)

	// Clear existing rows so repeated runs stay deterministic
	log.Println("⚠️  Clearing existing rows...")
	if err := clearAllData(ctx, pool, tables); err != nil {
		log.Printf("Warning: Could not clear data: %v", err)
	}

	// Seed categories first; posts reference them by name
	log.Println("🏷️  Seeding categories...")
	for _, c := range fx.Categories {
		if _, err := categoryService.Create(ctx, &services.CategoryCreateCommand{
			Name:        c.Name,
			Description: c.Description,
		}); err != nil {
			log.Printf("❌ Failed to create category '%s': %v", c.Name, err)
		}
	}

	// Seed posts with their tags, likes and comment trees
	log.Println("📝 Seeding posts...")
	for i, p := range fx.Posts {
		view, err := postService.Create(ctx, &services.PostCreateCommand{
			AuthorID:     p.Author,
			Title:        p.Title,
			Content:      p.Content,
			TagNames:     p.Tags,
			CategoryName: p.Category,
		})
		if err != nil {
			log.Printf("❌ Failed to create post '%s': %v", p.Title, err)
			continue
		}

		for _, authorID := range p.Likes {
			if err := postService.Like(ctx, &services.LikeCommand{
				PostID:   view.ID,
				AuthorID: authorID,
			}); err != nil {
				log.Printf("❌ Failed to like post '%s': %v", p.Title, err)
			}
		}

		if err := seedComments(ctx, postService, view.ID, nil, p.Comments); err != nil {
			log.Printf("❌ Failed to seed comments for '%s': %v", p.Title, err)
		}

		log.Printf("✅ Created post %d/%d: %s (ID: %s, Likes: %d)",
			i+1, len(fx.Posts), p.Title, view.ID, len(p.Likes))
	}

	log.Println("🎉 Seeding complete!")
}

// seedComments creates a comment tree depth-first so parent ids exist
// before their replies
func seedComments(ctx context.Context, posts services.PostService, postID string, parentID *string, comments []fixtureComment) error {
	for _, c := range comments {
		created, err := posts.AddComment(ctx, &services.CommentCreateCommand{
			PostID:          postID,
			ParentCommentID: parentID,
			AuthorID:        c.Author,
			Content:         c.Content,
		})
		if err != nil {
			return err
		}
		if err := seedComments(ctx, posts, postID, &created.ID, c.Replies); err != nil {
			return err
		}
	}
	return nil
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	_, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements(tables, tablePrefix) {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// schemaStatements returns the DDL in dependency order. Row ids are
// database-generated UUIDs; author ids are opaque foreign identifiers and
// stay TEXT so any upstream id scheme fits.
func schemaStatements(tables *postgres.TableNames, tablePrefix string) []string {
	return []string{
		// Categories
		`CREATE TABLE IF NOT EXISTS ` + tables.Categories + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,

		// Tags
		`CREATE TABLE IF NOT EXISTS ` + tables.Tags + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT ''
		)`,

		// Posts
		`CREATE TABLE IF NOT EXISTS ` + tables.Posts + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			author_id TEXT NOT NULL,
			category_id UUID REFERENCES ` + tables.Categories + `(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,

		// Post-tag join table (position preserves request tag order)
		`CREATE TABLE IF NOT EXISTS ` + tables.PostTags + ` (
			post_id UUID NOT NULL REFERENCES ` + tables.Posts + `(id) ON DELETE CASCADE,
			tag_id UUID NOT NULL REFERENCES ` + tables.Tags + `(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (post_id, tag_id)
		)`,

		// Comments
		`CREATE TABLE IF NOT EXISTS ` + tables.Comments + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			post_id UUID NOT NULL REFERENCES ` + tables.Posts + `(id) ON DELETE CASCADE,
			parent_id UUID REFERENCES ` + tables.Comments + `(id) ON DELETE CASCADE,
			author_id TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Post likes (composite key enforces one like per author)
		`CREATE TABLE IF NOT EXISTS ` + tables.PostLikes + ` (
			post_id UUID NOT NULL REFERENCES ` + tables.Posts + `(id) ON DELETE CASCADE,
			author_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (post_id, author_id)
		)`,

		// Indexes
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_` + tablePrefix + `categories_name_lower ON ` + tables.Categories + ` (lower(name))`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `posts_title ON ` + tables.Posts + ` (title)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `posts_created_at ON ` + tables.Posts + ` (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_post_id ON ` + tables.Comments + ` (post_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_parent_id ON ` + tables.Comments + ` (parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `post_tags_tag_id ON ` + tables.PostTags + ` (tag_id)`,
	}
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.PostLikes,
		tables.Comments,
		tables.PostTags,
		tables.Posts,
		tables.Tags,
		tables.Categories,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// clearAllData deletes all rows, children first
func clearAllData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.PostLikes,
		tables.Comments,
		tables.PostTags,
		tables.Posts,
		tables.Tags,
		tables.Categories,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	return nil
}
