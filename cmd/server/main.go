package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"blogboard/internal/config"
	"blogboard/internal/handler"
	"blogboard/internal/middleware"
	"blogboard/internal/repository/postgres"
	"blogboard/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
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
		postRepo,
		categoryService,
		tagResolver,
		commentService,
		likeLedger,
		txManager,
		logger,
	)

	// Create handlers
	postHandler := handler.NewPostHandler(postService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check and metrics
	mux.HandleFunc("GET /health", postHandler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Post routes
	mux.HandleFunc("POST /api/posts", postHandler.CreatePost)
	mux.HandleFunc("GET /api/posts", postHandler.ListPosts)
	mux.HandleFunc("POST /api/posts/like", postHandler.LikePost)     // Must come before {id} route
	mux.HandleFunc("POST /api/posts/unlike", postHandler.UnlikePost) // Must come before {id} route
	mux.HandleFunc("GET /api/posts/{id}", postHandler.GetPost)
	mux.HandleFunc("PUT /api/posts", postHandler.UpdatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", postHandler.DeletePost)

	// Comment routes
	mux.HandleFunc("POST /api/posts/{id}/comments", postHandler.AddComment)
	mux.HandleFunc("GET /api/posts/{id}/comments", commentHandler.ListComments)
	mux.HandleFunc("PUT /api/comments", commentHandler.UpdateComment)
	mux.HandleFunc("DELETE /api/comments/{id}", commentHandler.DeleteComment)

	// Category routes
	mux.HandleFunc("POST /api/categories", categoryHandler.CreateCategory)
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	mux.HandleFunc("GET /api/categories/{name}", categoryHandler.GetCategory)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Metrics → RequestID → Recovery → Routes
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(root)
	root = middleware.Metrics(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
