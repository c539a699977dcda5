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
	"github.com/rs/cors"

	"filebox/internal/config"
	"filebox/internal/handler"
	"filebox/internal/middleware"
	"filebox/internal/repository/postgres"
	"filebox/internal/service"
	"filebox/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

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
	)

	// Apply schema migrations before opening the pool
	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

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
		Logger: logger,
	}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	fileRepo := postgres.NewFileRepository(repoConfig)

	// Blob storage for uploads
	blobs, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Create services
	guard := service.NewHierarchyGuard(folderRepo)
	folderService := service.NewFolderService(folderRepo, guard, logger)
	fileService := service.NewFileService(fileRepo, folderRepo, blobs, logger)
	searchService := service.NewSearchService(folderRepo, fileRepo, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Folder routes
	mux.HandleFunc("GET /api/v1/folders", folderHandler.List)
	mux.HandleFunc("GET /api/v1/folders/tree", folderHandler.Tree) // Must come before {id} route
	mux.HandleFunc("GET /api/v1/folders/{id}", folderHandler.Get)
	mux.HandleFunc("GET /api/v1/folders/{id}/subfolders", folderHandler.Subfolders)
	mux.HandleFunc("GET /api/v1/folders/{id}/tree", folderHandler.Subtree)
	mux.HandleFunc("GET /api/v1/folders/{id}/breadcrumbs", folderHandler.Breadcrumbs)
	mux.HandleFunc("POST /api/v1/folders", folderHandler.Create)
	mux.HandleFunc("PATCH /api/v1/folders/{id}", folderHandler.Rename)
	mux.HandleFunc("DELETE /api/v1/folders/{id}", folderHandler.Delete)

	// File routes
	mux.HandleFunc("GET /api/v1/files", fileHandler.List)
	mux.HandleFunc("GET /api/v1/files/folder/{id}", fileHandler.ListByFolder)
	mux.HandleFunc("POST /api/v1/files/upload", fileHandler.Upload)
	mux.HandleFunc("PATCH /api/v1/files/{id}/rename", fileHandler.Rename)
	mux.HandleFunc("DELETE /api/v1/files/{id}", fileHandler.Delete)

	// Search route
	mux.HandleFunc("GET /api/v1/search", searchHandler.Search)

	// Build middleware chain (middleware wrap each other in reverse order)
	var httpHandler http.Handler = mux
	httpHandler = middleware.Recovery(logger)(httpHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Drain in-flight requests on SIGINT/SIGTERM before closing the pool
	shutdownDone := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
		close(shutdownDone)
	}()

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
	<-shutdownDone
}
