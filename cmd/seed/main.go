// Seeds a demo folder hierarchy so a fresh database has something to browse.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"filebox/internal/config"
	"filebox/internal/repository/postgres"
	"filebox/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	folderRepo := postgres.NewFolderRepository(&postgres.RepositoryConfig{Pool: pool, Logger: logger})
	guard := service.NewHierarchyGuard(folderRepo)
	folders := service.NewFolderService(folderRepo, guard, logger)

	tree := map[string][]string{
		"Documents": {"Work", "Personal"},
		"Pictures":  {"Vacation"},
		"Music":     {},
	}

	for rootName, children := range tree {
		root, err := folders.Create(ctx, rootName, nil)
		if err != nil {
			logger.Warn("skipping root folder", "name", rootName, "error", err)
			continue
		}
		for _, childName := range children {
			if _, err := folders.Create(ctx, childName, &root.ID); err != nil {
				logger.Warn("skipping child folder", "name", childName, "error", err)
			}
		}
	}

	logger.Info("seed complete")
}
