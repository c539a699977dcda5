package service

import (
	"context"
	"log/slog"
	"strings"

	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
)

// SearchService runs the cross-entity name search: one case-insensitive
// substring predicate applied to folders and files independently, no
// ranking, no tree context.
type SearchService struct {
	folders repositories.FolderRepository
	files   repositories.FileRepository
	logger  *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(
	folders repositories.FolderRepository,
	files repositories.FileRepository,
	logger *slog.Logger,
) *SearchService {
	return &SearchService{
		folders: folders,
		files:   files,
		logger:  logger,
	}
}

// Search scans both collections with the same normalized substring
// predicate, each ordered ascending by name. An empty or whitespace-only
// query returns two empty sequences without touching the store.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &models.SearchResults{
			Folders: []models.Folder{},
			Files:   []models.File{},
		}, nil
	}

	folders, err := s.folders.SearchByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	files, err := s.files.SearchByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("search completed",
		"query", trimmed,
		"folder_count", len(folders),
		"file_count", len(files),
	)

	return &models.SearchResults{Folders: folders, Files: files}, nil
}
