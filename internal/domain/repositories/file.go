package repositories

import (
	"context"

	"filebox/internal/domain/models"
)

// FileRepository defines data access operations for file records.
type FileRepository interface {
	// Create persists a new file record and fills in its store-assigned ID
	// and timestamps.
	Create(ctx context.Context, file *models.File) error

	// GetByID retrieves a file by ID.
	GetByID(ctx context.Context, id int64) (*models.File, error)

	// Update persists name and updated_at of an existing file.
	Update(ctx context.Context, file *models.File) error

	// Delete removes a file record.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every file ordered by ID.
	ListAll(ctx context.Context) ([]models.File, error)

	// ListByFolder lists files belonging to a folder, ordered by name.
	ListByFolder(ctx context.Context, folderID int64) ([]models.File, error)

	// SearchByName returns files whose name contains the query,
	// case-insensitively, ordered by name ascending.
	SearchByName(ctx context.Context, query string) ([]models.File, error)
}
