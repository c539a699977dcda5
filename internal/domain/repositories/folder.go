package repositories

import (
	"context"

	"filebox/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
// Implementations translate storage-level failures into domain errors:
// a missing row becomes KindNotFound, a unique-index violation becomes
// KindDuplicateName, anything else KindStoreFailure.
type FolderRepository interface {
	// Create persists a new folder and fills in its store-assigned ID and
	// timestamps.
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder by ID.
	GetByID(ctx context.Context, id int64) (*models.Folder, error)

	// Update persists name, parent and updated_at of an existing folder.
	Update(ctx context.Context, folder *models.Folder) error

	// Delete removes a folder. Deleting a folder that still has children
	// fails at the store level via the parent foreign key.
	Delete(ctx context.Context, id int64) error

	// ListChildren lists immediate child folders of parentID, or all root
	// folders when parentID is nil, ordered by name ascending.
	ListChildren(ctx context.Context, parentID *int64) ([]models.Folder, error)

	// ListAll returns every folder ordered by ID.
	ListAll(ctx context.Context) ([]models.Folder, error)

	// SearchByName returns folders whose name contains the query,
	// case-insensitively, ordered by name ascending.
	SearchByName(ctx context.Context, query string) ([]models.Folder, error)
}
