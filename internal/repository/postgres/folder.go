package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
)

// PostgresFolderRepository implements the FolderRepository interface
type PostgresFolderRepository struct {
	pool *pgxpool.Pool
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &PostgresFolderRepository{pool: config.Pool}
}

const folderColumns = "id, name, parent_id, created_at, updated_at"

// Create creates a new folder
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	query := fmt.Sprintf(`
		INSERT INTO folders (name, parent_id)
		VALUES ($1, $2)
		RETURNING %s
	`, folderColumns)

	err := r.pool.QueryRow(ctx, query, folder.Name, folder.ParentID).Scan(
		&folder.ID,
		&folder.Name,
		&folder.ParentID,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return domain.DuplicateName(fmt.Sprintf("a folder named %q already exists in this location", folder.Name))
		}
		if isPgForeignKeyError(err) {
			return domain.ParentNotFound("Parent folder not found")
		}
		return domain.StoreFailure(fmt.Errorf("create folder: %w", err))
	}

	return nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM folders WHERE id = $1`, folderColumns)

	var folder models.Folder
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&folder.ID,
		&folder.Name,
		&folder.ParentID,
		&folder.CreatedAt,
		&folder.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, domain.NotFound("id", "Folder not found")
		}
		return nil, domain.StoreFailure(fmt.Errorf("get folder: %w", err))
	}

	return &folder, nil
}

// Update persists name, parent and updated_at of an existing folder
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	query := `
		UPDATE folders
		SET name = $1, parent_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, folder.Name, folder.ParentID, folder.ID).Scan(&folder.UpdatedAt)
	if err != nil {
		if isPgNoRowsError(err) {
			return domain.NotFound("id", "Folder not found")
		}
		if isPgDuplicateError(err) {
			return domain.DuplicateName(fmt.Sprintf("a folder named %q already exists in this location", folder.Name))
		}
		return domain.StoreFailure(fmt.Errorf("update folder: %w", err))
	}

	return nil
}

// Delete deletes a folder
func (r *PostgresFolderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		if isPgForeignKeyError(err) {
			return domain.HasChildren("Cannot delete folder that contains subfolders")
		}
		return domain.StoreFailure(fmt.Errorf("delete folder: %w", err))
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("id", "Folder not found")
	}

	return nil
}

// ListChildren lists immediate child folders, or roots when parentID is nil
func (r *PostgresFolderRepository) ListChildren(ctx context.Context, parentID *int64) ([]models.Folder, error) {
	var query string
	var args []any

	if parentID == nil {
		query = fmt.Sprintf(`SELECT %s FROM folders WHERE parent_id IS NULL ORDER BY name ASC`, folderColumns)
	} else {
		query = fmt.Sprintf(`SELECT %s FROM folders WHERE parent_id = $1 ORDER BY name ASC`, folderColumns)
		args = append(args, *parentID)
	}

	return r.queryFolders(ctx, query, args...)
}

// ListAll returns every folder ordered by ID
func (r *PostgresFolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM folders ORDER BY id ASC`, folderColumns)
	return r.queryFolders(ctx, query)
}

// SearchByName returns folders whose name contains the query, case-insensitively
func (r *PostgresFolderRepository) SearchByName(ctx context.Context, q string) ([]models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM folders WHERE name ILIKE $1 ORDER BY name ASC`, folderColumns)
	return r.queryFolders(ctx, query, "%"+escapeLike(q)+"%")
}

func (r *PostgresFolderRepository) queryFolders(ctx context.Context, query string, args ...any) ([]models.Folder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.StoreFailure(fmt.Errorf("query folders: %w", err))
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.Name,
			&folder.ParentID,
			&folder.CreatedAt,
			&folder.UpdatedAt,
		)
		if err != nil {
			return nil, domain.StoreFailure(fmt.Errorf("scan folder: %w", err))
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StoreFailure(fmt.Errorf("iterate folders: %w", err))
	}

	return folders, nil
}

// escapeLike escapes LIKE/ILIKE metacharacters so a user query matches them
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
