package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
)

// PostgresFileRepository implements the FileRepository interface
type PostgresFileRepository struct {
	pool *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &PostgresFileRepository{pool: config.Pool}
}

const fileColumns = "id, name, type, size, folder_id, path, created_at, updated_at"

// Create creates a new file record
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) error {
	query := fmt.Sprintf(`
		INSERT INTO files (name, type, size, folder_id, path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, fileColumns)

	err := r.pool.QueryRow(ctx, query,
		file.Name,
		file.Type,
		file.Size,
		file.FolderID,
		file.Path,
	).Scan(
		&file.ID,
		&file.Name,
		&file.Type,
		&file.Size,
		&file.FolderID,
		&file.Path,
		&file.CreatedAt,
		&file.UpdatedAt,
	)

	if err != nil {
		if isPgForeignKeyError(err) {
			return domain.NotFound("folder_id", "Folder not found")
		}
		return domain.StoreFailure(fmt.Errorf("create file: %w", err))
	}

	return nil
}

// GetByID retrieves a file by ID
func (r *PostgresFileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files WHERE id = $1`, fileColumns)

	var file models.File
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.Name,
		&file.Type,
		&file.Size,
		&file.FolderID,
		&file.Path,
		&file.CreatedAt,
		&file.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, domain.NotFound("id", "File not found")
		}
		return nil, domain.StoreFailure(fmt.Errorf("get file: %w", err))
	}

	return &file, nil
}

// Update persists name and updated_at of an existing file
func (r *PostgresFileRepository) Update(ctx context.Context, file *models.File) error {
	query := `
		UPDATE files
		SET name = $1, updated_at = now()
		WHERE id = $2
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, file.Name, file.ID).Scan(&file.UpdatedAt)
	if err != nil {
		if isPgNoRowsError(err) {
			return domain.NotFound("id", "File not found")
		}
		return domain.StoreFailure(fmt.Errorf("update file: %w", err))
	}

	return nil
}

// Delete removes a file record
func (r *PostgresFileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return domain.StoreFailure(fmt.Errorf("delete file: %w", err))
	}

	if result.RowsAffected() == 0 {
		return domain.NotFound("id", "File not found")
	}

	return nil
}

// ListAll returns every file ordered by ID
func (r *PostgresFileRepository) ListAll(ctx context.Context) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files ORDER BY id ASC`, fileColumns)
	return r.queryFiles(ctx, query)
}

// ListByFolder lists files belonging to a folder, ordered by name
func (r *PostgresFileRepository) ListByFolder(ctx context.Context, folderID int64) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files WHERE folder_id = $1 ORDER BY name ASC`, fileColumns)
	return r.queryFiles(ctx, query, folderID)
}

// SearchByName returns files whose name contains the query, case-insensitively
func (r *PostgresFileRepository) SearchByName(ctx context.Context, q string) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files WHERE name ILIKE $1 ORDER BY name ASC`, fileColumns)
	return r.queryFiles(ctx, query, "%"+escapeLike(q)+"%")
}

func (r *PostgresFileRepository) queryFiles(ctx context.Context, query string, args ...any) ([]models.File, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.StoreFailure(fmt.Errorf("query files: %w", err))
	}
	defer rows.Close()

	files := make([]models.File, 0)
	for rows.Next() {
		var file models.File
		err := rows.Scan(
			&file.ID,
			&file.Name,
			&file.Type,
			&file.Size,
			&file.FolderID,
			&file.Path,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if err != nil {
			return nil, domain.StoreFailure(fmt.Errorf("scan file: %w", err))
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StoreFailure(fmt.Errorf("iterate files: %w", err))
	}

	return files, nil
}
