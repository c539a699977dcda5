package service

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filebox/internal/config"
	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
	"filebox/internal/mimetype"
	"filebox/internal/storage"
)

// Upload is one incoming file of a multipart upload request, already size-
// checked by the HTTP layer.
type Upload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// FileService manages file records and their on-disk blobs. Records and
// blobs are created and deleted together; the record is authoritative.
type FileService struct {
	files   repositories.FileRepository
	folders repositories.FolderRepository
	blobs   *storage.LocalStore
	logger  *slog.Logger
}

// NewFileService creates a new file service.
func NewFileService(
	files repositories.FileRepository,
	folders repositories.FolderRepository,
	blobs *storage.LocalStore,
	logger *slog.Logger,
) *FileService {
	return &FileService{
		files:   files,
		folders: folders,
		blobs:   blobs,
		logger:  logger,
	}
}

// ListAll returns every file record.
func (s *FileService) ListAll(ctx context.Context) ([]models.File, error) {
	return s.files.ListAll(ctx)
}

// ListByFolder lists the files of one folder. The folder is fetched first
// so a missing folder surfaces as a failure instead of an empty list.
func (s *FileService) ListByFolder(ctx context.Context, folderID int64) ([]models.File, error) {
	if _, err := s.folders.GetByID(ctx, folderID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NotFound("folder_id", "Folder not found")
		}
		return nil, err
	}
	return s.files.ListByFolder(ctx, folderID)
}

// GetByID retrieves a single file record.
func (s *FileService) GetByID(ctx context.Context, id int64) (*models.File, error) {
	return s.files.GetByID(ctx, id)
}

// Upload stores the given uploads under a folder: each blob is written to
// disk, then its record persisted. A record failure rolls the blob back so
// the two never diverge.
func (s *FileService) Upload(ctx context.Context, folderID int64, uploads []Upload) ([]models.File, error) {
	if _, err := s.folders.GetByID(ctx, folderID); err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NotFound("folder_id", "Folder not found")
		}
		return nil, err
	}

	saved := make([]models.File, 0, len(uploads))
	for _, up := range uploads {
		name, err := checkFileName(up.Name)
		if err != nil {
			return saved, err
		}

		path, size, err := s.blobs.Save(name, up.Content)
		if err != nil {
			return saved, domain.StoreFailure(err)
		}

		file := &models.File{
			Name:     name,
			Type:     mimetype.Detect(up.ContentType, name),
			Size:     size,
			FolderID: folderID,
			Path:     path,
		}
		if err := s.files.Create(ctx, file); err != nil {
			if removeErr := s.blobs.Remove(path); removeErr != nil {
				s.logger.Warn("orphaned blob left behind", "path", path, "error", removeErr)
			}
			return saved, err
		}

		s.logger.Info("file uploaded",
			"id", file.ID,
			"name", file.Name,
			"folder_id", file.FolderID,
			"size", file.Size,
		)
		saved = append(saved, *file)
	}

	return saved, nil
}

// Rename changes a file's display name, preserving the original extension:
// a new name that drops or changes the extension gets the old one appended.
func (s *FileService) Rename(ctx context.Context, id int64, newName string) (*models.File, error) {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, err := checkFileName(newName)
	if err != nil {
		return nil, err
	}

	if ext := filepath.Ext(file.Name); ext != "" && !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}

	file.Name = name
	if err := s.files.Update(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file renamed", "id", file.ID, "name", file.Name)

	return file, nil
}

// Delete removes the record and then the blob. A blob that fails to go away
// is logged and left for cleanup; the record removal already decided the
// outcome.
func (s *FileService) Delete(ctx context.Context, id int64) (*models.File, error) {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.files.Delete(ctx, id); err != nil {
		return nil, err
	}

	if err := s.blobs.Remove(file.Path); err != nil {
		s.logger.Warn("failed to remove blob", "path", file.Path, "error", err)
	}

	s.logger.Info("file deleted", "id", file.ID, "name", file.Name)

	return file, nil
}

// checkFileName validates and trims an incoming file name.
func checkFileName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	err := validation.Validate(trimmed,
		validation.Required.Error("File name cannot be empty or contain only whitespace"),
		validation.RuneLength(1, config.MaxNameLength).Error("File name must be at most 255 characters"),
	)
	if err != nil {
		return "", domain.InvalidName(err.Error())
	}

	return trimmed, nil
}
