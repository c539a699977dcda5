package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
)

// FileRepository is an in-memory FileRepository.
type FileRepository struct {
	mu      sync.Mutex
	nextID  int64
	files   map[int64]models.File
	folders *FolderRepository
}

// NewFileRepository creates an empty in-memory file repository. The folder
// repository enforces the folder_id foreign key.
func NewFileRepository(folders *FolderRepository) *FileRepository {
	return &FileRepository{nextID: 1, files: make(map[int64]models.File), folders: folders}
}

var _ repositories.FileRepository = (*FileRepository)(nil)

func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	if r.folders != nil {
		if _, err := r.folders.GetByID(ctx, file.FolderID); err != nil {
			return domain.NotFound("folder_id", "Folder not found")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	file.ID = r.nextID
	r.nextID++
	file.CreatedAt = now
	file.UpdatedAt = now
	r.files[file.ID] = *file
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, ok := r.files[id]
	if !ok {
		return nil, domain.NotFound("id", "File not found")
	}
	return &file, nil
}

func (r *FileRepository) Update(ctx context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[file.ID]; !ok {
		return domain.NotFound("id", "File not found")
	}
	file.UpdatedAt = time.Now()
	r.files[file.ID] = *file
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[id]; !ok {
		return domain.NotFound("id", "File not found")
	}
	delete(r.files, id)
	return nil
}

func (r *FileRepository) ListAll(ctx context.Context) ([]models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.File, 0, len(r.files))
	for _, f := range r.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FileRepository) ListByFolder(ctx context.Context, folderID int64) ([]models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.File, 0)
	for _, f := range r.files {
		if f.FolderID == folderID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FileRepository) SearchByName(ctx context.Context, query string) ([]models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(query)
	out := make([]models.File, 0)
	for _, f := range r.files {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
