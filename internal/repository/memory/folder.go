// Package memory holds in-memory repository implementations mirroring the
// Postgres semantics: same ordering, same domain-error translation, same
// sibling-uniqueness enforcement. They back the service and handler tests
// and make the server runnable without a database in throwaway setups.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
)

// FolderRepository is an in-memory FolderRepository.
type FolderRepository struct {
	mu      sync.Mutex
	nextID  int64
	folders map[int64]models.Folder
}

// NewFolderRepository creates an empty in-memory folder repository.
func NewFolderRepository() *FolderRepository {
	return &FolderRepository{nextID: 1, folders: make(map[int64]models.Folder)}
}

var _ repositories.FolderRepository = (*FolderRepository)(nil)

func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSiblingUnique(folder.Name, folder.ParentID, 0); err != nil {
		return err
	}
	if folder.ParentID != nil {
		if _, ok := r.folders[*folder.ParentID]; !ok {
			return domain.ParentNotFound("Parent folder not found")
		}
	}

	now := time.Now()
	folder.ID = r.nextID
	r.nextID++
	folder.CreatedAt = now
	folder.UpdatedAt = now
	r.folders[folder.ID] = *folder
	return nil
}

func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.folders[id]
	if !ok {
		return nil, domain.NotFound("id", "Folder not found")
	}
	return &folder, nil
}

func (r *FolderRepository) Update(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[folder.ID]; !ok {
		return domain.NotFound("id", "Folder not found")
	}
	if err := r.checkSiblingUnique(folder.Name, folder.ParentID, folder.ID); err != nil {
		return err
	}

	folder.UpdatedAt = time.Now()
	r.folders[folder.ID] = *folder
	return nil
}

func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.folders[id]; !ok {
		return domain.NotFound("id", "Folder not found")
	}
	// The parent foreign key restricts deletion of non-leaf folders.
	for _, f := range r.folders {
		if f.ParentID != nil && *f.ParentID == id {
			return domain.HasChildren("Cannot delete folder that contains subfolders")
		}
	}

	delete(r.folders, id)
	return nil
}

func (r *FolderRepository) ListChildren(ctx context.Context, parentID *int64) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Folder, 0)
	for _, f := range r.folders {
		if sameParent(f.ParentID, parentID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *FolderRepository) ListAll(ctx context.Context) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Folder, 0, len(r.folders))
	for _, f := range r.folders {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FolderRepository) SearchByName(ctx context.Context, query string) ([]models.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	needle := strings.ToLower(query)
	out := make([]models.Folder, 0)
	for _, f := range r.folders {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// checkSiblingUnique mirrors the partial unique indexes of the Postgres
// schema. Caller holds the lock.
func (r *FolderRepository) checkSiblingUnique(name string, parentID *int64, excludeID int64) error {
	for _, f := range r.folders {
		if f.ID == excludeID {
			continue
		}
		if sameParent(f.ParentID, parentID) && f.Name == name {
			return domain.DuplicateName(fmt.Sprintf("a folder named %q already exists in this location", name))
		}
	}
	return nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
