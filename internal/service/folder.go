package service

import (
	"context"
	"log/slog"

	"filebox/internal/domain"
	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
	"filebox/internal/tree"
)

// FolderService orchestrates the folder lifecycle: every mutation runs its
// invariant checks through the hierarchy guard before touching the store,
// and failed validation never writes anything.
type FolderService struct {
	folders repositories.FolderRepository
	guard   *HierarchyGuard
	logger  *slog.Logger
}

// NewFolderService creates a new folder service.
func NewFolderService(folders repositories.FolderRepository, guard *HierarchyGuard, logger *slog.Logger) *FolderService {
	return &FolderService{
		folders: folders,
		guard:   guard,
		logger:  logger,
	}
}

// Create validates the name, confirms the optional parent exists, rejects
// duplicate siblings, then persists and returns the new folder with its
// store-assigned ID and timestamps.
func (s *FolderService) Create(ctx context.Context, name string, parentID *int64) (*models.Folder, error) {
	trimmed, err := s.guard.CheckName(name)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		if _, err := s.folders.GetByID(ctx, *parentID); err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return nil, domain.ParentNotFound("Parent folder not found")
			}
			return nil, err
		}
	}

	if err := s.guard.CheckDuplicateSibling(ctx, trimmed, parentID, nil); err != nil {
		return nil, err
	}

	folder := &models.Folder{
		Name:     trimmed,
		ParentID: parentID,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
	)

	return folder, nil
}

// Rename changes a folder's name in place. The duplicate check runs against
// the siblings under the existing parent, excluding the folder itself, so
// renaming a folder to its current name succeeds.
func (s *FolderService) Rename(ctx context.Context, id int64, newName string) (*models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trimmed, err := s.guard.CheckName(newName)
	if err != nil {
		return nil, err
	}

	if err := s.guard.CheckDuplicateSibling(ctx, trimmed, folder.ParentID, &id); err != nil {
		return nil, err
	}

	folder.Name = trimmed
	if err := s.folders.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// Move reparents a folder. Not exposed over HTTP yet; it exists so the
// acyclicity invariant has a real caller and a future move route only needs
// a handler.
func (s *FolderService) Move(ctx context.Context, id int64, newParentID *int64) (*models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newParentID != nil {
		if _, err := s.folders.GetByID(ctx, *newParentID); err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return nil, domain.ParentNotFound("Parent folder not found")
			}
			return nil, err
		}
	}

	if err := s.guard.CheckAcyclic(ctx, id, newParentID); err != nil {
		return nil, err
	}
	if err := s.guard.CheckDuplicateSibling(ctx, folder.Name, newParentID, &id); err != nil {
		return nil, err
	}

	folder.ParentID = newParentID
	if err := s.folders.Update(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder moved", "id", folder.ID, "parent_id", folder.ParentID)

	return folder, nil
}

// Delete removes a leaf folder and returns the deleted snapshot so the
// caller can report what was removed. Deletion is physical and terminal.
func (s *FolderService) Delete(ctx context.Context, id int64) (*models.Folder, error) {
	folder, err := s.folders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.guard.CheckDeletable(ctx, id); err != nil {
		return nil, err
	}

	// A folder vanishing between the check and the delete surfaces as
	// NotFound from the store, which is the contract here.
	if err := s.folders.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info("folder deleted", "id", folder.ID, "name", folder.Name)

	return folder, nil
}

// GetByID retrieves a single folder.
func (s *FolderService) GetByID(ctx context.Context, id int64) (*models.Folder, error) {
	return s.folders.GetByID(ctx, id)
}

// GetChildren lists the direct children of a folder. The parent is fetched
// first so a missing parent surfaces as NotFound instead of an ambiguous
// empty list.
func (s *FolderService) GetChildren(ctx context.Context, parentID int64) ([]models.Folder, error) {
	if _, err := s.folders.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.folders.ListChildren(ctx, &parentID)
}

// ListAll returns every folder in store order.
func (s *FolderService) ListAll(ctx context.Context) ([]models.Folder, error) {
	return s.folders.ListAll(ctx)
}

// Tree rebuilds the full nested folder tree from a flat scan.
func (s *FolderService) Tree(ctx context.Context) ([]*models.FolderTree, error) {
	folders, err := s.folders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return tree.Build(folders), nil
}

// Subtree returns the nested tree rooted at the given folder.
func (s *FolderService) Subtree(ctx context.Context, id int64) (*models.FolderTree, error) {
	if _, err := s.folders.GetByID(ctx, id); err != nil {
		return nil, err
	}

	folders, err := s.folders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	node := tree.FindNode(tree.Build(folders), id)
	if node == nil {
		// Present in the store but unreachable from any root: an orphaned
		// ancestor chain. Treated the same as a missing folder.
		return nil, domain.NotFound("id", "Folder not found")
	}
	return node, nil
}

// Breadcrumbs returns the ancestor chain from the root down to the folder.
func (s *FolderService) Breadcrumbs(ctx context.Context, id int64) ([]models.Folder, error) {
	if _, err := s.folders.GetByID(ctx, id); err != nil {
		return nil, err
	}

	folders, err := s.folders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	chain := tree.AncestorChain(tree.Build(folders), id)
	if chain == nil {
		return nil, domain.NotFound("id", "Folder not found")
	}

	crumbs := make([]models.Folder, 0, len(chain))
	for _, node := range chain {
		crumbs = append(crumbs, node.Folder)
	}
	return crumbs, nil
}
