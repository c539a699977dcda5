package service

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"filebox/internal/config"
	"filebox/internal/domain"
	"filebox/internal/domain/repositories"
)

// HierarchyGuard enforces the structural invariants of the folder tree. All
// checks are pure decisions over repository reads; none of them mutates
// anything. The folder service consults the guard before every write.
type HierarchyGuard struct {
	folders repositories.FolderRepository
}

// NewHierarchyGuard creates a guard backed by the given folder repository.
func NewHierarchyGuard(folders repositories.FolderRepository) *HierarchyGuard {
	return &HierarchyGuard{folders: folders}
}

// CheckName validates a folder name and returns its trimmed form. Valid
// names keep 1..255 characters after trimming and are not all whitespace.
func (g *HierarchyGuard) CheckName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	err := validation.Validate(trimmed,
		validation.Required.Error("Folder name cannot be empty or contain only whitespace"),
		validation.RuneLength(1, config.MaxNameLength).Error("Folder name must be at most 255 characters"),
	)
	if err != nil {
		return "", domain.InvalidName(err.Error())
	}

	return trimmed, nil
}

// CheckDuplicateSibling fails when another folder under parentID (roots when
// parentID is nil) already carries the candidate name. Comparison is
// case-sensitive exact match after trimming. excludeID skips the folder
// being renamed so renaming to the current name stays legal.
func (g *HierarchyGuard) CheckDuplicateSibling(ctx context.Context, name string, parentID, excludeID *int64) error {
	siblings, err := g.folders.ListChildren(ctx, parentID)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	for _, sibling := range siblings {
		if excludeID != nil && sibling.ID == *excludeID {
			continue
		}
		if strings.TrimSpace(sibling.Name) == name {
			return domain.DuplicateName("A folder with this name already exists in this location")
		}
	}

	return nil
}

// CheckDeletable fails when the folder still owns child folders. Files in
// the folder do not block deletion here; their cascade policy belongs to the
// file service.
func (g *HierarchyGuard) CheckDeletable(ctx context.Context, folderID int64) error {
	children, err := g.folders.ListChildren(ctx, &folderID)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.HasChildren("Cannot delete folder that contains subfolders")
	}
	return nil
}

// CheckAcyclic fails when attaching folderID under newParentID would make
// the folder its own ancestor. The walk follows parent links up from the
// proposed parent; a nil parent (move to root) can never form a cycle.
func (g *HierarchyGuard) CheckAcyclic(ctx context.Context, folderID int64, newParentID *int64) error {
	if newParentID == nil {
		return nil
	}
	if *newParentID == folderID {
		return domain.CyclicReference("Folder cannot be its own parent")
	}

	// Visited set guards the walk against corrupted data already containing
	// a cycle.
	seen := map[int64]bool{folderID: true}
	current := *newParentID
	for {
		if seen[current] {
			return domain.CyclicReference("Folder cannot be moved under its own descendant")
		}
		seen[current] = true

		ancestor, err := g.folders.GetByID(ctx, current)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return domain.ParentNotFound("Parent folder not found")
			}
			return err
		}
		if ancestor.ParentID == nil {
			return nil
		}
		current = *ancestor.ParentID
	}
}
