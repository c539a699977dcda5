// Package tree derives nested folder views from the flat records the store
// keeps. The store has no native tree type, so every read rebuilds the tree
// with an id-indexed arena and parent-pointer walk; the result is disposable
// and never written back.
package tree

import "filebox/internal/domain/models"

// Build transforms a flat set of folders into the forest of root trees using
// a 3-pass algorithm: index every folder by id, partition into roots and
// children preserving input order within each parent, then assign levels by
// depth-first traversal. The input is never mutated.
//
// A folder whose parent_id does not resolve to any id in the input is an
// orphan: the store should never produce one, but when it does the node is
// silently dropped rather than crashing the build.
func Build(folders []models.Folder) []*models.FolderTree {
	nodes := make(map[int64]*models.FolderTree, len(folders))
	for _, f := range folders {
		nodes[f.ID] = &models.FolderTree{
			Folder:   f,
			Children: []*models.FolderTree{},
		}
	}

	roots := make([]*models.FolderTree, 0)
	for _, f := range folders {
		node := nodes[f.ID]
		if f.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*f.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}

	assignLevels(roots, 0)
	return roots
}

func assignLevels(nodes []*models.FolderTree, level int) {
	for _, n := range nodes {
		n.Level = level
		assignLevels(n.Children, level+1)
	}
}

// FindNode locates the node with the given id by depth-first search over an
// already-built forest. Returns nil when no such node is reachable.
func FindNode(roots []*models.FolderTree, id int64) *models.FolderTree {
	for _, n := range roots {
		if n.ID == id {
			return n
		}
		if found := FindNode(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// AncestorChain returns the path from a root down to the node with the given
// id, inclusive — the breadcrumb trail. Returns nil when the id is not in
// the forest.
func AncestorChain(roots []*models.FolderTree, id int64) []*models.FolderTree {
	for _, n := range roots {
		if n.ID == id {
			return []*models.FolderTree{n}
		}
		if chain := AncestorChain(n.Children, id); chain != nil {
			return append([]*models.FolderTree{n}, chain...)
		}
	}
	return nil
}

// Flatten collects every folder reachable from the given forest in
// depth-first order. Useful for subtree listings and for verifying that a
// build lost nothing but orphans.
func Flatten(roots []*models.FolderTree) []models.Folder {
	var out []models.Folder
	var walk func(nodes []*models.FolderTree)
	walk = func(nodes []*models.FolderTree) {
		for _, n := range nodes {
			out = append(out, n.Folder)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}
