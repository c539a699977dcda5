package models

import "time"

// Folder is a node in the hierarchical namespace. A nil ParentID marks a
// root folder. The parent graph is acyclic and every non-nil ParentID
// references an existing folder; both invariants are enforced by the
// hierarchy guard before any write.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderTree is a derived view of a Folder with its nested children. It is
// rebuilt from the flat store on every read and never persisted.
type FolderTree struct {
	Folder
	// Level is the depth in the tree: 0 for roots, parent level + 1 below.
	Level int `json:"level"`
	// IsOpen is a UI-only hint; the server always emits false.
	IsOpen   bool          `json:"is_open"`
	Children []*FolderTree `json:"children"`
}
