package models

import "time"

// File is a stored file record. Path points at the blob on disk; the record
// and the blob are created and deleted together.
type File struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	FolderID  int64     `json:"folder_id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SearchResults groups the two independent scans of a cross-entity search.
type SearchResults struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}
