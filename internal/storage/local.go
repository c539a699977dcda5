// Package storage persists uploaded blobs on local disk. Records in the
// entity store point at blobs by path; the two are created and deleted
// together by the file service.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes blobs into a single flat directory. Stored names carry a
// UUID prefix so colliding upload names never overwrite each other.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save streams src into a new blob named after the original upload name and
// returns the stored path and byte count.
func (s *LocalStore) Save(originalName string, src io.Reader) (string, int64, error) {
	name := fmt.Sprintf("%s-%s", uuid.NewString(), sanitizeName(originalName))
	path := filepath.Join(s.dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create blob: %w", err)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(path)
		return "", 0, fmt.Errorf("write blob: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("close blob: %w", err)
	}

	return path, written, nil
}

// Remove deletes a stored blob. A blob that is already gone is not an error;
// the record is authoritative and the caller is cleaning up.
func (s *LocalStore) Remove(path string) error {
	if !s.owns(path) {
		return fmt.Errorf("path %q is outside the upload directory", path)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}

// owns reports whether path points inside the store's directory.
func (s *LocalStore) owns(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// sanitizeName strips any directory components a client smuggled into the
// upload name.
func sanitizeName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	return name
}
