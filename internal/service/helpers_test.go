package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"filebox/internal/domain/models"
	"filebox/internal/repository/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustCreate(t *testing.T, repo *memory.FolderRepository, name string, parentID *int64) *models.Folder {
	t.Helper()
	folder := &models.Folder{Name: name, ParentID: parentID}
	require.NoError(t, repo.Create(context.Background(), folder))
	return folder
}

func newFolderService(t *testing.T) (*FolderService, *memory.FolderRepository) {
	t.Helper()
	repo := memory.NewFolderRepository()
	return NewFolderService(repo, NewHierarchyGuard(repo), testLogger()), repo
}
