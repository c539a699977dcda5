package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebox/internal/domain/models"
	"filebox/internal/domain/repositories"
	"filebox/internal/repository/memory"
	"filebox/internal/storage"
)

// countingFolderRepo counts search calls to prove the empty-query
// short-circuit never reaches the store.
type countingFolderRepo struct {
	repositories.FolderRepository
	searches int
}

func (c *countingFolderRepo) SearchByName(ctx context.Context, q string) ([]models.Folder, error) {
	c.searches++
	return c.FolderRepository.SearchByName(ctx, q)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	folderRepo := memory.NewFolderRepository()
	fileRepo := memory.NewFileRepository(folderRepo)
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	folders := NewFolderService(folderRepo, NewHierarchyGuard(folderRepo), testLogger())
	files := NewFileService(fileRepo, folderRepo, blobs, testLogger())

	docs, err := folders.Create(ctx, "Documents", nil)
	require.NoError(t, err)
	_, err = folders.Create(ctx, "Pictures", nil)
	require.NoError(t, err)
	_, err = files.Upload(ctx, docs.ID, []Upload{
		{Name: "report.docx", Content: strings.NewReader("x")},
		{Name: "photo.png", Content: strings.NewReader("x")},
	})
	require.NoError(t, err)

	t.Run("case-insensitive substring over both entity kinds", func(t *testing.T) {
		search := NewSearchService(folderRepo, fileRepo, testLogger())
		results, err := search.Search(ctx, "doc")
		require.NoError(t, err)

		require.Len(t, results.Folders, 1)
		assert.Equal(t, "Documents", results.Folders[0].Name)
		require.Len(t, results.Files, 1)
		assert.Equal(t, "report.docx", results.Files[0].Name)
	})

	t.Run("results are ordered by name", func(t *testing.T) {
		search := NewSearchService(folderRepo, fileRepo, testLogger())
		results, err := search.Search(ctx, "p")
		require.NoError(t, err)

		require.Len(t, results.Files, 2)
		assert.Equal(t, "photo.png", results.Files[0].Name)
		assert.Equal(t, "report.docx", results.Files[1].Name)
	})

	t.Run("no matches yields empty slices, not nil", func(t *testing.T) {
		search := NewSearchService(folderRepo, fileRepo, testLogger())
		results, err := search.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, results.Folders)
		assert.NotNil(t, results.Files)
		assert.Empty(t, results.Folders)
		assert.Empty(t, results.Files)
	})

	t.Run("empty and whitespace queries skip the store", func(t *testing.T) {
		counting := &countingFolderRepo{FolderRepository: folderRepo}
		search := NewSearchService(counting, fileRepo, testLogger())

		for _, q := range []string{"", "   ", "\t"} {
			results, err := search.Search(ctx, q)
			require.NoError(t, err)
			assert.Empty(t, results.Folders)
			assert.Empty(t, results.Files)
		}
		assert.Zero(t, counting.searches)
	})
}
