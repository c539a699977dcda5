package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebox/internal/domain"
)

func TestFolderLifecycleScenario(t *testing.T) {
	// create root "Documents" → child "Work" → duplicate "Work" fails →
	// delete root fails (has children) → delete child → delete root.
	ctx := context.Background()
	svc, _ := newFolderService(t)

	docs, err := svc.Create(ctx, "Documents", nil)
	require.NoError(t, err)
	assert.Equal(t, "Documents", docs.Name)
	assert.Nil(t, docs.ParentID)

	work, err := svc.Create(ctx, "Work", &docs.ID)
	require.NoError(t, err)
	require.NotNil(t, work.ParentID)
	assert.Equal(t, docs.ID, *work.ParentID)

	_, err = svc.Create(ctx, "Work", &docs.ID)
	assert.True(t, domain.IsKind(err, domain.KindDuplicateName))

	_, err = svc.Delete(ctx, docs.ID)
	assert.True(t, domain.IsKind(err, domain.KindHasChildren))

	_, err = svc.Delete(ctx, work.ID)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, docs.ID)
	require.NoError(t, err)
	assert.Equal(t, "Documents", deleted.Name)

	_, err = svc.GetByID(ctx, docs.ID)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("trims the name before persisting", func(t *testing.T) {
		svc, _ := newFolderService(t)
		folder, err := svc.Create(ctx, "  Reports  ", nil)
		require.NoError(t, err)
		assert.Equal(t, "Reports", folder.Name)
	})

	t.Run("identical trimmed names under one parent collide", func(t *testing.T) {
		svc, _ := newFolderService(t)
		_, err := svc.Create(ctx, "Reports", nil)
		require.NoError(t, err)
		_, err = svc.Create(ctx, "  Reports ", nil)
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})

	t.Run("same name under two parents succeeds", func(t *testing.T) {
		svc, _ := newFolderService(t)
		a, err := svc.Create(ctx, "a", nil)
		require.NoError(t, err)
		b, err := svc.Create(ctx, "b", nil)
		require.NoError(t, err)

		_, err = svc.Create(ctx, "Shared", &a.ID)
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Shared", &b.ID)
		assert.NoError(t, err)
	})

	t.Run("missing parent fails with ParentNotFound", func(t *testing.T) {
		svc, _ := newFolderService(t)
		missing := int64(42)
		_, err := svc.Create(ctx, "Orphan", &missing)
		assert.True(t, domain.IsKind(err, domain.KindParentNotFound))
	})

	t.Run("invalid name never touches the store", func(t *testing.T) {
		svc, repo := newFolderService(t)
		_, err := svc.Create(ctx, "   ", nil)
		assert.True(t, domain.IsKind(err, domain.KindInvalidName))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestRename(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and refreshes updated_at", func(t *testing.T) {
		svc, _ := newFolderService(t)
		folder, err := svc.Create(ctx, "Old", nil)
		require.NoError(t, err)

		renamed, err := svc.Rename(ctx, folder.ID, "New")
		require.NoError(t, err)
		assert.Equal(t, "New", renamed.Name)
		assert.False(t, renamed.UpdatedAt.Before(folder.UpdatedAt))
	})

	t.Run("renaming to its own name succeeds", func(t *testing.T) {
		svc, _ := newFolderService(t)
		folder, err := svc.Create(ctx, "Same", nil)
		require.NoError(t, err)

		renamed, err := svc.Rename(ctx, folder.ID, "Same")
		require.NoError(t, err)
		assert.Equal(t, "Same", renamed.Name)
	})

	t.Run("renaming onto a sibling fails", func(t *testing.T) {
		svc, _ := newFolderService(t)
		_, err := svc.Create(ctx, "First", nil)
		require.NoError(t, err)
		second, err := svc.Create(ctx, "Second", nil)
		require.NoError(t, err)

		_, err = svc.Rename(ctx, second.ID, "First")
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})

	t.Run("missing folder fails with NotFound", func(t *testing.T) {
		svc, _ := newFolderService(t)
		_, err := svc.Rename(ctx, 42, "Whatever")
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("reparents a folder", func(t *testing.T) {
		svc, _ := newFolderService(t)
		a, err := svc.Create(ctx, "a", nil)
		require.NoError(t, err)
		b, err := svc.Create(ctx, "b", nil)
		require.NoError(t, err)

		moved, err := svc.Move(ctx, b.ID, &a.ID)
		require.NoError(t, err)
		require.NotNil(t, moved.ParentID)
		assert.Equal(t, a.ID, *moved.ParentID)
	})

	t.Run("refuses to create a cycle", func(t *testing.T) {
		svc, _ := newFolderService(t)
		a, err := svc.Create(ctx, "a", nil)
		require.NoError(t, err)
		b, err := svc.Create(ctx, "b", &a.ID)
		require.NoError(t, err)

		_, err = svc.Move(ctx, a.ID, &b.ID)
		assert.True(t, domain.IsKind(err, domain.KindCyclicReference))
	})

	t.Run("refuses a duplicate sibling at the destination", func(t *testing.T) {
		svc, _ := newFolderService(t)
		a, err := svc.Create(ctx, "a", nil)
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Shared", &a.ID)
		require.NoError(t, err)
		loose, err := svc.Create(ctx, "Shared", nil)
		require.NoError(t, err)

		_, err = svc.Move(ctx, loose.ID, &a.ID)
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})
}

func TestGetChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("missing parent surfaces NotFound, not an empty list", func(t *testing.T) {
		svc, _ := newFolderService(t)
		_, err := svc.GetChildren(ctx, 42)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("leaf folder yields an empty list", func(t *testing.T) {
		svc, _ := newFolderService(t)
		folder, err := svc.Create(ctx, "Leaf", nil)
		require.NoError(t, err)

		children, err := svc.GetChildren(ctx, folder.ID)
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("children come back in name order", func(t *testing.T) {
		svc, _ := newFolderService(t)
		root, err := svc.Create(ctx, "root", nil)
		require.NoError(t, err)
		for _, name := range []string{"zebra", "alpha", "mango"} {
			_, err := svc.Create(ctx, name, &root.ID)
			require.NoError(t, err)
		}

		children, err := svc.GetChildren(ctx, root.ID)
		require.NoError(t, err)
		require.Len(t, children, 3)
		assert.Equal(t, "alpha", children[0].Name)
		assert.Equal(t, "mango", children[1].Name)
		assert.Equal(t, "zebra", children[2].Name)
	})
}

func TestTreeViews(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFolderService(t)

	docs, err := svc.Create(ctx, "Documents", nil)
	require.NoError(t, err)
	work, err := svc.Create(ctx, "Work", &docs.ID)
	require.NoError(t, err)
	reports, err := svc.Create(ctx, "Reports", &work.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Pictures", nil)
	require.NoError(t, err)

	t.Run("full tree", func(t *testing.T) {
		roots, err := svc.Tree(ctx)
		require.NoError(t, err)
		require.Len(t, roots, 2)
		assert.Equal(t, 0, roots[0].Level)
	})

	t.Run("subtree", func(t *testing.T) {
		node, err := svc.Subtree(ctx, work.ID)
		require.NoError(t, err)
		assert.Equal(t, work.ID, node.ID)
		require.Len(t, node.Children, 1)
		assert.Equal(t, reports.ID, node.Children[0].ID)

		_, err = svc.Subtree(ctx, 999)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("breadcrumbs", func(t *testing.T) {
		crumbs, err := svc.Breadcrumbs(ctx, reports.ID)
		require.NoError(t, err)
		require.Len(t, crumbs, 3)
		assert.Equal(t, docs.ID, crumbs[0].ID)
		assert.Equal(t, work.ID, crumbs[1].ID)
		assert.Equal(t, reports.ID, crumbs[2].ID)
	})
}
