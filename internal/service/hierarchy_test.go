package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filebox/internal/domain"
	"filebox/internal/repository/memory"
)

func TestCheckName(t *testing.T) {
	guard := NewHierarchyGuard(memory.NewFolderRepository())

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain name", input: "Documents", want: "Documents"},
		{name: "name with internal whitespace", input: "My Documents", want: "My Documents"},
		{name: "trims surrounding whitespace", input: "  Work  ", want: "Work"},
		{name: "255 characters", input: strings.Repeat("a", 255), want: strings.Repeat("a", 255)},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   \t ", wantErr: true},
		{name: "256 characters", input: strings.Repeat("a", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guard.CheckName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsKind(err, domain.KindInvalidName))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckDuplicateSibling(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFolderRepository()
	guard := NewHierarchyGuard(repo)

	root := mustCreate(t, repo, "Documents", nil)
	work := mustCreate(t, repo, "Work", &root.ID)
	mustCreate(t, repo, "Personal", &root.ID)
	otherRoot := mustCreate(t, repo, "Pictures", nil)

	t.Run("duplicate under same parent fails", func(t *testing.T) {
		err := guard.CheckDuplicateSibling(ctx, "Work", &root.ID, nil)
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})

	t.Run("same name under different parent is fine", func(t *testing.T) {
		assert.NoError(t, guard.CheckDuplicateSibling(ctx, "Work", &otherRoot.ID, nil))
	})

	t.Run("duplicate root name fails", func(t *testing.T) {
		err := guard.CheckDuplicateSibling(ctx, "Documents", nil, nil)
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})

	t.Run("excludeID skips the folder itself", func(t *testing.T) {
		assert.NoError(t, guard.CheckDuplicateSibling(ctx, "Work", &root.ID, &work.ID))
	})

	t.Run("comparison trims whitespace", func(t *testing.T) {
		err := guard.CheckDuplicateSibling(ctx, "  Work  ", &root.ID, nil)
		assert.True(t, domain.IsKind(err, domain.KindDuplicateName))
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		assert.NoError(t, guard.CheckDuplicateSibling(ctx, "work", &root.ID, nil))
	})
}

func TestCheckDeletable(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFolderRepository()
	guard := NewHierarchyGuard(repo)

	root := mustCreate(t, repo, "Documents", nil)
	leaf := mustCreate(t, repo, "Work", &root.ID)

	err := guard.CheckDeletable(ctx, root.ID)
	assert.True(t, domain.IsKind(err, domain.KindHasChildren))

	assert.NoError(t, guard.CheckDeletable(ctx, leaf.ID))
}

func TestCheckAcyclic(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewFolderRepository()
	guard := NewHierarchyGuard(repo)

	a := mustCreate(t, repo, "a", nil)
	b := mustCreate(t, repo, "b", &a.ID)
	c := mustCreate(t, repo, "c", &b.ID)
	other := mustCreate(t, repo, "other", nil)

	t.Run("move to root is always fine", func(t *testing.T) {
		assert.NoError(t, guard.CheckAcyclic(ctx, c.ID, nil))
	})

	t.Run("move under unrelated folder is fine", func(t *testing.T) {
		assert.NoError(t, guard.CheckAcyclic(ctx, b.ID, &other.ID))
	})

	t.Run("folder cannot be its own parent", func(t *testing.T) {
		err := guard.CheckAcyclic(ctx, a.ID, &a.ID)
		assert.True(t, domain.IsKind(err, domain.KindCyclicReference))
	})

	t.Run("folder cannot move under its own descendant", func(t *testing.T) {
		err := guard.CheckAcyclic(ctx, a.ID, &c.ID)
		assert.True(t, domain.IsKind(err, domain.KindCyclicReference))
	})

	t.Run("missing parent surfaces as ParentNotFound", func(t *testing.T) {
		missing := int64(999)
		err := guard.CheckAcyclic(ctx, a.ID, &missing)
		assert.True(t, domain.IsKind(err, domain.KindParentNotFound))
	})
}
