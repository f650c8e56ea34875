package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskflow/internal/cacheaside"
	"taskflow/internal/common/cache"
	"taskflow/internal/common/errors"
	"taskflow/internal/services"
	"taskflow/internal/storage"
	"taskflow/internal/testutil"
)

func TestBoardScenario(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)
	rec := testutil.NewRecordingCache(cache.NewLocalCache())
	svc := services.New(cacheaside.Wrap(store, rec, cacheaside.Options{}, "workspace", "board"), nil)

	require.NoError(t, svc.Users.Create(ctx, &storage.User{ID: "u1", Email: "u1@example.com", Name: "User One"}))

	ws := &storage.Workspace{Name: "W1"}
	require.NoError(t, svc.Workspaces.Create(ctx, "u1", ws))

	b1 := &storage.Board{Name: "B1", WorkspaceID: ws.ID}
	require.NoError(t, svc.Boards.Create(ctx, b1))

	boards, err := svc.Boards.ListForWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "B1", boards[0].Name)

	rec.Reset()
	again, err := svc.Boards.ListForWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, b1.ID, again[0].ID)
	assert.Equal(t, "B1", again[0].Name)
	assert.Equal(t, []string{cacheaside.BoardKind.CollectionKey(ws.ID)}, rec.Hits())
	assert.Empty(t, rec.Misses())

	_, err = svc.Boards.Get(ctx, b1.ID)
	require.NoError(t, err)

	_, err = svc.Boards.Update(ctx, b1.ID, services.BoardUpdate{Name: strPtr("B1-renamed")})
	require.NoError(t, err)

	got, err := svc.Boards.Get(ctx, b1.ID)
	require.NoError(t, err)
	assert.Equal(t, "B1-renamed", got.Name)

	boards, err = svc.Boards.ListForWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "B1-renamed", boards[0].Name)
}

func TestBoardService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	tests := []struct {
		name  string
		board *storage.Board
	}{
		{"blank name", &storage.Board{Name: "", WorkspaceID: 1}},
		{"no workspace", &storage.Board{Name: "B"}},
		{"name too long", &storage.Board{Name: string(make([]byte, 256)), WorkspaceID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.svc.Boards.Create(ctx, tt.board)
			if !errors.IsType(err, errors.ErrTypeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
	assert.Equal(t, 0, h.store.BoardRepo.Calls("Create"))
}

func TestBoardService_MoveBetweenWorkspaces(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	board := &storage.Board{Name: "B", Description: "d", WorkspaceID: 1}
	h.store.BoardRepo.Put(board)

	_, err := h.svc.Boards.ListForWorkspace(ctx, 1)
	require.NoError(t, err)
	_, err = h.svc.Boards.ListForWorkspace(ctx, 2)
	require.NoError(t, err)

	target := int64(2)
	moved, err := h.svc.Boards.Update(ctx, board.ID, services.BoardUpdate{WorkspaceID: &target})
	require.NoError(t, err)
	assert.Equal(t, "B", moved.Name)
	assert.Equal(t, "d", moved.Description)

	inOld, err := h.svc.Boards.ListForWorkspace(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, inOld)
	inNew, err := h.svc.Boards.ListForWorkspace(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, inNew, 1)
}

func TestBoardService_DeleteMissing(t *testing.T) {
	h := newHarness(t)
	h.cache.Reset()

	assert.NoError(t, h.svc.Boards.Delete(context.Background(), 77))
	assert.Empty(t, h.cache.Deletes())
	assert.Equal(t, 0, h.store.BoardRepo.Calls("Delete"))

	_, err := h.svc.Boards.Update(context.Background(), 77, services.BoardUpdate{Name: strPtr("x")})
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
}
