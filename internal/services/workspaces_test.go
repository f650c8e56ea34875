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

type harness struct {
	store *testutil.MockStorage
	cache *testutil.RecordingCache
	svc   *services.Services
}

func newHarness(t *testing.T, entities ...string) *harness {
	t.Helper()
	if len(entities) == 0 {
		entities = []string{"workspace", "board"}
	}
	store := testutil.NewMockStorage()
	rec := testutil.NewRecordingCache(cache.NewLocalCache())
	wrapped := cacheaside.Wrap(store, rec, cacheaside.Options{}, entities...)
	return &harness{store: store, cache: rec, svc: services.New(wrapped, nil)}
}

func strPtr(s string) *string { return &s }

func TestWorkspaceService_ListForUserIsCached(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.store.WorkspaceRepo.Put(&storage.Workspace{Name: "W1", OwnerID: "u1"})
	h.store.WorkspaceRepo.Put(&storage.Workspace{Name: "W2", OwnerID: "u2"})

	first, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)
	second, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "W1", second[0].Name)
	assert.Equal(t, 1, h.store.WorkspaceRepo.Calls("ListByParent"))
	assert.Equal(t, []string{"workspaces:user:u1"}, h.cache.Hits())
}

func TestWorkspaceService_CreateShowsInList(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	empty, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	ws := &storage.Workspace{Name: "Engineering", OwnerID: "someone-else"}
	require.NoError(t, h.svc.Workspaces.Create(ctx, "u1", ws))
	assert.Equal(t, "u1", ws.OwnerID)

	list, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Engineering", list[0].Name)
}

func TestWorkspaceService_Validation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	err := h.svc.Workspaces.Create(ctx, "u1", &storage.Workspace{Name: "   "})
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation), "got %v", err)
	assert.Equal(t, 0, h.store.WorkspaceRepo.Calls("Create"))

	_, err = h.svc.Workspaces.ListForUser(ctx, "")
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	err = h.svc.Workspaces.Create(ctx, "", &storage.Workspace{Name: "W"})
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}

func TestWorkspaceService_GetChecksOwner(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ws := &storage.Workspace{Name: "W1", OwnerID: "u1"}
	h.store.WorkspaceRepo.Put(ws)

	got, err := h.svc.Workspaces.Get(ctx, ws.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "W1", got.Name)

	_, err = h.svc.Workspaces.Get(ctx, ws.ID, "u2")
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))

	_, err = h.svc.Workspaces.Get(ctx, 999, "u1")
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
}

func TestWorkspaceService_Update(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ws := &storage.Workspace{Name: "W1", Description: "keep", OwnerID: "u1"}
	h.store.WorkspaceRepo.Put(ws)

	_, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)

	updated, err := h.svc.Workspaces.Update(ctx, ws.ID, "u1", services.WorkspaceUpdate{Name: strPtr("W1-renamed")})
	require.NoError(t, err)
	assert.Equal(t, "W1-renamed", updated.Name)
	assert.Equal(t, "keep", updated.Description)
	assert.Equal(t, "u1", updated.OwnerID)

	list, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "W1-renamed", list[0].Name)

	got, err := h.svc.Workspaces.Get(ctx, ws.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "W1-renamed", got.Name)

	_, err = h.svc.Workspaces.Update(ctx, 999, "u1", services.WorkspaceUpdate{Name: strPtr("x")})
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))

	_, err = h.svc.Workspaces.Update(ctx, ws.ID, "u1", services.WorkspaceUpdate{Name: strPtr("")})
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
}

func TestWorkspaceService_NonOwnerRejected(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ws := &storage.Workspace{Name: "W1", OwnerID: "u1"}
	h.store.WorkspaceRepo.Put(ws)
	h.cache.Reset()

	_, err := h.svc.Workspaces.Update(ctx, ws.ID, "u2", services.WorkspaceUpdate{Name: strPtr("hijacked")})
	assert.True(t, errors.IsType(err, errors.ErrTypeUnauthorized), "got %v", err)

	err = h.svc.Workspaces.Delete(ctx, ws.ID, "u2")
	assert.True(t, errors.IsType(err, errors.ErrTypeUnauthorized), "got %v", err)

	assert.Empty(t, h.cache.Deletes())
	assert.Equal(t, 0, h.store.WorkspaceRepo.Calls("Update"))
	assert.Equal(t, 0, h.store.WorkspaceRepo.Calls("Delete"))

	stored, err := h.store.WorkspaceRepo.GetByID(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "W1", stored.Name)
}

func TestWorkspaceService_Delete(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	ws := &storage.Workspace{Name: "W1", OwnerID: "u1"}
	h.store.WorkspaceRepo.Put(ws)

	require.NoError(t, h.svc.Workspaces.Delete(ctx, ws.ID, "u1"))
	assert.ElementsMatch(t, []string{"workspace:1", "workspaces:user:u1"}, h.cache.Deletes())

	list, err := h.svc.Workspaces.ListForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	h.cache.Reset()
	assert.NoError(t, h.svc.Workspaces.Delete(ctx, 12345, "u1"))
	assert.Empty(t, h.cache.Deletes())
	assert.Equal(t, 1, h.store.WorkspaceRepo.Calls("Delete"))
}
