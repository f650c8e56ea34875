package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskflow/internal/common/errors"
	"taskflow/internal/services"
	"taskflow/internal/storage"
)

func TestListService_CreateAppends(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	for _, name := range []string{"Todo", "Doing", "Done"} {
		require.NoError(t, h.svc.Lists.Create(ctx, &storage.List{Name: name, BoardID: 1}, nil))
	}

	lists, err := h.svc.Lists.ListForBoard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	for i, l := range lists {
		assert.Equal(t, i, l.Position, l.Name)
	}

	pos := 10
	explicit := &storage.List{Name: "Later", BoardID: 1}
	require.NoError(t, h.svc.Lists.Create(ctx, explicit, &pos))
	assert.Equal(t, 10, explicit.Position)
}

func TestListService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	negative := -1
	err := h.svc.Lists.Create(ctx, &storage.List{Name: "L", BoardID: 1}, &negative)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	err = h.svc.Lists.Create(ctx, &storage.List{Name: "", BoardID: 1}, nil)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	err = h.svc.Lists.Create(ctx, &storage.List{Name: "L"}, nil)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
	assert.Equal(t, 0, h.store.ListRepo.Calls("Create"))
}

func TestListService_Update(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	list := &storage.List{Name: "Todo", Position: 2, BoardID: 1}
	h.store.ListRepo.Put(list)

	updated, err := h.svc.Lists.Update(ctx, list.ID, services.ListUpdate{Name: strPtr("Backlog")})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", updated.Name)
	assert.Equal(t, 2, updated.Position)
	assert.Equal(t, int64(1), updated.BoardID)

	got, err := h.svc.Lists.Get(ctx, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", got.Name)

	_, err = h.svc.Lists.Update(ctx, 404, services.ListUpdate{})
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))

	require.NoError(t, h.svc.Lists.Delete(ctx, list.ID))
	_, err = h.svc.Lists.Get(ctx, list.ID)
	assert.True(t, errors.IsType(err, errors.ErrTypeNotFound))
	assert.NoError(t, h.svc.Lists.Delete(ctx, list.ID))
}

func TestListService_Uncached(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.store.ListRepo.Put(&storage.List{Name: "Todo", BoardID: 1})

	for i := 0; i < 2; i++ {
		_, err := h.svc.Lists.ListForBoard(ctx, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, h.store.ListRepo.Calls("ListByParent"))
	assert.Empty(t, h.cache.Sets())
}

func TestListService_Cached(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, "list")
	h.store.ListRepo.Put(&storage.List{Name: "Todo", BoardID: 1})

	for i := 0; i < 2; i++ {
		_, err := h.svc.Lists.ListForBoard(ctx, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, h.store.ListRepo.Calls("ListByParent"))

	require.NoError(t, h.svc.Lists.Create(ctx, &storage.List{Name: "Done", BoardID: 1}, nil))
	lists, err := h.svc.Lists.ListForBoard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, 1, lists[1].Position)
}
