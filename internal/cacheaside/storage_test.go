package cacheaside

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskflow/internal/common/cache"
	"taskflow/internal/storage"
	"taskflow/internal/testutil"
)

func TestWrap_SelectsEntities(t *testing.T) {
	store := testutil.NewMockStorage()
	wrapped := Wrap(store, cache.NewLocalCache(), Options{}, "workspace", "board", "unknown")

	assert.Equal(t, []string{"workspace", "board"}, wrapped.Cached())
	assert.IsType(t, &Repository[storage.Workspace, string]{}, wrapped.Workspaces())
	assert.IsType(t, &Repository[storage.Board, int64]{}, wrapped.Boards())
	assert.Same(t, store.ListRepo, wrapped.Lists())
	assert.Same(t, store.CardRepo, wrapped.Cards())
	assert.Same(t, store.UserRepo, wrapped.Users())
	assert.Equal(t, "memory", wrapped.Type())
}

func TestWrap_AllEntities(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMockStorage()
	wrapped := Wrap(store, cache.NewLocalCache(), Options{}, "list", "card")

	store.ListRepo.Put(&storage.List{Name: "Todo", BoardID: 1})
	store.CardRepo.Put(&storage.Card{Title: "C", ListID: 1})

	for i := 0; i < 2; i++ {
		lists, err := wrapped.Lists().ListByParent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, lists, 1)
		cards, err := wrapped.Cards().ListByParent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	}
	assert.Equal(t, 1, store.ListRepo.Calls("ListByParent"))
	assert.Equal(t, 1, store.CardRepo.Calls("ListByParent"))

	_, err := wrapped.Boards().ListByParent(ctx, 1)
	require.NoError(t, err)
	_, err = wrapped.Boards().ListByParent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, store.BoardRepo.Calls("ListByParent"))
}
