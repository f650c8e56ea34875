package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"taskflow/internal/storage"
	"taskflow/internal/storage/sqlite"
)

// NewSQLiteStore opens a store in a temporary directory, closed on cleanup
func NewSQLiteStore(t *testing.T) storage.Storage {
	t.Helper()
	store, err := sqlite.NewAdapter(&sqlite.Config{DatabasePath: filepath.Join(t.TempDir(), "taskflow_test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestFixtures is one user owning one workspace with a board, a list and a card
type TestFixtures struct {
	User      *storage.User
	Workspace *storage.Workspace
	Board     *storage.Board
	List      *storage.List
	Card      *storage.Card
}

// SeedFixtures writes a fresh fixture tree for userID straight to store
func SeedFixtures(t *testing.T, store storage.Storage, userID string) *TestFixtures {
	t.Helper()
	ctx := context.Background()

	f := &TestFixtures{
		User: &storage.User{ID: userID, Email: userID + "@example.com", Name: "User " + userID},
	}
	require.NoError(t, store.Users().Create(ctx, f.User))

	f.Workspace = NewWorkspaceBuilder().WithName("W1").WithOwner(userID).Build()
	require.NoError(t, store.Workspaces().Create(ctx, f.Workspace))

	f.Board = NewBoardBuilder().WithName("B1").WithWorkspace(f.Workspace.ID).Build()
	require.NoError(t, store.Boards().Create(ctx, f.Board))

	f.List = NewListBuilder().WithName("Todo").WithBoard(f.Board.ID).Build()
	require.NoError(t, store.Lists().Create(ctx, f.List))

	f.Card = NewCardBuilder().WithTitle("First card").WithList(f.List.ID).Build()
	require.NoError(t, store.Cards().Create(ctx, f.Card))

	return f
}
