// Package services holds the entity operations the HTTP layer exposes.
//
// Services validate input, merge updates onto the stored row and enforce
// workspace ownership. Caching is not their concern: they are handed the
// repositories of a storage.Storage, which may already be wrapped by the
// cacheaside package.
package services

import (
	"taskflow/internal/common/logging"
	"taskflow/internal/storage"
)

// Services bundles one service per entity
type Services struct {
	Users      *UserService
	Workspaces *WorkspaceService
	Boards     *BoardService
	Lists      *ListService
	Cards      *CardService
}

// New builds every service over store. A nil logger uses the global one.
func New(store storage.Storage, logger logging.Logger) *Services {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &Services{
		Users:      NewUserService(store.Users(), logger),
		Workspaces: NewWorkspaceService(store.Workspaces(), logger),
		Boards:     NewBoardService(store.Boards(), logger),
		Lists:      NewListService(store.Lists(), logger),
		Cards:      NewCardService(store.Cards(), logger),
	}
}
