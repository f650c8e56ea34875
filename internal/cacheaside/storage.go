package cacheaside

import (
	"taskflow/internal/common/cache"
	"taskflow/internal/storage"
)

// Storage is a storage.Storage whose selected repositories are cached.
// Users and every entity not selected go straight to the wrapped store.
type Storage struct {
	storage.Storage

	workspaces storage.WorkspaceRepository
	boards     storage.BoardRepository
	lists      storage.ListRepository
	cards      storage.CardRepository
	cached     []string
}

// Wrap decorates the repositories of the named entities ("workspace",
// "board", "list", "card"). Unknown names are ignored.
func Wrap(store storage.Storage, c cache.Cache, opts Options, entities ...string) *Storage {
	s := &Storage{
		Storage:    store,
		workspaces: store.Workspaces(),
		boards:     store.Boards(),
		lists:      store.Lists(),
		cards:      store.Cards(),
	}

	for _, entity := range entities {
		switch entity {
		case WorkspaceKind.Name:
			s.workspaces = New(store.Workspaces(), c, WorkspaceKind, opts)
		case BoardKind.Name:
			s.boards = New(store.Boards(), c, BoardKind, opts)
		case ListKind.Name:
			s.lists = New(store.Lists(), c, ListKind, opts)
		case CardKind.Name:
			s.cards = New(store.Cards(), c, CardKind, opts)
		default:
			continue
		}
		s.cached = append(s.cached, entity)
	}
	return s
}

func (s *Storage) Workspaces() storage.WorkspaceRepository { return s.workspaces }
func (s *Storage) Boards() storage.BoardRepository         { return s.boards }
func (s *Storage) Lists() storage.ListRepository           { return s.lists }
func (s *Storage) Cards() storage.CardRepository           { return s.cards }

// Cached lists the entities served through the cache
func (s *Storage) Cached() []string {
	return append([]string(nil), s.cached...)
}
