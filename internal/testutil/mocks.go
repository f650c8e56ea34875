package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

// Accessors tell MemoryRepository how to read and assign an entity's keys
type Accessors[T any, P comparable] struct {
	Resource string
	ID       func(*T) int64
	SetID    func(*T, int64)
	Parent   func(*T) P
}

// MemoryRepository is an in-memory storage.Repository that counts calls
// per method and can be told to fail.
type MemoryRepository[T any, P comparable] struct {
	mu     sync.RWMutex
	acc    Accessors[T, P]
	rows   map[int64]T
	nextID int64
	calls  map[string]int

	// Control error injection
	ErrorOnMethod map[string]error
}

func NewMemoryRepository[T any, P comparable](acc Accessors[T, P]) *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		acc:           acc,
		rows:          make(map[int64]T),
		nextID:        1,
		calls:         make(map[string]int),
		ErrorOnMethod: make(map[string]error),
	}
}

func (m *MemoryRepository[T, P]) record(method string) error {
	m.calls[method]++
	return m.ErrorOnMethod[method]
}

// Calls returns how many times method was invoked
func (m *MemoryRepository[T, P]) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

// ResetCalls zeroes every counter
func (m *MemoryRepository[T, P]) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make(map[string]int)
}

// Put stores a row without counting a call
func (m *MemoryRepository[T, P]) Put(entity *T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.acc.ID(entity)
	if id == 0 {
		id = m.nextID
		m.acc.SetID(entity, id)
	}
	if id >= m.nextID {
		m.nextID = id + 1
	}
	m.rows[id] = *entity
}

func (m *MemoryRepository[T, P]) ListByParent(ctx context.Context, parent P) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("ListByParent"); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(m.rows))
	for id, row := range m.rows {
		if m.acc.Parent(&row) == parent {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		row := m.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (m *MemoryRepository[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("GetByID"); err != nil {
		return nil, err
	}

	row, ok := m.rows[id]
	if !ok {
		return nil, errors.NotFoundError(m.acc.Resource).WithContext("id", id)
	}
	return &row, nil
}

func (m *MemoryRepository[T, P]) Create(ctx context.Context, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Create"); err != nil {
		return err
	}

	m.acc.SetID(entity, m.nextID)
	m.rows[m.nextID] = *entity
	m.nextID++
	return nil
}

func (m *MemoryRepository[T, P]) Update(ctx context.Context, entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Update"); err != nil {
		return err
	}

	id := m.acc.ID(entity)
	if _, ok := m.rows[id]; !ok {
		return errors.NotFoundError(m.acc.Resource).WithContext("id", id)
	}
	m.rows[id] = *entity
	return nil
}

func (m *MemoryRepository[T, P]) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Delete"); err != nil {
		return err
	}

	delete(m.rows, id)
	return nil
}

func NewWorkspaceRepository() *MemoryRepository[storage.Workspace, string] {
	return NewMemoryRepository(Accessors[storage.Workspace, string]{
		Resource: "workspace",
		ID:       func(w *storage.Workspace) int64 { return w.ID },
		SetID:    func(w *storage.Workspace, id int64) { w.ID = id },
		Parent:   func(w *storage.Workspace) string { return w.OwnerID },
	})
}

func NewBoardRepository() *MemoryRepository[storage.Board, int64] {
	return NewMemoryRepository(Accessors[storage.Board, int64]{
		Resource: "board",
		ID:       func(b *storage.Board) int64 { return b.ID },
		SetID:    func(b *storage.Board, id int64) { b.ID = id },
		Parent:   func(b *storage.Board) int64 { return b.WorkspaceID },
	})
}

func NewListRepository() *MemoryRepository[storage.List, int64] {
	return NewMemoryRepository(Accessors[storage.List, int64]{
		Resource: "list",
		ID:       func(l *storage.List) int64 { return l.ID },
		SetID:    func(l *storage.List, id int64) { l.ID = id },
		Parent:   func(l *storage.List) int64 { return l.BoardID },
	})
}

func NewCardRepository() *MemoryRepository[storage.Card, int64] {
	return NewMemoryRepository(Accessors[storage.Card, int64]{
		Resource: "card",
		ID:       func(c *storage.Card) int64 { return c.ID },
		SetID:    func(c *storage.Card, id int64) { c.ID = id },
		Parent:   func(c *storage.Card) int64 { return c.ListID },
	})
}

// MemoryUserRepository implements storage.UserRepository
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]storage.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]storage.User)}
}

func (m *MemoryUserRepository) Create(ctx context.Context, user *storage.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return errors.ConflictError("create user violates a uniqueness constraint")
		}
	}
	if _, ok := m.users[user.ID]; ok {
		return errors.ConflictError("create user violates a uniqueness constraint")
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryUserRepository) GetByID(ctx context.Context, id string) (*storage.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, errors.NotFoundError("user").WithContext("id", id)
	}
	return &user, nil
}

func (m *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*storage.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errors.NotFoundError("user").WithContext("email", email)
}

// MockStorage implements storage.Storage over in-memory repositories
type MockStorage struct {
	UserRepo      *MemoryUserRepository
	WorkspaceRepo *MemoryRepository[storage.Workspace, string]
	BoardRepo     *MemoryRepository[storage.Board, int64]
	ListRepo      *MemoryRepository[storage.List, int64]
	CardRepo      *MemoryRepository[storage.Card, int64]

	// Control error injection for Health and Close
	ErrorOnMethod map[string]error
}

// NewMockStorage creates a new mock storage instance
func NewMockStorage() *MockStorage {
	return &MockStorage{
		UserRepo:      NewMemoryUserRepository(),
		WorkspaceRepo: NewWorkspaceRepository(),
		BoardRepo:     NewBoardRepository(),
		ListRepo:      NewListRepository(),
		CardRepo:      NewCardRepository(),
		ErrorOnMethod: make(map[string]error),
	}
}

func (m *MockStorage) Users() storage.UserRepository           { return m.UserRepo }
func (m *MockStorage) Workspaces() storage.WorkspaceRepository { return m.WorkspaceRepo }
func (m *MockStorage) Boards() storage.BoardRepository         { return m.BoardRepo }
func (m *MockStorage) Lists() storage.ListRepository           { return m.ListRepo }
func (m *MockStorage) Cards() storage.CardRepository           { return m.CardRepo }

func (m *MockStorage) Health(ctx context.Context) error {
	return m.ErrorOnMethod["Health"]
}

func (m *MockStorage) Close() error {
	return m.ErrorOnMethod["Close"]
}

func (m *MockStorage) Type() string {
	return "memory"
}

// MockCache is a testify mock of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
