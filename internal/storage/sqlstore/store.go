// Package sqlstore implements the storage repositories over database/sql.
// Driver packages supply a Dialect and an open *sql.DB; queries are written
// with ? placeholders and rebound for dialects that number them.
package sqlstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

// Dialect captures what differs between database drivers
type Dialect struct {
	Name string
	// NumberedPlaceholders rewrites ? to $1, $2, ...
	NumberedPlaceholders bool
	// Schema is executed in order when the store opens
	Schema []string

	IsUniqueViolation     func(error) bool
	IsForeignKeyViolation func(error) bool
}

// Store implements storage.Storage
type Store struct {
	db      *sql.DB
	dialect Dialect

	users      *userRepository
	workspaces *workspaceRepository
	boards     *boardRepository
	lists      *listRepository
	cards      *cardRepository
}

// New bootstraps the schema and returns a store over db. The store owns db.
func New(ctx context.Context, db *sql.DB, dialect Dialect) (*Store, error) {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}
	if dialect.IsForeignKeyViolation == nil {
		dialect.IsForeignKeyViolation = func(error) bool { return false }
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s.users = &userRepository{s}
	s.workspaces = &workspaceRepository{s}
	s.boards = &boardRepository{s}
	s.lists = &listRepository{s}
	s.cards = &cardRepository{s}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, query := range s.dialect.Schema {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}
	return nil
}

func (s *Store) Users() storage.UserRepository           { return s.users }
func (s *Store) Workspaces() storage.WorkspaceRepository { return s.workspaces }
func (s *Store) Boards() storage.BoardRepository         { return s.boards }
func (s *Store) Lists() storage.ListRepository           { return s.lists }
func (s *Store) Cards() storage.CardRepository           { return s.cards }

func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Type() string {
	return s.dialect.Name
}

// DB exposes the underlying handle
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) rebind(query string) string {
	if !s.dialect.NumberedPlaceholders {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(query), args...)
}

// insert runs an INSERT ... RETURNING id statement
func (s *Store) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := s.queryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// updateByID runs an UPDATE and reports not_found when no row matched
func (s *Store) updateByID(ctx context.Context, resource, parent string, id int64, query string, args ...interface{}) error {
	result, err := s.exec(ctx, query, args...)
	if err != nil {
		return s.writeError("update "+resource, parent, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.StorageError("update "+resource, err)
	}
	if affected == 0 {
		return errors.NotFoundError(resource).WithContext("id", id)
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, table, resource string, id int64) error {
	if _, err := s.exec(ctx, "DELETE FROM "+table+" WHERE id = ?", id); err != nil {
		return errors.StorageError("delete "+resource, err)
	}
	return nil
}

// readError maps a single-row read failure
func readError(resource string, key interface{}, err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundError(resource).WithContext("id", key)
	}
	return errors.StorageError("get "+resource, err)
}

// writeError maps constraint violations; parent names the referenced entity.
func (s *Store) writeError(op, parent string, err error) error {
	switch {
	case parent != "" && s.dialect.IsForeignKeyViolation(err):
		return errors.NotFoundError(parent)
	case s.dialect.IsUniqueViolation(err):
		return errors.ConflictError(fmt.Sprintf("%s violates a uniqueness constraint", op))
	default:
		return errors.StorageError(op, err)
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func collect[T any](rows *sql.Rows, resource string, scan func(scanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, errors.StorageError("scan "+resource, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.StorageError("list "+resource, err)
	}
	return items, nil
}
