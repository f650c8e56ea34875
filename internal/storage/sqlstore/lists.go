package sqlstore

import (
	"context"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

const listColumns = "id, name, position, board_id, created_at, updated_at"

type listRepository struct {
	s *Store
}

func scanList(row scanner) (*storage.List, error) {
	var l storage.List
	if err := row.Scan(&l.ID, &l.Name, &l.Position, &l.BoardID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	return &l, nil
}

func (r *listRepository) ListByParent(ctx context.Context, boardID int64) ([]*storage.List, error) {
	rows, err := r.s.query(ctx,
		"SELECT "+listColumns+" FROM lists WHERE board_id = ? ORDER BY position, id", boardID)
	if err != nil {
		return nil, errors.StorageError("list lists", err)
	}
	return collect(rows, "lists", scanList)
}

func (r *listRepository) GetByID(ctx context.Context, id int64) (*storage.List, error) {
	l, err := scanList(r.s.queryRow(ctx, "SELECT "+listColumns+" FROM lists WHERE id = ?", id))
	if err != nil {
		return nil, readError("list", id, err)
	}
	return l, nil
}

func (r *listRepository) Create(ctx context.Context, l *storage.List) error {
	ts := now()
	id, err := r.s.insert(ctx,
		"INSERT INTO lists (name, position, board_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id",
		l.Name, l.Position, l.BoardID, ts, ts,
	)
	if err != nil {
		return r.s.writeError("create list", "board", err)
	}
	l.ID, l.CreatedAt, l.UpdatedAt = id, ts, ts
	return nil
}

func (r *listRepository) Update(ctx context.Context, l *storage.List) error {
	ts := now()
	err := r.s.updateByID(ctx, "list", "board", l.ID,
		"UPDATE lists SET name = ?, position = ?, board_id = ?, updated_at = ? WHERE id = ?",
		l.Name, l.Position, l.BoardID, ts, l.ID,
	)
	if err != nil {
		return err
	}
	l.UpdatedAt = ts
	return nil
}

func (r *listRepository) Delete(ctx context.Context, id int64) error {
	return r.s.deleteByID(ctx, "lists", "list", id)
}
