package sqlstore

import (
	"context"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

const boardColumns = "id, name, description, workspace_id, created_at, updated_at"

type boardRepository struct {
	s *Store
}

func scanBoard(row scanner) (*storage.Board, error) {
	var b storage.Board
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.WorkspaceID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

func (r *boardRepository) ListByParent(ctx context.Context, workspaceID int64) ([]*storage.Board, error) {
	rows, err := r.s.query(ctx,
		"SELECT "+boardColumns+" FROM boards WHERE workspace_id = ? ORDER BY id", workspaceID)
	if err != nil {
		return nil, errors.StorageError("list boards", err)
	}
	return collect(rows, "boards", scanBoard)
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*storage.Board, error) {
	b, err := scanBoard(r.s.queryRow(ctx, "SELECT "+boardColumns+" FROM boards WHERE id = ?", id))
	if err != nil {
		return nil, readError("board", id, err)
	}
	return b, nil
}

func (r *boardRepository) Create(ctx context.Context, b *storage.Board) error {
	ts := now()
	id, err := r.s.insert(ctx,
		"INSERT INTO boards (name, description, workspace_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id",
		b.Name, b.Description, b.WorkspaceID, ts, ts,
	)
	if err != nil {
		return r.s.writeError("create board", "workspace", err)
	}
	b.ID, b.CreatedAt, b.UpdatedAt = id, ts, ts
	return nil
}

func (r *boardRepository) Update(ctx context.Context, b *storage.Board) error {
	ts := now()
	err := r.s.updateByID(ctx, "board", "workspace", b.ID,
		"UPDATE boards SET name = ?, description = ?, workspace_id = ?, updated_at = ? WHERE id = ?",
		b.Name, b.Description, b.WorkspaceID, ts, b.ID,
	)
	if err != nil {
		return err
	}
	b.UpdatedAt = ts
	return nil
}

func (r *boardRepository) Delete(ctx context.Context, id int64) error {
	return r.s.deleteByID(ctx, "boards", "board", id)
}
