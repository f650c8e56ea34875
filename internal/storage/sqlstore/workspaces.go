package sqlstore

import (
	"context"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

const workspaceColumns = "id, name, description, owner_id, created_at, updated_at"

type workspaceRepository struct {
	s *Store
}

func scanWorkspace(row scanner) (*storage.Workspace, error) {
	var w storage.Workspace
	if err := row.Scan(&w.ID, &w.Name, &w.Description, &w.OwnerID, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	return &w, nil
}

func (r *workspaceRepository) ListByParent(ctx context.Context, ownerID string) ([]*storage.Workspace, error) {
	rows, err := r.s.query(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces WHERE owner_id = ? ORDER BY id", ownerID)
	if err != nil {
		return nil, errors.StorageError("list workspaces", err)
	}
	return collect(rows, "workspaces", scanWorkspace)
}

func (r *workspaceRepository) GetByID(ctx context.Context, id int64) (*storage.Workspace, error) {
	w, err := scanWorkspace(r.s.queryRow(ctx, "SELECT "+workspaceColumns+" FROM workspaces WHERE id = ?", id))
	if err != nil {
		return nil, readError("workspace", id, err)
	}
	return w, nil
}

func (r *workspaceRepository) Create(ctx context.Context, w *storage.Workspace) error {
	ts := now()
	id, err := r.s.insert(ctx,
		"INSERT INTO workspaces (name, description, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id",
		w.Name, w.Description, w.OwnerID, ts, ts,
	)
	if err != nil {
		return r.s.writeError("create workspace", "user", err)
	}
	w.ID, w.CreatedAt, w.UpdatedAt = id, ts, ts
	return nil
}

func (r *workspaceRepository) Update(ctx context.Context, w *storage.Workspace) error {
	ts := now()
	err := r.s.updateByID(ctx, "workspace", "user", w.ID,
		"UPDATE workspaces SET name = ?, description = ?, updated_at = ? WHERE id = ?",
		w.Name, w.Description, ts, w.ID,
	)
	if err != nil {
		return err
	}
	w.UpdatedAt = ts
	return nil
}

func (r *workspaceRepository) Delete(ctx context.Context, id int64) error {
	return r.s.deleteByID(ctx, "workspaces", "workspace", id)
}
