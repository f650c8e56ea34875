package sqlstore

import (
	"context"
	"database/sql"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

const cardColumns = "id, title, description, position, list_id, priority, due_date, created_at, updated_at"

type cardRepository struct {
	s *Store
}

func scanCard(row scanner) (*storage.Card, error) {
	var c storage.Card
	var due sql.NullTime
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Position, &c.ListID, &c.Priority, &due, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.DueDate = timePtr(due)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func (r *cardRepository) ListByParent(ctx context.Context, listID int64) ([]*storage.Card, error) {
	rows, err := r.s.query(ctx,
		"SELECT "+cardColumns+" FROM cards WHERE list_id = ? ORDER BY position, id", listID)
	if err != nil {
		return nil, errors.StorageError("list cards", err)
	}
	return collect(rows, "cards", scanCard)
}

func (r *cardRepository) GetByID(ctx context.Context, id int64) (*storage.Card, error) {
	c, err := scanCard(r.s.queryRow(ctx, "SELECT "+cardColumns+" FROM cards WHERE id = ?", id))
	if err != nil {
		return nil, readError("card", id, err)
	}
	return c, nil
}

func (r *cardRepository) Create(ctx context.Context, c *storage.Card) error {
	if c.Priority == "" {
		c.Priority = storage.DefaultCardPriority
	}
	ts := now()
	id, err := r.s.insert(ctx,
		"INSERT INTO cards (title, description, position, list_id, priority, due_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id",
		c.Title, c.Description, c.Position, c.ListID, c.Priority, nullTime(c.DueDate), ts, ts,
	)
	if err != nil {
		return r.s.writeError("create card", "list", err)
	}
	c.ID, c.CreatedAt, c.UpdatedAt = id, ts, ts
	return nil
}

func (r *cardRepository) Update(ctx context.Context, c *storage.Card) error {
	ts := now()
	err := r.s.updateByID(ctx, "card", "list", c.ID,
		"UPDATE cards SET title = ?, description = ?, position = ?, list_id = ?, priority = ?, due_date = ?, updated_at = ? WHERE id = ?",
		c.Title, c.Description, c.Position, c.ListID, c.Priority, nullTime(c.DueDate), ts, c.ID,
	)
	if err != nil {
		return err
	}
	c.UpdatedAt = ts
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id int64) error {
	return r.s.deleteByID(ctx, "cards", "card", id)
}
