package sqlstore

import (
	"context"
	"fmt"

	"taskflow/internal/common/errors"
	"taskflow/internal/storage"
)

const userColumns = "id, email, name, created_at, updated_at"

type userRepository struct {
	s *Store
}

func scanUser(row scanner) (*storage.User, error) {
	var u storage.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *storage.User) error {
	ts := now()
	_, err := r.s.exec(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Name, ts, ts,
	)
	if err != nil {
		if r.s.dialect.IsUniqueViolation(err) {
			return errors.ConflictError(fmt.Sprintf("user with email %s already exists", user.Email))
		}
		return errors.StorageError("create user", err)
	}
	user.CreatedAt, user.UpdatedAt = ts, ts
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*storage.User, error) {
	row := r.s.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, readError("user", id, err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*storage.User, error) {
	row := r.s.queryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	u, err := scanUser(row)
	if err != nil {
		return nil, readError("user", email, err)
	}
	return u, nil
}
