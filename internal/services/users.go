package services

import (
	"context"
	"strings"

	"taskflow/internal/common/errors"
	"taskflow/internal/common/logging"
	"taskflow/internal/common/validation"
	"taskflow/internal/storage"
)

type UserService struct {
	repo   storage.UserRepository
	logger logging.Logger
}

func NewUserService(repo storage.UserRepository, logger logging.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.WithFields(logging.Field{Key: "service", Value: "users"})}
}

// Create registers a user. A taken email is a conflict.
func (s *UserService) Create(ctx context.Context, user *storage.User) error {
	user.ID = strings.TrimSpace(user.ID)
	user.Email = strings.TrimSpace(user.Email)
	if err := validation.ValidateStruct(user); err != nil {
		return err
	}

	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return errors.ConflictError("user already exists").WithContext("email", user.Email)
	} else if !errors.IsType(err, errors.ErrTypeNotFound) {
		return err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Info("User created", logging.Field{Key: "user_id", Value: user.ID})
	return nil
}

func (s *UserService) Get(ctx context.Context, id string) (*storage.User, error) {
	if err := validation.NewValidator().RequireString(id, "id").Error(); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*storage.User, error) {
	if err := validation.NewValidator().RequireEmail(email, "email").Error(); err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, email)
}
