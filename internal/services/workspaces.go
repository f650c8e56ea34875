package services

import (
	"context"

	"taskflow/internal/common/errors"
	"taskflow/internal/common/logging"
	"taskflow/internal/common/validation"
	"taskflow/internal/storage"
)

// WorkspaceUpdate carries the mutable workspace fields; nil leaves a field as stored
type WorkspaceUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// WorkspaceService scopes every operation to the calling user
type WorkspaceService struct {
	repo   storage.WorkspaceRepository
	logger logging.Logger
}

func NewWorkspaceService(repo storage.WorkspaceRepository, logger logging.Logger) *WorkspaceService {
	return &WorkspaceService{repo: repo, logger: logger.WithFields(logging.Field{Key: "service", Value: "workspaces"})}
}

// ListForUser returns the workspaces owned by userID
func (s *WorkspaceService) ListForUser(ctx context.Context, userID string) ([]*storage.Workspace, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	return s.repo.ListByParent(ctx, userID)
}

// Get returns the workspace when userID owns it. A workspace owned by
// someone else is reported as not found.
func (s *WorkspaceService) Get(ctx context.Context, id int64, userID string) (*storage.Workspace, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	ws, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ws.OwnerID != userID {
		return nil, errors.NotFoundError("workspace").WithContext("id", id)
	}
	return ws, nil
}

// Create stores ws owned by userID
func (s *WorkspaceService) Create(ctx context.Context, userID string, ws *storage.Workspace) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	ws.ID = 0
	ws.OwnerID = userID
	if err := validation.ValidateStruct(ws); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, ws); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Info("Workspace created",
		logging.Field{Key: "workspace_id", Value: ws.ID},
		logging.Field{Key: "owner_id", Value: userID},
	)
	return nil
}

// Update applies upd when userID owns the workspace
func (s *WorkspaceService) Update(ctx context.Context, id int64, userID string, upd WorkspaceUpdate) (*storage.Workspace, error) {
	existing, err := s.owned(ctx, id, userID, "update")
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if err := validation.ValidateStruct(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the workspace when userID owns it. A missing id is a no-op.
func (s *WorkspaceService) Delete(ctx context.Context, id int64, userID string) error {
	_, err := s.owned(ctx, id, userID, "delete")
	if errors.IsType(err, errors.ErrTypeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Info("Workspace deleted", logging.Field{Key: "workspace_id", Value: id})
	return nil
}

// owned loads the workspace and rejects callers who do not own it
func (s *WorkspaceService) owned(ctx context.Context, id int64, userID, action string) (*storage.Workspace, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != userID {
		s.logger.WithContext(ctx).Warn("Rejected workspace "+action+" by non-owner",
			logging.Field{Key: "workspace_id", Value: id},
			logging.Field{Key: "user_id", Value: userID},
		)
		return nil, errors.UnauthorizedError("not authorized to " + action + " this workspace")
	}
	return existing, nil
}

func requireUser(userID string) error {
	return validation.NewValidator().RequireString(userID, "user id").Error()
}
