package services

import (
	"context"

	"taskflow/internal/common/logging"
	"taskflow/internal/common/validation"
	"taskflow/internal/storage"
)

// BoardUpdate carries the mutable board fields; nil leaves a field as stored.
// A new WorkspaceID moves the board.
type BoardUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	WorkspaceID *int64  `json:"workspaceId"`
}

type BoardService struct {
	repo   storage.BoardRepository
	logger logging.Logger
}

func NewBoardService(repo storage.BoardRepository, logger logging.Logger) *BoardService {
	return &BoardService{repo: repo, logger: logger.WithFields(logging.Field{Key: "service", Value: "boards"})}
}

func (s *BoardService) ListForWorkspace(ctx context.Context, workspaceID int64) ([]*storage.Board, error) {
	return s.repo.ListByParent(ctx, workspaceID)
}

func (s *BoardService) Get(ctx context.Context, id int64) (*storage.Board, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BoardService) Create(ctx context.Context, board *storage.Board) error {
	board.ID = 0
	if err := validation.ValidateStruct(board); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, board); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Debug("Board created",
		logging.Field{Key: "board_id", Value: board.ID},
		logging.Field{Key: "workspace_id", Value: board.WorkspaceID},
	)
	return nil
}

func (s *BoardService) Update(ctx context.Context, id int64, upd BoardUpdate) (*storage.Board, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.WorkspaceID != nil {
		existing.WorkspaceID = *upd.WorkspaceID
	}
	if err := validation.ValidateStruct(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the board and, through the store, its lists and cards
func (s *BoardService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
