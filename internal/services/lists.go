package services

import (
	"context"

	"taskflow/internal/common/logging"
	"taskflow/internal/common/validation"
	"taskflow/internal/storage"
)

// ListUpdate carries the mutable list fields; nil leaves a field as stored
type ListUpdate struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
	BoardID  *int64  `json:"boardId"`
}

type ListService struct {
	repo   storage.ListRepository
	logger logging.Logger
}

func NewListService(repo storage.ListRepository, logger logging.Logger) *ListService {
	return &ListService{repo: repo, logger: logger.WithFields(logging.Field{Key: "service", Value: "lists"})}
}

// ListForBoard returns the lists of a board ordered by position
func (s *ListService) ListForBoard(ctx context.Context, boardID int64) ([]*storage.List, error) {
	return s.repo.ListByParent(ctx, boardID)
}

func (s *ListService) Get(ctx context.Context, id int64) (*storage.List, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores list. Without a position it goes after the board's current lists.
func (s *ListService) Create(ctx context.Context, list *storage.List, position *int) error {
	list.ID = 0
	if position != nil {
		list.Position = *position
	} else if list.BoardID > 0 {
		siblings, err := s.repo.ListByParent(ctx, list.BoardID)
		if err != nil {
			return err
		}
		list.Position = len(siblings)
	}

	if err := validation.ValidateStruct(list); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, list); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Debug("List created",
		logging.Field{Key: "list_id", Value: list.ID},
		logging.Field{Key: "board_id", Value: list.BoardID},
		logging.Field{Key: "position", Value: list.Position},
	)
	return nil
}

func (s *ListService) Update(ctx context.Context, id int64, upd ListUpdate) (*storage.List, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Position != nil {
		existing.Position = *upd.Position
	}
	if upd.BoardID != nil {
		existing.BoardID = *upd.BoardID
	}
	if err := validation.ValidateStruct(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ListService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
