package services

import (
	"context"
	"time"

	"taskflow/internal/common/logging"
	"taskflow/internal/common/validation"
	"taskflow/internal/storage"
)

// CardUpdate carries the mutable card fields; nil leaves a field as stored.
// ClearDueDate removes the due date.
type CardUpdate struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Position     *int       `json:"position"`
	ListID       *int64     `json:"listId"`
	Priority     *string    `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	ClearDueDate bool       `json:"clearDueDate"`
}

type CardService struct {
	repo   storage.CardRepository
	logger logging.Logger
}

func NewCardService(repo storage.CardRepository, logger logging.Logger) *CardService {
	return &CardService{repo: repo, logger: logger.WithFields(logging.Field{Key: "service", Value: "cards"})}
}

// ListForList returns the cards of a list ordered by position
func (s *CardService) ListForList(ctx context.Context, listID int64) ([]*storage.Card, error) {
	return s.repo.ListByParent(ctx, listID)
}

func (s *CardService) Get(ctx context.Context, id int64) (*storage.Card, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores card. Without a position it goes after the list's current
// cards; without a priority it is medium.
func (s *CardService) Create(ctx context.Context, card *storage.Card, position *int) error {
	card.ID = 0
	if card.Priority == "" {
		card.Priority = storage.DefaultCardPriority
	}
	if position != nil {
		card.Position = *position
	} else if card.ListID > 0 {
		siblings, err := s.repo.ListByParent(ctx, card.ListID)
		if err != nil {
			return err
		}
		card.Position = len(siblings)
	}

	if err := validation.ValidateStruct(card); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Debug("Card created",
		logging.Field{Key: "card_id", Value: card.ID},
		logging.Field{Key: "list_id", Value: card.ListID},
	)
	return nil
}

func (s *CardService) Update(ctx context.Context, id int64, upd CardUpdate) (*storage.Card, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		existing.Title = *upd.Title
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Position != nil {
		existing.Position = *upd.Position
	}
	if upd.ListID != nil {
		existing.ListID = *upd.ListID
	}
	if upd.Priority != nil {
		existing.Priority = *upd.Priority
	}
	if existing.Priority == "" {
		existing.Priority = storage.DefaultCardPriority
	}
	switch {
	case upd.ClearDueDate:
		existing.DueDate = nil
	case upd.DueDate != nil:
		due := upd.DueDate.UTC()
		existing.DueDate = &due
	}
	if err := validation.ValidateStruct(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *CardService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
