package testutil

import (
	"time"

	"taskflow/internal/storage"
)

// WorkspaceBuilder helps build test workspaces
type WorkspaceBuilder struct {
	workspace *storage.Workspace
}

func NewWorkspaceBuilder() *WorkspaceBuilder {
	return &WorkspaceBuilder{
		workspace: &storage.Workspace{
			Name:    "test-workspace",
			OwnerID: "test-user-id",
		},
	}
}

func (b *WorkspaceBuilder) WithID(id int64) *WorkspaceBuilder {
	b.workspace.ID = id
	return b
}

func (b *WorkspaceBuilder) WithName(name string) *WorkspaceBuilder {
	b.workspace.Name = name
	return b
}

func (b *WorkspaceBuilder) WithOwner(ownerID string) *WorkspaceBuilder {
	b.workspace.OwnerID = ownerID
	return b
}

func (b *WorkspaceBuilder) WithDescription(description string) *WorkspaceBuilder {
	b.workspace.Description = description
	return b
}

func (b *WorkspaceBuilder) Build() *storage.Workspace {
	return b.workspace
}

// BoardBuilder helps build test boards
type BoardBuilder struct {
	board *storage.Board
}

func NewBoardBuilder() *BoardBuilder {
	return &BoardBuilder{
		board: &storage.Board{
			Name:        "test-board",
			WorkspaceID: 1,
		},
	}
}

func (b *BoardBuilder) WithID(id int64) *BoardBuilder {
	b.board.ID = id
	return b
}

func (b *BoardBuilder) WithName(name string) *BoardBuilder {
	b.board.Name = name
	return b
}

func (b *BoardBuilder) WithWorkspace(workspaceID int64) *BoardBuilder {
	b.board.WorkspaceID = workspaceID
	return b
}

func (b *BoardBuilder) Build() *storage.Board {
	return b.board
}

// ListBuilder helps build test lists
type ListBuilder struct {
	list *storage.List
}

func NewListBuilder() *ListBuilder {
	return &ListBuilder{
		list: &storage.List{
			Name:    "test-list",
			BoardID: 1,
		},
	}
}

func (b *ListBuilder) WithID(id int64) *ListBuilder {
	b.list.ID = id
	return b
}

func (b *ListBuilder) WithName(name string) *ListBuilder {
	b.list.Name = name
	return b
}

func (b *ListBuilder) WithBoard(boardID int64) *ListBuilder {
	b.list.BoardID = boardID
	return b
}

func (b *ListBuilder) WithPosition(position int) *ListBuilder {
	b.list.Position = position
	return b
}

func (b *ListBuilder) Build() *storage.List {
	return b.list
}

// CardBuilder helps build test cards
type CardBuilder struct {
	card *storage.Card
}

func NewCardBuilder() *CardBuilder {
	return &CardBuilder{
		card: &storage.Card{
			Title:  "test-card",
			ListID: 1,
		},
	}
}

func (b *CardBuilder) WithID(id int64) *CardBuilder {
	b.card.ID = id
	return b
}

func (b *CardBuilder) WithTitle(title string) *CardBuilder {
	b.card.Title = title
	return b
}

func (b *CardBuilder) WithList(listID int64) *CardBuilder {
	b.card.ListID = listID
	return b
}

func (b *CardBuilder) WithPriority(priority string) *CardBuilder {
	b.card.Priority = priority
	return b
}

func (b *CardBuilder) WithDueDate(due time.Time) *CardBuilder {
	b.card.DueDate = &due
	return b
}

func (b *CardBuilder) Build() *storage.Card {
	return b.card
}
