package storage

import (
	"time"
)

// DefaultCardPriority is assigned to cards created without a priority
const DefaultCardPriority = "medium"

// Entities refer to their parent by id only, so every value is an acyclic
// tree that encodes to JSON without cycles.

type User struct {
	ID        string    `json:"id" validate:"notblank,max=255"`
	Email     string    `json:"email" validate:"required,email,max=255"`
	Name      string    `json:"name" validate:"notblank,max=255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Workspace struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"notblank,max=255"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId" validate:"notblank"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Board struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"notblank,max=255"`
	Description string    `json:"description"`
	WorkspaceID int64     `json:"workspaceId" validate:"gt=0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type List struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"notblank,max=255"`
	Position  int       `json:"position" validate:"min=0"`
	BoardID   int64     `json:"boardId" validate:"gt=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Card struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title" validate:"notblank,max=500"`
	Description string     `json:"description"`
	Position    int        `json:"position" validate:"min=0"`
	ListID      int64      `json:"listId" validate:"gt=0"`
	Priority    string     `json:"priority" validate:"max=50"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
