package board

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

var (
	ErrEmptyTitle      = errors.New("task title must not be empty")
	ErrEmptyLabel      = errors.New("column label must not be empty")
	ErrUnauthenticated = errors.New("an authenticated user is required")
	ErrColumnNotFound  = errors.New("column not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskNotInColumn = errors.New("task is not in the source column")
	ErrInvalidLimit    = errors.New("column limit must be zero or positive")
	ErrDragInProgress  = errors.New("another task is being dragged")
	ErrViewNotOpen     = errors.New("board view is not open")
)

// TaskChanges lists field edits. Nil fields are left unchanged.
type TaskChanges struct {
	Title       *string
	Description *string
	AssigneeIDs *[]uuid.UUID
	LabelIDs    *[]uuid.UUID
	Size        *uuid.NullUUID
	Priority    *uuid.NullUUID
}

// Empty reports whether no field is changed
func (c TaskChanges) Empty() bool {
	return c.Title == nil && c.Description == nil && c.AssigneeIDs == nil && !c.TouchesRelations()
}

// TouchesRelations reports whether the edit changes joined option data (labels, size, priority).
// Those joins are not rebuilt locally; the task list is reloaded instead.
func (c TaskChanges) TouchesRelations() bool {
	return c.LabelIDs != nil || c.Size != nil || c.Priority != nil
}

// Store is the remote persistence behind a board view
type Store interface {
	ListColumns(ctx context.Context, projectID uuid.UUID) ([]domain.FieldOption, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error)

	CreateTask(ctx context.Context, task *domain.Task) error
	UpdateTaskPlacement(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64) error
	UpdateTaskFields(ctx context.Context, taskID uuid.UUID, changes TaskChanges) error
	// MoveTask writes a new placement together with field edits; either both apply or neither
	MoveTask(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64, changes TaskChanges) error
	DeleteTask(ctx context.Context, taskID uuid.UUID) error

	CreateColumn(ctx context.Context, column *domain.FieldOption) error
	UpdateColumn(ctx context.Context, column *domain.FieldOption) error
	// DeleteColumn removes the column together with its tasks
	DeleteColumn(ctx context.Context, columnID uuid.UUID) error
}

// Recorder receives board activity counts
type Recorder interface {
	IncrementTaskCreated()
	IncrementTaskMoved()
	IncrementTaskReload()
}
