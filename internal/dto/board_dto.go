package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/board"
)

// NullableID distinguishes an absent field from an explicit null.
// Set is true when the field was present; ID.Valid is false for null.
type NullableID struct {
	Set bool
	ID  uuid.NullUUID
}

// UnmarshalJSON records presence and parses a uuid or null
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.ID = uuid.NullUUID{}
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.ID = uuid.NullUUID{UUID: id, Valid: true}
	return nil
}

// MarshalJSON writes the id or null
func (n NullableID) MarshalJSON() ([]byte, error) {
	if !n.ID.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.ID.UUID)
}

// CreateTaskRequest creates a task at the bottom of a column
type CreateTaskRequest struct {
	StatusID uuid.UUID `json:"statusId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Title    string    `json:"title" binding:"required,max=500" example:"Write release notes"`
}

// UpdateTaskRequest edits task fields. Omitted fields are left unchanged;
// sizeId and priorityId accept null to clear.
type UpdateTaskRequest struct {
	Title       *string      `json:"title,omitempty" binding:"omitempty,max=500"`
	Description *string      `json:"description,omitempty"`
	AssigneeIDs *[]uuid.UUID `json:"assigneeIds,omitempty"`
	LabelIDs    *[]uuid.UUID `json:"labelIds,omitempty"`
	SizeID      NullableID   `json:"sizeId" swaggertype:"string"`
	PriorityID  NullableID   `json:"priorityId" swaggertype:"string"`
}

// ToChanges converts the request into board.TaskChanges
func (r *UpdateTaskRequest) ToChanges() board.TaskChanges {
	changes := board.TaskChanges{
		Title:       r.Title,
		Description: r.Description,
		AssigneeIDs: r.AssigneeIDs,
		LabelIDs:    r.LabelIDs,
	}
	if r.SizeID.Set {
		size := r.SizeID.ID
		changes.Size = &size
	}
	if r.PriorityID.Set {
		priority := r.PriorityID.ID
		changes.Priority = &priority
	}
	return changes
}

// MoveTaskRequest drops a task at newIndex of the target column, optionally with field edits
type MoveTaskRequest struct {
	FromStatusID uuid.UUID          `json:"fromStatusId" binding:"required"`
	ToStatusID   uuid.UUID          `json:"toStatusId" binding:"required"`
	NewIndex     int                `json:"newIndex" binding:"min=0" example:"0"`
	Changes      *UpdateTaskRequest `json:"changes,omitempty"`
}

// CreateColumnRequest adds a status column at the end of the board
type CreateColumnRequest struct {
	Label       string `json:"label" binding:"required,max=200" example:"QA"`
	Color       string `json:"color" binding:"max=20" example:"#F59E0B"`
	Description string `json:"description" binding:"max=500"`
	Limit       int    `json:"limit" binding:"min=0" example:"0"`
}

// UpdateColumnRequest edits the descriptive fields of a column
type UpdateColumnRequest struct {
	Label       string `json:"label" binding:"required,max=200" example:"QA"`
	Color       string `json:"color" binding:"max=20" example:"#F59E0B"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateColumnLimitRequest sets the task limit of a column; 0 removes it
type UpdateColumnLimitRequest struct {
	Limit *int `json:"limit" binding:"required" example:"5"`
}

// TaskResponse is a task with its joined options
type TaskResponse struct {
	TaskID         uuid.UUID              `json:"taskId"`
	ProjectID      uuid.UUID              `json:"projectId"`
	StatusID       uuid.UUID              `json:"statusId"`
	StatusPosition float64                `json:"statusPosition"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	CreatedBy      uuid.UUID              `json:"createdBy"`
	Size           *FieldOptionResponse   `json:"size,omitempty"`
	Priority       *FieldOptionResponse   `json:"priority,omitempty"`
	Labels         []*FieldOptionResponse `json:"labels"`
	AssigneeIDs    []uuid.UUID            `json:"assigneeIds"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ColumnResponse is one board column with its tasks in display order
type ColumnResponse struct {
	Column *FieldOptionResponse `json:"column"`
	Tasks  []*TaskResponse      `json:"tasks"`
	Load   board.ColumnLoad     `json:"load"`
	Hidden bool                 `json:"hidden"`
}

// BoardResponse is the state of the caller's board view
type BoardResponse struct {
	ProjectID        uuid.UUID         `json:"projectId"`
	Columns          []*ColumnResponse `json:"columns"`
	HiddenColumnIDs  []uuid.UUID       `json:"hiddenColumnIds"`
	ActiveDragTaskID *uuid.UUID        `json:"activeDragTaskId,omitempty"`
}

// TaskMutationResponse is returned by task writes. reloaded is true when the view
// refetched every task from the store instead of patching the one task.
type TaskMutationResponse struct {
	Task     *TaskResponse `json:"task"`
	Moved    bool          `json:"moved"`
	Reloaded bool          `json:"reloaded"`
}
