package board

import (
	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// View is a read-only copy of the board state
type View struct {
	ProjectID       uuid.UUID    `json:"projectId"`
	Columns         []ColumnView `json:"columns"`
	HiddenColumnIDs []uuid.UUID  `json:"hiddenColumnIds"`
	ActiveDrag      *domain.Task `json:"activeDrag,omitempty"`
}

// ColumnView is one column with its tasks in display order
type ColumnView struct {
	Column domain.FieldOption `json:"column"`
	Tasks  []domain.Task      `json:"tasks"`
	Load   ColumnLoad         `json:"load"`
	Hidden bool               `json:"hidden"`
}

// Snapshot copies the current state. Tasks whose column is unknown are left out.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := View{
		ProjectID:       c.projectID,
		Columns:         make([]ColumnView, 0, len(c.columns)),
		HiddenColumnIDs: make([]uuid.UUID, 0, len(c.hidden)),
	}
	for _, col := range c.columns {
		tasks := c.tasksIn(col.ID, uuid.Nil)
		view.Columns = append(view.Columns, ColumnView{
			Column: col,
			Tasks:  tasks,
			Load:   loadOf(col, len(tasks)),
			Hidden: c.hidden[col.ID],
		})
		if c.hidden[col.ID] {
			view.HiddenColumnIDs = append(view.HiddenColumnIDs, col.ID)
		}
	}
	if c.activeDrag != nil {
		drag := *c.activeDrag
		view.ActiveDrag = &drag
	}
	return view
}

// Task returns a copy of the task if this view holds it
func (c *Controller) Task(taskID uuid.UUID) (*domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	task, ok := c.findTask(taskID)
	if !ok {
		return nil, false
	}
	return &task, true
}
