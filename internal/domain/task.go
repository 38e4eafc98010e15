package domain

import "github.com/google/uuid"

// Task represents a card on the project board
type Task struct {
	BaseModel
	ProjectID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"projectId"`
	StatusID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_tasks_status_position,priority:1" json:"statusId"`
	StatusPosition float64        `gorm:"not null;default:0;index:idx_tasks_status_position,priority:2" json:"statusPosition"`
	Title          string         `gorm:"type:varchar(500);not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	CreatedBy      uuid.UUID      `gorm:"type:uuid;not null" json:"createdBy"`
	SizeID         *uuid.UUID     `gorm:"type:uuid" json:"sizeId,omitempty"`
	PriorityID     *uuid.UUID     `gorm:"type:uuid" json:"priorityId,omitempty"`
	Size           *FieldOption   `gorm:"foreignKey:SizeID" json:"size,omitempty"`
	Priority       *FieldOption   `gorm:"foreignKey:PriorityID" json:"priority,omitempty"`
	Labels         []FieldOption  `gorm:"many2many:task_labels;joinForeignKey:TaskID;joinReferences:LabelID" json:"labels"`
	Assignees      []TaskAssignee `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"assignees"`
}

// TaskAssignee links a user to a task they are working on
type TaskAssignee struct {
	BaseModel
	TaskID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_assignees_task_id;uniqueIndex:uq_task_assignees_task_user" json:"taskId"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_task_assignees_user_id;uniqueIndex:uq_task_assignees_task_user" json:"userId"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TableName specifies the table name for TaskAssignee
func (TaskAssignee) TableName() string {
	return "task_assignees"
}
