package domain

import "github.com/google/uuid"

// FieldType represents the kind of custom field an option belongs to
type FieldType string

// FieldType constants
const (
	FieldTypeStatus   FieldType = "status"
	FieldTypeLabel    FieldType = "label"
	FieldTypePriority FieldType = "priority"
	FieldTypeSize     FieldType = "size"
)

// IsValid reports whether t is a known field type
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeStatus, FieldTypeLabel, FieldTypePriority, FieldTypeSize:
		return true
	default:
		return false
	}
}

// FieldOption is a project-scoped custom field option. Status options are the board columns.
type FieldOption struct {
	BaseModel
	ProjectID    uuid.UUID `gorm:"type:uuid;not null;index:idx_field_options_project_type,priority:1" json:"projectId"`
	FieldType    FieldType `gorm:"type:varchar(20);not null;index:idx_field_options_project_type,priority:2" json:"fieldType"`
	Label        string    `gorm:"type:varchar(200);not null" json:"label"`
	Color        string    `gorm:"type:varchar(20);not null" json:"color"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"type:int;not null;default:0;index:idx_field_options_display_order" json:"order"`
	// TaskLimit caps the number of tasks in a status column; 0 means unlimited
	TaskLimit int `gorm:"type:int;not null;default:0" json:"limit"`
}

// TableName specifies the table name for FieldOption
func (FieldOption) TableName() string {
	return "field_options"
}
