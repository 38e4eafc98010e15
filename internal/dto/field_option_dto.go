package dto

import (
	"time"

	"github.com/google/uuid"
)

// OptionInput is one option in a create or bulk save request. A zero id marks a new option.
type OptionInput struct {
	ID          uuid.UUID `json:"id,omitempty" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Label       string    `json:"label" binding:"required,max=200" example:"In progress"`
	Color       string    `json:"color" binding:"max=20" example:"#3B82F6"`
	Description string    `json:"description" binding:"max=500" example:"Work has started"`
	Order       int       `json:"order" binding:"min=0" example:"1"`
	Limit       int       `json:"limit" binding:"min=0" example:"0"`
}

// FieldOptionResponse represents the field option response
type FieldOptionResponse struct {
	OptionID    uuid.UUID `json:"optionId"`
	ProjectID   uuid.UUID `json:"projectId"`
	FieldType   string    `json:"fieldType" example:"status"`
	Label       string    `json:"label" example:"In progress"`
	Color       string    `json:"color" example:"#3B82F6"`
	Description string    `json:"description"`
	Order       int       `json:"order" example:"1"`
	Limit       int       `json:"limit" example:"0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SaveFieldOptionsRequest replaces the option list of a field with the given one
type SaveFieldOptionsRequest struct {
	Options []OptionInput `json:"options" binding:"dive"`
}

// SaveFieldOptionsResponse reports the writes made by a bulk save
type SaveFieldOptionsResponse struct {
	Options []*FieldOptionResponse `json:"options"`
	Added   int                    `json:"added"`
	Updated int                    `json:"updated"`
	Deleted int                    `json:"deleted"`
}

// ReorderFieldOptionsRequest moves the option at fromIndex to toIndex
type ReorderFieldOptionsRequest struct {
	FromIndex *int `json:"fromIndex" binding:"required,min=0" example:"0"`
	ToIndex   *int `json:"toIndex" binding:"required,min=0" example:"2"`
}
