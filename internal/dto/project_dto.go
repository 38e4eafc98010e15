package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a project. When skipDefaultOptions is false the
// @Description project is seeded with the given option lists, or the built-in defaults when a list is omitted.
type CreateProjectRequest struct {
	Name               string        `json:"name" binding:"required,min=1,max=255" example:"Roadmap"`
	Description        string        `json:"description" binding:"max=2000" example:"Product roadmap for Q3"`
	Readme             string        `json:"readme" example:"# Roadmap"`
	SkipDefaultOptions bool          `json:"skipDefaultOptions" example:"false"`
	Statuses           []OptionInput `json:"statuses,omitempty" binding:"omitempty,dive"`
	Sizes              []OptionInput `json:"sizes,omitempty" binding:"omitempty,dive"`
	Priorities         []OptionInput `json:"priorities,omitempty" binding:"omitempty,dive"`
	Labels             []OptionInput `json:"labels,omitempty" binding:"omitempty,dive"`
}

// UpdateProjectRequest represents the request to update a project. All fields are optional.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255" example:"Roadmap 2025"`
	Description *string `json:"description" binding:"omitempty,max=2000" example:"Updated description"`
	Readme      *string `json:"readme" example:"# Roadmap\n\nUpdated"`
}

// ProjectResponse represents the project response
type ProjectResponse struct {
	ID          uuid.UUID  `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	Name        string     `json:"name" example:"Roadmap"`
	Description string     `json:"description" example:"Product roadmap for Q3"`
	Readme      string     `json:"readme"`
	CreatedBy   uuid.UUID  `json:"createdBy" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	IsClosed    bool       `json:"isClosed" example:"false"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
	Role        string     `json:"role,omitempty" example:"owner"`
	CreatedAt   time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time  `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// ProjectAccessResponse is the caller's derived access to a project
type ProjectAccessResponse struct {
	ProjectID   uuid.UUID       `json:"projectId"`
	Role        string          `json:"role" example:"write"`
	IsCreator   bool            `json:"isCreator" example:"false"`
	Permissions map[string]bool `json:"permissions"`
}
