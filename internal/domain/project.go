package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a board project owned by its creator
type Project struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Readme      string          `gorm:"type:text" json:"readme"`
	CreatedBy   uuid.UUID       `gorm:"type:uuid;not null;index:idx_projects_created_by" json:"createdBy"`
	IsClosed    bool            `gorm:"not null;default:false;index:idx_projects_is_closed" json:"isClosed"`
	ClosedAt    *time.Time      `gorm:"type:timestamp" json:"closedAt,omitempty"`
	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// ProjectRole is the access level of a project member
type ProjectRole string

const (
	ProjectRoleRead  ProjectRole = "read"
	ProjectRoleWrite ProjectRole = "write"
	ProjectRoleAdmin ProjectRole = "admin"
	ProjectRoleOwner ProjectRole = "owner"
)

// Rank orders roles read < write < admin < owner. Unknown roles rank 0.
func (r ProjectRole) Rank() int {
	switch r {
	case ProjectRoleRead:
		return 1
	case ProjectRoleWrite:
		return 2
	case ProjectRoleAdmin:
		return 3
	case ProjectRoleOwner:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether r is one of the four known roles
func (r ProjectRole) IsValid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r ranks at or above min
func (r ProjectRole) AtLeast(min ProjectRole) bool {
	return r.IsValid() && min.IsValid() && r.Rank() >= min.Rank()
}

// InvitationStatus tracks whether a member has accepted the project invite
type InvitationStatus string

const (
	InvitationInvited  InvitationStatus = "invited"
	InvitationAccepted InvitationStatus = "accepted"
)

// ProjectMember represents a user's membership in a project.
// The creator is never stored here; their owner role is derived.
type ProjectMember struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProjectID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_project_members_project_id;uniqueIndex:uq_project_members_project_user" json:"projectId"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index:idx_project_members_user_id;uniqueIndex:uq_project_members_project_user" json:"userId"`
	Role             ProjectRole      `gorm:"type:varchar(20);not null;default:'read'" json:"role"`
	InvitationStatus InvitationStatus `gorm:"type:varchar(20);not null;default:'invited';index:idx_project_members_status" json:"invitationStatus"`
	InvitedBy        *uuid.UUID       `gorm:"type:uuid" json:"invitedBy,omitempty"`
	InvitedAt        *time.Time       `gorm:"type:timestamp" json:"invitedAt,omitempty"`
	JoinedAt         *time.Time       `gorm:"type:timestamp" json:"joinedAt,omitempty"`
	User             *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName specifies the table name for ProjectMember
func (ProjectMember) TableName() string {
	return "project_members"
}

// BeforeCreate assigns the membership id when the caller did not
func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
