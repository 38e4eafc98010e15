package dto

import (
	"time"

	"github.com/google/uuid"
)

// InviteMemberRequest invites a user to a project with a role below owner
type InviteMemberRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Role   string    `json:"role" binding:"required,oneof=read write admin" example:"write"`
}

// UpdateMemberRoleRequest changes the role of a member
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=read write admin" example:"admin"`
}

// MemberResponse represents a project member. The creator is listed with isCreator set.
type MemberResponse struct {
	MemberID         *uuid.UUID `json:"memberId,omitempty"`
	ProjectID        uuid.UUID  `json:"projectId"`
	UserID           uuid.UUID  `json:"userId"`
	Name             string     `json:"name,omitempty" example:"Jane Doe"`
	Email            string     `json:"email,omitempty" example:"jane@example.com"`
	Avatar           string     `json:"avatar,omitempty"`
	Role             string     `json:"role" example:"write"`
	InvitationStatus string     `json:"invitationStatus" example:"accepted"`
	IsCreator        bool       `json:"isCreator"`
	InvitedAt        *time.Time `json:"invitedAt,omitempty"`
	JoinedAt         *time.Time `json:"joinedAt,omitempty"`
}

// UserSummary is a user shown in invite search results
type UserSummary struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name" example:"Jane Doe"`
	Email  string    `json:"email,omitempty" example:"jane@example.com"`
	Avatar string    `json:"avatar,omitempty"`
}
