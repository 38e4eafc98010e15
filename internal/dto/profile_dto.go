package dto

import (
	"github.com/google/uuid"
)

// ProfileLinkInput is one link on a profile
type ProfileLinkInput struct {
	ID    string `json:"id" example:"1"`
	Label string `json:"label" binding:"required,max=50" example:"GitHub"`
	URL   string `json:"url" binding:"required,url,max=500" example:"https://github.com/jane"`
}

// UpdateProfileRequest replaces the editable profile fields
type UpdateProfileRequest struct {
	Name        string             `json:"name" binding:"required,min=1,max=100" example:"Jane Doe"`
	Email       string             `json:"email" binding:"omitempty,email,max=255" example:"jane@example.com"`
	Description string             `json:"description" binding:"max=160" example:"Backend engineer"`
	Links       []ProfileLinkInput `json:"links" binding:"omitempty,max=10,dive"`
}

// ProfileResponse is the caller's profile
type ProfileResponse struct {
	UserID      uuid.UUID          `json:"userId"`
	Name        string             `json:"name"`
	Email       string             `json:"email,omitempty"`
	Description string             `json:"description"`
	Avatar      string             `json:"avatar,omitempty"`
	Links       []ProfileLinkInput `json:"links"`
}

// AvatarUploadURLRequest asks for a presigned avatar upload URL
type AvatarUploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required,max=255" example:"me.png"`
	ContentType string `json:"contentType" binding:"required" example:"image/png"`
}

// AvatarUploadURLResponse carries the presigned PUT URL and the key to confirm afterwards
type AvatarUploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileKey   string `json:"fileKey" example:"avatars/b2c3d4e5-f6a7-8901-bcde-f12345678901/2024/01/uuid_1700000000.png"`
	FileURL   string `json:"fileUrl"`
	ExpiresIn int    `json:"expiresIn" example:"300"`
}

// ConfirmAvatarRequest sets the uploaded object as the caller's avatar
type ConfirmAvatarRequest struct {
	FileKey string `json:"fileKey" binding:"required"`
}
