package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User is the local profile of an authenticated account
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null;index:idx_users_name" json:"name"`
	Email       string         `gorm:"type:varchar(255);index:idx_users_email" json:"email"`
	Description string         `gorm:"type:varchar(160)" json:"description"`
	AvatarURL   string         `gorm:"type:text" json:"avatar"`
	Links       datatypes.JSON `gorm:"type:jsonb" json:"links"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
}

// ProfileLink is one entry of User.Links
type ProfileLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
