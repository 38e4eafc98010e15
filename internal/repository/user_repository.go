package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// UserRepository defines the interface for user profile data access
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// SearchByName matches names case-insensitively, leaving out excluded ids
	SearchByName(ctx context.Context, term string, excludeIDs []uuid.UUID, limit int) ([]*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}

// userRepositoryImpl is the GORM implementation of UserRepository
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepositoryImpl{db: db}
}

// FindByID finds a user by ID
func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchByName returns up to limit users whose name contains term
func (r *userRepositoryImpl) SearchByName(ctx context.Context, term string, excludeIDs []uuid.UUID, limit int) ([]*domain.User, error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	query := r.db.WithContext(ctx).Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var users []*domain.User
	if err := query.Order("name ASC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Upsert creates the user or refreshes name and email of an existing one
func (r *userRepositoryImpl) Upsert(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
	}).Create(user).Error
}

// UpdateProfile saves name, email, description and links
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":        user.Name,
			"email":       user.Email,
			"description": user.Description,
			"links":       user.Links,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateAvatar stores the avatar URL of a user
func (r *userRepositoryImpl) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
