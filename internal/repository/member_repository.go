package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// MemberRepository defines the interface for project membership data access
type MemberRepository interface {
	Create(ctx context.Context, member *domain.ProjectMember) error
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	FindByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindUserIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	Accept(ctx context.Context, projectID, userID uuid.UUID, joinedAt time.Time) error
	UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error
	Delete(ctx context.Context, projectID, userID uuid.UUID) error
	// AcceptedRole returns the role of an accepted membership; invited rows are ignored
	AcceptedRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error)
}

// memberRepositoryImpl is the GORM implementation of MemberRepository
type memberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// Create creates a new membership row
func (r *memberRepositoryImpl) Create(ctx context.Context, member *domain.ProjectMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

// FindByProject lists members of a project with their profiles, accepted first
func (r *memberRepositoryImpl) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	var members []*domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("invitation_status ASC, invited_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByProjectAndUser finds one membership row regardless of status
func (r *memberRepositoryImpl) FindByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	var member domain.ProjectMember
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindUserIDsByProject returns the ids of every invited or accepted member
func (r *memberRepositoryImpl) FindUserIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ?", projectID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// Accept turns an invited row into an accepted membership
func (r *memberRepositoryImpl) Accept(ctx context.Context, projectID, userID uuid.UUID, joinedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id = ? AND invitation_status = ?", projectID, userID, domain.InvitationInvited).
		Updates(map[string]interface{}{
			"invitation_status": domain.InvitationAccepted,
			"joined_at":         joinedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRole changes the role of a member
func (r *memberRepositoryImpl) UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	result := r.db.WithContext(ctx).
		Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a membership row and the user's task assignments in the project
func (r *memberRepositoryImpl) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&domain.ProjectMember{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		taskIDs := tx.Model(&domain.Task{}).Select("id").Where("project_id = ?", projectID)
		return tx.Where("user_id = ? AND task_id IN (?)", userID, taskIDs).Delete(&domain.TaskAssignee{}).Error
	})
}

// AcceptedRole returns the member's role when the invitation was accepted
func (r *memberRepositoryImpl) AcceptedRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
	var member domain.ProjectMember
	err := r.db.WithContext(ctx).
		Select("role").
		Where("project_id = ? AND user_id = ? AND invitation_status = ?", projectID, userID, domain.InvitationAccepted).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return member.Role, true, nil
}
