package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// ProjectTab selects which projects a listing returns
type ProjectTab string

const (
	ProjectTabActive ProjectTab = "active"
	ProjectTabClosed ProjectTab = "closed"
	ProjectTabAll    ProjectTab = "all"
)

// IsValid reports whether t is a known tab
func (t ProjectTab) IsValid() bool {
	return t == ProjectTabActive || t == ProjectTabClosed || t == ProjectTabAll
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByUser(ctx context.Context, userID uuid.UUID, tab ProjectTab) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	SetClosed(ctx context.Context, id uuid.UUID, closed bool, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, closed bool) (int64, error)
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByID finds a project by ID
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByUser returns projects the user created or joined, newest first
func (r *projectRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, tab ProjectTab) ([]*domain.Project, error) {
	memberOf := r.db.Model(&domain.ProjectMember{}).
		Select("project_id").
		Where("user_id = ? AND invitation_status = ?", userID, domain.InvitationAccepted)

	query := r.db.WithContext(ctx).
		Where("created_by = ? OR id IN (?)", userID, memberOf)

	switch tab {
	case ProjectTabActive:
		query = query.Where("is_closed = ?", false)
	case ProjectTabClosed:
		query = query.Where("is_closed = ?", true)
	}

	var projects []*domain.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update saves name, description and readme
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"readme":      project.Readme,
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

// SetClosed closes or reopens a project
func (r *projectRepositoryImpl) SetClosed(ctx context.Context, id uuid.UUID, closed bool, at time.Time) error {
	var closedAt *time.Time
	if closed {
		closedAt = &at
	}
	result := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_closed":  closed,
			"closed_at":  closedAt,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a project with its members, options and tasks in one transaction
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&domain.Task{}).Select("id").Where("project_id = ?", id)
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id IN (?)", taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&domain.FieldOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&domain.ProjectMember{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the number of open or closed projects
func (r *projectRepositoryImpl) Count(ctx context.Context, closed bool) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("is_closed = ?", closed).
		Count(&count).Error
	return count, err
}
