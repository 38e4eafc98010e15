package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/board"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/position"
)

// TaskRepository persists tasks and status columns. It is the store behind board views.
type TaskRepository interface {
	board.Store

	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	// FindColumnPositions returns task ids and positions of a column in display order
	FindColumnPositions(ctx context.Context, statusID uuid.UUID) ([]TaskPosition, error)
	// RenormalizeColumn rewrites the positions of a column to n-1..0 and returns the rows changed
	RenormalizeColumn(ctx context.Context, statusID uuid.UUID) (int, error)
	FindStatusColumns(ctx context.Context, projectID *uuid.UUID) ([]*domain.FieldOption, error)
	Count(ctx context.Context) (int64, error)
}

// TaskPosition is the ordering data of one task
type TaskPosition struct {
	ID             uuid.UUID
	StatusPosition float64
	CreatedAt      time.Time
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// ListColumns returns the status options of a project in display order
func (r *taskRepositoryImpl) ListColumns(ctx context.Context, projectID uuid.UUID) ([]domain.FieldOption, error) {
	var columns []domain.FieldOption
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND field_type = ?", projectID, domain.FieldTypeStatus).
		Order("display_order ASC, created_at ASC").
		Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// ListTasks returns every task of a project with assignees, labels, size and priority joined
func (r *taskRepositoryImpl) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Labels", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Size").
		Preload("Priority").
		Where("project_id = ?", projectID).
		Order("status_position DESC, created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID with its relations
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Labels").
		Preload("Size").
		Preload("Priority").
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task in a status column of its own project
func (r *taskRepositoryImpl) CreateTask(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireColumn(tx, task.ProjectID, task.StatusID); err != nil {
			return err
		}
		return tx.Omit("Labels", "Assignees", "Size", "Priority").Create(task).Error
	})
}

// UpdateTaskPlacement moves a task to a column and position
func (r *taskRepositoryImpl) UpdateTaskPlacement(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findTaskForWrite(tx, taskID)
		if err != nil {
			return err
		}
		return placeTask(tx, task, statusID, statusPosition)
	})
}

// UpdateTaskFields applies field edits and replaces assignee and label sets in one transaction
func (r *taskRepositoryImpl) UpdateTaskFields(ctx context.Context, taskID uuid.UUID, changes board.TaskChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findTaskForWrite(tx, taskID)
		if err != nil {
			return err
		}
		return editTask(tx, task, changes)
	})
}

// MoveTask applies field edits and the new placement in one transaction
func (r *taskRepositoryImpl) MoveTask(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64, changes board.TaskChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findTaskForWrite(tx, taskID)
		if err != nil {
			return err
		}
		if err := editTask(tx, task, changes); err != nil {
			return err
		}
		return placeTask(tx, task, statusID, statusPosition)
	})
}

func findTaskForWrite(tx *gorm.DB, taskID uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := tx.Where("id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func placeTask(tx *gorm.DB, task *domain.Task, statusID uuid.UUID, statusPosition float64) error {
	if err := requireColumn(tx, task.ProjectID, statusID); err != nil {
		return err
	}
	return tx.Model(&domain.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"status_id":       statusID,
			"status_position": statusPosition,
			"updated_at":      time.Now(),
		}).Error
}

// editTask writes changes to task. Every referenced option and assignee must belong to the
// task's project.
func editTask(tx *gorm.DB, task *domain.Task, changes board.TaskChanges) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.Size != nil {
		if changes.Size.Valid {
			if err := requireOptions(tx, task.ProjectID, domain.FieldTypeSize, []uuid.UUID{changes.Size.UUID}); err != nil {
				return err
			}
		}
		updates["size_id"] = nullableID(*changes.Size)
	}
	if changes.Priority != nil {
		if changes.Priority.Valid {
			if err := requireOptions(tx, task.ProjectID, domain.FieldTypePriority, []uuid.UUID{changes.Priority.UUID}); err != nil {
				return err
			}
		}
		updates["priority_id"] = nullableID(*changes.Priority)
	}
	if err := tx.Model(&domain.Task{}).Where("id = ?", task.ID).Updates(updates).Error; err != nil {
		return err
	}

	if changes.AssigneeIDs != nil {
		userIDs := uniqueIDs(*changes.AssigneeIDs)
		if err := requireAssignable(tx, task.ProjectID, userIDs); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		assignees := make([]domain.TaskAssignee, 0, len(userIDs))
		for _, userID := range userIDs {
			assignees = append(assignees, domain.TaskAssignee{TaskID: task.ID, UserID: userID})
		}
		if len(assignees) > 0 {
			if err := tx.Create(&assignees).Error; err != nil {
				return err
			}
		}
	}

	if changes.LabelIDs != nil {
		labels := make([]domain.FieldOption, 0, len(*changes.LabelIDs))
		if ids := uniqueIDs(*changes.LabelIDs); len(ids) > 0 {
			if err := requireOptions(tx, task.ProjectID, domain.FieldTypeLabel, ids); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", ids).Find(&labels).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(task).Association("Labels").Replace(labels); err != nil {
			return err
		}
	}
	return nil
}

// requireColumn fails with board.ErrColumnNotFound unless statusID is a status option of the project
func requireColumn(tx *gorm.DB, projectID, statusID uuid.UUID) error {
	err := requireOptions(tx, projectID, domain.FieldTypeStatus, []uuid.UUID{statusID})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return board.ErrColumnNotFound
	}
	return err
}

// requireAssignable fails with gorm.ErrRecordNotFound unless every user is the project creator
// or an accepted member
func requireAssignable(tx *gorm.DB, projectID uuid.UUID, userIDs []uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}
	var project domain.Project
	if err := tx.Select("id, created_by").Where("id = ?", projectID).First(&project).Error; err != nil {
		return err
	}

	pending := make([]uuid.UUID, 0, len(userIDs))
	for _, id := range userIDs {
		if id != project.CreatedBy {
			pending = append(pending, id)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	var members int64
	if err := tx.Model(&domain.ProjectMember{}).
		Where("project_id = ? AND user_id IN ? AND invitation_status = ?", projectID, pending, domain.InvitationAccepted).
		Count(&members).Error; err != nil {
		return err
	}
	if int(members) != len(pending) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteTask removes a task with its assignees and labels
func (r *taskRepositoryImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id = ?", taskID).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&domain.TaskAssignee{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", taskID).Delete(&domain.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// CreateColumn creates a status option
func (r *taskRepositoryImpl) CreateColumn(ctx context.Context, column *domain.FieldOption) error {
	column.FieldType = domain.FieldTypeStatus
	return r.db.WithContext(ctx).Create(column).Error
}

// UpdateColumn saves label, color, description, order and limit of a status option
func (r *taskRepositoryImpl) UpdateColumn(ctx context.Context, column *domain.FieldOption) error {
	return updateOption(r.db.WithContext(ctx).Where("field_type = ?", domain.FieldTypeStatus), column)
}

// DeleteColumn removes a status option together with its tasks
func (r *taskRepositoryImpl) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.FieldOption{}).
			Where("id = ? AND field_type = ?", columnID, domain.FieldTypeStatus).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return deleteOptions(tx, []uuid.UUID{columnID})
	})
}

// FindColumnPositions returns the ordering data of a column's tasks in display order
func (r *taskRepositoryImpl) FindColumnPositions(ctx context.Context, statusID uuid.UUID) ([]TaskPosition, error) {
	var positions []TaskPosition
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("id, status_position, created_at").
		Where("status_id = ?", statusID).
		Order("status_position DESC, created_at ASC, id ASC").
		Scan(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// RenormalizeColumn rewrites only the positions that differ from the dense sequence
func (r *taskRepositoryImpl) RenormalizeColumn(ctx context.Context, statusID uuid.UUID) (int, error) {
	changed := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []TaskPosition
		if err := tx.Model(&domain.Task{}).
			Select("id, status_position, created_at").
			Where("status_id = ?", statusID).
			Order("status_position DESC, created_at ASC, id ASC").
			Scan(&current).Error; err != nil {
			return err
		}

		dense := position.Renormalize(len(current))
		for i, task := range current {
			if task.StatusPosition == dense[i] {
				continue
			}
			if err := tx.Model(&domain.Task{}).
				Where("id = ?", task.ID).
				Update("status_position", dense[i]).Error; err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// FindStatusColumns lists status options of one project, or of every project when projectID is nil
func (r *taskRepositoryImpl) FindStatusColumns(ctx context.Context, projectID *uuid.UUID) ([]*domain.FieldOption, error) {
	query := r.db.WithContext(ctx).Where("field_type = ?", domain.FieldTypeStatus)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var columns []*domain.FieldOption
	if err := query.Order("project_id ASC, display_order ASC").Find(&columns).Error; err != nil {
		return nil, err
	}
	return columns, nil
}

// Count returns the total number of tasks
func (r *taskRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Count(&count).Error
	return count, err
}

func nullableID(id uuid.NullUUID) interface{} {
	if !id.Valid {
		return nil
	}
	return id.UUID
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
