package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// OptionChanges is a set of writes to one field's options, applied atomically
type OptionChanges struct {
	Add       []*domain.FieldOption
	Update    []*domain.FieldOption
	DeleteIDs []uuid.UUID
}

// FieldOptionRepository defines the interface for field option data access
type FieldOptionRepository interface {
	Create(ctx context.Context, fieldOption *domain.FieldOption) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldOption, error)
	FindByProjectAndFieldType(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType) ([]*domain.FieldOption, error)
	CreateBatch(ctx context.Context, fieldOptions []*domain.FieldOption) error
	Update(ctx context.Context, fieldOption *domain.FieldOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyChanges(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType, changes OptionChanges) error
	UpdateOrders(ctx context.Context, orders map[uuid.UUID]int) error
}

// fieldOptionRepositoryImpl is the GORM implementation of FieldOptionRepository
type fieldOptionRepositoryImpl struct {
	db *gorm.DB
}

// NewFieldOptionRepository creates a new instance of FieldOptionRepository
func NewFieldOptionRepository(db *gorm.DB) FieldOptionRepository {
	return &fieldOptionRepositoryImpl{db: db}
}

// Create creates a new field option
func (r *fieldOptionRepositoryImpl) Create(ctx context.Context, fieldOption *domain.FieldOption) error {
	return r.db.WithContext(ctx).Create(fieldOption).Error
}

// FindByID finds a field option by ID
func (r *fieldOptionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldOption, error) {
	var fieldOption domain.FieldOption
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fieldOption).Error; err != nil {
		return nil, err
	}
	return &fieldOption, nil
}

// FindByProjectAndFieldType finds all field options for a specific project and field type
func (r *fieldOptionRepositoryImpl) FindByProjectAndFieldType(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType) ([]*domain.FieldOption, error) {
	var fieldOptions []*domain.FieldOption
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND field_type = ?", projectID, fieldType).
		Order("display_order ASC, created_at ASC").
		Find(&fieldOptions).Error; err != nil {
		return nil, err
	}
	return fieldOptions, nil
}

// CreateBatch creates multiple field options in a single statement
func (r *fieldOptionRepositoryImpl) CreateBatch(ctx context.Context, fieldOptions []*domain.FieldOption) error {
	if len(fieldOptions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&fieldOptions).Error
}

// Update saves the editable fields of an option
func (r *fieldOptionRepositoryImpl) Update(ctx context.Context, fieldOption *domain.FieldOption) error {
	return updateOption(r.db.WithContext(ctx), fieldOption)
}

// Delete removes an option and detaches it from tasks
func (r *fieldOptionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteOptions(tx, []uuid.UUID{id})
	})
}

// ApplyChanges deletes, updates and inserts options of one field in a single transaction
func (r *fieldOptionRepositoryImpl) ApplyChanges(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType, changes OptionChanges) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes.DeleteIDs) > 0 {
			if err := requireOptions(tx, projectID, fieldType, changes.DeleteIDs); err != nil {
				return err
			}
			if err := deleteOptions(tx, changes.DeleteIDs); err != nil {
				return err
			}
		}

		for _, option := range changes.Update {
			option.ProjectID = projectID
			option.FieldType = fieldType
			if err := updateOption(tx.Where("project_id = ? AND field_type = ?", projectID, fieldType), option); err != nil {
				return err
			}
		}

		if len(changes.Add) > 0 {
			for _, option := range changes.Add {
				option.ProjectID = projectID
				option.FieldType = fieldType
			}
			if err := tx.Create(&changes.Add).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateOrders writes new display orders in one transaction
func (r *fieldOptionRepositoryImpl) UpdateOrders(ctx context.Context, orders map[uuid.UUID]int) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			result := tx.Model(&domain.FieldOption{}).Where("id = ?", id).Update("display_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// requireOptions fails with gorm.ErrRecordNotFound unless every id is an option of the given
// project and field type
func requireOptions(tx *gorm.DB, projectID uuid.UUID, fieldType domain.FieldType, ids []uuid.UUID) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	var owned int64
	if err := tx.Model(&domain.FieldOption{}).
		Where("id IN ? AND project_id = ? AND field_type = ?", ids, projectID, fieldType).
		Count(&owned).Error; err != nil {
		return err
	}
	if int(owned) != len(ids) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func updateOption(db *gorm.DB, option *domain.FieldOption) error {
	result := db.Model(&domain.FieldOption{}).
		Where("id = ?", option.ID).
		Updates(map[string]interface{}{
			"label":         option.Label,
			"color":         option.Color,
			"description":   option.Description,
			"display_order": option.DisplayOrder,
			"task_limit":    option.TaskLimit,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteOptions removes options and everything that points at them. Tasks in a deleted status
// column go with it; label, size and priority references are cleared.
func deleteOptions(tx *gorm.DB, ids []uuid.UUID) error {
	columnTasks := tx.Model(&domain.Task{}).Select("id").Where("status_id IN ?", ids)
	if err := tx.Exec("DELETE FROM task_labels WHERE task_id IN (?) OR label_id IN ?", columnTasks, ids).Error; err != nil {
		return err
	}
	if err := tx.Where("task_id IN (?)", columnTasks).Delete(&domain.TaskAssignee{}).Error; err != nil {
		return err
	}
	if err := tx.Where("status_id IN ?", ids).Delete(&domain.Task{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&domain.Task{}).Where("size_id IN ?", ids).Update("size_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&domain.Task{}).Where("priority_id IN ?", ids).Update("priority_id", nil).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&domain.FieldOption{}).Error
}
