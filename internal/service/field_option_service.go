package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/customfield"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/position"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// BoardViews refreshes open board views after their options change
type BoardViews interface {
	CloseProject(projectID uuid.UUID)
	ReloadProject(ctx context.Context, projectID uuid.UUID) int
}

// FieldOptionService defines the interface for custom field option business logic
type FieldOptionService interface {
	GetFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType) ([]*dto.FieldOptionResponse, error)
	SaveFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, req *dto.SaveFieldOptionsRequest) (*dto.SaveFieldOptionsResponse, error)
	ReorderFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, fromIndex, toIndex int) ([]*dto.FieldOptionResponse, error)
}

// fieldOptionServiceImpl is the implementation of FieldOptionService
type fieldOptionServiceImpl struct {
	fieldOptionRepo repository.FieldOptionRepository
	views           BoardViews
	logger          *zap.Logger
}

// NewFieldOptionService creates a new instance of FieldOptionService
func NewFieldOptionService(fieldOptionRepo repository.FieldOptionRepository, views BoardViews, logger *zap.Logger) FieldOptionService {
	return &fieldOptionServiceImpl{
		fieldOptionRepo: fieldOptionRepo,
		views:           views,
		logger:          logger,
	}
}

// GetFieldOptions lists the options of one field in display order
func (s *fieldOptionServiceImpl) GetFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType) ([]*dto.FieldOptionResponse, error) {
	if err := s.authorize(ctx, scope, projectID, fieldType, access.ActionViewProject); err != nil {
		return nil, err
	}

	options, err := s.fieldOptionRepo.FindByProjectAndFieldType(ctx, projectID, fieldType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field options", err.Error())
	}
	return toFieldOptionResponses(options), nil
}

// SaveFieldOptions diffs the submitted list against the stored one and applies
// the adds, updates and deletes in one transaction
func (s *fieldOptionServiceImpl) SaveFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, req *dto.SaveFieldOptionsRequest) (*dto.SaveFieldOptionsResponse, error) {
	if err := s.authorize(ctx, scope, projectID, fieldType, access.ActionManageOptions); err != nil {
		return nil, err
	}

	stored, err := s.fieldOptionRepo.FindByProjectAndFieldType(ctx, projectID, fieldType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field options", err.Error())
	}

	original := make([]customfield.Item, len(stored))
	for i, option := range stored {
		original[i] = optionToItem(option)
	}

	current := make([]customfield.Item, 0, len(req.Options))
	seen := make(map[uuid.UUID]bool, len(req.Options))
	for _, in := range req.Options {
		item := inputToItem(in)
		if item.ID != uuid.Nil {
			if seen[item.ID] {
				return nil, response.NewValidationError("Duplicate option id", item.ID.String())
			}
			seen[item.ID] = true
		}
		if item.Limit < 0 {
			return nil, response.NewValidationError("Option limit must be zero or positive", "")
		}
		if fieldType != domain.FieldTypeStatus {
			item.Limit = 0
		}
		current = append(current, item)
	}

	diff := customfield.CompareAndUpdateItems(original, current)
	result := &dto.SaveFieldOptionsResponse{
		Added:   len(diff.ItemsToAdd),
		Updated: len(diff.ItemsToUpdate),
		Deleted: len(diff.ItemsToDelete),
	}

	if !diff.Empty() {
		changes := repository.OptionChanges{}
		for _, item := range diff.ItemsToAdd {
			// ids of new options are assigned by the server
			item.ID = uuid.Nil
			changes.Add = append(changes.Add, itemToOption(projectID, fieldType, item))
		}
		for _, item := range diff.ItemsToUpdate {
			changes.Update = append(changes.Update, itemToOption(projectID, fieldType, item))
		}
		for _, item := range diff.ItemsToDelete {
			changes.DeleteIDs = append(changes.DeleteIDs, item.ID)
		}

		if err := s.fieldOptionRepo.ApplyChanges(ctx, projectID, fieldType, changes); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Field option not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save field options", err.Error())
		}
		s.refreshViews(ctx, projectID, fieldType)

		s.logger.Info("Field options saved",
			zap.String("project_id", projectID.String()),
			zap.String("field_type", string(fieldType)),
			zap.Int("added", result.Added),
			zap.Int("updated", result.Updated),
			zap.Int("deleted", result.Deleted))
	}

	options, err := s.fieldOptionRepo.FindByProjectAndFieldType(ctx, projectID, fieldType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field options", err.Error())
	}
	result.Options = toFieldOptionResponses(options)
	return result, nil
}

// ReorderFieldOptions moves one option and writes only the orders that changed
func (s *fieldOptionServiceImpl) ReorderFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, fromIndex, toIndex int) ([]*dto.FieldOptionResponse, error) {
	if err := s.authorize(ctx, scope, projectID, fieldType, access.ActionManageOptions); err != nil {
		return nil, err
	}

	stored, err := s.fieldOptionRepo.FindByProjectAndFieldType(ctx, projectID, fieldType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch field options", err.Error())
	}

	items := make([]customfield.Item, len(stored))
	for i, option := range stored {
		items[i] = optionToItem(option)
	}
	list := customfield.NewList(items)

	moved, err := list.Move(fromIndex, toIndex)
	if err != nil {
		if errors.Is(err, position.ErrIndexOutOfRange) {
			return nil, response.NewValidationError("Invalid option index", err.Error())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder field options", err.Error())
	}
	if !moved {
		return toFieldOptionResponses(stored), nil
	}

	orders := make(map[uuid.UUID]int)
	for _, item := range list.Changes().ItemsToUpdate {
		orders[item.ID] = item.Order
	}
	if err := s.fieldOptionRepo.UpdateOrders(ctx, orders); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to reorder field options", err.Error())
	}
	s.refreshViews(ctx, projectID, fieldType)

	reordered := list.Items()
	result := make([]*dto.FieldOptionResponse, len(reordered))
	byID := make(map[uuid.UUID]*domain.FieldOption, len(stored))
	for _, option := range stored {
		byID[option.ID] = option
	}
	for i, item := range reordered {
		option := *byID[item.ID]
		option.DisplayOrder = item.Order
		result[i] = toFieldOptionResponse(&option)
	}
	return result, nil
}

func (s *fieldOptionServiceImpl) authorize(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, action access.Action) error {
	if !fieldType.IsValid() {
		return response.NewValidationError(fmt.Sprintf("Invalid field type: %s", fieldType), "")
	}
	if scope == nil || scope.FetchProjectAccess(ctx, projectID) == nil || !scope.Can(projectID, action) {
		return projectNotFound()
	}
	return nil
}

// refreshViews closes views when columns changed and reloads tasks for the other fields
func (s *fieldOptionServiceImpl) refreshViews(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType) {
	if s.views == nil {
		return
	}
	if fieldType == domain.FieldTypeStatus {
		s.views.CloseProject(projectID)
		return
	}
	s.views.ReloadProject(ctx, projectID)
}
