package service

import (
	"github.com/google/uuid"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
)

var defaultStatuses = []dto.OptionInput{
	{Label: "Backlog", Color: "#6B7280", Description: "This item hasn't been started"},
	{Label: "Ready", Color: "#3B82F6", Description: "This is ready to be picked up"},
	{Label: "In progress", Color: "#F59E0B", Description: "This is actively being worked on"},
	{Label: "In review", Color: "#8B5CF6", Description: "This item is in review"},
	{Label: "Done", Color: "#10B981", Description: "This has been completed"},
}

var defaultSizes = []dto.OptionInput{
	{Label: "XS", Color: "#10B981", Description: "Extra small"},
	{Label: "S", Color: "#3B82F6", Description: "Small"},
	{Label: "M", Color: "#F59E0B", Description: "Medium"},
	{Label: "L", Color: "#F97316", Description: "Large"},
	{Label: "XL", Color: "#EF4444", Description: "Extra large"},
}

var defaultPriorities = []dto.OptionInput{
	{Label: "Low", Color: "#10B981"},
	{Label: "Medium", Color: "#F59E0B"},
	{Label: "High", Color: "#EF4444"},
}

var defaultLabels = []dto.OptionInput{
	{Label: "bug", Color: "#EF4444", Description: "Something isn't working"},
	{Label: "documentation", Color: "#3B82F6", Description: "Improvements or additions to documentation"},
	{Label: "enhancement", Color: "#10B981", Description: "New feature or request"},
	{Label: "question", Color: "#8B5CF6", Description: "Further information is requested"},
}

// initialOptions builds the options a new project starts with. Lists the request leaves empty
// fall back to the defaults; skip seeds nothing. Orders are reassigned 0..n-1 per field.
func initialOptions(projectID uuid.UUID, req *dto.CreateProjectRequest) []*domain.FieldOption {
	if req.SkipDefaultOptions {
		return nil
	}

	fields := []struct {
		fieldType domain.FieldType
		given     []dto.OptionInput
		fallback  []dto.OptionInput
	}{
		{domain.FieldTypeStatus, req.Statuses, defaultStatuses},
		{domain.FieldTypeSize, req.Sizes, defaultSizes},
		{domain.FieldTypePriority, req.Priorities, defaultPriorities},
		{domain.FieldTypeLabel, req.Labels, defaultLabels},
	}

	var options []*domain.FieldOption
	for _, f := range fields {
		inputs := f.given
		if len(inputs) == 0 {
			inputs = f.fallback
		}
		for i, in := range inputs {
			item := inputToItem(in)
			item.ID = uuid.Nil
			item.Order = i
			if f.fieldType != domain.FieldTypeStatus {
				item.Limit = 0
			}
			options = append(options, itemToOption(projectID, f.fieldType, item))
		}
	}
	return options
}
