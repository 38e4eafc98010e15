package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"taskboard-api/internal/board"
	"taskboard-api/internal/customfield"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
)

func toProjectResponse(project *domain.Project, role domain.ProjectRole) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Readme:      project.Readme,
		CreatedBy:   project.CreatedBy,
		IsClosed:    project.IsClosed,
		ClosedAt:    project.ClosedAt,
		Role:        string(role),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toFieldOptionResponse(option *domain.FieldOption) *dto.FieldOptionResponse {
	if option == nil {
		return nil
	}
	return &dto.FieldOptionResponse{
		OptionID:    option.ID,
		ProjectID:   option.ProjectID,
		FieldType:   string(option.FieldType),
		Label:       option.Label,
		Color:       option.Color,
		Description: option.Description,
		Order:       option.DisplayOrder,
		Limit:       option.TaskLimit,
		CreatedAt:   option.CreatedAt,
		UpdatedAt:   option.UpdatedAt,
	}
}

func toFieldOptionResponses(options []*domain.FieldOption) []*dto.FieldOptionResponse {
	responses := make([]*dto.FieldOptionResponse, len(options))
	for i, option := range options {
		responses[i] = toFieldOptionResponse(option)
	}
	return responses
}

func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	labels := make([]*dto.FieldOptionResponse, len(task.Labels))
	for i := range task.Labels {
		labels[i] = toFieldOptionResponse(&task.Labels[i])
	}
	assignees := make([]uuid.UUID, len(task.Assignees))
	for i, a := range task.Assignees {
		assignees[i] = a.UserID
	}
	return &dto.TaskResponse{
		TaskID:         task.ID,
		ProjectID:      task.ProjectID,
		StatusID:       task.StatusID,
		StatusPosition: task.StatusPosition,
		Title:          task.Title,
		Description:    task.Description,
		CreatedBy:      task.CreatedBy,
		Size:           toFieldOptionResponse(task.Size),
		Priority:       toFieldOptionResponse(task.Priority),
		Labels:         labels,
		AssigneeIDs:    assignees,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func toBoardResponse(view board.View) *dto.BoardResponse {
	resp := &dto.BoardResponse{
		ProjectID:       view.ProjectID,
		Columns:         make([]*dto.ColumnResponse, len(view.Columns)),
		HiddenColumnIDs: view.HiddenColumnIDs,
	}
	for i := range view.Columns {
		col := view.Columns[i]
		tasks := make([]*dto.TaskResponse, len(col.Tasks))
		for j := range col.Tasks {
			tasks[j] = toTaskResponse(&col.Tasks[j])
		}
		resp.Columns[i] = &dto.ColumnResponse{
			Column: toFieldOptionResponse(&col.Column),
			Tasks:  tasks,
			Load:   col.Load,
			Hidden: col.Hidden,
		}
	}
	if view.ActiveDrag != nil {
		id := view.ActiveDrag.ID
		resp.ActiveDragTaskID = &id
	}
	return resp
}

func toMemberResponse(member *domain.ProjectMember) *dto.MemberResponse {
	id := member.ID
	resp := &dto.MemberResponse{
		MemberID:         &id,
		ProjectID:        member.ProjectID,
		UserID:           member.UserID,
		Role:             string(member.Role),
		InvitationStatus: string(member.InvitationStatus),
		InvitedAt:        member.InvitedAt,
		JoinedAt:         member.JoinedAt,
	}
	if member.User != nil {
		resp.Name = member.User.Name
		resp.Email = member.User.Email
		resp.Avatar = member.User.AvatarURL
	}
	return resp
}

func toUserSummary(user *domain.User) *dto.UserSummary {
	return &dto.UserSummary{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.AvatarURL,
	}
}

func toProfileResponse(user *domain.User) *dto.ProfileResponse {
	links := []dto.ProfileLinkInput{}
	if len(user.Links) > 0 {
		var stored []domain.ProfileLink
		if err := json.Unmarshal(user.Links, &stored); err == nil {
			for _, l := range stored {
				links = append(links, dto.ProfileLinkInput{ID: l.ID, Label: l.Label, URL: l.URL})
			}
		}
	}
	return &dto.ProfileResponse{
		UserID:      user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Description: user.Description,
		Avatar:      user.AvatarURL,
		Links:       links,
	}
}

// optionToItem and itemToOption convert between stored options and the editable list
func optionToItem(option *domain.FieldOption) customfield.Item {
	return customfield.Item{
		ID:          option.ID,
		Label:       option.Label,
		Color:       option.Color,
		Description: option.Description,
		Order:       option.DisplayOrder,
		Limit:       option.TaskLimit,
	}
}

func itemToOption(projectID uuid.UUID, fieldType domain.FieldType, item customfield.Item) *domain.FieldOption {
	option := &domain.FieldOption{
		ProjectID:    projectID,
		FieldType:    fieldType,
		Label:        item.Label,
		Color:        item.Color,
		Description:  item.Description,
		DisplayOrder: item.Order,
		TaskLimit:    item.Limit,
	}
	option.ID = item.ID
	return option
}

func inputToItem(in dto.OptionInput) customfield.Item {
	return customfield.Item{
		ID:          in.ID,
		Label:       in.Label,
		Color:       in.Color,
		Description: in.Description,
		Order:       in.Order,
		Limit:       in.Limit,
	}
}
