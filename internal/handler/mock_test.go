package handler

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/internal/access"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
)

// MockProjectService is a mock implementation of service.ProjectService
type MockProjectService struct {
	CreateProjectFunc func(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjectsFunc   func(ctx context.Context, scope *access.Scope, tab repository.ProjectTab) ([]*dto.ProjectResponse, error)
	GetProjectFunc    func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProjectFunc func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	CloseProjectFunc  func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	ReopenProjectFunc func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	DeleteProjectFunc func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) error
	GetAccessFunc     func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectAccessResponse, error)
}

func (m *MockProjectService) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockProjectService) GetProjects(ctx context.Context, scope *access.Scope, tab repository.ProjectTab) ([]*dto.ProjectResponse, error) {
	if m.GetProjectsFunc != nil {
		return m.GetProjectsFunc(ctx, scope, tab)
	}
	return nil, nil
}

func (m *MockProjectService) GetProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.GetProjectFunc != nil {
		return m.GetProjectFunc(ctx, scope, projectID)
	}
	return nil, nil
}

func (m *MockProjectService) UpdateProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if m.UpdateProjectFunc != nil {
		return m.UpdateProjectFunc(ctx, scope, projectID, req)
	}
	return nil, nil
}

func (m *MockProjectService) CloseProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.CloseProjectFunc != nil {
		return m.CloseProjectFunc(ctx, scope, projectID)
	}
	return nil, nil
}

func (m *MockProjectService) ReopenProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	if m.ReopenProjectFunc != nil {
		return m.ReopenProjectFunc(ctx, scope, projectID)
	}
	return nil, nil
}

func (m *MockProjectService) DeleteProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) error {
	if m.DeleteProjectFunc != nil {
		return m.DeleteProjectFunc(ctx, scope, projectID)
	}
	return nil
}

func (m *MockProjectService) GetAccess(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectAccessResponse, error) {
	if m.GetAccessFunc != nil {
		return m.GetAccessFunc(ctx, scope, projectID)
	}
	return nil, nil
}

// MockMemberService is a mock implementation of service.MemberService
type MockMemberService struct {
	ListMembersFunc      func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) ([]*dto.MemberResponse, error)
	SearchUsersFunc      func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, term string) ([]*dto.UserSummary, error)
	InviteMemberFunc     func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.InviteMemberRequest) (*dto.MemberResponse, error)
	AcceptInviteFunc     func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.MemberResponse, error)
	UpdateMemberRoleFunc func(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID, role domain.ProjectRole) (*dto.MemberResponse, error)
	RemoveMemberFunc     func(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID) error
}

func (m *MockMemberService) ListMembers(ctx context.Context, scope *access.Scope, projectID uuid.UUID) ([]*dto.MemberResponse, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx, scope, projectID)
	}
	return nil, nil
}

func (m *MockMemberService) SearchUsers(ctx context.Context, scope *access.Scope, projectID uuid.UUID, term string) ([]*dto.UserSummary, error) {
	if m.SearchUsersFunc != nil {
		return m.SearchUsersFunc(ctx, scope, projectID, term)
	}
	return nil, nil
}

func (m *MockMemberService) InviteMember(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.InviteMemberRequest) (*dto.MemberResponse, error) {
	if m.InviteMemberFunc != nil {
		return m.InviteMemberFunc(ctx, scope, projectID, req)
	}
	return nil, nil
}

func (m *MockMemberService) AcceptInvite(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.MemberResponse, error) {
	if m.AcceptInviteFunc != nil {
		return m.AcceptInviteFunc(ctx, scope, projectID)
	}
	return nil, nil
}

func (m *MockMemberService) UpdateMemberRole(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID, role domain.ProjectRole) (*dto.MemberResponse, error) {
	if m.UpdateMemberRoleFunc != nil {
		return m.UpdateMemberRoleFunc(ctx, scope, projectID, userID, role)
	}
	return nil, nil
}

func (m *MockMemberService) RemoveMember(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, scope, projectID, userID)
	}
	return nil
}

// MockFieldOptionService is a mock implementation of service.FieldOptionService
type MockFieldOptionService struct {
	GetFieldOptionsFunc     func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType) ([]*dto.FieldOptionResponse, error)
	SaveFieldOptionsFunc    func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, req *dto.SaveFieldOptionsRequest) (*dto.SaveFieldOptionsResponse, error)
	ReorderFieldOptionsFunc func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, fromIndex, toIndex int) ([]*dto.FieldOptionResponse, error)
}

func (m *MockFieldOptionService) GetFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType) ([]*dto.FieldOptionResponse, error) {
	if m.GetFieldOptionsFunc != nil {
		return m.GetFieldOptionsFunc(ctx, scope, projectID, fieldType)
	}
	return nil, nil
}

func (m *MockFieldOptionService) SaveFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, req *dto.SaveFieldOptionsRequest) (*dto.SaveFieldOptionsResponse, error) {
	if m.SaveFieldOptionsFunc != nil {
		return m.SaveFieldOptionsFunc(ctx, scope, projectID, fieldType, req)
	}
	return nil, nil
}

func (m *MockFieldOptionService) ReorderFieldOptions(ctx context.Context, scope *access.Scope, projectID uuid.UUID, fieldType domain.FieldType, fromIndex, toIndex int) ([]*dto.FieldOptionResponse, error) {
	if m.ReorderFieldOptionsFunc != nil {
		return m.ReorderFieldOptionsFunc(ctx, scope, projectID, fieldType, fromIndex, toIndex)
	}
	return nil, nil
}

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	OpenBoardFunc         func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	HideColumnFunc        func(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) (*dto.BoardResponse, error)
	ShowAllColumnsFunc    func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	CreateColumnFunc      func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateColumnRequest) (*dto.FieldOptionResponse, error)
	UpdateColumnFunc      func(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.FieldOptionResponse, error)
	UpdateColumnLimitFunc func(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, limit int) (*dto.FieldOptionResponse, error)
	DeleteColumnFunc      func(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) error
	CreateTaskFunc        func(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	BeginDragFunc         func(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) (*dto.BoardResponse, error)
	CancelDragFunc        func(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	MoveTaskFunc          func(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskMutationResponse, error)
	UpdateTaskFunc        func(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error)
	DeleteTaskFunc        func(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) error
}

func (m *MockBoardService) OpenBoard(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	if m.OpenBoardFunc != nil {
		return m.OpenBoardFunc(ctx, scope, projectID)
	}
	return &dto.BoardResponse{ProjectID: projectID}, nil
}

func (m *MockBoardService) HideColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) (*dto.BoardResponse, error) {
	if m.HideColumnFunc != nil {
		return m.HideColumnFunc(ctx, scope, projectID, columnID)
	}
	return &dto.BoardResponse{ProjectID: projectID}, nil
}

func (m *MockBoardService) ShowAllColumns(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	if m.ShowAllColumnsFunc != nil {
		return m.ShowAllColumnsFunc(ctx, scope, projectID)
	}
	return &dto.BoardResponse{ProjectID: projectID}, nil
}

func (m *MockBoardService) CreateColumn(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateColumnRequest) (*dto.FieldOptionResponse, error) {
	if m.CreateColumnFunc != nil {
		return m.CreateColumnFunc(ctx, scope, projectID, req)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.FieldOptionResponse, error) {
	if m.UpdateColumnFunc != nil {
		return m.UpdateColumnFunc(ctx, scope, projectID, columnID, req)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateColumnLimit(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, limit int) (*dto.FieldOptionResponse, error) {
	if m.UpdateColumnLimitFunc != nil {
		return m.UpdateColumnLimitFunc(ctx, scope, projectID, columnID, limit)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) error {
	if m.DeleteColumnFunc != nil {
		return m.DeleteColumnFunc(ctx, scope, projectID, columnID)
	}
	return nil
}

func (m *MockBoardService) CreateTask(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, scope, projectID, req)
	}
	return nil, nil
}

func (m *MockBoardService) BeginDrag(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) (*dto.BoardResponse, error) {
	if m.BeginDragFunc != nil {
		return m.BeginDragFunc(ctx, scope, projectID, taskID)
	}
	return &dto.BoardResponse{ProjectID: projectID, ActiveDragTaskID: &taskID}, nil
}

func (m *MockBoardService) CancelDrag(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	if m.CancelDragFunc != nil {
		return m.CancelDragFunc(ctx, scope, projectID)
	}
	return &dto.BoardResponse{ProjectID: projectID}, nil
}

func (m *MockBoardService) MoveTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskMutationResponse, error) {
	if m.MoveTaskFunc != nil {
		return m.MoveTaskFunc(ctx, scope, projectID, taskID, req)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, scope, projectID, taskID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, scope, projectID, taskID)
	}
	return nil
}

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	GetProfileFunc            func(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfileFunc         func(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	CreateAvatarUploadURLFunc func(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadURLRequest) (*dto.AvatarUploadURLResponse, error)
	ConfirmAvatarFunc         func(ctx context.Context, userID uuid.UUID, req *dto.ConfirmAvatarRequest) (*dto.ProfileResponse, error)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return &dto.ProfileResponse{UserID: userID}, nil
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return &dto.ProfileResponse{UserID: userID, Name: req.Name}, nil
}

func (m *MockProfileService) CreateAvatarUploadURL(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadURLRequest) (*dto.AvatarUploadURLResponse, error) {
	if m.CreateAvatarUploadURLFunc != nil {
		return m.CreateAvatarUploadURLFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockProfileService) ConfirmAvatar(ctx context.Context, userID uuid.UUID, req *dto.ConfirmAvatarRequest) (*dto.ProfileResponse, error) {
	if m.ConfirmAvatarFunc != nil {
		return m.ConfirmAvatarFunc(ctx, userID, req)
	}
	return nil, nil
}
