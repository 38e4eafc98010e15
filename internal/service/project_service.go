package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// ViewCloser drops open board views of a project
type ViewCloser interface {
	CloseProject(projectID uuid.UUID)
}

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context, scope *access.Scope, tab repository.ProjectTab) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	CloseProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	ReopenProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) error
	GetAccess(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectAccessResponse, error)
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo     repository.ProjectRepository
	fieldOptionRepo repository.FieldOptionRepository
	accessStore     *access.Store
	views           ViewCloser
	metrics         *metrics.Metrics
	logger          *zap.Logger
	now             func() time.Time
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, fieldOptionRepo repository.FieldOptionRepository, accessStore *access.Store, views ViewCloser, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo:     projectRepo,
		fieldOptionRepo: fieldOptionRepo,
		accessStore:     accessStore,
		views:           views,
		metrics:         m,
		logger:          logger,
		now:             time.Now,
	}
}

// projectNotFound is returned for missing projects and for projects the caller may not see
func projectNotFound() *response.AppError {
	return response.NewNotFoundError("Project not found", "")
}

// CreateProject creates a project owned by userID and seeds its options
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if userID == uuid.Nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Authentication required", "")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Project name is required", "")
	}

	project := &domain.Project{
		Name:        name,
		Description: req.Description,
		Readme:      req.Readme,
		CreatedBy:   userID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if options := initialOptions(project.ID, req); len(options) > 0 {
		if err := s.fieldOptionRepo.CreateBatch(ctx, options); err != nil {
			s.logger.Error("Failed to seed project options, rolling back project creation",
				zap.String("project_id", project.ID.String()),
				zap.Error(err))

			if deleteErr := s.projectRepo.Delete(ctx, project.ID); deleteErr != nil {
				s.logger.Error("Failed to rollback project after option seeding failure",
					zap.String("project_id", project.ID.String()),
					zap.Error(deleteErr))
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project options", err.Error())
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
	}
	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("default_options", !req.SkipDefaultOptions))

	return toProjectResponse(project, domain.ProjectRoleOwner), nil
}

// GetProjects lists the caller's projects for a tab
func (s *projectServiceImpl) GetProjects(ctx context.Context, scope *access.Scope, tab repository.ProjectTab) ([]*dto.ProjectResponse, error) {
	if tab == "" {
		tab = repository.ProjectTabActive
	}
	if !tab.IsValid() {
		return nil, response.NewValidationError("Invalid project tab", "tab must be one of active, closed, all")
	}

	projects, err := s.projectRepo.FindByUser(ctx, scope.UserID(), tab)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		var role domain.ProjectRole
		if entry := scope.FetchProjectAccess(ctx, project.ID); entry != nil {
			role = entry.Role
		}
		responses = append(responses, toProjectResponse(project, role))
	}
	return responses, nil
}

// GetProject returns one project the caller can view
func (s *projectServiceImpl) GetProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionViewProject)
	if err != nil {
		return nil, err
	}
	role, _ := scope.Role(projectID)
	return toProjectResponse(project, role), nil
}

// UpdateProject edits name, description and readme
func (s *projectServiceImpl) UpdateProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionEditProject)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, response.NewValidationError("Project name is required", "")
		}
		project.Name = name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Readme != nil {
		project.Readme = *req.Readme
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, s.mapRepoError(err, "Failed to update project")
	}
	project.UpdatedAt = s.now()

	role, _ := scope.Role(projectID)
	return toProjectResponse(project, role), nil
}

// CloseProject moves a project to the closed tab
func (s *projectServiceImpl) CloseProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	return s.setClosed(ctx, scope, projectID, true)
}

// ReopenProject moves a closed project back to the active tab
func (s *projectServiceImpl) ReopenProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	return s.setClosed(ctx, scope, projectID, false)
}

func (s *projectServiceImpl) setClosed(ctx context.Context, scope *access.Scope, projectID uuid.UUID, closed bool) (*dto.ProjectResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionCloseProject)
	if err != nil {
		return nil, err
	}
	role, _ := scope.Role(projectID)
	if project.IsClosed == closed {
		return toProjectResponse(project, role), nil
	}

	now := s.now()
	if err := s.projectRepo.SetClosed(ctx, projectID, closed, now); err != nil {
		return nil, s.mapRepoError(err, "Failed to update project state")
	}

	project.IsClosed = closed
	project.ClosedAt = nil
	if closed {
		project.ClosedAt = &now
	}
	project.UpdatedAt = now

	s.logger.Info("Project state changed",
		zap.String("project_id", projectID.String()),
		zap.Bool("closed", closed))

	return toProjectResponse(project, role), nil
}

// DeleteProject removes a project with everything in it
func (s *projectServiceImpl) DeleteProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID) error {
	if _, err := s.authorizedProject(ctx, scope, projectID, access.ActionDeleteProject); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return s.mapRepoError(err, "Failed to delete project")
	}

	s.accessStore.InvalidateProject(ctx, projectID)
	scope.Invalidate(ctx, projectID)
	if s.views != nil {
		s.views.CloseProject(projectID)
	}

	s.logger.Info("Project deleted",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", scope.UserID().String()))
	return nil
}

// GetAccess returns the caller's derived role and permissions
func (s *projectServiceImpl) GetAccess(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.ProjectAccessResponse, error) {
	entry := scope.FetchProjectAccess(ctx, projectID)
	if entry == nil || !entry.Role.IsValid() {
		return nil, projectNotFound()
	}

	permissions := make(map[string]bool, len(entry.Permissions))
	for action, allowed := range entry.Permissions {
		permissions[string(action)] = allowed
	}
	return &dto.ProjectAccessResponse{
		ProjectID:   projectID,
		Role:        string(entry.Role),
		IsCreator:   entry.IsCreator,
		Permissions: permissions,
	}, nil
}

// authorizedProject loads a project after checking action. Denials look like a missing project.
func (s *projectServiceImpl) authorizedProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID, action access.Action) (*domain.Project, error) {
	if scope == nil || scope.FetchProjectAccess(ctx, projectID) == nil || !scope.Can(projectID, action) {
		return nil, projectNotFound()
	}

	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, s.mapRepoError(err, "Failed to fetch project")
	}
	return project, nil
}

func (s *projectServiceImpl) mapRepoError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return projectNotFound()
	}
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
