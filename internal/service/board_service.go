package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/board"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

// BoardSessions opens and looks up per-user board views
type BoardSessions interface {
	Open(ctx context.Context, userID, projectID uuid.UUID) (*board.Controller, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*board.Controller, error)
	// CloseOthers drops the views other users hold on a project
	CloseOthers(projectID, keepUserID uuid.UUID) int
}

// BoardService defines the interface for board view operations
type BoardService interface {
	OpenBoard(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	HideColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) (*dto.BoardResponse, error)
	ShowAllColumns(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	CreateColumn(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateColumnRequest) (*dto.FieldOptionResponse, error)
	UpdateColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.FieldOptionResponse, error)
	UpdateColumnLimit(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, limit int) (*dto.FieldOptionResponse, error)
	DeleteColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) error
	CreateTask(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	BeginDrag(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) (*dto.BoardResponse, error)
	CancelDrag(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error)
	MoveTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskMutationResponse, error)
	UpdateTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error)
	DeleteTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	sessions BoardSessions
	logger   *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(sessions BoardSessions, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		sessions: sessions,
		logger:   logger,
	}
}

// OpenBoard loads a fresh view, which also resets hidden columns
func (s *boardServiceImpl) OpenBoard(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	if err := authorizeBoard(ctx, scope, projectID, access.ActionViewProject); err != nil {
		return nil, err
	}
	ctrl, err := s.sessions.Open(ctx, scope.UserID(), projectID)
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to open board")
	}
	return toBoardResponse(ctrl.Snapshot()), nil
}

// HideColumn hides a column in the caller's view only
func (s *boardServiceImpl) HideColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) (*dto.BoardResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionViewProject)
	if err != nil {
		return nil, err
	}
	if err := ctrl.HideColumn(columnID); err != nil {
		return nil, s.mapBoardError(err, "Failed to hide column")
	}
	return toBoardResponse(ctrl.Snapshot()), nil
}

// ShowAllColumns clears the hidden columns of the caller's view
func (s *boardServiceImpl) ShowAllColumns(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionViewProject)
	if err != nil {
		return nil, err
	}
	ctrl.ShowAllColumns()
	return toBoardResponse(ctrl.Snapshot()), nil
}

// CreateColumn adds a status column at the end of the board
func (s *boardServiceImpl) CreateColumn(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateColumnRequest) (*dto.FieldOptionResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionManageColumns)
	if err != nil {
		return nil, err
	}
	column, err := ctrl.CreateColumn(ctx, board.ColumnDetails{
		Label:       req.Label,
		Color:       req.Color,
		Description: req.Description,
	}, req.Limit)
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to create column")
	}
	s.columnsChanged(scope, projectID)
	return toFieldOptionResponse(column), nil
}

// UpdateColumn edits label, color and description of a column
func (s *boardServiceImpl) UpdateColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, req *dto.UpdateColumnRequest) (*dto.FieldOptionResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionManageColumns)
	if err != nil {
		return nil, err
	}
	column, err := ctrl.UpdateColumnDetails(ctx, columnID, board.ColumnDetails{
		Label:       req.Label,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to update column")
	}
	s.columnsChanged(scope, projectID)
	return toFieldOptionResponse(column), nil
}

// UpdateColumnLimit sets the task limit of a column (0 = unlimited)
func (s *boardServiceImpl) UpdateColumnLimit(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID, limit int) (*dto.FieldOptionResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionManageColumns)
	if err != nil {
		return nil, err
	}
	column, err := ctrl.UpdateColumnLimit(ctx, columnID, limit)
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to update column limit")
	}
	s.columnsChanged(scope, projectID)
	return toFieldOptionResponse(column), nil
}

// DeleteColumn removes a column and its tasks
func (s *boardServiceImpl) DeleteColumn(ctx context.Context, scope *access.Scope, projectID, columnID uuid.UUID) error {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionManageColumns)
	if err != nil {
		return err
	}
	if err := ctrl.DeleteColumn(ctx, columnID); err != nil {
		return s.mapBoardError(err, "Failed to delete column")
	}
	s.columnsChanged(scope, projectID)
	return nil
}

// CreateTask appends a task to the bottom of a column
func (s *boardServiceImpl) CreateTask(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := authorizeBoard(ctx, scope, projectID, access.ActionCreateTask); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, s.mapBoardError(board.ErrEmptyTitle, "Failed to create task")
	}
	ctrl, err := s.view(ctx, scope, projectID, access.ActionCreateTask)
	if err != nil {
		return nil, err
	}
	task, err := ctrl.CreateTask(ctx, req.StatusID, req.Title, scope.UserID())
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to create task")
	}
	return toTaskResponse(task), nil
}

// BeginDrag marks a task as being dragged in the caller's view
func (s *boardServiceImpl) BeginDrag(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) (*dto.BoardResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionMoveTask)
	if err != nil {
		return nil, err
	}
	if err := ctrl.BeginDrag(taskID); err != nil {
		return nil, s.mapBoardError(err, "Failed to start drag")
	}
	return toBoardResponse(ctrl.Snapshot()), nil
}

// CancelDrag drops the active drag of the caller's view
func (s *boardServiceImpl) CancelDrag(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.BoardResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionViewProject)
	if err != nil {
		return nil, err
	}
	ctrl.CancelDrag()
	return toBoardResponse(ctrl.Snapshot()), nil
}

// MoveTask drops a task at a new index, optionally together with field edits
func (s *boardServiceImpl) MoveTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.MoveTaskRequest) (*dto.TaskMutationResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionMoveTask)
	if err != nil {
		return nil, err
	}

	in := board.MoveTaskInput{
		TaskID:     taskID,
		FromColumn: req.FromStatusID,
		ToColumn:   req.ToStatusID,
		NewIndex:   req.NewIndex,
	}
	if req.Changes != nil {
		changes := req.Changes.ToChanges()
		in.Changes = &changes
	}

	result, err := ctrl.MoveTask(ctx, in)
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to move task")
	}
	return &dto.TaskMutationResponse{
		Task:     toTaskResponse(result.Task),
		Moved:    result.Moved,
		Reloaded: result.Reloaded,
	}, nil
}

// UpdateTask edits task fields
func (s *boardServiceImpl) UpdateTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskMutationResponse, error) {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionEditTask)
	if err != nil {
		return nil, err
	}
	task, reloaded, err := ctrl.UpdateTask(ctx, taskID, req.ToChanges())
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to update task")
	}
	return &dto.TaskMutationResponse{
		Task:     toTaskResponse(task),
		Reloaded: reloaded,
	}, nil
}

// DeleteTask deletes a task and reloads the view's tasks
func (s *boardServiceImpl) DeleteTask(ctx context.Context, scope *access.Scope, projectID, taskID uuid.UUID) error {
	ctrl, err := s.view(ctx, scope, projectID, access.ActionDeleteTask)
	if err != nil {
		return err
	}
	if err := ctrl.DeleteTask(ctx, taskID); err != nil {
		return s.mapBoardError(err, "Failed to delete task")
	}
	return nil
}

// columnsChanged closes the other users' views of a project so their next request loads the new columns
func (s *boardServiceImpl) columnsChanged(scope *access.Scope, projectID uuid.UUID) {
	if closed := s.sessions.CloseOthers(projectID, scope.UserID()); closed > 0 {
		s.logger.Debug("Closed stale board views",
			zap.String("project_id", projectID.String()),
			zap.Int("views", closed))
	}
}

// view returns the caller's open view, opening one when there is none
func (s *boardServiceImpl) view(ctx context.Context, scope *access.Scope, projectID uuid.UUID, action access.Action) (*board.Controller, error) {
	if err := authorizeBoard(ctx, scope, projectID, action); err != nil {
		return nil, err
	}
	ctrl, err := s.sessions.Get(ctx, scope.UserID(), projectID)
	if err != nil {
		return nil, s.mapBoardError(err, "Failed to open board")
	}
	return ctrl, nil
}

func authorizeBoard(ctx context.Context, scope *access.Scope, projectID uuid.UUID, action access.Action) error {
	if scope == nil || scope.FetchProjectAccess(ctx, projectID) == nil || !scope.Can(projectID, action) {
		return projectNotFound()
	}
	return nil
}

// mapBoardError converts board and store errors to AppErrors
func (s *boardServiceImpl) mapBoardError(err error, message string) error {
	switch {
	case errors.Is(err, board.ErrEmptyTitle),
		errors.Is(err, board.ErrEmptyLabel),
		errors.Is(err, board.ErrInvalidLimit),
		errors.Is(err, board.ErrTaskNotInColumn),
		errors.Is(err, board.ErrDragInProgress):
		return response.NewValidationError(err.Error(), "")
	case errors.Is(err, board.ErrUnauthenticated):
		return response.NewAppError(response.ErrCodeUnauthorized, err.Error(), "")
	case errors.Is(err, board.ErrColumnNotFound):
		return response.NewNotFoundError("Column not found", "")
	case errors.Is(err, board.ErrTaskNotFound):
		return response.NewNotFoundError("Task not found", "")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return response.NewNotFoundError("Resource not found", "")
	}
	s.logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
