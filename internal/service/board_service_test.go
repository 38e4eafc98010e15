package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard-api/internal/board"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
)

// memoryBoardStore is an in-memory board.Store
type memoryBoardStore struct {
	mu        sync.Mutex
	columns   []domain.FieldOption
	tasks     []domain.Task
	failMoves bool
}

func (s *memoryBoardStore) ListColumns(ctx context.Context, projectID uuid.UUID) ([]domain.FieldOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.FieldOption
	for _, c := range s.columns {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memoryBoardStore) ListTasks(ctx context.Context, projectID uuid.UUID) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memoryBoardStore) CreateTask(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasColumnLocked(task.ProjectID, task.StatusID) {
		return board.ErrColumnNotFound
	}
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	s.tasks = append(s.tasks, *task)
	return nil
}

func (s *memoryBoardStore) UpdateTaskPlacement(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMoves {
		return errors.New("connection reset")
	}
	return s.placeLocked(taskID, statusID, statusPosition)
}

func (s *memoryBoardStore) UpdateTaskFields(ctx context.Context, taskID uuid.UUID, changes board.TaskChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editLocked(taskID, changes)
}

func (s *memoryBoardStore) MoveTask(ctx context.Context, taskID, statusID uuid.UUID, statusPosition float64, changes board.TaskChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failMoves {
		return errors.New("connection reset")
	}
	if err := s.editLocked(taskID, changes); err != nil {
		return err
	}
	return s.placeLocked(taskID, statusID, statusPosition)
}

func (s *memoryBoardStore) placeLocked(taskID, statusID uuid.UUID, statusPosition float64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks[i].StatusID = statusID
			s.tasks[i].StatusPosition = statusPosition
			return nil
		}
	}
	return board.ErrTaskNotFound
}

func (s *memoryBoardStore) editLocked(taskID uuid.UUID, changes board.TaskChanges) error {
	for i := range s.tasks {
		if s.tasks[i].ID != taskID {
			continue
		}
		if changes.Title != nil {
			s.tasks[i].Title = *changes.Title
		}
		if changes.Description != nil {
			s.tasks[i].Description = *changes.Description
		}
		if changes.Priority != nil {
			s.tasks[i].PriorityID = nil
			if changes.Priority.Valid {
				id := changes.Priority.UUID
				s.tasks[i].PriorityID = &id
			}
		}
		return nil
	}
	return board.ErrTaskNotFound
}

func (s *memoryBoardStore) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return board.ErrTaskNotFound
}

func (s *memoryBoardStore) CreateColumn(ctx context.Context, column *domain.FieldOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	column.ID = uuid.New()
	s.columns = append(s.columns, *column)
	return nil
}

func (s *memoryBoardStore) UpdateColumn(ctx context.Context, column *domain.FieldOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.columns {
		if s.columns[i].ID == column.ID {
			s.columns[i] = *column
			return nil
		}
	}
	return board.ErrColumnNotFound
}

func (s *memoryBoardStore) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.columns[:0]
	for _, c := range s.columns {
		if c.ID != columnID {
			kept = append(kept, c)
		}
	}
	s.columns = kept
	tasks := s.tasks[:0]
	for _, t := range s.tasks {
		if t.StatusID != columnID {
			tasks = append(tasks, t)
		}
	}
	s.tasks = tasks
	return nil
}

func (s *memoryBoardStore) hasColumnLocked(projectID, columnID uuid.UUID) bool {
	for _, c := range s.columns {
		if c.ID == columnID && c.ProjectID == projectID {
			return true
		}
	}
	return false
}

func (s *memoryBoardStore) taskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type boardFixture struct {
	*accessFixture
	tasks    *memoryBoardStore
	sessions *board.Sessions
	svc      BoardService
	todo     uuid.UUID
	done     uuid.UUID
}

func newBoardFixture(t *testing.T) *boardFixture {
	t.Helper()
	f := &boardFixture{accessFixture: newAccessFixture(uuid.New())}
	f.todo, f.done = uuid.New(), uuid.New()
	f.tasks = &memoryBoardStore{
		columns: []domain.FieldOption{
			{BaseModel: domain.BaseModel{ID: f.todo}, ProjectID: f.project.ID, FieldType: domain.FieldTypeStatus, Label: "Todo", DisplayOrder: 0, TaskLimit: 2},
			{BaseModel: domain.BaseModel{ID: f.done}, ProjectID: f.project.ID, FieldType: domain.FieldTypeStatus, Label: "Done", DisplayOrder: 1},
		},
	}
	f.sessions = board.NewSessions(f.tasks, zap.NewNop(), nil, 0)
	f.svc = NewBoardService(f.sessions, zap.NewNop())
	return f
}

func TestOpenBoard(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	resp, err := f.svc.OpenBoard(ctx, f.creatorScope(), f.project.ID)
	require.NoError(t, err)
	require.Len(t, resp.Columns, 2)
	assert.Equal(t, "Todo", resp.Columns[0].Column.Label)
	assert.Equal(t, 2, resp.Columns[0].Load.Limit)

	outsider := f.accessFixture.store.ForUser(uuid.New())
	_, err = f.svc.OpenBoard(ctx, outsider, f.project.ID)
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestCreateTask_PermissionsAndValidation(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	_, reader := f.member(domain.ProjectRoleRead)
	_, err := f.svc.CreateTask(ctx, reader, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "Nope"})
	assertAppError(t, err, response.ErrCodeNotFound)

	_, writer := f.member(domain.ProjectRoleWrite)
	_, err = f.svc.CreateTask(ctx, writer, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "   "})
	assertAppError(t, err, response.ErrCodeValidation)
	assert.Zero(t, f.tasks.taskCount())
	assert.Zero(t, f.sessions.Len(), "a rejected title opens no view")

	_, err = f.svc.CreateTask(ctx, writer, f.project.ID, &dto.CreateTaskRequest{StatusID: uuid.New(), Title: "Lost"})
	assertAppError(t, err, response.ErrCodeNotFound)

	first, err := f.svc.CreateTask(ctx, writer, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: " Write docs "})
	require.NoError(t, err)
	assert.Equal(t, "Write docs", first.Title)
	assert.Empty(t, first.AssigneeIDs)

	second, err := f.svc.CreateTask(ctx, writer, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "Ship"})
	require.NoError(t, err)
	assert.Less(t, second.StatusPosition, first.StatusPosition)

	view, err := f.svc.ShowAllColumns(ctx, writer, f.project.ID)
	require.NoError(t, err)
	assert.True(t, view.Columns[0].Load.Reached)
	assert.False(t, view.Columns[0].Load.Exceeded)
}

func TestMoveTask(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	scope := f.creatorScope()

	a, err := f.svc.CreateTask(ctx, scope, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "A"})
	require.NoError(t, err)
	b, err := f.svc.CreateTask(ctx, scope, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "B"})
	require.NoError(t, err)

	t.Run("reorder within a column", func(t *testing.T) {
		resp, err := f.svc.MoveTask(ctx, scope, f.project.ID, b.TaskID, &dto.MoveTaskRequest{
			FromStatusID: f.todo, ToStatusID: f.todo, NewIndex: 0,
		})
		require.NoError(t, err)
		assert.True(t, resp.Moved)
		assert.Greater(t, resp.Task.StatusPosition, a.StatusPosition)
	})

	t.Run("wrong source column", func(t *testing.T) {
		_, err := f.svc.MoveTask(ctx, scope, f.project.ID, a.TaskID, &dto.MoveTaskRequest{
			FromStatusID: f.done, ToStatusID: f.todo, NewIndex: 0,
		})
		assertAppError(t, err, response.ErrCodeValidation)
	})

	t.Run("store failure rolls back", func(t *testing.T) {
		f.tasks.failMoves = true
		defer func() { f.tasks.failMoves = false }()

		_, err := f.svc.MoveTask(ctx, scope, f.project.ID, a.TaskID, &dto.MoveTaskRequest{
			FromStatusID: f.todo, ToStatusID: f.done, NewIndex: 0,
		})
		assertAppError(t, err, response.ErrCodeInternal)

		view, err := f.svc.ShowAllColumns(ctx, scope, f.project.ID)
		require.NoError(t, err)
		assert.Len(t, view.Columns[0].Tasks, 2)
		assert.Empty(t, view.Columns[1].Tasks)
	})

	t.Run("move with relation change reloads", func(t *testing.T) {
		priority := uuid.New()
		req := &dto.MoveTaskRequest{
			FromStatusID: f.todo,
			ToStatusID:   f.done,
			NewIndex:     0,
			Changes: &dto.UpdateTaskRequest{
				PriorityID: dto.NullableID{Set: true, ID: uuid.NullUUID{UUID: priority, Valid: true}},
			},
		}
		resp, err := f.svc.MoveTask(ctx, scope, f.project.ID, a.TaskID, req)
		require.NoError(t, err)
		assert.True(t, resp.Moved)
		assert.True(t, resp.Reloaded)
		assert.Equal(t, f.done, resp.Task.StatusID)
	})
}

func TestBeginAndCancelDrag(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	scope := f.creatorScope()

	a, err := f.svc.CreateTask(ctx, scope, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "A"})
	require.NoError(t, err)
	b, err := f.svc.CreateTask(ctx, scope, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "B"})
	require.NoError(t, err)

	view, err := f.svc.BeginDrag(ctx, scope, f.project.ID, a.TaskID)
	require.NoError(t, err)
	require.NotNil(t, view.ActiveDragTaskID)
	assert.Equal(t, a.TaskID, *view.ActiveDragTaskID)

	_, err = f.svc.BeginDrag(ctx, scope, f.project.ID, b.TaskID)
	assertAppError(t, err, response.ErrCodeValidation)

	view, err = f.svc.CancelDrag(ctx, scope, f.project.ID)
	require.NoError(t, err)
	assert.Nil(t, view.ActiveDragTaskID)
}

func TestUpdateAndDeleteTask(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	scope := f.creatorScope()

	task, err := f.svc.CreateTask(ctx, scope, f.project.ID, &dto.CreateTaskRequest{StatusID: f.todo, Title: "Draft"})
	require.NoError(t, err)

	title := "Final"
	resp, err := f.svc.UpdateTask(ctx, scope, f.project.ID, task.TaskID, &dto.UpdateTaskRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Final", resp.Task.Title)
	assert.False(t, resp.Reloaded)

	_, err = f.svc.UpdateTask(ctx, scope, f.project.ID, uuid.New(), &dto.UpdateTaskRequest{Title: &title})
	assertAppError(t, err, response.ErrCodeNotFound)

	require.NoError(t, f.svc.DeleteTask(ctx, scope, f.project.ID, task.TaskID))
	assert.Zero(t, f.tasks.taskCount())
}

func TestColumnManagement(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()

	_, writer := f.member(domain.ProjectRoleWrite)
	_, err := f.svc.CreateColumn(ctx, writer, f.project.ID, &dto.CreateColumnRequest{Label: "Review"})
	assertAppError(t, err, response.ErrCodeNotFound)

	_, admin := f.member(domain.ProjectRoleAdmin)
	column, err := f.svc.CreateColumn(ctx, admin, f.project.ID, &dto.CreateColumnRequest{Label: "Review", Color: "#8B5CF6"})
	require.NoError(t, err)
	assert.Equal(t, "Review", column.Label)
	assert.Equal(t, 2, column.Order)

	_, err = f.svc.CreateColumn(ctx, admin, f.project.ID, &dto.CreateColumnRequest{Label: "  "})
	assertAppError(t, err, response.ErrCodeValidation)

	updated, err := f.svc.UpdateColumnLimit(ctx, admin, f.project.ID, column.OptionID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Limit)

	_, err = f.svc.UpdateColumnLimit(ctx, admin, f.project.ID, column.OptionID, -1)
	assertAppError(t, err, response.ErrCodeValidation)

	renamed, err := f.svc.UpdateColumn(ctx, admin, f.project.ID, column.OptionID, &dto.UpdateColumnRequest{Label: "QA"})
	require.NoError(t, err)
	assert.Equal(t, "QA", renamed.Label)

	view, err := f.svc.HideColumn(ctx, admin, f.project.ID, f.done)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.done}, view.HiddenColumnIDs)

	require.NoError(t, f.svc.DeleteColumn(ctx, admin, f.project.ID, column.OptionID))
	view, err = f.svc.ShowAllColumns(ctx, admin, f.project.ID)
	require.NoError(t, err)
	assert.Len(t, view.Columns, 2)
	assert.Empty(t, view.HiddenColumnIDs)

	err = f.svc.DeleteColumn(ctx, admin, f.project.ID, uuid.New())
	assertAppError(t, err, response.ErrCodeNotFound)
}

func TestColumnChangesCloseOtherViews(t *testing.T) {
	f := newBoardFixture(t)
	ctx := context.Background()
	creator := f.creatorScope()
	_, writer := f.member(domain.ProjectRoleWrite)

	review, err := f.svc.CreateColumn(ctx, creator, f.project.ID, &dto.CreateColumnRequest{Label: "Review"})
	require.NoError(t, err)

	view, err := f.svc.ShowAllColumns(ctx, writer, f.project.ID)
	require.NoError(t, err)
	require.Len(t, view.Columns, 3)
	require.Equal(t, 2, f.sessions.Len())

	require.NoError(t, f.svc.DeleteColumn(ctx, creator, f.project.ID, review.OptionID))
	assert.Equal(t, 1, f.sessions.Len(), "only the creator's view stays open")

	_, err = f.svc.CreateTask(ctx, writer, f.project.ID, &dto.CreateTaskRequest{StatusID: review.OptionID, Title: "Orphan"})
	assertAppError(t, err, response.ErrCodeNotFound)
	assert.Zero(t, f.tasks.taskCount())

	view, err = f.svc.ShowAllColumns(ctx, writer, f.project.ID)
	require.NoError(t, err)
	assert.Len(t, view.Columns, 2)

	_, err = f.svc.UpdateColumnLimit(ctx, creator, f.project.ID, f.todo, 5)
	require.NoError(t, err)
	view, err = f.svc.ShowAllColumns(ctx, writer, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Columns[0].Load.Limit)
}
