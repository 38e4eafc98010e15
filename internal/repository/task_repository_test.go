package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/board"
	"taskboard-api/internal/domain"
)

type boardFixture struct {
	projectID uuid.UUID
	creator   uuid.UUID
	member    uuid.UUID
	todo      *domain.FieldOption
	done      *domain.FieldOption
	label     *domain.FieldOption
	size      *domain.FieldOption
	priority  *domain.FieldOption
}

func seedBoard(t *testing.T, db *gorm.DB) *boardFixture {
	t.Helper()
	options := NewFieldOptionRepository(db)
	creator, member := uuid.New(), uuid.New()
	project := createProject(t, NewProjectRepository(db), "board", creator)
	require.NoError(t, NewMemberRepository(db).Create(context.Background(), &domain.ProjectMember{
		ProjectID: project.ID, UserID: member, Role: domain.ProjectRoleWrite, InvitationStatus: domain.InvitationAccepted,
	}))

	statuses := seedOptions(t, options, project.ID, domain.FieldTypeStatus, "To Do", "Done")
	return &boardFixture{
		projectID: project.ID,
		creator:   creator,
		member:    member,
		todo:      statuses[0],
		done:      statuses[1],
		label:     seedOptions(t, options, project.ID, domain.FieldTypeLabel, "bug")[0],
		size:      seedOptions(t, options, project.ID, domain.FieldTypeSize, "XL")[0],
		priority:  seedOptions(t, options, project.ID, domain.FieldTypePriority, "P1")[0],
	}
}

func addTask(t *testing.T, repo TaskRepository, f *boardFixture, statusID uuid.UUID, title string, pos float64) *domain.Task {
	t.Helper()
	task := &domain.Task{ProjectID: f.projectID, StatusID: statusID, StatusPosition: pos, Title: title, CreatedBy: uuid.New()}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

func TestTaskRepository_ListColumnsAndTasks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)

	addTask(t, repo, f, f.todo.ID, "low", -1)
	addTask(t, repo, f, f.todo.ID, "high", 5)

	columns, err := repo.ListColumns(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "To Do", columns[0].Label)

	tasks, err := repo.ListTasks(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "high", tasks[0].Title)
	assert.Empty(t, tasks[0].Labels)
	assert.Empty(t, tasks[0].Assignees)
}

func TestTaskRepository_UpdateTaskFieldsRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	title := "renamed"
	labels := []uuid.UUID{f.label.ID}
	assignees := []uuid.UUID{f.creator, f.member}
	size := uuid.NullUUID{UUID: f.size.ID, Valid: true}
	require.NoError(t, repo.UpdateTaskFields(ctx, task.ID, board.TaskChanges{
		Title: &title, LabelIDs: &labels, AssigneeIDs: &assignees, Size: &size,
	}))

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", found.Title)
	require.Len(t, found.Labels, 1)
	assert.Equal(t, "bug", found.Labels[0].Label)
	assert.Len(t, found.Assignees, 2)
	require.NotNil(t, found.Size)
	assert.Equal(t, "XL", found.Size.Label)

	none := []uuid.UUID{}
	cleared := uuid.NullUUID{}
	require.NoError(t, repo.UpdateTaskFields(ctx, task.ID, board.TaskChanges{LabelIDs: &none, Size: &cleared}))

	found, err = repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Labels)
	assert.Nil(t, found.SizeID)
}

func TestTaskRepository_UpdateTaskFieldsRejectsForeignLabel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	labels := []uuid.UUID{f.size.ID}
	err := repo.UpdateTaskFields(ctx, task.ID, board.TaskChanges{LabelIDs: &labels})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTaskRepository_UpdateTaskFieldsRejectsForeignReferences(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	other := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	invited := uuid.New()
	require.NoError(t, NewMemberRepository(db).Create(ctx, &domain.ProjectMember{
		ProjectID: f.projectID, UserID: invited, Role: domain.ProjectRoleRead, InvitationStatus: domain.InvitationInvited,
	}))

	labelAsSize := uuid.NullUUID{UUID: f.label.ID, Valid: true}
	foreignPriority := uuid.NullUUID{UUID: other.priority.ID, Valid: true}
	sizeAsPriority := uuid.NullUUID{UUID: f.size.ID, Valid: true}
	outsider := []uuid.UUID{f.member, uuid.New()}
	pending := []uuid.UUID{invited}

	tests := []struct {
		name    string
		changes board.TaskChanges
	}{
		{name: "label used as size", changes: board.TaskChanges{Size: &labelAsSize}},
		{name: "priority of another project", changes: board.TaskChanges{Priority: &foreignPriority}},
		{name: "size used as priority", changes: board.TaskChanges{Priority: &sizeAsPriority}},
		{name: "assignee outside the project", changes: board.TaskChanges{AssigneeIDs: &outsider}},
		{name: "assignee with pending invite", changes: board.TaskChanges{AssigneeIDs: &pending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.UpdateTaskFields(ctx, task.ID, tt.changes)

			assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
			found, err := repo.FindByID(ctx, task.ID)
			require.NoError(t, err)
			assert.Nil(t, found.SizeID)
			assert.Nil(t, found.PriorityID)
			assert.Empty(t, found.Assignees)
		})
	}
}

func TestTaskRepository_MoveTaskAppliesBothOrNeither(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	other := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	title := "moved"
	foreign := []uuid.UUID{other.label.ID}
	err := repo.MoveTask(ctx, task.ID, f.done.ID, 4, board.TaskChanges{Title: &title, LabelIDs: &foreign})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, f.todo.ID, found.StatusID)
	assert.Equal(t, "t", found.Title)

	labels := []uuid.UUID{f.label.ID}
	require.NoError(t, repo.MoveTask(ctx, task.ID, f.done.ID, 4, board.TaskChanges{Title: &title, LabelIDs: &labels}))
	found, err = repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, f.done.ID, found.StatusID)
	assert.Equal(t, 4.0, found.StatusPosition)
	assert.Equal(t, "moved", found.Title)
	require.Len(t, found.Labels, 1)
}

func TestTaskRepository_RejectsColumnsOfOtherProjects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	other := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	err := repo.CreateTask(ctx, &domain.Task{ProjectID: f.projectID, StatusID: other.todo.ID, Title: "x", CreatedBy: f.creator})
	assert.ErrorIs(t, err, board.ErrColumnNotFound)
	err = repo.CreateTask(ctx, &domain.Task{ProjectID: f.projectID, StatusID: f.label.ID, Title: "x", CreatedBy: f.creator})
	assert.ErrorIs(t, err, board.ErrColumnNotFound)

	assert.ErrorIs(t, repo.UpdateTaskPlacement(ctx, task.ID, other.done.ID, 1), board.ErrColumnNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, f.todo.ID, found.StatusID)
}

func TestTaskRepository_PlacementAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	task := addTask(t, repo, f, f.todo.ID, "t", 0)

	require.NoError(t, repo.UpdateTaskPlacement(ctx, task.ID, f.done.ID, 3.5))
	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, f.done.ID, found.StatusID)
	assert.Equal(t, 3.5, found.StatusPosition)

	require.NoError(t, repo.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, repo.DeleteTask(ctx, task.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateTaskPlacement(ctx, task.ID, f.done.ID, 0), gorm.ErrRecordNotFound)
}

func TestTaskRepository_DeleteColumnCascadesTasks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	addTask(t, repo, f, f.todo.ID, "gone", 0)
	kept := addTask(t, repo, f, f.done.ID, "kept", 0)

	require.NoError(t, repo.DeleteColumn(ctx, f.todo.ID))

	tasks, err := repo.ListTasks(ctx, f.projectID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)

	assert.ErrorIs(t, repo.DeleteColumn(ctx, f.label.ID), gorm.ErrRecordNotFound)
}

func TestTaskRepository_UpdateColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)

	f.todo.TaskLimit = 4
	require.NoError(t, repo.UpdateColumn(ctx, f.todo))

	columns, err := repo.ListColumns(ctx, f.projectID)
	require.NoError(t, err)
	assert.Equal(t, 4, columns[0].TaskLimit)

	assert.ErrorIs(t, repo.UpdateColumn(ctx, f.label), gorm.ErrRecordNotFound)
}

func TestTaskRepository_RenormalizeColumn(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	a := addTask(t, repo, f, f.todo.ID, "a", 1.0000002)
	b := addTask(t, repo, f, f.todo.ID, "b", 1.0000001)
	c := addTask(t, repo, f, f.todo.ID, "c", 0)

	changed, err := repo.RenormalizeColumn(ctx, f.todo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	positions, err := repo.FindColumnPositions(ctx, f.todo.ID)
	require.NoError(t, err)
	require.Len(t, positions, 3)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID, c.ID}, []uuid.UUID{positions[0].ID, positions[1].ID, positions[2].ID})
	assert.Equal(t, []float64{2, 1, 0}, []float64{positions[0].StatusPosition, positions[1].StatusPosition, positions[2].StatusPosition})

	changed, err = repo.RenormalizeColumn(ctx, f.todo.ID)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestTaskRepository_FindStatusColumnsAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	f := seedBoard(t, db)
	seedBoard(t, db)
	addTask(t, repo, f, f.todo.ID, "t", 0)

	all, err := repo.FindStatusColumns(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := repo.FindStatusColumns(ctx, &f.projectID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
