package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

func createProject(t *testing.T, repo ProjectRepository, name string, creator uuid.UUID) *domain.Project {
	t.Helper()
	project := &domain.Project{Name: name, CreatedBy: creator}
	require.NoError(t, repo.Create(context.Background(), project))
	return project
}

func TestProjectRepository_FindByUserTabs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	members := NewMemberRepository(db)
	ctx := context.Background()
	userID, otherID := uuid.New(), uuid.New()

	own := createProject(t, repo, "own", userID)
	closed := createProject(t, repo, "closed", userID)
	joined := createProject(t, repo, "joined", otherID)
	invitedOnly := createProject(t, repo, "invited", otherID)
	createProject(t, repo, "foreign", otherID)

	require.NoError(t, repo.SetClosed(ctx, closed.ID, true, time.Now()))
	require.NoError(t, members.Create(ctx, &domain.ProjectMember{
		ProjectID: joined.ID, UserID: userID, Role: domain.ProjectRoleWrite, InvitationStatus: domain.InvitationAccepted,
	}))
	require.NoError(t, members.Create(ctx, &domain.ProjectMember{
		ProjectID: invitedOnly.ID, UserID: userID, Role: domain.ProjectRoleRead, InvitationStatus: domain.InvitationInvited,
	}))

	names := func(projects []*domain.Project) []string {
		out := make([]string, 0, len(projects))
		for _, p := range projects {
			out = append(out, p.Name)
		}
		return out
	}

	active, err := repo.FindByUser(ctx, userID, ProjectTabActive)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{own.Name, joined.Name}, names(active))

	closedOnly, err := repo.FindByUser(ctx, userID, ProjectTabClosed)
	require.NoError(t, err)
	assert.Equal(t, []string{"closed"}, names(closedOnly))

	all, err := repo.FindByUser(ctx, userID, ProjectTabAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestProjectRepository_CloseAndReopen(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()
	project := createProject(t, repo, "p", uuid.New())

	require.NoError(t, repo.SetClosed(ctx, project.ID, true, time.Now()))
	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, found.IsClosed)
	assert.NotNil(t, found.ClosedAt)

	require.NoError(t, repo.SetClosed(ctx, project.ID, false, time.Now()))
	found, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.False(t, found.IsClosed)
	assert.Nil(t, found.ClosedAt)

	err = repo.SetClosed(ctx, uuid.New(), true, time.Now())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := repo.Count(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestProjectRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()
	project := createProject(t, repo, "before", uuid.New())

	project.Name = "after"
	project.Readme = "# Hello"
	require.NoError(t, repo.Update(ctx, project))

	found, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", found.Name)
	assert.Equal(t, "# Hello", found.Readme)

	missing := &domain.Project{BaseModel: domain.BaseModel{ID: uuid.New()}}
	assert.ErrorIs(t, repo.Update(ctx, missing), gorm.ErrRecordNotFound)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()
	creator := uuid.New()
	project := createProject(t, repo, "doomed", creator)

	column := &domain.FieldOption{ProjectID: project.ID, Label: "To Do", Color: "#000000"}
	require.NoError(t, tasks.CreateColumn(ctx, column))
	task := &domain.Task{ProjectID: project.ID, StatusID: column.ID, Title: "t", CreatedBy: creator}
	require.NoError(t, tasks.CreateTask(ctx, task))
	require.NoError(t, db.Create(&domain.TaskAssignee{TaskID: task.ID, UserID: creator}).Error)

	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err := repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	for _, table := range []string{"tasks", "task_assignees", "field_options"} {
		var count int64
		require.NoError(t, db.Table(table).Count(&count).Error)
		assert.Zero(t, count, table)
	}

	assert.ErrorIs(t, repo.Delete(ctx, project.ID), gorm.ErrRecordNotFound)
}
