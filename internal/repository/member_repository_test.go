package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/domain"
)

func TestMemberRepository_InviteAcceptLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	projectID, userID := uuid.New(), uuid.New()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &domain.ProjectMember{
		ProjectID: projectID, UserID: userID, Role: domain.ProjectRoleWrite,
		InvitationStatus: domain.InvitationInvited, InvitedAt: &now,
	}))

	_, ok, err := repo.AcceptedRole(ctx, projectID, userID)
	require.NoError(t, err)
	assert.False(t, ok, "invited rows grant nothing")

	require.NoError(t, repo.Accept(ctx, projectID, userID, now))
	role, ok, err := repo.AcceptedRole(ctx, projectID, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.ProjectRoleWrite, role)

	assert.ErrorIs(t, repo.Accept(ctx, projectID, userID, now), gorm.ErrRecordNotFound)

	member, err := repo.FindByProjectAndUser(ctx, projectID, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationAccepted, member.InvitationStatus)
	assert.NotNil(t, member.JoinedAt)
}

func TestMemberRepository_RoleAndRemoval(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	projectID, userID := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, &domain.ProjectMember{
		ProjectID: projectID, UserID: userID, Role: domain.ProjectRoleRead, InvitationStatus: domain.InvitationAccepted,
	}))
	require.NoError(t, repo.UpdateRole(ctx, projectID, userID, domain.ProjectRoleAdmin))

	role, _, err := repo.AcceptedRole(ctx, projectID, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectRoleAdmin, role)

	ids, err := repo.FindUserIDsByProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userID}, ids)

	require.NoError(t, repo.Delete(ctx, projectID, userID))
	assert.ErrorIs(t, repo.Delete(ctx, projectID, userID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateRole(ctx, projectID, userID, domain.ProjectRoleRead), gorm.ErrRecordNotFound)
}

func TestMemberRepository_FindByProjectPreloadsUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	user := &domain.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, users.Upsert(ctx, user))

	require.NoError(t, repo.Create(ctx, &domain.ProjectMember{
		ProjectID: projectID, UserID: user.ID, Role: domain.ProjectRoleRead, InvitationStatus: domain.InvitationAccepted,
	}))

	members, err := repo.FindByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "Ada", members[0].User.Name)
}

func TestAccessSource(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectRepository(db)
	members := NewMemberRepository(db)
	source := NewAccessSource(projects, members)
	ctx := context.Background()
	creator := uuid.New()
	project := createProject(t, projects, "p", creator)

	got, err := source.ProjectCreator(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, creator, got)

	_, err = source.ProjectCreator(ctx, uuid.New())
	assert.ErrorIs(t, err, access.ErrProjectNotFound)
}
