package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

func seedOptions(t *testing.T, repo FieldOptionRepository, projectID uuid.UUID, fieldType domain.FieldType, labels ...string) []*domain.FieldOption {
	t.Helper()
	options := make([]*domain.FieldOption, 0, len(labels))
	for i, label := range labels {
		options = append(options, &domain.FieldOption{
			ProjectID: projectID, FieldType: fieldType, Label: label, Color: "#123456", DisplayOrder: i,
		})
	}
	require.NoError(t, repo.CreateBatch(context.Background(), options))
	return options
}

func TestFieldOptionRepository_ApplyChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFieldOptionRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	existing := seedOptions(t, repo, projectID, domain.FieldTypePriority, "Low", "Medium", "High")

	existing[2].Label = "Urgent"
	existing[2].DisplayOrder = 1
	err := repo.ApplyChanges(ctx, projectID, domain.FieldTypePriority, OptionChanges{
		Add:       []*domain.FieldOption{{Label: "Blocker", Color: "#FF0000", DisplayOrder: 2}},
		Update:    []*domain.FieldOption{existing[2]},
		DeleteIDs: []uuid.UUID{existing[1].ID},
	})
	require.NoError(t, err)

	options, err := repo.FindByProjectAndFieldType(ctx, projectID, domain.FieldTypePriority)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Low", options[0].Label)
	assert.Equal(t, "Urgent", options[1].Label)
	assert.Equal(t, "Blocker", options[2].Label)
	assert.Equal(t, projectID, options[2].ProjectID)
}

func TestFieldOptionRepository_ApplyChangesRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFieldOptionRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	existing := seedOptions(t, repo, projectID, domain.FieldTypeSize, "S", "M")

	err := repo.ApplyChanges(ctx, projectID, domain.FieldTypeSize, OptionChanges{
		DeleteIDs: []uuid.UUID{existing[0].ID},
		Update:    []*domain.FieldOption{{BaseModel: domain.BaseModel{ID: uuid.New()}, Label: "ghost"}},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	options, err := repo.FindByProjectAndFieldType(ctx, projectID, domain.FieldTypeSize)
	require.NoError(t, err)
	assert.Len(t, options, 2, "delete must be rolled back")
}

func TestFieldOptionRepository_ApplyChangesRejectsForeignDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFieldOptionRepository(db)
	ctx := context.Background()
	other := seedOptions(t, repo, uuid.New(), domain.FieldTypeLabel, "bug")

	err := repo.ApplyChanges(ctx, uuid.New(), domain.FieldTypeLabel, OptionChanges{DeleteIDs: []uuid.UUID{other[0].ID}})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.FindByID(ctx, other[0].ID)
	assert.NoError(t, err)
}

func TestFieldOptionRepository_DeleteDetachesTasks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFieldOptionRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	status := seedOptions(t, repo, projectID, domain.FieldTypeStatus, "To Do")[0]
	priority := seedOptions(t, repo, projectID, domain.FieldTypePriority, "High")[0]

	task := &domain.Task{ProjectID: projectID, StatusID: status.ID, Title: "t", CreatedBy: uuid.New(), PriorityID: &priority.ID}
	require.NoError(t, tasks.CreateTask(ctx, task))

	require.NoError(t, repo.Delete(ctx, priority.ID))

	found, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, found.PriorityID)
}

func TestFieldOptionRepository_UpdateOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFieldOptionRepository(db)
	ctx := context.Background()
	projectID := uuid.New()
	options := seedOptions(t, repo, projectID, domain.FieldTypeLabel, "a", "b", "c")

	require.NoError(t, repo.UpdateOrders(ctx, map[uuid.UUID]int{options[0].ID: 2, options[2].ID: 0}))

	reordered, err := repo.FindByProjectAndFieldType(ctx, projectID, domain.FieldTypeLabel)
	require.NoError(t, err)
	assert.Equal(t, "c", reordered[0].Label)
	assert.Equal(t, "b", reordered[1].Label)
	assert.Equal(t, "a", reordered[2].Label)

	assert.ErrorIs(t, repo.UpdateOrders(ctx, map[uuid.UUID]int{uuid.New(): 1}), gorm.ErrRecordNotFound)
}
