package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
)

// fakePositionStore holds column positions in memory
type fakePositionStore struct {
	mu        sync.Mutex
	columns   []*domain.FieldOption
	positions map[uuid.UUID][]float64
	rewrites  []uuid.UUID
	listErr   error
}

func (s *fakePositionStore) FindColumnPositions(ctx context.Context, statusID uuid.UUID) ([]repository.TaskPosition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]repository.TaskPosition, len(s.positions[statusID]))
	for i, p := range s.positions[statusID] {
		rows[i] = repository.TaskPosition{ID: uuid.New(), StatusPosition: p}
	}
	return rows, nil
}

func (s *fakePositionStore) RenormalizeColumn(ctx context.Context, statusID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.positions[statusID])
	dense := make([]float64, n)
	for i := range dense {
		dense[i] = float64(n - 1 - i)
	}
	s.positions[statusID] = dense
	s.rewrites = append(s.rewrites, statusID)
	return n, nil
}

func (s *fakePositionStore) FindStatusColumns(ctx context.Context, projectID *uuid.UUID) ([]*domain.FieldOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*domain.FieldOption
	for _, c := range s.columns {
		if projectID == nil || c.ProjectID == *projectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *fakePositionStore) rewritten() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uuid.UUID(nil), s.rewrites...)
}

type countingReloader struct {
	mu       sync.Mutex
	projects []uuid.UUID
}

func (r *countingReloader) ReloadProject(ctx context.Context, projectID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, projectID)
	return 1
}

func (r *countingReloader) reloaded() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.projects...)
}

func renormalizationCount(t *testing.T, m *metrics.Metrics, trigger string) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, m.RenormalizationsTotal.WithLabelValues(trigger).Write(&metric))
	return metric.GetCounter().GetValue()
}

func newPositionFixture() (*fakePositionStore, uuid.UUID, uuid.UUID, uuid.UUID, uuid.UUID) {
	projectA, projectB := uuid.New(), uuid.New()
	crowded, healthy := uuid.New(), uuid.New()
	store := &fakePositionStore{
		columns: []*domain.FieldOption{
			{BaseModel: domain.BaseModel{ID: crowded}, ProjectID: projectA, FieldType: domain.FieldTypeStatus},
			{BaseModel: domain.BaseModel{ID: healthy}, ProjectID: projectB, FieldType: domain.FieldTypeStatus},
		},
		positions: map[uuid.UUID][]float64{
			crowded: {1, 1 - 1e-12, 0},
			healthy: {2, 1, 0},
		},
	}
	return store, projectA, projectB, crowded, healthy
}

func TestRenormalizeAll(t *testing.T) {
	store, projectA, _, crowded, _ := newPositionFixture()
	views := &countingReloader{}
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	svc := NewMaintenanceService(store, views, m, zap.NewNop(), time.Second)
	defer svc.Stop()

	changed, err := svc.RenormalizeAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, changed)
	assert.Equal(t, []uuid.UUID{crowded}, store.rewritten())
	assert.Equal(t, []uuid.UUID{projectA}, views.reloaded())
	assert.Equal(t, float64(1), renormalizationCount(t, m, RenormalizeTriggerCron))

	// a second pass finds nothing to do
	changed, err = svc.RenormalizeAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Len(t, views.reloaded(), 1)
}

func TestRenormalizeProject_OnlyThatProject(t *testing.T) {
	store, _, projectB, _, _ := newPositionFixture()
	views := &countingReloader{}
	svc := NewMaintenanceService(store, views, nil, zap.NewNop(), time.Second)
	defer svc.Stop()

	changed, err := svc.RenormalizeProject(context.Background(), projectB, RenormalizeTriggerCrowded)
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Empty(t, store.rewritten())
	assert.Empty(t, views.reloaded())
}

func TestRenormalizeAll_StoreError(t *testing.T) {
	store, _, _, _, _ := newPositionFixture()
	store.listErr = errors.New("connection refused")
	svc := NewMaintenanceService(store, nil, nil, zap.NewNop(), time.Second)
	defer svc.Stop()

	_, err := svc.RenormalizeAll(context.Background())
	assert.Error(t, err)
}

func TestScheduleRenormalize_Debounced(t *testing.T) {
	store, projectA, _, crowded, _ := newPositionFixture()
	views := &countingReloader{}
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
	svc := NewMaintenanceService(store, views, m, zap.NewNop(), 20*time.Millisecond)
	defer svc.Stop()

	for i := 0; i < 5; i++ {
		svc.ScheduleRenormalize(projectA, crowded)
	}

	require.Eventually(t, func() bool {
		return len(views.reloaded()) == 1
	}, time.Second, 5*time.Millisecond)

	// the burst collapses into a single run
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []uuid.UUID{crowded}, store.rewritten())
	assert.Equal(t, float64(1), renormalizationCount(t, m, RenormalizeTriggerCrowded))
}

func TestScheduleRenormalize_StopDropsPending(t *testing.T) {
	store, projectA, _, crowded, _ := newPositionFixture()
	views := &countingReloader{}
	svc := NewMaintenanceService(store, views, nil, zap.NewNop(), 20*time.Millisecond)

	svc.ScheduleRenormalize(projectA, crowded)
	svc.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, store.rewritten())
}
