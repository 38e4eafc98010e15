package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/debounce"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/position"
	"taskboard-api/internal/repository"
)

const (
	RenormalizeTriggerCron    = "cron"
	RenormalizeTriggerCrowded = "crowded"
)

// PositionStore is the part of the task repository used for renormalization
type PositionStore interface {
	FindColumnPositions(ctx context.Context, statusID uuid.UUID) ([]repository.TaskPosition, error)
	RenormalizeColumn(ctx context.Context, statusID uuid.UUID) (int, error)
	FindStatusColumns(ctx context.Context, projectID *uuid.UUID) ([]*domain.FieldOption, error)
}

// ViewReloader reloads the task lists of open board views
type ViewReloader interface {
	ReloadProject(ctx context.Context, projectID uuid.UUID) int
}

// MaintenanceService keeps task positions from running out of precision
type MaintenanceService interface {
	// ScheduleRenormalize queues a debounced renormalization of the project
	ScheduleRenormalize(projectID, columnID uuid.UUID)
	RenormalizeProject(ctx context.Context, projectID uuid.UUID, trigger string) (int, error)
	// RenormalizeAll checks every status column and returns the number of tasks rewritten
	RenormalizeAll(ctx context.Context) (int, error)
	Stop()
}

type maintenanceServiceImpl struct {
	store     PositionStore
	views     ViewReloader
	metrics   *metrics.Metrics
	logger    *zap.Logger
	debouncer *debounce.Debouncer[uuid.UUID]
	timeout   time.Duration
}

// NewMaintenanceService creates a new instance of MaintenanceService
func NewMaintenanceService(store PositionStore, views ViewReloader, m *metrics.Metrics, logger *zap.Logger, debounceDelay time.Duration) MaintenanceService {
	s := &maintenanceServiceImpl{
		store:   store,
		views:   views,
		metrics: m,
		logger:  logger,
		timeout: 30 * time.Second,
	}
	s.debouncer = debounce.New(debounceDelay, s.runScheduled)
	return s
}

func (s *maintenanceServiceImpl) ScheduleRenormalize(projectID, columnID uuid.UUID) {
	s.logger.Debug("Renormalization scheduled",
		zap.String("project_id", projectID.String()),
		zap.String("column_id", columnID.String()))
	s.debouncer.Trigger(projectID)
}

func (s *maintenanceServiceImpl) runScheduled(projectID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.RenormalizeProject(ctx, projectID, RenormalizeTriggerCrowded); err != nil {
		s.logger.Error("Scheduled renormalization failed",
			zap.String("project_id", projectID.String()),
			zap.Error(err))
	}
}

func (s *maintenanceServiceImpl) RenormalizeProject(ctx context.Context, projectID uuid.UUID, trigger string) (int, error) {
	columns, err := s.store.FindStatusColumns(ctx, &projectID)
	if err != nil {
		return 0, err
	}
	return s.renormalizeColumns(ctx, columns, trigger)
}

func (s *maintenanceServiceImpl) RenormalizeAll(ctx context.Context) (int, error) {
	columns, err := s.store.FindStatusColumns(ctx, nil)
	if err != nil {
		return 0, err
	}
	return s.renormalizeColumns(ctx, columns, RenormalizeTriggerCron)
}

// renormalizeColumns rewrites crowded columns and reloads the views of every touched project
func (s *maintenanceServiceImpl) renormalizeColumns(ctx context.Context, columns []*domain.FieldOption, trigger string) (int, error) {
	total := 0
	touched := make(map[uuid.UUID]bool)
	var order []uuid.UUID

	for _, column := range columns {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		rows, err := s.store.FindColumnPositions(ctx, column.ID)
		if err != nil {
			return total, err
		}
		positions := make([]float64, len(rows))
		for i, row := range rows {
			positions[i] = row.StatusPosition
		}
		if !position.NeedsRenormalize(positions) {
			continue
		}

		changed, err := s.store.RenormalizeColumn(ctx, column.ID)
		if err != nil {
			return total, err
		}
		if s.metrics != nil {
			s.metrics.RecordRenormalization(trigger)
		}
		total += changed

		s.logger.Info("Column renormalized",
			zap.String("project_id", column.ProjectID.String()),
			zap.String("column_id", column.ID.String()),
			zap.String("trigger", trigger),
			zap.Int("changed", changed))

		if changed > 0 && !touched[column.ProjectID] {
			touched[column.ProjectID] = true
			order = append(order, column.ProjectID)
		}
	}

	if s.views != nil {
		for _, projectID := range order {
			s.views.ReloadProject(ctx, projectID)
		}
	}
	return total, nil
}

func (s *maintenanceServiceImpl) Stop() {
	s.debouncer.Stop()
}
