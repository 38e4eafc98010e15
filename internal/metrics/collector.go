package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Counter supplies the totals reported by BusinessMetricsCollector
type Counter interface {
	CountActiveProjects(ctx context.Context) (int64, error)
	CountTasks(ctx context.Context) (int64, error)
	OpenBoardViews() int
}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	counter Counter
	metrics *Metrics
	logger  *zap.Logger
	ticker  *time.Ticker
	done    chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(counter Counter, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &BusinessMetricsCollector{
		counter: counter,
		metrics: metrics,
		logger:  logger,
		ticker:  time.NewTicker(interval),
		done:    make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if projects, err := c.counter.CountActiveProjects(ctx); err != nil {
		c.logger.Error("Failed to count projects", zap.Error(err))
	} else {
		c.metrics.SetProjectsTotal(projects)
	}

	if tasks, err := c.counter.CountTasks(ctx); err != nil {
		c.logger.Error("Failed to count tasks", zap.Error(err))
	} else {
		c.metrics.SetTasksTotal(tasks)
	}

	c.metrics.SetOpenBoardViews(c.counter.OpenBoardViews())
}
