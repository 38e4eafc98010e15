package database

import (
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks times every select, insert, update, delete and raw statement issued through db
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	cb := db.Callback()

	before, after := timed("select", recorder)
	cb.Query().Before("gorm:query").Register("metrics:query_before", before)
	cb.Query().After("gorm:query").Register("metrics:query_after", after)

	before, after = timed("insert", recorder)
	cb.Create().Before("gorm:create").Register("metrics:create_before", before)
	cb.Create().After("gorm:create").Register("metrics:create_after", after)

	before, after = timed("update", recorder)
	cb.Update().Before("gorm:update").Register("metrics:update_before", before)
	cb.Update().After("gorm:update").Register("metrics:update_after", after)

	before, after = timed("delete", recorder)
	cb.Delete().Before("gorm:delete").Register("metrics:delete_before", before)
	cb.Delete().After("gorm:delete").Register("metrics:delete_after", after)

	before, after = timed("raw", recorder)
	cb.Raw().Before("gorm:raw").Register("metrics:raw_before", before)
	cb.Raw().After("gorm:raw").Register("metrics:raw_after", after)
}

// timed returns a pair of callbacks measuring the statement between them
func timed(operation string, recorder MetricsRecorder) (func(*gorm.DB), func(*gorm.DB)) {
	before := func(db *gorm.DB) {
		db.InstanceSet(startTimeKey, time.Now())
	}
	after := func(db *gorm.DB) {
		started, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		recorder.RecordDBQuery(operation, tableOf(db), time.Since(started.(time.Time)), db.Error)
	}
	return before, after
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return "unknown"
}

// StartDBStatsCollector reports connection pool stats every interval until done is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
