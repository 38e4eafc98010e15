package metrics

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementTaskMoved increments the persisted move counter
func (m *Metrics) IncrementTaskMoved() {
	m.safeExecute("IncrementTaskMoved", func() {
		m.TaskMovedTotal.Inc()
	})
}

// IncrementTaskReload counts a full reload of a project's tasks
func (m *Metrics) IncrementTaskReload() {
	m.safeExecute("IncrementTaskReload", func() {
		m.TaskReloadTotal.Inc()
	})
}

// IncrementInviteSent increments the invitation counter
func (m *Metrics) IncrementInviteSent() {
	m.safeExecute("IncrementInviteSent", func() {
		m.InviteSentTotal.Inc()
	})
}

// RecordAccessLookup counts an access lookup with result hit, miss or error
func (m *Metrics) RecordAccessLookup(result string) {
	m.safeExecute("RecordAccessLookup", func() {
		m.AccessLookupsTotal.WithLabelValues(result).Inc()
	})
}

// RecordRenormalization counts a column renormalization by trigger (cron or crowded)
func (m *Metrics) RecordRenormalization(trigger string) {
	m.safeExecute("RecordRenormalization", func() {
		m.RenormalizationsTotal.WithLabelValues(trigger).Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}

// SetOpenBoardViews sets the open board view gauge
func (m *Metrics) SetOpenBoardViews(count int) {
	m.safeExecute("SetOpenBoardViews", func() {
		m.OpenBoardViews.Set(float64(count))
	})
}
