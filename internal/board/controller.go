// Package board keeps the in-memory columns and tasks of an open board view consistent with
// the store across create, update, delete and move operations.
package board

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/position"
)

// MoveTaskInput describes a drop of a task at NewIndex of ToColumn.
// Changes is applied together with the move when set.
type MoveTaskInput struct {
	TaskID     uuid.UUID
	FromColumn uuid.UUID
	ToColumn   uuid.UUID
	NewIndex   int
	Changes    *TaskChanges
}

// MoveResult reports the outcome of MoveTask
type MoveResult struct {
	Task     *domain.Task
	Moved    bool
	Reloaded bool
}

// ColumnDetails are the editable descriptive fields of a column
type ColumnDetails struct {
	Label       string
	Color       string
	Description string
}

// ColumnLoad compares the task count of a column with its limit (0 = unlimited)
type ColumnLoad struct {
	Count    int  `json:"count"`
	Limit    int  `json:"limit"`
	Reached  bool `json:"reached"`
	Exceeded bool `json:"exceeded"`
}

// CrowdedFunc is called when positions in a column have collapsed and need renormalizing
type CrowdedFunc func(projectID, columnID uuid.UUID)

// Controller owns the state of one board view. Methods are safe for concurrent use; remote
// calls are made while holding the lock so operations on one view are serialized.
type Controller struct {
	projectID uuid.UUID
	store     Store
	logger    *zap.Logger
	recorder  Recorder
	onCrowded CrowdedFunc

	mu         sync.Mutex
	columns    []domain.FieldOption
	tasks      []domain.Task
	hidden     map[uuid.UUID]bool
	activeDrag *domain.Task
}

// Option configures a Controller
type Option func(*Controller)

// WithRecorder reports board activity to r
func WithRecorder(r Recorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// WithCrowdedHandler registers fn for columns whose positions need renormalizing
func WithCrowdedHandler(fn CrowdedFunc) Option {
	return func(c *Controller) { c.onCrowded = fn }
}

// NewController creates an empty view; call Load before use
func NewController(projectID uuid.UUID, store Store, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		projectID: projectID,
		store:     store,
		logger:    logger.With(zap.String("project_id", projectID.String())),
		columns:   []domain.FieldOption{},
		tasks:     []domain.Task{},
		hidden:    make(map[uuid.UUID]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProjectID returns the project shown by this view
func (c *Controller) ProjectID() uuid.UUID {
	return c.projectID
}

// Load replaces columns and tasks with the store's current data
func (c *Controller) Load(ctx context.Context) error {
	columns, err := c.store.ListColumns(ctx, c.projectID)
	if err != nil {
		return fmt.Errorf("failed to load columns: %w", err)
	}
	tasks, err := c.store.ListTasks(ctx, c.projectID)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.columns = sortColumns(columns)
	c.tasks = tasks
	return nil
}

// ReloadTasks replaces the task list with the store's current data
func (c *Controller) ReloadTasks(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloadTasksLocked(ctx)
}

func (c *Controller) reloadTasksLocked(ctx context.Context) error {
	tasks, err := c.store.ListTasks(ctx, c.projectID)
	if err != nil {
		return fmt.Errorf("failed to reload tasks: %w", err)
	}
	c.tasks = tasks
	if c.recorder != nil {
		c.recorder.IncrementTaskReload()
	}
	return nil
}

// CreateTask validates the input, appends the task to the bottom of the column and persists it.
// Nothing changes locally unless the store accepts the task.
func (c *Controller) CreateTask(ctx context.Context, columnID uuid.UUID, title string, actor uuid.UUID) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if actor == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.findColumn(columnID); !ok {
		return nil, ErrColumnNotFound
	}

	task := domain.Task{
		ProjectID:      c.projectID,
		StatusID:       columnID,
		Title:          title,
		CreatedBy:      actor,
		StatusPosition: position.GetLowestPosition(c.positionsIn(columnID, uuid.Nil)),
	}
	if err := c.store.CreateTask(ctx, &task); err != nil {
		c.logger.Error("Failed to create task", zap.String("column_id", columnID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task.Assignees = []domain.TaskAssignee{}
	task.Labels = []domain.FieldOption{}
	c.tasks = append(append(make([]domain.Task, 0, len(c.tasks)+1), c.tasks...), task)
	if c.recorder != nil {
		c.recorder.IncrementTaskCreated()
	}

	created := task
	return &created, nil
}

// BeginDrag marks taskID as the single task being dragged
func (c *Controller) BeginDrag(taskID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeDrag != nil && c.activeDrag.ID != taskID {
		return ErrDragInProgress
	}
	task, ok := c.findTask(taskID)
	if !ok {
		return ErrTaskNotFound
	}
	c.activeDrag = &task
	return nil
}

// CancelDrag clears the active drag without moving anything
func (c *Controller) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeDrag = nil
}

// MoveTask places the task at NewIndex of ToColumn. The local change is applied first and
// rolled back to the pre-image if the store rejects it. Field edits travel in the same store
// write as the placement. When they touch labels, size or priority, the task list is reloaded
// from the store instead of patched.
func (c *Controller) MoveTask(ctx context.Context, in MoveTaskInput) (*MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activeDrag != nil && c.activeDrag.ID != in.TaskID {
		return nil, ErrDragInProgress
	}
	defer func() { c.activeDrag = nil }()

	task, ok := c.findTask(in.TaskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	if in.FromColumn != uuid.Nil && in.FromColumn != task.StatusID {
		return nil, ErrTaskNotInColumn
	}
	if _, ok := c.findColumn(in.ToColumn); !ok {
		return nil, ErrColumnNotFound
	}

	sameSlot := in.ToColumn == task.StatusID && c.indexInColumn(task) == clampIndex(in.NewIndex, c.countIn(task.StatusID))
	hasChanges := in.Changes != nil && !in.Changes.Empty()
	if sameSlot && !hasChanges {
		return &MoveResult{Task: &task}, nil
	}

	var changes TaskChanges
	if hasChanges {
		normalized, err := normalizeChanges(*in.Changes)
		if err != nil {
			return nil, err
		}
		changes = normalized
	}

	if sameSlot {
		updated, reloaded, err := c.applyChangesLocked(ctx, task, changes)
		if err != nil {
			return nil, err
		}
		return &MoveResult{Task: &updated, Reloaded: reloaded}, nil
	}

	destination := c.positionsIn(in.ToColumn, task.ID)
	newPosition := position.PositionForIndex(destination, in.NewIndex)

	snapshot := c.tasks
	moved := task
	moved.StatusID = in.ToColumn
	moved.StatusPosition = newPosition
	c.tasks = replaceTask(c.tasks, moved)

	var err error
	if hasChanges {
		err = c.store.MoveTask(ctx, task.ID, in.ToColumn, newPosition, changes)
	} else {
		err = c.store.UpdateTaskPlacement(ctx, task.ID, in.ToColumn, newPosition)
	}
	if err != nil {
		c.tasks = snapshot
		c.logger.Error("Failed to move task", zap.String("task_id", task.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	if c.recorder != nil {
		c.recorder.IncrementTaskMoved()
	}
	c.checkCrowded(in.ToColumn)

	result := &MoveResult{Moved: true, Task: &moved}
	if hasChanges {
		updated, reloaded := c.afterChangesLocked(ctx, moved, changes)
		result.Task = &updated
		result.Reloaded = reloaded
	}
	return result, nil
}

// UpdateTask edits task fields. Scalar edits are patched locally after the store confirms them;
// edits to labels, size or priority trigger a reload of the project's tasks.
func (c *Controller) UpdateTask(ctx context.Context, taskID uuid.UUID, changes TaskChanges) (*domain.Task, bool, error) {
	if changes.Title != nil && strings.TrimSpace(*changes.Title) == "" {
		return nil, false, ErrEmptyTitle
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	task, ok := c.findTask(taskID)
	if !ok {
		return nil, false, ErrTaskNotFound
	}
	if changes.Empty() {
		return &task, false, nil
	}

	updated, reloaded, err := c.applyChangesLocked(ctx, task, changes)
	if err != nil {
		return nil, false, err
	}
	return &updated, reloaded, nil
}

// normalizeChanges trims the title and rejects an empty one before any store call
func normalizeChanges(changes TaskChanges) (TaskChanges, error) {
	if changes.Title != nil {
		trimmed := strings.TrimSpace(*changes.Title)
		if trimmed == "" {
			return changes, ErrEmptyTitle
		}
		changes.Title = &trimmed
	}
	return changes, nil
}

func (c *Controller) applyChangesLocked(ctx context.Context, task domain.Task, changes TaskChanges) (domain.Task, bool, error) {
	changes, err := normalizeChanges(changes)
	if err != nil {
		return task, false, err
	}

	if err := c.store.UpdateTaskFields(ctx, task.ID, changes); err != nil {
		c.logger.Error("Failed to update task", zap.String("task_id", task.ID.String()), zap.Error(err))
		return task, false, fmt.Errorf("failed to update task: %w", err)
	}

	updated, reloaded := c.afterChangesLocked(ctx, task, changes)
	return updated, reloaded, nil
}

// afterChangesLocked brings local state in line with field edits the store has confirmed.
// Relation edits reload the task list; when that read fails the scalar fields are patched
// so the view still reflects the confirmed write.
func (c *Controller) afterChangesLocked(ctx context.Context, task domain.Task, changes TaskChanges) (domain.Task, bool) {
	if changes.TouchesRelations() {
		err := c.reloadTasksLocked(ctx)
		if err == nil {
			if reloaded, ok := c.findTask(task.ID); ok {
				return reloaded, true
			}
			return task, true
		}
		c.logger.Warn("Reload after task update failed, patching locally",
			zap.String("task_id", task.ID.String()), zap.Error(err))
	}

	patched := task
	if changes.Title != nil {
		patched.Title = *changes.Title
	}
	if changes.Description != nil {
		patched.Description = *changes.Description
	}
	if changes.AssigneeIDs != nil {
		patched.Assignees = make([]domain.TaskAssignee, 0, len(*changes.AssigneeIDs))
		for _, userID := range *changes.AssigneeIDs {
			patched.Assignees = append(patched.Assignees, domain.TaskAssignee{TaskID: task.ID, UserID: userID})
		}
	}
	c.tasks = replaceTask(c.tasks, patched)
	return patched, false
}

// DeleteTask removes the task remotely and then reloads the project's tasks
func (c *Controller) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.findTask(taskID); !ok {
		return ErrTaskNotFound
	}
	if err := c.store.DeleteTask(ctx, taskID); err != nil {
		c.logger.Error("Failed to delete task", zap.String("task_id", taskID.String()), zap.Error(err))
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if err := c.reloadTasksLocked(ctx); err != nil {
		c.logger.Warn("Reload after delete failed, dropping task locally", zap.Error(err))
		c.tasks = filterTasks(c.tasks, func(t domain.Task) bool { return t.ID != taskID })
	}
	if c.activeDrag != nil && c.activeDrag.ID == taskID {
		c.activeDrag = nil
	}
	return nil
}

// HideColumn hides a column in this view only
func (c *Controller) HideColumn(columnID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.findColumn(columnID); !ok {
		return ErrColumnNotFound
	}
	c.hidden[columnID] = true
	return nil
}

// ShowAllColumns clears every hidden column of this view
func (c *Controller) ShowAllColumns() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hidden = make(map[uuid.UUID]bool)
}

// CreateColumn appends a new column after the existing ones
func (c *Controller) CreateColumn(ctx context.Context, details ColumnDetails, limit int) (*domain.FieldOption, error) {
	label := strings.TrimSpace(details.Label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	column := domain.FieldOption{
		ProjectID:    c.projectID,
		FieldType:    domain.FieldTypeStatus,
		Label:        label,
		Color:        details.Color,
		Description:  details.Description,
		DisplayOrder: len(c.columns),
		TaskLimit:    limit,
	}
	if err := c.store.CreateColumn(ctx, &column); err != nil {
		c.logger.Error("Failed to create column", zap.Error(err))
		return nil, fmt.Errorf("failed to create column: %w", err)
	}

	c.columns = append(append(make([]domain.FieldOption, 0, len(c.columns)+1), c.columns...), column)
	created := column
	return &created, nil
}

// DeleteColumn removes the column and its tasks remotely, then filters them out locally
func (c *Controller) DeleteColumn(ctx context.Context, columnID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.findColumn(columnID); !ok {
		return ErrColumnNotFound
	}
	if err := c.store.DeleteColumn(ctx, columnID); err != nil {
		c.logger.Error("Failed to delete column", zap.String("column_id", columnID.String()), zap.Error(err))
		return fmt.Errorf("failed to delete column: %w", err)
	}

	c.columns = filterColumns(c.columns, func(col domain.FieldOption) bool { return col.ID != columnID })
	c.tasks = filterTasks(c.tasks, func(t domain.Task) bool { return t.StatusID != columnID })
	delete(c.hidden, columnID)
	return nil
}

// UpdateColumnLimit sets the task limit of a column; 0 removes the limit
func (c *Controller) UpdateColumnLimit(ctx context.Context, columnID uuid.UUID, limit int) (*domain.FieldOption, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	return c.updateColumn(ctx, columnID, func(col *domain.FieldOption) {
		col.TaskLimit = limit
	})
}

// UpdateColumnDetails edits the label, color and description of a column
func (c *Controller) UpdateColumnDetails(ctx context.Context, columnID uuid.UUID, details ColumnDetails) (*domain.FieldOption, error) {
	label := strings.TrimSpace(details.Label)
	if label == "" {
		return nil, ErrEmptyLabel
	}
	return c.updateColumn(ctx, columnID, func(col *domain.FieldOption) {
		col.Label = label
		col.Color = details.Color
		col.Description = details.Description
	})
}

func (c *Controller) updateColumn(ctx context.Context, columnID uuid.UUID, edit func(*domain.FieldOption)) (*domain.FieldOption, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.findColumn(columnID)
	if !ok {
		return nil, ErrColumnNotFound
	}
	updated := existing
	edit(&updated)

	if err := c.store.UpdateColumn(ctx, &updated); err != nil {
		c.logger.Error("Failed to update column", zap.String("column_id", columnID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to update column: %w", err)
	}

	c.columns = mapColumns(c.columns, func(col domain.FieldOption) domain.FieldOption {
		if col.ID == columnID {
			return updated
		}
		return col
	})
	return &updated, nil
}

// ColumnLoad reports how full a column is
func (c *Controller) ColumnLoad(columnID uuid.UUID) (ColumnLoad, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	column, ok := c.findColumn(columnID)
	if !ok {
		return ColumnLoad{}, ErrColumnNotFound
	}
	return loadOf(column, c.countIn(columnID)), nil
}

func loadOf(column domain.FieldOption, count int) ColumnLoad {
	load := ColumnLoad{Count: count, Limit: column.TaskLimit}
	if column.TaskLimit > 0 {
		load.Reached = count >= column.TaskLimit
		load.Exceeded = count > column.TaskLimit
	}
	return load
}

func (c *Controller) checkCrowded(columnID uuid.UUID) {
	if c.onCrowded == nil {
		return
	}
	if position.NeedsRenormalize(c.positionsIn(columnID, uuid.Nil)) {
		c.logger.Info("Task positions crowded, requesting renormalization",
			zap.String("column_id", columnID.String()))
		c.onCrowded(c.projectID, columnID)
	}
}

func (c *Controller) findColumn(id uuid.UUID) (domain.FieldOption, bool) {
	for _, col := range c.columns {
		if col.ID == id {
			return col, true
		}
	}
	return domain.FieldOption{}, false
}

func (c *Controller) findTask(id uuid.UUID) (domain.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// tasksIn returns the tasks of a column in display order, leaving out exclude
func (c *Controller) tasksIn(columnID, exclude uuid.UUID) []domain.Task {
	tasks := filterTasks(c.tasks, func(t domain.Task) bool {
		return t.StatusID == columnID && t.ID != exclude
	})
	SortTasks(tasks)
	return tasks
}

func (c *Controller) positionsIn(columnID, exclude uuid.UUID) []float64 {
	tasks := c.tasksIn(columnID, exclude)
	positions := make([]float64, len(tasks))
	for i, t := range tasks {
		positions[i] = t.StatusPosition
	}
	return positions
}

func (c *Controller) countIn(columnID uuid.UUID) int {
	count := 0
	for _, t := range c.tasks {
		if t.StatusID == columnID {
			count++
		}
	}
	return count
}

func (c *Controller) indexInColumn(task domain.Task) int {
	for i, t := range c.tasksIn(task.StatusID, uuid.Nil) {
		if t.ID == task.ID {
			return i
		}
	}
	return -1
}

func clampIndex(index, count int) int {
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

// SortTasks orders tasks for display: highest position first, then oldest, then by id
func SortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.StatusPosition != b.StatusPosition {
			return a.StatusPosition > b.StatusPosition
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

func sortColumns(columns []domain.FieldOption) []domain.FieldOption {
	sorted := append([]domain.FieldOption(nil), columns...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return sorted
}

func replaceTask(tasks []domain.Task, updated domain.Task) []domain.Task {
	next := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			next[i] = updated
		} else {
			next[i] = t
		}
	}
	return next
}

func filterTasks(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	next := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			next = append(next, t)
		}
	}
	return next
}

func filterColumns(columns []domain.FieldOption, keep func(domain.FieldOption) bool) []domain.FieldOption {
	next := make([]domain.FieldOption, 0, len(columns))
	for _, col := range columns {
		if keep(col) {
			next = append(next, col)
		}
	}
	return next
}

func mapColumns(columns []domain.FieldOption, fn func(domain.FieldOption) domain.FieldOption) []domain.FieldOption {
	next := make([]domain.FieldOption, len(columns))
	for i, col := range columns {
		next[i] = fn(col)
	}
	return next
}
