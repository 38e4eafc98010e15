package board

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type viewKey struct {
	userID    uuid.UUID
	projectID uuid.UUID
}

type session struct {
	ctrl     *Controller
	lastUsed time.Time
}

// Sessions keeps one open board view per user and project
type Sessions struct {
	store       Store
	logger      *zap.Logger
	recorder    Recorder
	onCrowded   CrowdedFunc
	idleTimeout time.Duration
	now         func() time.Time

	mu    sync.Mutex
	views map[viewKey]*session
}

// NewSessions creates an empty registry. idleTimeout <= 0 disables eviction.
func NewSessions(store Store, logger *zap.Logger, recorder Recorder, idleTimeout time.Duration) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{
		store:       store,
		logger:      logger,
		recorder:    recorder,
		idleTimeout: idleTimeout,
		now:         time.Now,
		views:       make(map[viewKey]*session),
	}
}

// SetCrowdedHandler registers fn on views opened from now on
func (s *Sessions) SetCrowdedHandler(fn CrowdedFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCrowded = fn
}

// Open loads a fresh view, replacing any view the user already had on the project
func (s *Sessions) Open(ctx context.Context, userID, projectID uuid.UUID) (*Controller, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	onCrowded := s.onCrowded
	s.mu.Unlock()

	opts := []Option{WithCrowdedHandler(onCrowded)}
	if s.recorder != nil {
		opts = append(opts, WithRecorder(s.recorder))
	}
	ctrl := NewController(projectID, s.store, s.logger, opts...)
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.views[viewKey{userID: userID, projectID: projectID}] = &session{ctrl: ctrl, lastUsed: s.now()}
	s.mu.Unlock()

	s.logger.Debug("Board view opened",
		zap.String("user_id", userID.String()),
		zap.String("project_id", projectID.String()))
	return ctrl, nil
}

// Lookup returns the open view without loading one
func (s *Sessions) Lookup(userID, projectID uuid.UUID) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.views[viewKey{userID: userID, projectID: projectID}]
	if !ok {
		return nil, false
	}
	sess.lastUsed = s.now()
	return sess.ctrl, true
}

// Get returns the open view, opening one if the user has none
func (s *Sessions) Get(ctx context.Context, userID, projectID uuid.UUID) (*Controller, error) {
	if ctrl, ok := s.Lookup(userID, projectID); ok {
		return ctrl, nil
	}
	return s.Open(ctx, userID, projectID)
}

// Close drops the user's view of a project
func (s *Sessions) Close(userID, projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, viewKey{userID: userID, projectID: projectID})
}

// CloseProject drops every view of a project
func (s *Sessions) CloseProject(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.views {
		if key.projectID == projectID {
			delete(s.views, key)
		}
	}
}

// CloseOthers drops every view of a project except keepUserID's and returns the number dropped
func (s *Sessions) CloseOthers(projectID, keepUserID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	closed := 0
	for key := range s.views {
		if key.projectID == projectID && key.userID != keepUserID {
			delete(s.views, key)
			closed++
		}
	}
	return closed
}

// ReloadProject reloads the tasks of every open view of a project.
// Views that fail to reload are closed so the next request opens them again.
func (s *Sessions) ReloadProject(ctx context.Context, projectID uuid.UUID) int {
	s.mu.Lock()
	targets := make(map[viewKey]*Controller)
	for key, sess := range s.views {
		if key.projectID == projectID {
			targets[key] = sess.ctrl
		}
	}
	s.mu.Unlock()

	reloaded := 0
	for key, ctrl := range targets {
		if err := ctrl.ReloadTasks(ctx); err != nil {
			s.logger.Warn("Failed to reload board view, closing it",
				zap.String("project_id", projectID.String()),
				zap.String("user_id", key.userID.String()),
				zap.Error(err))
			s.Close(key.userID, key.projectID)
			continue
		}
		reloaded++
	}
	return reloaded
}

// EvictIdle closes views unused since idleTimeout before now
func (s *Sessions) EvictIdle(now time.Time) int {
	if s.idleTimeout <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, sess := range s.views {
		if now.Sub(sess.lastUsed) > s.idleTimeout {
			delete(s.views, key)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of open views
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}
