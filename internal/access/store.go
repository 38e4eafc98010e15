// Package access derives and caches a user's role and permissions per project.
package access

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard-api/internal/domain"
)

// ErrProjectNotFound is returned by a Source when the project does not exist
var ErrProjectNotFound = errors.New("project not found")

// Entry is the derived access of one user to one project
type Entry struct {
	Role        domain.ProjectRole `json:"role"`
	Permissions map[Action]bool    `json:"permissions"`
	IsCreator   bool               `json:"isCreator"`
}

func (e *Entry) clone() *Entry {
	if e == nil {
		return nil
	}
	permissions := make(map[Action]bool, len(e.Permissions))
	for action, allowed := range e.Permissions {
		permissions[action] = allowed
	}
	return &Entry{Role: e.Role, Permissions: permissions, IsCreator: e.IsCreator}
}

// Derive builds the entry for a user given the project creator and their accepted membership role.
// The creator is always owner, whether or not a membership row exists.
func Derive(userID, creatorID uuid.UUID, memberRole domain.ProjectRole) *Entry {
	isCreator := userID == creatorID
	role := memberRole
	if isCreator {
		role = domain.ProjectRoleOwner
	} else if !role.IsValid() {
		role = ""
	}
	return &Entry{
		Role:        role,
		Permissions: PermissionsFor(role),
		IsCreator:   isCreator,
	}
}

// Source looks up the facts access is derived from
type Source interface {
	// ProjectCreator returns the creator of a project or ErrProjectNotFound
	ProjectCreator(ctx context.Context, projectID uuid.UUID) (uuid.UUID, error)
	// AcceptedRole returns the role of an accepted membership, false when there is none
	AcceptedRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error)
}

// Recorder receives cache lookup outcomes
type Recorder interface {
	RecordAccessLookup(result string)
}

// Store is shared by all requests. Handlers work through a per-user Scope.
type Store struct {
	source   Source
	backing  Backing
	logger   *zap.Logger
	recorder Recorder
}

// NewStore creates a Store. A nil backing falls back to an in-process map.
func NewStore(source Source, backing Backing, logger *zap.Logger, recorder Recorder) *Store {
	if backing == nil {
		backing = NewMemoryBacking()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source:   source,
		backing:  backing,
		logger:   logger,
		recorder: recorder,
	}
}

// ForUser returns a fresh scope for one request of userID
func (s *Store) ForUser(userID uuid.UUID) *Scope {
	return &Scope{
		store:   s,
		userID:  userID,
		entries: make(map[uuid.UUID]*Entry),
		loading: make(map[uuid.UUID]bool),
	}
}

// InvalidateMember drops the cached entry of one user for one project
func (s *Store) InvalidateMember(ctx context.Context, projectID, userID uuid.UUID) {
	if err := s.backing.Remove(ctx, userID, projectID); err != nil {
		s.logger.Warn("Failed to invalidate access entry",
			zap.String("project_id", projectID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
}

// InvalidateProject drops every cached entry of a project
func (s *Store) InvalidateProject(ctx context.Context, projectID uuid.UUID) {
	if err := s.backing.RemoveProject(ctx, projectID); err != nil {
		s.logger.Warn("Failed to invalidate project access entries",
			zap.String("project_id", projectID.String()),
			zap.Error(err),
		)
	}
}

func (s *Store) record(result string) {
	if s.recorder != nil {
		s.recorder.RecordAccessLookup(result)
	}
}

func (s *Store) derive(ctx context.Context, userID, projectID uuid.UUID) (*Entry, error) {
	creatorID, err := s.source.ProjectCreator(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if creatorID == userID {
		return Derive(userID, creatorID, ""), nil
	}

	role, ok, err := s.source.AcceptedRole(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		role = ""
	}
	return Derive(userID, creatorID, role), nil
}

// Scope is the access context of one user, passed explicitly to request handlers
type Scope struct {
	store  *Store
	userID uuid.UUID

	mu      sync.Mutex
	entries map[uuid.UUID]*Entry
	loading map[uuid.UUID]bool
}

// UserID returns the user this scope belongs to
func (sc *Scope) UserID() uuid.UUID {
	return sc.userID
}

// FetchProjectAccess loads the entry for projectID once and keeps it for the scope.
// Lookup failures leave the project unloaded, which every check treats as no access.
// Nothing is retried; a later call performs the lookup again.
func (sc *Scope) FetchProjectAccess(ctx context.Context, projectID uuid.UUID) *Entry {
	sc.mu.Lock()
	if entry, ok := sc.entries[projectID]; ok {
		sc.mu.Unlock()
		return entry.clone()
	}
	sc.loading[projectID] = true
	sc.mu.Unlock()

	entry := sc.lookup(ctx, projectID)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.loading, projectID)
	if entry == nil {
		return nil
	}
	sc.entries[projectID] = entry
	return entry.clone()
}

func (sc *Scope) lookup(ctx context.Context, projectID uuid.UUID) *Entry {
	s := sc.store
	logger := s.logger.With(
		zap.String("project_id", projectID.String()),
		zap.String("user_id", sc.userID.String()),
	)

	cached, ok, err := s.backing.Load(ctx, sc.userID, projectID)
	if err != nil {
		logger.Warn("Access cache read failed, deriving from source", zap.Error(err))
	}
	if ok {
		s.record("hit")
		return cached
	}

	entry, err := s.derive(ctx, sc.userID, projectID)
	if err != nil {
		s.record("error")
		if errors.Is(err, ErrProjectNotFound) {
			logger.Debug("Project not found while fetching access")
		} else {
			logger.Error("Failed to fetch project access", zap.Error(err))
		}
		return nil
	}
	s.record("miss")

	if err := s.backing.Store(ctx, sc.userID, projectID, entry); err != nil {
		logger.Warn("Failed to cache project access", zap.Error(err))
	}
	return entry
}

// IsLoading reports whether a fetch for projectID is in flight
func (sc *Scope) IsLoading(projectID uuid.UUID) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.loading[projectID]
}

// Role returns the loaded role for projectID, false when unloaded or not a member
func (sc *Scope) Role(projectID uuid.UUID) (domain.ProjectRole, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	entry, ok := sc.entries[projectID]
	if !ok || !entry.Role.IsValid() {
		return "", false
	}
	return entry.Role, true
}

// RequiresMinRole compares the loaded role with minRole. Unknown roles never pass.
func (sc *Scope) RequiresMinRole(projectID uuid.UUID, minRole domain.ProjectRole) bool {
	role, ok := sc.Role(projectID)
	if !ok {
		return false
	}
	return role.AtLeast(minRole)
}

// Can looks up a precomputed permission. Unknown projects and actions are denied.
func (sc *Scope) Can(projectID uuid.UUID, action Action) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	entry, ok := sc.entries[projectID]
	if !ok {
		return false
	}
	return entry.Permissions[action]
}

// Invalidate clears the entry for projectID from the scope and the shared backing
func (sc *Scope) Invalidate(ctx context.Context, projectID uuid.UUID) {
	sc.mu.Lock()
	delete(sc.entries, projectID)
	sc.mu.Unlock()
	sc.store.InvalidateMember(ctx, projectID, sc.userID)
}

// InvalidateAll clears every entry of the scope's user
func (sc *Scope) InvalidateAll(ctx context.Context) {
	sc.mu.Lock()
	sc.entries = make(map[uuid.UUID]*Entry)
	sc.mu.Unlock()
	if err := sc.store.backing.RemoveUser(ctx, sc.userID); err != nil {
		sc.store.logger.Warn("Failed to invalidate user access entries",
			zap.String("user_id", sc.userID.String()),
			zap.Error(err),
		)
	}
}
