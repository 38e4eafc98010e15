package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/repository"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc     func(ctx context.Context, project *domain.Project) error
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByUserFunc func(ctx context.Context, userID uuid.UUID, tab repository.ProjectTab) ([]*domain.Project, error)
	UpdateFunc     func(ctx context.Context, project *domain.Project) error
	SetClosedFunc  func(ctx context.Context, id uuid.UUID, closed bool, at time.Time) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	CountFunc      func(ctx context.Context, closed bool) (int64, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockProjectRepository) FindByUser(ctx context.Context, userID uuid.UUID, tab repository.ProjectTab) ([]*domain.Project, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, tab)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) SetClosed(ctx context.Context, id uuid.UUID, closed bool, at time.Time) error {
	if m.SetClosedFunc != nil {
		return m.SetClosedFunc(ctx, id, closed, at)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) Count(ctx context.Context, closed bool) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, closed)
	}
	return 0, nil
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	CreateFunc               func(ctx context.Context, member *domain.ProjectMember) error
	FindByProjectFunc        func(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	FindByProjectAndUserFunc func(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error)
	FindUserIDsByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error)
	AcceptFunc               func(ctx context.Context, projectID, userID uuid.UUID, joinedAt time.Time) error
	UpdateRoleFunc           func(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error
	DeleteFunc               func(ctx context.Context, projectID, userID uuid.UUID) error
	AcceptedRoleFunc         func(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error)
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.ProjectMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockMemberRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if m.FindByProjectFunc != nil {
		return m.FindByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockMemberRepository) FindByProjectAndUser(ctx context.Context, projectID, userID uuid.UUID) (*domain.ProjectMember, error) {
	if m.FindByProjectAndUserFunc != nil {
		return m.FindByProjectAndUserFunc(ctx, projectID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockMemberRepository) FindUserIDsByProject(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	if m.FindUserIDsByProjectFunc != nil {
		return m.FindUserIDsByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockMemberRepository) Accept(ctx context.Context, projectID, userID uuid.UUID, joinedAt time.Time) error {
	if m.AcceptFunc != nil {
		return m.AcceptFunc(ctx, projectID, userID, joinedAt)
	}
	return nil
}

func (m *MockMemberRepository) UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role domain.ProjectRole) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, projectID, userID, role)
	}
	return nil
}

func (m *MockMemberRepository) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, projectID, userID)
	}
	return nil
}

func (m *MockMemberRepository) AcceptedRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
	if m.AcceptedRoleFunc != nil {
		return m.AcceptedRoleFunc(ctx, projectID, userID)
	}
	return "", false, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SearchByNameFunc  func(ctx context.Context, term string, excludeIDs []uuid.UUID, limit int) ([]*domain.User, error)
	UpsertFunc        func(ctx context.Context, user *domain.User) error
	UpdateProfileFunc func(ctx context.Context, user *domain.User) error
	UpdateAvatarFunc  func(ctx context.Context, id uuid.UUID, avatarURL string) error
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) SearchByName(ctx context.Context, term string, excludeIDs []uuid.UUID, limit int) ([]*domain.User, error) {
	if m.SearchByNameFunc != nil {
		return m.SearchByNameFunc(ctx, term, excludeIDs, limit)
	}
	return nil, nil
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	if m.UpdateAvatarFunc != nil {
		return m.UpdateAvatarFunc(ctx, id, avatarURL)
	}
	return nil
}

// MockFieldOptionRepository is a mock implementation of FieldOptionRepository
type MockFieldOptionRepository struct {
	CreateFunc                    func(ctx context.Context, fieldOption *domain.FieldOption) error
	FindByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.FieldOption, error)
	FindByProjectAndFieldTypeFunc func(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType) ([]*domain.FieldOption, error)
	CreateBatchFunc               func(ctx context.Context, fieldOptions []*domain.FieldOption) error
	UpdateFunc                    func(ctx context.Context, fieldOption *domain.FieldOption) error
	DeleteFunc                    func(ctx context.Context, id uuid.UUID) error
	ApplyChangesFunc              func(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType, changes repository.OptionChanges) error
	UpdateOrdersFunc              func(ctx context.Context, orders map[uuid.UUID]int) error
}

func (m *MockFieldOptionRepository) Create(ctx context.Context, fieldOption *domain.FieldOption) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, fieldOption)
	}
	return nil
}

func (m *MockFieldOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FieldOption, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockFieldOptionRepository) FindByProjectAndFieldType(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType) ([]*domain.FieldOption, error) {
	if m.FindByProjectAndFieldTypeFunc != nil {
		return m.FindByProjectAndFieldTypeFunc(ctx, projectID, fieldType)
	}
	return nil, nil
}

func (m *MockFieldOptionRepository) CreateBatch(ctx context.Context, fieldOptions []*domain.FieldOption) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, fieldOptions)
	}
	return nil
}

func (m *MockFieldOptionRepository) Update(ctx context.Context, fieldOption *domain.FieldOption) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, fieldOption)
	}
	return nil
}

func (m *MockFieldOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockFieldOptionRepository) ApplyChanges(ctx context.Context, projectID uuid.UUID, fieldType domain.FieldType, changes repository.OptionChanges) error {
	if m.ApplyChangesFunc != nil {
		return m.ApplyChangesFunc(ctx, projectID, fieldType, changes)
	}
	return nil
}

func (m *MockFieldOptionRepository) UpdateOrders(ctx context.Context, orders map[uuid.UUID]int) error {
	if m.UpdateOrdersFunc != nil {
		return m.UpdateOrdersFunc(ctx, orders)
	}
	return nil
}

// MockNotificationClient records sent events
type MockNotificationClient struct {
	mu     sync.Mutex
	Events []client.NotificationEvent
}

func (m *MockNotificationClient) SendNotification(ctx context.Context, event client.NotificationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockNotificationClient) types() []client.NotificationType {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]client.NotificationType, len(m.Events))
	for i, e := range m.Events {
		kinds[i] = e.Type
	}
	return kinds
}

// mockViews records view refreshes requested by services
type mockViews struct {
	closedProjects   []uuid.UUID
	reloadedProjects []uuid.UUID
	closedViews      [][2]uuid.UUID
}

func (v *mockViews) CloseProject(projectID uuid.UUID) {
	v.closedProjects = append(v.closedProjects, projectID)
}

func (v *mockViews) ReloadProject(ctx context.Context, projectID uuid.UUID) int {
	v.reloadedProjects = append(v.reloadedProjects, projectID)
	return 1
}

func (v *mockViews) Close(userID, projectID uuid.UUID) {
	v.closedViews = append(v.closedViews, [2]uuid.UUID{userID, projectID})
}

// accessFixture wires an access store to mock repositories holding one project
type accessFixture struct {
	project  *domain.Project
	projects *MockProjectRepository
	members  *MockMemberRepository
	roles    map[uuid.UUID]domain.ProjectRole
	store    *access.Store
}

func newAccessFixture(creatorID uuid.UUID) *accessFixture {
	f := &accessFixture{
		project: &domain.Project{
			BaseModel: domain.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)},
			Name:      "Roadmap",
			CreatedBy: creatorID,
		},
		roles: make(map[uuid.UUID]domain.ProjectRole),
	}
	f.projects = &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			if id != f.project.ID {
				return nil, gorm.ErrRecordNotFound
			}
			copied := *f.project
			return &copied, nil
		},
	}
	f.members = &MockMemberRepository{
		AcceptedRoleFunc: func(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
			if projectID != f.project.ID {
				return "", false, nil
			}
			role, ok := f.roles[userID]
			return role, ok, nil
		},
	}
	f.store = access.NewStore(repository.NewAccessSource(f.projects, f.members), nil, zap.NewNop(), nil)
	return f
}

// member grants an accepted role and returns that user's scope
func (f *accessFixture) member(role domain.ProjectRole) (uuid.UUID, *access.Scope) {
	userID := uuid.New()
	f.roles[userID] = role
	return userID, f.store.ForUser(userID)
}

func (f *accessFixture) creatorScope() *access.Scope {
	return f.store.ForUser(f.project.CreatedBy)
}
