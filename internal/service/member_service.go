package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

const (
	// MinSearchTermLength is the shortest name fragment user search runs for
	MinSearchTermLength = 2
	// DefaultSearchLimit caps invite search results
	DefaultSearchLimit = 5
)

// MemberViews drops a user's open board view of a project
type MemberViews interface {
	Close(userID, projectID uuid.UUID)
}

// MemberService defines the interface for project membership business logic
type MemberService interface {
	ListMembers(ctx context.Context, scope *access.Scope, projectID uuid.UUID) ([]*dto.MemberResponse, error)
	SearchUsers(ctx context.Context, scope *access.Scope, projectID uuid.UUID, term string) ([]*dto.UserSummary, error)
	InviteMember(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.InviteMemberRequest) (*dto.MemberResponse, error)
	AcceptInvite(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.MemberResponse, error)
	UpdateMemberRole(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID, role domain.ProjectRole) (*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID) error
}

// memberServiceImpl is the implementation of MemberService
type memberServiceImpl struct {
	projectRepo repository.ProjectRepository
	memberRepo  repository.MemberRepository
	userRepo    repository.UserRepository
	accessStore *access.Store
	views       MemberViews
	notifier    client.NotificationClient
	metrics     *metrics.Metrics
	logger      *zap.Logger
	searchLimit int
	now         func() time.Time
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(
	projectRepo repository.ProjectRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	accessStore *access.Store,
	views MemberViews,
	notifier client.NotificationClient,
	m *metrics.Metrics,
	logger *zap.Logger,
	searchLimit int,
) MemberService {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	if notifier == nil {
		notifier = client.NewNoOpNotificationClient()
	}
	return &memberServiceImpl{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		accessStore: accessStore,
		views:       views,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
		searchLimit: searchLimit,
		now:         time.Now,
	}
}

// ListMembers lists the creator followed by every invited or accepted member
func (s *memberServiceImpl) ListMembers(ctx context.Context, scope *access.Scope, projectID uuid.UUID) ([]*dto.MemberResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionViewProject)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}

	responses := make([]*dto.MemberResponse, 0, len(members)+1)
	responses = append(responses, s.creatorResponse(ctx, project))
	for _, member := range members {
		if member.UserID == project.CreatedBy {
			continue
		}
		responses = append(responses, toMemberResponse(member))
	}
	return responses, nil
}

func (s *memberServiceImpl) creatorResponse(ctx context.Context, project *domain.Project) *dto.MemberResponse {
	resp := &dto.MemberResponse{
		ProjectID:        project.ID,
		UserID:           project.CreatedBy,
		Role:             string(domain.ProjectRoleOwner),
		InvitationStatus: string(domain.InvitationAccepted),
		IsCreator:        true,
		JoinedAt:         &project.CreatedAt,
	}
	user, err := s.userRepo.FindByID(ctx, project.CreatedBy)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("Failed to fetch creator profile",
				zap.String("project_id", project.ID.String()),
				zap.Error(err))
		}
		return resp
	}
	resp.Name = user.Name
	resp.Email = user.Email
	resp.Avatar = user.AvatarURL
	return resp
}

// SearchUsers finds users to invite by name, leaving out the creator and existing members
func (s *memberServiceImpl) SearchUsers(ctx context.Context, scope *access.Scope, projectID uuid.UUID, term string) ([]*dto.UserSummary, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionInviteMembers)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < MinSearchTermLength {
		return []*dto.UserSummary{}, nil
	}

	exclude, err := s.memberRepo.FindUserIDsByProject(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch members", err.Error())
	}
	exclude = append(exclude, project.CreatedBy)

	users, err := s.userRepo.SearchByName(ctx, term, exclude, s.searchLimit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to search users", err.Error())
	}

	results := make([]*dto.UserSummary, len(users))
	for i, user := range users {
		results[i] = toUserSummary(user)
	}
	return results, nil
}

// InviteMember creates an invited membership row and notifies the invitee
func (s *memberServiceImpl) InviteMember(ctx context.Context, scope *access.Scope, projectID uuid.UUID, req *dto.InviteMemberRequest) (*dto.MemberResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionInviteMembers)
	if err != nil {
		return nil, err
	}

	role := domain.ProjectRole(req.Role)
	if err := validateMemberRole(role); err != nil {
		return nil, err
	}
	if req.UserID == project.CreatedBy {
		return nil, response.NewValidationError("The project creator cannot be invited", "")
	}

	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if _, err := s.memberRepo.FindByProjectAndUser(ctx, projectID, req.UserID); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "User is already a member or invited", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	now := s.now()
	inviter := scope.UserID()
	member := &domain.ProjectMember{
		ProjectID:        projectID,
		UserID:           req.UserID,
		Role:             role,
		InvitationStatus: domain.InvitationInvited,
		InvitedBy:        &inviter,
		InvitedAt:        &now,
		User:             user,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to invite member", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementInviteSent()
	}
	s.notify(ctx, client.NotificationProjectInvited, inviter, req.UserID, project, map[string]interface{}{
		"role": string(role),
	})

	s.logger.Info("Member invited",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.String("role", string(role)))

	return toMemberResponse(member), nil
}

// AcceptInvite accepts the caller's pending invitation
func (s *memberServiceImpl) AcceptInvite(ctx context.Context, scope *access.Scope, projectID uuid.UUID) (*dto.MemberResponse, error) {
	userID := scope.UserID()

	member, err := s.memberRepo.FindByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Invitation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch invitation", err.Error())
	}
	if member.InvitationStatus != domain.InvitationInvited {
		return nil, response.NewNotFoundError("Invitation not found", "")
	}

	now := s.now()
	if err := s.memberRepo.Accept(ctx, projectID, userID, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Invitation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to accept invitation", err.Error())
	}
	member.InvitationStatus = domain.InvitationAccepted
	member.JoinedAt = &now

	// the cached entry still says "no access"
	scope.Invalidate(ctx, projectID)

	if member.InvitedBy != nil {
		if project, err := s.projectRepo.FindByID(ctx, projectID); err == nil {
			s.notify(ctx, client.NotificationInviteAccepted, userID, *member.InvitedBy, project, nil)
		}
	}

	s.logger.Info("Invitation accepted",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", userID.String()))

	return toMemberResponse(member), nil
}

// UpdateMemberRole changes a member's role. The creator's role is fixed.
func (s *memberServiceImpl) UpdateMemberRole(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID, role domain.ProjectRole) (*dto.MemberResponse, error) {
	project, err := s.authorizedProject(ctx, scope, projectID, access.ActionManageMembers)
	if err != nil {
		return nil, err
	}
	if err := validateMemberRole(role); err != nil {
		return nil, err
	}
	if userID == project.CreatedBy {
		return nil, response.NewForbiddenError("The project creator's role cannot be changed", "")
	}

	if err := s.memberRepo.UpdateRole(ctx, projectID, userID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Member not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update member role", err.Error())
	}
	s.accessStore.InvalidateMember(ctx, projectID, userID)

	member, err := s.memberRepo.FindByProjectAndUser(ctx, projectID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch member", err.Error())
	}

	s.notify(ctx, client.NotificationMemberRoleChanged, scope.UserID(), userID, project, map[string]interface{}{
		"role": string(role),
	})
	return toMemberResponse(member), nil
}

// RemoveMember deletes a membership. Members may always remove themselves; the creator never.
func (s *memberServiceImpl) RemoveMember(ctx context.Context, scope *access.Scope, projectID, userID uuid.UUID) error {
	var project *domain.Project
	var err error
	if userID == scope.UserID() {
		// an invited user declining has no role yet
		project, err = s.projectRepo.FindByID(ctx, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return projectNotFound()
			}
			return response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
		}
	} else {
		project, err = s.authorizedProject(ctx, scope, projectID, access.ActionManageMembers)
		if err != nil {
			return err
		}
	}

	if userID == project.CreatedBy {
		return response.NewForbiddenError("The project creator cannot be removed", "")
	}

	if err := s.memberRepo.Delete(ctx, projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if userID == scope.UserID() {
				return projectNotFound()
			}
			return response.NewNotFoundError("Member not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove member", err.Error())
	}

	s.accessStore.InvalidateMember(ctx, projectID, userID)
	if s.views != nil {
		s.views.Close(userID, projectID)
	}
	if userID != scope.UserID() {
		s.notify(ctx, client.NotificationMemberRemoved, scope.UserID(), userID, project, nil)
	}

	s.logger.Info("Member removed",
		zap.String("project_id", projectID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

func (s *memberServiceImpl) authorizedProject(ctx context.Context, scope *access.Scope, projectID uuid.UUID, action access.Action) (*domain.Project, error) {
	if scope == nil || scope.FetchProjectAccess(ctx, projectID) == nil || !scope.Can(projectID, action) {
		return nil, projectNotFound()
	}
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projectNotFound()
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return project, nil
}

func (s *memberServiceImpl) notify(ctx context.Context, kind client.NotificationType, actorID, targetID uuid.UUID, project *domain.Project, metadata map[string]interface{}) {
	event := client.NotificationEvent{
		Type:         kind,
		ActorID:      actorID,
		TargetUserID: targetID,
		ProjectID:    project.ID,
		ResourceType: "project",
		ResourceID:   project.ID,
		ResourceName: project.Name,
		Metadata:     metadata,
	}
	if err := s.notifier.SendNotification(ctx, event); err != nil {
		s.logger.Warn("Failed to send notification",
			zap.String("type", string(kind)),
			zap.String("project_id", project.ID.String()),
			zap.Error(err))
	}
}

// validateMemberRole accepts read, write and admin. Owner belongs to the creator only.
func validateMemberRole(role domain.ProjectRole) error {
	if !role.IsValid() || role == domain.ProjectRoleOwner {
		return response.NewValidationError("Invalid member role", "role must be one of read, write, admin")
	}
	return nil
}
