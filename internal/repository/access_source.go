package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/access"
	"taskboard-api/internal/domain"
)

// accessSource reads project ownership and memberships for access derivation
type accessSource struct {
	projects ProjectRepository
	members  MemberRepository
}

// NewAccessSource adapts the project and member repositories to access.Source
func NewAccessSource(projects ProjectRepository, members MemberRepository) access.Source {
	return &accessSource{projects: projects, members: members}
}

func (s *accessSource) ProjectCreator(ctx context.Context, projectID uuid.UUID) (uuid.UUID, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, access.ErrProjectNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return project.CreatedBy, nil
}

func (s *accessSource) AcceptedRole(ctx context.Context, projectID, userID uuid.UUID) (domain.ProjectRole, bool, error) {
	return s.members.AcceptedRole(ctx, projectID, userID)
}
