package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// ProfileService defines the interface for the caller's profile
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	CreateAvatarUploadURL(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadURLRequest) (*dto.AvatarUploadURLResponse, error)
	ConfirmAvatar(ctx context.Context, userID uuid.UUID, req *dto.ConfirmAvatarRequest) (*dto.ProfileResponse, error)
}

// profileServiceImpl is the implementation of ProfileService
type profileServiceImpl struct {
	userRepo repository.UserRepository
	storage  client.AvatarStorage
	logger   *zap.Logger
}

// NewProfileService creates a new instance of ProfileService. storage may be nil
// when object storage is not configured; avatar uploads are then rejected.
func NewProfileService(userRepo repository.UserRepository, storage client.AvatarStorage, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetProfile returns the caller's profile
func (s *profileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Profile not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch profile", err.Error())
	}
	return toProfileResponse(user), nil
}

// UpdateProfile saves the caller's profile, creating it on first save
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Name is required", "")
	}

	links := make([]domain.ProfileLink, len(req.Links))
	for i, l := range req.Links {
		id := l.ID
		if id == "" {
			id = uuid.NewString()
		}
		links[i] = domain.ProfileLink{ID: id, Label: strings.TrimSpace(l.Label), URL: strings.TrimSpace(l.URL)}
	}
	encoded, err := json.Marshal(links)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode profile links", err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &domain.User{ID: userID}
	case err != nil:
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch profile", err.Error())
	}

	user.Name = name
	if req.Email != "" {
		user.Email = req.Email
	}
	user.Description = req.Description
	user.Links = datatypes.JSON(encoded)

	if user.CreatedAt.IsZero() {
		err = s.userRepo.Upsert(ctx, user)
	} else {
		err = s.userRepo.UpdateProfile(ctx, user)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save profile", err.Error())
	}
	return toProfileResponse(user), nil
}

// CreateAvatarUploadURL presigns an avatar upload for the caller
func (s *profileServiceImpl) CreateAvatarUploadURL(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadURLRequest) (*dto.AvatarUploadURLResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Avatar storage is not configured", "")
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, response.NewValidationError("Avatar must be an image", req.ContentType)
	}

	uploadURL, key, err := s.storage.PresignAvatarUpload(ctx, userID, req.FileName, req.ContentType)
	if err != nil {
		s.logger.Warn("Failed to presign avatar upload",
			zap.String("user_id", userID.String()),
			zap.String("file_name", req.FileName),
			zap.Error(err))
		return nil, response.NewValidationError("Failed to create upload URL", err.Error())
	}

	return &dto.AvatarUploadURLResponse{
		UploadURL: uploadURL,
		FileKey:   key,
		FileURL:   s.storage.GetFileURL(key),
		ExpiresIn: int(client.AvatarUploadExpiry.Seconds()),
	}, nil
}

// ConfirmAvatar stores the uploaded object as the caller's avatar and removes the previous one
func (s *profileServiceImpl) ConfirmAvatar(ctx context.Context, userID uuid.UUID, req *dto.ConfirmAvatarRequest) (*dto.ProfileResponse, error) {
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Avatar storage is not configured", "")
	}
	// keys are scoped per user so one user cannot claim another's upload
	if !strings.HasPrefix(req.FileKey, avatarPrefix(userID)) {
		return nil, response.NewValidationError("Invalid avatar key", "")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Profile not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch profile", err.Error())
	}

	previous := user.AvatarURL
	user.AvatarURL = s.storage.GetFileURL(req.FileKey)
	if err := s.userRepo.UpdateAvatar(ctx, userID, user.AvatarURL); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save avatar", err.Error())
	}

	if oldKey, ok := s.keyOf(previous, userID); ok && previous != user.AvatarURL {
		if err := s.storage.DeleteFile(ctx, oldKey); err != nil {
			s.logger.Warn("Failed to delete previous avatar",
				zap.String("user_id", userID.String()),
				zap.String("key", oldKey),
				zap.Error(err))
		}
	}
	return toProfileResponse(user), nil
}

func avatarPrefix(userID uuid.UUID) string {
	return "avatars/" + userID.String() + "/"
}

// keyOf recovers the object key of an avatar URL this service issued
func (s *profileServiceImpl) keyOf(url string, userID uuid.UUID) (string, bool) {
	if url == "" {
		return "", false
	}
	idx := strings.Index(url, avatarPrefix(userID))
	if idx < 0 {
		return "", false
	}
	key := url[idx:]
	if s.storage.GetFileURL(key) != url {
		return "", false
	}
	return key, true
}
