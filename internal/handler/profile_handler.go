package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile godoc
// @Summary      내 프로필 조회
// @Tags         profile
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.ProfileResponse} "프로필 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      404 {object} response.ErrorResponse "프로필이 없음"
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      내 프로필 수정
// @Description  이름, 이메일, 소개, 링크를 저장합니다. 처음 저장하면 프로필이 생성됩니다
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "프로필 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ProfileResponse} "프로필 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}

// CreateAvatarUploadURL godoc
// @Summary      아바타 업로드 URL 발급
// @Description  S3 Presigned PUT URL을 발급합니다. 업로드 후 fileKey로 아바타를 확정해야 합니다
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body dto.AvatarUploadURLRequest true "업로드 URL 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.AvatarUploadURLResponse} "URL 발급 성공"
// @Failure      400 {object} response.ErrorResponse "지원하지 않는 파일 형식"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /profile/avatar/upload-url [post]
// @Security     BearerAuth
func (h *ProfileHandler) CreateAvatarUploadURL(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.AvatarUploadURLRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CreateAvatarUploadURL(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// ConfirmAvatar godoc
// @Summary      아바타 확정
// @Description  업로드한 파일을 아바타로 설정하고 이전 아바타 파일을 삭제합니다
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body dto.ConfirmAvatarRequest true "아바타 확정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ProfileResponse} "아바타 확정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 파일 키"
// @Failure      404 {object} response.ErrorResponse "프로필이 없음"
// @Router       /profile/avatar [put]
// @Security     BearerAuth
func (h *ProfileHandler) ConfirmAvatar(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.ConfirmAvatarRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.ConfirmAvatar(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, profile)
}
