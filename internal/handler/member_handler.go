package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// GetMembers godoc
// @Summary      Project 멤버 목록 조회
// @Description  생성자를 포함한 Project 멤버와 초대 대기 중인 사용자를 조회합니다
// @Tags         members
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse} "멤버 목록 조회 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/members [get]
// @Security     BearerAuth
func (h *MemberHandler) GetMembers(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// SearchUsers godoc
// @Summary      초대할 사용자 검색
// @Description  이름으로 초대 가능한 사용자를 검색합니다 (2자 이상, 최대 5명)
// @Description  이미 멤버이거나 생성자인 사용자는 제외됩니다
// @Tags         members
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        q query string true "검색어"
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserSummary} "사용자 검색 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/members/search [get]
// @Security     BearerAuth
func (h *MemberHandler) SearchUsers(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	users, err := h.memberService.SearchUsers(c.Request.Context(), scope, projectID, c.Query("q"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, users)
}

// InviteMember godoc
// @Summary      멤버 초대
// @Description  사용자를 Project에 초대합니다 (ADMIN 이상). 초대 알림이 발송됩니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.InviteMemberRequest true "초대 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MemberResponse} "초대 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 멤버임"
// @Router       /projects/{projectId}/members/invite [post]
// @Security     BearerAuth
func (h *MemberHandler) InviteMember(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.InviteMember(c.Request.Context(), scope, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, member)
}

// AcceptInvite godoc
// @Summary      초대 수락
// @Description  받은 초대를 수락하고 Project 멤버가 됩니다
// @Tags         members
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberResponse} "초대 수락 성공"
// @Failure      404 {object} response.ErrorResponse "초대를 찾을 수 없음"
// @Router       /invites/{projectId}/accept [post]
// @Security     BearerAuth
func (h *MemberHandler) AcceptInvite(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	member, err := h.memberService.AcceptInvite(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}

// UpdateMemberRole godoc
// @Summary      멤버 역할 변경
// @Description  멤버의 역할을 변경합니다 (ADMIN 이상). 생성자의 역할은 변경할 수 없습니다
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Param        request body dto.UpdateMemberRoleRequest true "역할 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.MemberResponse} "역할 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "멤버를 찾을 수 없음"
// @Router       /projects/{projectId}/members/{userId}/role [put]
// @Security     BearerAuth
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	var req dto.UpdateMemberRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.UpdateMemberRole(c.Request.Context(), scope, projectID, userID, domain.ProjectRole(req.Role))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, member)
}

// RemoveMember godoc
// @Summary      멤버 제거
// @Description  멤버를 Project에서 제거합니다 (ADMIN 이상). 본인은 권한 없이 나가거나 초대를 거절할 수 있습니다
// @Tags         members
// @Param        projectId path string true "Project ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      204 "멤버 제거 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "멤버를 찾을 수 없음"
// @Router       /projects/{projectId}/members/{userId} [delete]
// @Security     BearerAuth
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.memberService.RemoveMember(c.Request.Context(), scope, projectID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
