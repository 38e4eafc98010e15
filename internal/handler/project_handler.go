package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject godoc
// @Summary      Project 생성
// @Description  새 Project를 생성합니다. 생성자는 항상 OWNER입니다
// @Description  skipDefaultOptions가 false이면 상태, 크기, 우선순위, 라벨 기본 옵션이 함께 생성됩니다
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProjectRequest true "Project 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, project)
}

// GetProjects godoc
// @Summary      내 Project 목록 조회
// @Description  생성했거나 참여 중인 Project 목록을 탭별로 조회합니다
// @Tags         projects
// @Produce      json
// @Param        tab query string false "탭" Enums(active, closed, all) default(active)
// @Success      200 {object} response.SuccessResponse{data=[]dto.ProjectResponse} "Project 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 탭"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects [get]
// @Security     BearerAuth
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	scope, ok := extractScope(c)
	if !ok {
		return
	}

	projects, err := h.projectService.GetProjects(c.Request.Context(), scope, repository.ProjectTab(c.Query("tab")))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, projects)
}

// GetProject godoc
// @Summary      Project 조회
// @Description  Project 상세 정보를 조회합니다. 접근 권한이 없으면 404를 반환합니다
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId} [get]
// @Security     BearerAuth
func (h *ProjectHandler) GetProject(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// UpdateProject godoc
// @Summary      Project 수정
// @Description  Project의 이름, 설명, README를 수정합니다 (ADMIN 이상)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.UpdateProjectRequest true "Project 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId} [put]
// @Security     BearerAuth
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), scope, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// CloseProject godoc
// @Summary      Project 종료
// @Description  Project를 종료 탭으로 이동합니다 (OWNER만 가능)
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project 종료 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/close [post]
// @Security     BearerAuth
func (h *ProjectHandler) CloseProject(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	project, err := h.projectService.CloseProject(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// ReopenProject godoc
// @Summary      Project 재개
// @Description  종료된 Project를 다시 진행 중으로 되돌립니다 (OWNER만 가능)
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectResponse} "Project 재개 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/reopen [post]
// @Security     BearerAuth
func (h *ProjectHandler) ReopenProject(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	project, err := h.projectService.ReopenProject(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, project)
}

// DeleteProject godoc
// @Summary      Project 삭제
// @Description  Project와 모든 작업, 옵션, 멤버를 삭제합니다 (OWNER만 가능)
// @Tags         projects
// @Param        projectId path string true "Project ID (UUID)"
// @Success      204 "Project 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), scope, projectID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAccess godoc
// @Summary      Project 권한 조회
// @Description  현재 사용자의 역할과 권한 목록을 조회합니다
// @Tags         projects
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.ProjectAccessResponse} "권한 조회 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/access [get]
// @Security     BearerAuth
func (h *ProjectHandler) GetAccess(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetAccess(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}
