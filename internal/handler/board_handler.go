package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

// BoardHandler serves the caller's board view of a project
type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// GetBoard godoc
// @Summary      보드 조회
// @Description  Project 보드를 열고 상태 컬럼별 작업과 컬럼 부하를 조회합니다
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "보드 조회 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/board [get]
// @Security     BearerAuth
func (h *BoardHandler) GetBoard(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	resp, err := h.boardService.OpenBoard(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// HideColumn godoc
// @Summary      컬럼 숨기기
// @Description  내 보드에서 컬럼을 숨깁니다. 다른 사용자의 보드에는 영향이 없습니다
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "컬럼 숨기기 성공"
// @Failure      404 {object} response.ErrorResponse "컬럼을 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns/{columnId}/hide [post]
// @Security     BearerAuth
func (h *BoardHandler) HideColumn(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	resp, err := h.boardService.HideColumn(c.Request.Context(), scope, projectID, columnID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// ShowAllColumns godoc
// @Summary      숨긴 컬럼 모두 보이기
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns/show [post]
// @Security     BearerAuth
func (h *BoardHandler) ShowAllColumns(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	resp, err := h.boardService.ShowAllColumns(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// CreateColumn godoc
// @Summary      컬럼 생성
// @Description  새 상태 컬럼을 보드 끝에 추가합니다 (ADMIN 이상)
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateColumnRequest true "컬럼 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.FieldOptionResponse} "컬럼 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns [post]
// @Security     BearerAuth
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	column, err := h.boardService.CreateColumn(c.Request.Context(), scope, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, column)
}

// UpdateColumn godoc
// @Summary      컬럼 수정
// @Description  컬럼의 이름, 색상, 설명을 수정합니다 (ADMIN 이상)
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateColumnRequest true "컬럼 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldOptionResponse} "컬럼 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "컬럼을 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns/{columnId} [patch]
// @Security     BearerAuth
func (h *BoardHandler) UpdateColumn(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.UpdateColumnRequest
	if !bindJSON(c, &req) {
		return
	}

	column, err := h.boardService.UpdateColumn(c.Request.Context(), scope, projectID, columnID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// UpdateColumnLimit godoc
// @Summary      컬럼 작업 제한 변경
// @Description  컬럼의 WIP 제한을 변경합니다. 0은 제한 없음입니다 (ADMIN 이상)
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Param        request body dto.UpdateColumnLimitRequest true "제한 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.FieldOptionResponse} "제한 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "컬럼을 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns/{columnId}/limit [put]
// @Security     BearerAuth
func (h *BoardHandler) UpdateColumnLimit(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	var req dto.UpdateColumnLimitRequest
	if !bindJSON(c, &req) {
		return
	}

	column, err := h.boardService.UpdateColumnLimit(c.Request.Context(), scope, projectID, columnID, *req.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, column)
}

// DeleteColumn godoc
// @Summary      컬럼 삭제
// @Description  컬럼과 컬럼에 속한 작업을 삭제합니다 (ADMIN 이상)
// @Tags         board
// @Param        projectId path string true "Project ID (UUID)"
// @Param        columnId path string true "Column ID (UUID)"
// @Success      204 "컬럼 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "컬럼을 찾을 수 없음"
// @Router       /projects/{projectId}/board/columns/{columnId} [delete]
// @Security     BearerAuth
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	columnID, ok := parseUUIDParam(c, "columnId", "column")
	if !ok {
		return
	}

	if err := h.boardService.DeleteColumn(c.Request.Context(), scope, projectID, columnID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTask godoc
// @Summary      작업 생성
// @Description  상태 컬럼 맨 위에 새 작업을 추가합니다 (WRITE 이상)
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "작업 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse} "작업 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 컬럼 제한 초과"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/board/tasks [post]
// @Security     BearerAuth
func (h *BoardHandler) CreateTask(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.boardService.CreateTask(c.Request.Context(), scope, projectID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// BeginDrag godoc
// @Summary      작업 드래그 시작
// @Description  내 보드에서 작업 드래그를 시작합니다. 한 번에 하나의 작업만 드래그할 수 있습니다
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "드래그 시작 성공"
// @Failure      400 {object} response.ErrorResponse "이미 드래그 중"
// @Failure      404 {object} response.ErrorResponse "작업을 찾을 수 없음"
// @Router       /projects/{projectId}/board/tasks/{taskId}/drag [post]
// @Security     BearerAuth
func (h *BoardHandler) BeginDrag(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	resp, err := h.boardService.BeginDrag(c.Request.Context(), scope, projectID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// CancelDrag godoc
// @Summary      작업 드래그 취소
// @Tags         board
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "드래그 취소 성공"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/board/drag [delete]
// @Security     BearerAuth
func (h *BoardHandler) CancelDrag(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}

	resp, err := h.boardService.CancelDrag(c.Request.Context(), scope, projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// MoveTask godoc
// @Summary      작업 이동
// @Description  작업을 다른 위치나 상태 컬럼으로 옮깁니다. changes가 있으면 함께 반영됩니다 (WRITE 이상)
// @Description  fromStatusId가 작업의 현재 상태와 다르면 400을 반환합니다. 관계 필드가 바뀌면 reloaded=true로 응답합니다
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.MoveTaskRequest true "작업 이동 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskMutationResponse} "작업 이동 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청 또는 컬럼 제한 초과"
// @Failure      404 {object} response.ErrorResponse "작업을 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/board/tasks/{taskId}/move [post]
// @Security     BearerAuth
func (h *BoardHandler) MoveTask(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.boardService.MoveTask(c.Request.Context(), scope, projectID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// UpdateTask godoc
// @Summary      작업 수정
// @Description  작업의 제목, 설명, 담당자, 라벨, 크기, 우선순위를 수정합니다 (WRITE 이상)
// @Description  sizeId, priorityId에 null을 보내면 값이 지워집니다
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskRequest true "작업 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskMutationResponse} "작업 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "작업을 찾을 수 없음"
// @Router       /projects/{projectId}/board/tasks/{taskId} [patch]
// @Security     BearerAuth
func (h *BoardHandler) UpdateTask(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.boardService.UpdateTask(c.Request.Context(), scope, projectID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// DeleteTask godoc
// @Summary      작업 삭제
// @Tags         board
// @Param        projectId path string true "Project ID (UUID)"
// @Param        taskId path string true "Task ID (UUID)"
// @Success      204 "작업 삭제 성공"
// @Failure      404 {object} response.ErrorResponse "작업을 찾을 수 없음"
// @Router       /projects/{projectId}/board/tasks/{taskId} [delete]
// @Security     BearerAuth
func (h *BoardHandler) DeleteTask(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	taskID, ok := parseUUIDParam(c, "taskId", "task")
	if !ok {
		return
	}

	if err := h.boardService.DeleteTask(c.Request.Context(), scope, projectID, taskID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
