package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type FieldOptionHandler struct {
	fieldOptionService service.FieldOptionService
}

func NewFieldOptionHandler(fieldOptionService service.FieldOptionService) *FieldOptionHandler {
	return &FieldOptionHandler{
		fieldOptionService: fieldOptionService,
	}
}

// fieldTypeParam reads :fieldType, writing a 400 for unknown field types
func fieldTypeParam(c *gin.Context) (domain.FieldType, bool) {
	fieldType := domain.FieldType(c.Param("fieldType"))
	if !fieldType.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid field type")
		return "", false
	}
	return fieldType, true
}

// GetFieldOptions godoc
// @Summary      필드 옵션 목록 조회
// @Description  Project의 필드 타입별 옵션을 순서대로 조회합니다
// @Tags         field-options
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        fieldType path string true "필드 타입" Enums(status, label, priority, size)
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldOptionResponse} "옵션 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 필드 타입"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/options/{fieldType} [get]
// @Security     BearerAuth
func (h *FieldOptionHandler) GetFieldOptions(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	fieldType, ok := fieldTypeParam(c)
	if !ok {
		return
	}

	options, err := h.fieldOptionService.GetFieldOptions(c.Request.Context(), scope, projectID, fieldType)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, options)
}

// SaveFieldOptions godoc
// @Summary      필드 옵션 일괄 저장
// @Description  옵션 목록 전체를 저장합니다. 기존 목록과 비교하여 추가, 수정, 삭제가 한 트랜잭션으로 반영됩니다
// @Description  id가 없는 항목은 새 옵션으로 추가되고, 목록에 없는 기존 옵션은 삭제됩니다 (ADMIN 이상)
// @Tags         field-options
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        fieldType path string true "필드 타입" Enums(status, label, priority, size)
// @Param        request body dto.SaveFieldOptionsRequest true "옵션 저장 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.SaveFieldOptionsResponse} "옵션 저장 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /projects/{projectId}/options/{fieldType} [put]
// @Security     BearerAuth
func (h *FieldOptionHandler) SaveFieldOptions(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	fieldType, ok := fieldTypeParam(c)
	if !ok {
		return
	}

	var req dto.SaveFieldOptionsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.fieldOptionService.SaveFieldOptions(c.Request.Context(), scope, projectID, fieldType, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, resp)
}

// ReorderFieldOptions godoc
// @Summary      필드 옵션 순서 변경
// @Description  fromIndex 위치의 옵션을 toIndex 위치로 옮깁니다 (ADMIN 이상)
// @Tags         field-options
// @Accept       json
// @Produce      json
// @Param        projectId path string true "Project ID (UUID)"
// @Param        fieldType path string true "필드 타입" Enums(status, label, priority, size)
// @Param        request body dto.ReorderFieldOptionsRequest true "순서 변경 요청"
// @Success      200 {object} response.SuccessResponse{data=[]dto.FieldOptionResponse} "순서 변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      404 {object} response.ErrorResponse "Project를 찾을 수 없음"
// @Router       /projects/{projectId}/options/{fieldType}/reorder [post]
// @Security     BearerAuth
func (h *FieldOptionHandler) ReorderFieldOptions(c *gin.Context) {
	scope, projectID, ok := projectRequest(c)
	if !ok {
		return
	}
	fieldType, ok := fieldTypeParam(c)
	if !ok {
		return
	}

	var req dto.ReorderFieldOptionsRequest
	if !bindJSON(c, &req) {
		return
	}

	options, err := h.fieldOptionService.ReorderFieldOptions(c.Request.Context(), scope, projectID, fieldType, *req.FromIndex, *req.ToIndex)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, options)
}
