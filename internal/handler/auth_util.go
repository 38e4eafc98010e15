package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard-api/internal/access"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
)

// extractUserID returns the authenticated user id, writing a 401 when it is missing
func extractUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, ok := userID.(uuid.UUID)
	if !ok || userUUID == uuid.Nil {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// extractScope returns the caller's access scope attached by middleware.AccessScope
func extractScope(c *gin.Context) (*access.Scope, bool) {
	scope, ok := middleware.ScopeFrom(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Access scope not found in context")
		return nil, false
	}
	return scope, true
}

// parseUUIDParam reads a UUID route parameter, writing a 400 naming label when malformed
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// projectRequest reads the scope and :projectId shared by every project route
func projectRequest(c *gin.Context) (*access.Scope, uuid.UUID, bool) {
	scope, ok := extractScope(c)
	if !ok {
		return nil, uuid.Nil, false
	}
	if projectID, ok := middleware.ProjectIDFrom(c); ok {
		return scope, projectID, true
	}
	projectID, ok := parseUUIDParam(c, "projectId", "project")
	if !ok {
		return nil, uuid.Nil, false
	}
	return scope, projectID, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return false
	}
	return true
}
