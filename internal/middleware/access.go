package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskboard-api/internal/access"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/response"
)

// Context keys set by the access middlewares
const (
	ContextAccessScope = "access_scope"
	ContextProjectID   = "project_id"
)

// AccessScope attaches the caller's access.Scope. It must run after an auth middleware.
func AccessScope(store *access.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(ContextUserID)
		if !ok {
			abortUnauthorized(c, "User ID not found in context")
			return
		}
		id, ok := userID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			abortUnauthorized(c, "Invalid user ID format")
			return
		}
		c.Set(ContextAccessScope, store.ForUser(id))
		c.Next()
	}
}

// RequireProjectRole rejects callers below minRole on the :projectId route param
func RequireProjectRole(minRole domain.ProjectRole) gin.HandlerFunc {
	return requireProject(func(scope *access.Scope, projectID uuid.UUID) bool {
		return scope.RequiresMinRole(projectID, minRole)
	})
}

// RequireProjectAction rejects callers without permission for action on the :projectId route param
func RequireProjectAction(action access.Action) gin.HandlerFunc {
	return requireProject(func(scope *access.Scope, projectID uuid.UUID) bool {
		return scope.Can(projectID, action)
	})
}

// requireProject answers every failure with the same 404 so a caller cannot probe which projects exist.
func requireProject(allowed func(*access.Scope, uuid.UUID) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := ScopeFrom(c)
		if !ok {
			abortProjectNotFound(c)
			return
		}

		projectID, err := uuid.Parse(c.Param("projectId"))
		if err != nil {
			abortProjectNotFound(c)
			return
		}

		if scope.FetchProjectAccess(c.Request.Context(), projectID) == nil || !allowed(scope, projectID) {
			abortProjectNotFound(c)
			return
		}

		c.Set(ContextProjectID, projectID)
		c.Next()
	}
}

// ScopeFrom returns the access.Scope attached by AccessScope
func ScopeFrom(c *gin.Context) (*access.Scope, bool) {
	v, ok := c.Get(ContextAccessScope)
	if !ok {
		return nil, false
	}
	scope, ok := v.(*access.Scope)
	return scope, ok && scope != nil
}

// ProjectIDFrom returns the project id verified by RequireProjectRole or RequireProjectAction
func ProjectIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextProjectID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func abortProjectNotFound(c *gin.Context) {
	response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Project not found")
	c.Abort()
}
