package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const serviceName = "taskboard-api"

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	db    func() *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a HealthHandler. db is resolved per probe so a
// connection established in the background is picked up; redis may be nil.
func NewHealthHandler(db func() *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
	}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  데이터베이스와 (설정된 경우) Redis 연결을 확인합니다
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var db *gorm.DB
	if h.db != nil {
		db = h.db()
	}
	if db == nil {
		notReady(c, "database not connected")
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		notReady(c, "database unavailable")
		return
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		notReady(c, "database unavailable")
		return
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			notReady(c, "redis unavailable")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName})
}

func notReady(c *gin.Context, reason string) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName, "reason": reason})
}
