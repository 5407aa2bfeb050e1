package public

import (
	"context"
	"time"

	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Health 健康检查，数据库不可用时失败，缓存不可用仅标记为 degraded
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		respondError(c, response.CodeUnavailable, "error.database_unavailable", err)
		return
	}
	redisStatus := "disabled"
	if cache.Enabled() {
		redisStatus = "ok"
		if err := cache.Ping(ctx); err != nil {
			redisStatus = "degraded"
			shared.RequestLog(c).Warnw("health_redis_ping_failed", "error", err)
		}
	}
	response.Success(c, gin.H{
		"status":    "ok",
		"redis":     redisStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
