package admin

import (
	"github.com/rigforge/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview 仪表盘概览
func (h *Handler) GetDashboardOverview(c *gin.Context) {
	overview, err := h.DashboardService.GetOverview()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, overview)
}
