package admin

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态更新请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetOrders 全部订单
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.OrderService.ListAll()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(orders))
}

// UpdateOrderStatus 更新订单状态，不存在时 data 为 null
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		respondMapped(c, err, orderStatusErrorRules)
		return
	}
	response.Success(c, order)
}
