package public

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	UserID          uint         `json:"user_id" binding:"required"`
	TotalAmount     models.Money `json:"total_amount"`
	ShippingAddress string       `json:"shipping_address" binding:"required"`
	BillingAddress  string       `json:"billing_address" binding:"required"`
}

// CreateOrderItemRequest 创建订单项请求
type CreateOrderItemRequest struct {
	ProductID   uint         `json:"product_id" binding:"required"`
	Quantity    int          `json:"quantity" binding:"required"`
	PriceAtTime models.Money `json:"price_at_time"`
}

// CreateOrder 创建订单
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.Create(service.CreateOrderInput{
		UserID:          req.UserID,
		TotalAmount:     req.TotalAmount.Decimal,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	})
	if err != nil {
		respondMapped(c, err, orderErrorRules)
		return
	}
	response.Success(c, order)
}

// CreateOrderItem 为订单追加订单项
func (h *Handler) CreateOrderItem(c *gin.Context) {
	orderID, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.OrderService.CreateItem(orderID, service.CreateOrderItemInput{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		PriceAtTime: req.PriceAtTime.Decimal,
	})
	if err != nil {
		respondMapped(c, err, orderErrorRules)
		return
	}
	response.Success(c, item)
}

// GetOrder 订单详情，不存在时 data 为 null
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, order)
}

// GetUserOrders 用户订单列表
func (h *Handler) GetUserOrders(c *gin.Context) {
	userID, ok := shared.ParseUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(orders))
}
