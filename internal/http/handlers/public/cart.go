package public

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest 修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddCartItem 加入购物车，同一商品合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondMapped(c, err, cartErrorRules)
		return
	}
	response.Success(c, item)
}

// UpdateCartItem 覆盖购物车项数量，不存在时 data 为 null
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.CartService.UpdateItem(id, req.Quantity)
	if err != nil {
		respondMapped(c, err, cartErrorRules)
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	removed, err := h.CartService.RemoveItem(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, removed)
}

// GetUserCart 用户购物车
func (h *Handler) GetUserCart(c *gin.Context) {
	userID, ok := shared.ParseUserID(c)
	if !ok {
		return
	}
	items, err := h.CartService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(items))
}

// ClearUserCart 清空用户购物车
func (h *Handler) ClearUserCart(c *gin.Context) {
	userID, ok := shared.ParseUserID(c)
	if !ok {
		return
	}
	cleared, err := h.CartService.Clear(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, cleared)
}
