package public

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 加入心愿单请求
type AddWishlistItemRequest struct {
	UserID    uint `json:"user_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
}

// AddWishlistItem 加入心愿单
func (h *Handler) AddWishlistItem(c *gin.Context) {
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	item, err := h.WishlistService.Add(req.UserID, req.ProductID)
	if err != nil {
		respondMapped(c, err, wishlistErrorRules)
		return
	}
	response.Success(c, item)
}

// GetUserWishlist 用户心愿单
func (h *Handler) GetUserWishlist(c *gin.Context) {
	userID, ok := shared.ParseUserID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.ListByUser(userID)
	if err != nil {
		respondMapped(c, err, wishlistErrorRules)
		return
	}
	response.Success(c, shared.ListOrEmpty(items))
}

// RemoveWishlistItem 移出心愿单
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.Remove(id); err != nil {
		respondMapped(c, err, wishlistErrorRules)
		return
	}
	response.Success(c, true)
}
