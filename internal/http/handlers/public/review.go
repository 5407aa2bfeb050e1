package public

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	UserID    uint    `json:"user_id" binding:"required"`
	ProductID uint    `json:"product_id" binding:"required"`
	Rating    int     `json:"rating" binding:"required"`
	Comment   *string `json:"comment"`
}

// UpdateReviewRequest 更新评价请求，comment 传 null 表示清空
type UpdateReviewRequest struct {
	Rating  *int                   `json:"rating"`
	Comment service.OptionalString `json:"comment"`
}

// CreateReview 发表评价，需已购买该商品
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	review, err := h.ReviewService.Create(service.CreateReviewInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondMapped(c, err, reviewErrorRules)
		return
	}
	response.Success(c, review)
}

// UpdateReview 更新评价，不存在时 data 为 null
func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	review, err := h.ReviewService.Update(id, service.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondMapped(c, err, reviewErrorRules)
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ReviewService.Delete(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, deleted)
}

// GetUserReviews 用户评价列表
func (h *Handler) GetUserReviews(c *gin.Context) {
	userID, ok := shared.ParseUserID(c)
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByUser(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(reviews))
}
