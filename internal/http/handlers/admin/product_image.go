package admin

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

// AddProductImageRequest 添加商品图片请求
type AddProductImageRequest struct {
	ImageURL     string  `json:"image_url" binding:"required,url"`
	AltText      *string `json:"alt_text"`
	DisplayOrder int     `json:"display_order" binding:"min=0"`
}

// AddProductImage 添加商品图片
func (h *Handler) AddProductImage(c *gin.Context) {
	productID, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req AddProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	image, err := h.ProductImageService.Add(c.Request.Context(), productID, service.AddProductImageInput{
		ImageURL:     req.ImageURL,
		AltText:      req.AltText,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		respondMapped(c, err, productImageErrorRules)
		return
	}
	response.Success(c, image)
}

// DeleteProductImage 删除商品图片
func (h *Handler) DeleteProductImage(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ProductImageService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, deleted)
}
