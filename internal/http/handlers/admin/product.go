package admin

import (
	"encoding/json"

	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	Brand             string          `json:"brand" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Description       *string         `json:"description"`
	Price             models.Money    `json:"price"`
	StockQuantity     int             `json:"stock_quantity"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
	IsActive          *bool           `json:"is_active"`
	Specs             json.RawMessage `json:"specs"`
}

// UpdateProductRequest 商品部分更新请求，未传字段保持不变
type UpdateProductRequest struct {
	Name              *string                `json:"name"`
	Brand             *string                `json:"brand"`
	Category          *string                `json:"category"`
	Description       service.OptionalString `json:"description"`
	Price             *models.Money          `json:"price"`
	StockQuantity     *int                   `json:"stock_quantity"`
	LowStockThreshold *int                   `json:"low_stock_threshold"`
	IsActive          *bool                  `json:"is_active"`
	Specs             json.RawMessage        `json:"specs"`
}

// UpdateStockRequest 库存覆盖请求
type UpdateStockRequest struct {
	StockQuantity *int `json:"stock_quantity" binding:"required"`
}

// GetLowStockProducts 低库存商品
func (h *Handler) GetLowStockProducts(c *gin.Context) {
	products, err := h.ProductService.ListLowStock()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(products))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	product, err := h.ProductService.Create(service.CreateProductInput{
		Name:              req.Name,
		Brand:             req.Brand,
		Category:          req.Category,
		Description:       req.Description,
		Price:             req.Price.Decimal,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.IsActive,
		Specs:             req.Specs,
	})
	if err != nil {
		respondMapped(c, err, productErrorRules)
		return
	}
	response.Success(c, product)
}

// UpdateProduct 部分更新商品，不存在时 data 为 null
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	var price *decimal.Decimal
	if req.Price != nil {
		price = &req.Price.Decimal
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, service.UpdateProductInput{
		Name:              req.Name,
		Brand:             req.Brand,
		Category:          req.Category,
		Description:       req.Description,
		Price:             price,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          req.IsActive,
		Specs:             req.Specs,
	})
	if err != nil {
		respondMapped(c, err, productErrorRules)
		return
	}
	response.Success(c, product)
}

// UpdateProductStock 覆盖商品库存，不存在时 data 为 null
func (h *Handler) UpdateProductStock(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	product, err := h.ProductService.UpdateStock(c.Request.Context(), id, *req.StockQuantity)
	if err != nil {
		respondMapped(c, err, productErrorRules)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品，存在订单引用时仅下架
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	deleted, err := h.ProductService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	if deleted {
		requestLog(c).Infow("admin_product_deleted", "product_id", id)
	}
	response.Success(c, deleted)
}
