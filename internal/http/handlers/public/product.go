package public

import (
	"strings"

	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductListQuery 商品列表查询参数
type ProductListQuery struct {
	Category              string `form:"category"`
	Brand                 string `form:"brand"`
	MinPrice              string `form:"min_price"`
	MaxPrice              string `form:"max_price"`
	GPUChipset            string `form:"gpu_chipset"`
	CPUSocket             string `form:"cpu_socket"`
	RAMCapacity           *int   `form:"ram_capacity"`
	RAMType               string `form:"ram_type"`
	SSDInterface          string `form:"ssd_interface"`
	MotherboardFormFactor string `form:"motherboard_form_factor"`
	InStockOnly           bool   `form:"in_stock_only"`
	ActiveOnly            bool   `form:"active_only"`
	Search                string `form:"search"`
}

// ToFilter 转换为仓库过滤条件
func (q ProductListQuery) ToFilter() (repository.ProductListFilter, error) {
	filter := repository.ProductListFilter{
		Category:              strings.ToLower(strings.TrimSpace(q.Category)),
		Brand:                 strings.TrimSpace(q.Brand),
		GPUChipset:            strings.TrimSpace(q.GPUChipset),
		CPUSocket:             strings.TrimSpace(q.CPUSocket),
		RAMCapacity:           q.RAMCapacity,
		RAMType:               strings.TrimSpace(q.RAMType),
		SSDInterface:          strings.TrimSpace(q.SSDInterface),
		MotherboardFormFactor: strings.TrimSpace(q.MotherboardFormFactor),
		InStockOnly:           q.InStockOnly,
		ActiveOnly:            q.ActiveOnly,
		Search:                strings.TrimSpace(q.Search),
	}
	var err error
	if filter.MinPrice, err = parseOptionalDecimal(q.MinPrice); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseOptionalDecimal(q.MaxPrice); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseOptionalDecimal(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	var query ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	products, err := h.ProductService.List(filter)
	if err != nil {
		respondMapped(c, err, productQueryErrorRules)
		return
	}
	response.Success(c, shared.ListOrEmpty(products))
}

// GetProduct 商品详情，不存在时 data 为 null
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, product)
}

// GetProductImages 商品图片列表
func (h *Handler) GetProductImages(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	images, err := h.ProductImageService.ListByProduct(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(images))
}

// GetProductReviews 商品评价列表
func (h *Handler) GetProductReviews(c *gin.Context) {
	id, ok := shared.ParseID(c)
	if !ok {
		return
	}
	reviews, err := h.ReviewService.ListByProduct(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, shared.ListOrEmpty(reviews))
}
