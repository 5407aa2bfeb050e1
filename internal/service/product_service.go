package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/queue"
	"github.com/rigforge/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OptionalString 区分未传入与显式 null 的可空字符串
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON 字段出现即视为已设置（包括 null）
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name              string
	Brand             string
	Category          string
	Description       *string
	Price             decimal.Decimal
	StockQuantity     int
	LowStockThreshold *int
	IsActive          *bool
	Specs             json.RawMessage
}

// UpdateProductInput 商品部分更新输入，nil 表示不修改
type UpdateProductInput struct {
	Name              *string
	Brand             *string
	Category          *string
	Description       OptionalString
	Price             *decimal.Decimal
	StockQuantity     *int
	LowStockThreshold *int
	IsActive          *bool
	Specs             json.RawMessage
}

// ProductService 商品业务服务
type ProductService struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	cache       *cache.ProductCache
	queueClient *queue.Client
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, cartRepo repository.CartRepository, productCache *cache.ProductCache, queueClient *queue.Client) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		cartRepo:    cartRepo,
		cache:       productCache,
		queueClient: queueClient,
	}
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, error) {
	if filter.Category != "" && !lo.Contains(constants.ProductCategories, filter.Category) {
		return nil, ErrInvalidCategory
	}
	return s.productRepo.List(filter)
}

// ListLowStock 低库存商品
func (s *ProductService) ListLowStock() ([]models.Product, error) {
	return s.productRepo.ListLowStock()
}

// GetByID 获取商品详情，不存在时返回 nil
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if cached := s.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product != nil {
		s.cache.Set(ctx, product)
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	brand := strings.TrimSpace(input.Brand)
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if name == "" || brand == "" {
		return nil, ErrInvalidInput
	}
	if !lo.Contains(constants.ProductCategories, category) {
		return nil, ErrInvalidCategory
	}
	if !input.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if input.StockQuantity < 0 {
		return nil, ErrInvalidStock
	}
	threshold := constants.DefaultLowStockThreshold
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}
	if threshold < 0 {
		return nil, ErrInvalidStock
	}
	specs, err := decodeSpecs(category, input.Specs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:              name,
		Brand:             brand,
		Category:          category,
		Description:       input.Description,
		Price:             models.NewMoneyFromDecimal(input.Price),
		StockQuantity:     input.StockQuantity,
		LowStockThreshold: threshold,
		IsActive:          lo.FromPtrOr(input.IsActive, true),
		Specs:             models.ProductSpecs{Specs: specs},
	}
	if err := ensureSpecsMatch(product); err != nil {
		return nil, err
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	logger.Infow("product_created", "product_id", product.ID, "category", product.Category)
	return product, nil
}

// Update 部分更新商品，不存在时返回 nil
func (s *ProductService) Update(ctx context.Context, id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		product.Name = name
	}
	if input.Brand != nil {
		brand := strings.TrimSpace(*input.Brand)
		if brand == "" {
			return nil, ErrInvalidInput
		}
		product.Brand = brand
	}
	if input.Description.Set {
		product.Description = input.Description.Value
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, ErrInvalidPrice
		}
		product.Price = models.NewMoneyFromDecimal(*input.Price)
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, ErrInvalidStock
		}
		product.StockQuantity = *input.StockQuantity
	}
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, ErrInvalidStock
		}
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	categoryChanged := false
	if input.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*input.Category))
		if !lo.Contains(constants.ProductCategories, category) {
			return nil, ErrInvalidCategory
		}
		categoryChanged = category != product.Category
		product.Category = category
	}
	if hasSpecs(input.Specs) {
		specs, err := decodeSpecs(product.Category, input.Specs)
		if err != nil {
			return nil, err
		}
		product.Specs = models.ProductSpecs{Specs: specs}
	} else if categoryChanged {
		specs, _ := models.NewSpecs(product.Category)
		product.Specs = models.ProductSpecs{Specs: specs}
	}

	if err := ensureSpecsMatch(product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return s.productRepo.GetByID(id)
}

// UpdateStock 覆盖库存，不存在时返回 nil
func (s *ProductService) UpdateStock(ctx context.Context, id uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	affected, err := s.productRepo.UpdateStock(id, stock)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	s.cache.Invalidate(ctx, id)
	logger.Infow("product_stock_updated", "product_id", id, "stock_quantity", stock)
	return s.productRepo.GetByID(id)
}

// Delete 删除商品：有订单引用时下架，否则物理删除；商品不存在返回 false
// 引用计数与删除/下架在同一事务内完成
func (s *ProductService) Delete(ctx context.Context, id uint) (bool, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	defer s.cache.Invalidate(ctx, id)

	var (
		refs     int64
		affected int64
	)
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		count, err := repo.CountOrderReferences(id)
		if err != nil {
			return err
		}
		refs = count
		if refs > 0 {
			affected, err = repo.Deactivate(id)
			return err
		}
		affected, err = repo.HardDelete(id)
		return err
	})
	if err != nil {
		return false, err
	}

	if refs > 0 {
		logger.Infow("product_deactivated", "product_id", id, "order_references", refs)
		s.dispatchDeactivated(id)
		return affected > 0, nil
	}
	logger.Infow("product_deleted", "product_id", id)
	return affected > 0, nil
}

// PurgeFromCarts 从所有购物车移除已下架商品
func (s *ProductService) PurgeFromCarts(productID uint) (int64, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if product != nil && product.IsActive {
		return 0, nil
	}
	removed, err := s.cartRepo.DeleteByProduct(productID)
	if err != nil {
		return 0, err
	}
	logger.Infow("product_cart_rows_purged", "product_id", productID, "removed", removed)
	return removed, nil
}

func (s *ProductService) dispatchDeactivated(productID uint) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueProductDeactivated(queue.ProductDeactivatedPayload{ProductID: productID})
		if err == nil {
			return
		}
		logger.Warnw("product_deactivated_enqueue_failed", "product_id", productID, "error", err)
	}
	if _, err := s.PurgeFromCarts(productID); err != nil {
		logger.Errorw("product_cart_purge_failed", "product_id", productID, "error", err)
	}
}

func hasSpecs(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

func decodeSpecs(category string, raw json.RawMessage) (models.Specs, error) {
	if !hasSpecs(raw) {
		raw = nil
	}
	specs, err := models.DecodeSpecs(category, raw)
	if err != nil {
		if errors.Is(err, models.ErrSpecsCategoryMismatch) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpecs, err)
	}
	return specs, nil
}

// ensureSpecsMatch 参数记录必须与商品品类一致，拦截历史数据中品类与参数错配的行
func ensureSpecsMatch(product *models.Product) error {
	if err := product.Specs.MatchCategory(product.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpecs, err)
	}
	return nil
}
