package service

import (
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// AddCartItemInput 加入购物车输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddItem 加入购物车，同一商品合并数量，合并后不得超过库存
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	if product.StockQuantity < input.Quantity {
		logger.Infow("cart_add_insufficient_stock", "user_id", input.UserID, "product_id", input.ProductID, "requested", input.Quantity, "stock", product.StockQuantity)
		return nil, ErrInsufficientStock
	}

	affected, err := s.cartRepo.AddQuantity(input.UserID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		logger.Infow("cart_merge_exceeds_stock", "user_id", input.UserID, "product_id", input.ProductID, "requested", input.Quantity)
		return nil, ErrInsufficientStock
	}
	item, err := s.cartRepo.GetByUserAndProduct(input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	logger.Debugw("cart_item_added", "user_id", input.UserID, "product_id", input.ProductID, "quantity", item.Quantity)
	return item, nil
}

// UpdateItem 覆盖购物车项数量，不存在时返回 nil
func (s *CartService) UpdateItem(id uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity > product.StockQuantity {
		return nil, ErrInsufficientStock
	}
	if _, err := s.cartRepo.UpdateQuantity(id, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByID(id)
}

// ListByUser 用户购物车
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	return s.cartRepo.ListByUser(userID)
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(id uint) (bool, error) {
	affected, err := s.cartRepo.Delete(id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Clear 清空用户购物车，至少删除一行时返回 true
func (s *CartService) Clear(userID uint) (bool, error) {
	affected, err := s.cartRepo.ClearByUser(userID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
