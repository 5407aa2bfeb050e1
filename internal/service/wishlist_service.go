package service

import (
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// WishlistService 心愿单服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// Add 加入心愿单，重复加入由唯一索引拒绝
func (s *WishlistService) Add(userID, productID uint) (*models.WishlistItem, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotActive
	}
	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	created, err := s.wishlistRepo.CreateIfAbsent(item)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrWishlistDuplicate
	}
	return item, nil
}

// ListByUser 用户心愿单
func (s *WishlistService) ListByUser(userID uint) ([]models.WishlistItem, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	return s.wishlistRepo.ListByUser(userID)
}

// Remove 删除心愿单项
func (s *WishlistService) Remove(id uint) error {
	item, err := s.wishlistRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrWishlistItemNotFound
	}
	affected, err := s.wishlistRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}

func (s *WishlistService) ensureUser(userID uint) error {
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
