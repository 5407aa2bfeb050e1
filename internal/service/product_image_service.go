package service

import (
	"context"
	"strings"

	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// AddProductImageInput 添加商品图片输入
type AddProductImageInput struct {
	ImageURL     string
	AltText      *string
	DisplayOrder int
}

// ProductImageService 商品图片服务
type ProductImageService struct {
	imageRepo   repository.ProductImageRepository
	productRepo repository.ProductRepository
	cache       *cache.ProductCache
}

// NewProductImageService 创建商品图片服务
func NewProductImageService(imageRepo repository.ProductImageRepository, productRepo repository.ProductRepository, productCache *cache.ProductCache) *ProductImageService {
	return &ProductImageService{
		imageRepo:   imageRepo,
		productRepo: productRepo,
		cache:       productCache,
	}
}

// Add 添加商品图片，展示顺序允许重复
func (s *ProductImageService) Add(ctx context.Context, productID uint, input AddProductImageInput) (*models.ProductImage, error) {
	url := strings.TrimSpace(input.ImageURL)
	if url == "" || input.DisplayOrder < 0 {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	image := &models.ProductImage{
		ProductID:    productID,
		ImageURL:     url,
		AltText:      input.AltText,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, productID)
	return image, nil
}

// ListByProduct 商品图片，按展示顺序
func (s *ProductImageService) ListByProduct(productID uint) ([]models.ProductImage, error) {
	return s.imageRepo.ListByProduct(productID)
}

// Delete 删除图片，不重排剩余图片顺序
func (s *ProductImageService) Delete(ctx context.Context, id uint) (bool, error) {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return false, err
	}
	if image == nil {
		return false, nil
	}
	affected, err := s.imageRepo.Delete(id)
	if err != nil {
		return false, err
	}
	s.cache.Invalidate(ctx, image.ProductID)
	return affected > 0, nil
}
