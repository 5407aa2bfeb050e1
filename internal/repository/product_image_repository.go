package repository

import (
	"errors"

	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
)

// ProductImageRepository 商品图片数据访问接口
type ProductImageRepository interface {
	Create(image *models.ProductImage) error
	GetByID(id uint) (*models.ProductImage, error)
	ListByProduct(productID uint) ([]models.ProductImage, error)
	Delete(id uint) (int64, error)
}

// GormProductImageRepository GORM 实现
type GormProductImageRepository struct {
	db *gorm.DB
}

// NewProductImageRepository 创建商品图片仓库
func NewProductImageRepository(db *gorm.DB) *GormProductImageRepository {
	return &GormProductImageRepository{db: db}
}

// Create 新增图片
func (r *GormProductImageRepository) Create(image *models.ProductImage) error {
	return r.db.Create(image).Error
}

// GetByID 根据 ID 获取图片
func (r *GormProductImageRepository) GetByID(id uint) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// ListByProduct 按展示顺序返回商品图片
func (r *GormProductImageRepository) ListByProduct(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.db.Where("product_id = ?", productID).Order("display_order ASC, id ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Delete 删除图片，不重排展示顺序
func (r *GormProductImageRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.ProductImage{}, id)
	return result.RowsAffected, result.Error
}
