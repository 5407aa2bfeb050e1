package repository

import (
	"errors"

	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRepository 心愿单数据访问接口
type WishlistRepository interface {
	CreateIfAbsent(item *models.WishlistItem) (bool, error)
	GetByID(id uint) (*models.WishlistItem, error)
	ListByUser(userID uint) ([]models.WishlistItem, error)
	Delete(id uint) (int64, error)
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// CreateIfAbsent 插入心愿单项，(user, product) 已存在时返回 false
func (r *GormWishlistRepository) CreateIfAbsent(item *models.WishlistItem) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID 根据 ID 获取心愿单项
func (r *GormWishlistRepository) GetByID(id uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByUser 用户心愿单，含商品
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete 删除心愿单项
func (r *GormWishlistRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.WishlistItem{}, id)
	return result.RowsAffected, result.Error
}
