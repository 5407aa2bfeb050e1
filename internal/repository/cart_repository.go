package repository

import (
	"errors"
	"time"

	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	AddQuantity(userID, productID uint, quantity int) (int64, error)
	GetByID(id uint) (*models.CartItem, error)
	GetByUserAndProduct(userID, productID uint) (*models.CartItem, error)
	ListByUser(userID uint) ([]models.CartItem, error)
	UpdateQuantity(id uint, quantity int) (int64, error)
	Delete(id uint) (int64, error)
	ClearByUser(userID uint) (int64, error)
	DeleteByProduct(productID uint) (int64, error)
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// AddQuantity 单条语句插入或累加购物车数量
// 累加后超过商品当前库存时不更新，返回影响行数 0
func (r *GormCartRepository) AddQuantity(userID, productID uint, quantity int) (int64, error) {
	now := time.Now()
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("cart_items.quantity + excluded.quantity <= (SELECT p.stock_quantity FROM products p WHERE p.id = excluded.product_id)"),
		}},
	}).Create(&item)
	return result.RowsAffected, result.Error
}

// GetByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByUserAndProduct 获取用户某商品的购物车项
func (r *GormCartRepository) GetByUserAndProduct(userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// ListByUser 获取用户购物车项
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity 覆盖购物车项数量
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   quantity,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// Delete 删除购物车项
func (r *GormCartRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.CartItem{}, id)
	return result.RowsAffected, result.Error
}

// ClearByUser 清空购物车
func (r *GormCartRepository) ClearByUser(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// DeleteByProduct 移除所有用户购物车中的某商品
func (r *GormCartRepository) DeleteByProduct(productID uint) (int64, error) {
	result := r.db.Where("product_id = ?", productID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
