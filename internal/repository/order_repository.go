package repository

import (
	"errors"
	"time"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	CreateItem(item *models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetDetail(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListAll() ([]models.Order, error)
	UpdateStatus(id uint, status string) (int64, error)
	CreateStatusLog(log *models.OrderStatusLog) error
	HasPurchased(userID, productID uint) (bool, error)
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItem 创建订单项
func (r *GormOrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

// GetByID 根据 ID 获取订单（不含关联）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetDetail 获取订单详情，含订单项与状态记录
func (r *GormOrderRepository) GetDetail(id uint) (*models.Order, error) {
	var order models.Order
	query := withItems(r.db).Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser 用户订单，按创建时间倒序
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := withItems(r.db).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAll 全部订单，按创建时间倒序
func (r *GormOrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	if err := withItems(r.db).Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// CreateStatusLog 写入状态变更记录
func (r *GormOrderRepository) CreateStatusLog(log *models.OrderStatusLog) error {
	return r.db.Create(log).Error
}

// HasPurchased 用户是否有包含该商品的订单项
func (r *GormOrderRepository) HasPurchased(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// activeOrderStatuses 计入营收的订单状态
var activeOrderStatuses = []string{
	constants.OrderStatusPending,
	constants.OrderStatusProcessing,
	constants.OrderStatusShipped,
	constants.OrderStatusDelivered,
}
