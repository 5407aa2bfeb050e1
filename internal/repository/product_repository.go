package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	ListLowStock() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpdateStock(id uint, stock int) (int64, error)
	Deactivate(id uint) (int64, error)
	HardDelete(id uint) (int64, error)
	CountOrderReferences(id uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 商品列表，不分页，按 id 升序
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	query := r.db.Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", filter.MinPrice.StringFixed(2))
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", filter.MaxPrice.StringFixed(2))
	}
	query = r.applySpecFilters(query, filter)
	if filter.InStockOnly {
		query = query.Where("stock_quantity >= ?", 1)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"name", "brand"})
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}

	var products []models.Product
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// applySpecFilters 品类参数等值过滤，每个参数同时限定所属品类
func (r *GormProductRepository) applySpecFilters(query *gorm.DB, filter ProductListFilter) *gorm.DB {
	textFilters := []struct {
		category string
		key      string
		value    string
	}{
		{constants.CategoryGPU, "chipset", filter.GPUChipset},
		{constants.CategoryCPU, "socket", filter.CPUSocket},
		{constants.CategoryRAM, "type", filter.RAMType},
		{constants.CategorySSD, "interface", filter.SSDInterface},
		{constants.CategoryMotherboard, "form_factor", filter.MotherboardFormFactor},
	}
	for _, f := range textFilters {
		if f.value == "" {
			continue
		}
		query = query.Where("category = ? AND "+jsonTextExpr(r.db, "specs_json", f.key)+" = ?", f.category, f.value)
	}
	if filter.RAMCapacity != nil {
		query = query.Where("category = ? AND "+jsonIntExpr(r.db, "specs_json", "capacity_gb")+" = ?", constants.CategoryRAM, *filter.RAMCapacity)
	}
	return query
}

// ListLowStock 库存不高于阈值的商品（含库存为 0）
func (r *GormProductRepository) ListLowStock() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("stock_quantity <= low_stock_threshold").Order("stock_quantity ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品，图片按展示顺序预加载
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC, id ASC")
	}).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 整行更新商品（调用方负责合并字段）
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Images").Save(product).Error
}

// UpdateStock 覆盖库存
func (r *GormProductRepository) UpdateStock(id uint, stock int) (int64, error) {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stock_quantity": stock,
		"updated_at":     time.Now(),
	})
	return result.RowsAffected, result.Error
}

// Deactivate 软删除：下架商品
func (r *GormProductRepository) Deactivate(id uint) (int64, error) {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	})
	return result.RowsAffected, result.Error
}

// HardDelete 物理删除商品及其图片、购物车与心愿单引用
func (r *GormProductRepository) HardDelete(id uint) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{&models.ProductImage{}, &models.CartItem{}, &models.WishlistItem{}} {
			if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}

// CountOrderReferences 统计引用该商品的订单项数量
func (r *GormProductRepository) CountOrderReferences(id uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
