package repository

import (
	"errors"
	"time"

	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	CreateIfAbsent(review *models.Review) (bool, error)
	GetByID(id uint) (*models.Review, error)
	ListByProduct(productID uint) ([]models.Review, error)
	ListByUser(userID uint) ([]models.Review, error)
	Update(id uint, updates map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// CreateIfAbsent 插入评价，同一用户同一商品已评价时返回 false
func (r *GormReviewRepository) CreateIfAbsent(review *models.Review) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(review)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID 根据 ID 获取评价
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListByProduct 商品评价，最新在前
func (r *GormReviewRepository) ListByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("product_id = ?", productID).Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByUser 用户评价，最新在前
func (r *GormReviewRepository) ListByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update 更新评价字段
func (r *GormReviewRepository) Update(id uint, updates map[string]interface{}) (int64, error) {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.Review{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete 删除评价
func (r *GormReviewRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Review{}, id)
	return result.RowsAffected, result.Error
}
