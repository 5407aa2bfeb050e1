package repository

import (
	"errors"

	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	CreateIfAbsent(user *models.User) (bool, error)
	GetByID(id uint) (*models.User, error)
	Exists(id uint) (bool, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// CreateIfAbsent 插入用户，邮箱已存在时返回 false
func (r *GormUserRepository) CreateIfAbsent(user *models.User) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Exists 用户是否存在
func (r *GormUserRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
