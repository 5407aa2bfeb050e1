package repository

import (
	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
)

// AuthzAuditLogListFilter 权限审计日志查询条件
type AuthzAuditLogListFilter struct {
	Role   string
	Action string
	Limit  int
}

// AuthzAuditLogRepository 权限审计日志数据访问接口
type AuthzAuditLogRepository interface {
	Create(log *models.AuthzAuditLog) error
	List(filter AuthzAuditLogListFilter) ([]models.AuthzAuditLog, error)
}

// GormAuthzAuditLogRepository GORM 实现
type GormAuthzAuditLogRepository struct {
	db *gorm.DB
}

// NewAuthzAuditLogRepository 创建权限审计日志仓库
func NewAuthzAuditLogRepository(db *gorm.DB) *GormAuthzAuditLogRepository {
	return &GormAuthzAuditLogRepository{db: db}
}

// Create 创建权限审计日志
func (r *GormAuthzAuditLogRepository) Create(log *models.AuthzAuditLog) error {
	if log == nil {
		return nil
	}
	return r.db.Create(log).Error
}

// List 查询权限审计日志，最新在前
func (r *GormAuthzAuditLogRepository) List(filter AuthzAuditLogListFilter) ([]models.AuthzAuditLog, error) {
	query := r.db.Model(&models.AuthzAuditLog{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	logs := make([]models.AuthzAuditLog, 0)
	if err := query.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
