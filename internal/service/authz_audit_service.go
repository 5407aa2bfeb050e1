package service

import (
	"strings"
	"time"

	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// 权限审计动作
const (
	AuthzAuditActionGrant  = "grant_policy"
	AuthzAuditActionRevoke = "revoke_policy"
)

const defaultAuthzAuditLimit = 100

// AuthzAuditRecordInput 权限审计记录输入
type AuthzAuditRecordInput struct {
	OperatorUserID uint
	Action         string
	Role           string
	Object         string
	Method         string
	RequestID      string
}

// AuthzAuditService 权限审计服务
type AuthzAuditService struct {
	repo repository.AuthzAuditLogRepository
}

// NewAuthzAuditService 创建权限审计服务
func NewAuthzAuditService(repo repository.AuthzAuditLogRepository) *AuthzAuditService {
	return &AuthzAuditService{repo: repo}
}

// Record 记录权限审计日志，动作为空时忽略
func (s *AuthzAuditService) Record(input AuthzAuditRecordInput) error {
	if s == nil || s.repo == nil {
		return nil
	}
	if strings.TrimSpace(input.Action) == "" {
		return nil
	}
	return s.repo.Create(&models.AuthzAuditLog{
		OperatorUserID: input.OperatorUserID,
		Action:         strings.TrimSpace(input.Action),
		Role:           strings.TrimSpace(input.Role),
		Object:         strings.TrimSpace(input.Object),
		Method:         strings.ToUpper(strings.TrimSpace(input.Method)),
		RequestID:      strings.TrimSpace(input.RequestID),
		CreatedAt:      time.Now(),
	})
}

// List 查询权限审计日志，默认最近 100 条
func (s *AuthzAuditService) List(filter repository.AuthzAuditLogListFilter) ([]models.AuthzAuditLog, error) {
	if s == nil || s.repo == nil {
		return []models.AuthzAuditLog{}, nil
	}
	if filter.Limit <= 0 || filter.Limit > defaultAuthzAuditLimit {
		filter.Limit = defaultAuthzAuditLimit
	}
	return s.repo.List(filter)
}
